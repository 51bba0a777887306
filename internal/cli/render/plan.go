package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/nftdeploy/internal/domain"
)

// PlanRenderer renders a resolved deployment plan
type PlanRenderer struct {
	out io.Writer
}

// NewPlanRenderer creates a new plan renderer
func NewPlanRenderer(out io.Writer) *PlanRenderer {
	return &PlanRenderer{out: out}
}

// Render renders the plan header and its argument table
func (r *PlanRenderer) Render(plan *domain.DeploymentPlan) error {
	bold := color.New(color.Bold)

	fmt.Fprintf(r.out, "%s %s\n", bold.Sprint("Variant: "), color.New(color.FgCyan).Sprint(plan.Variant.Variant))
	fmt.Fprintf(r.out, "%s %s\n", bold.Sprint("Artifact:"), plan.Artifact)
	if plan.Network != nil {
		fmt.Fprintf(r.out, "%s %s (%s)\n", bold.Sprint("Network: "), plan.Network.Name, plan.Network.RpcURL)
	}
	if plan.Constructor != nil {
		fmt.Fprintf(r.out, "%s %s\n", bold.Sprint("Source:  "), color.New(color.Faint).Sprint(plan.Constructor.Path))
	}
	fmt.Fprintln(r.out)

	t := newTable(r.out)
	header := table.Row{"#", "KEY", "VALUE"}
	if plan.Constructor != nil {
		header = append(header, "PARAM")
	}
	t.AppendHeader(header)

	for i, value := range plan.Args {
		row := table.Row{i, plan.Variant.Keys[i], value}
		if plan.Constructor != nil {
			in := plan.Constructor.Inputs[i]
			row = append(row, fmt.Sprintf("%s %s", in.Type, in.Name))
		}
		t.AppendRow(row)
	}
	t.Render()

	return nil
}
