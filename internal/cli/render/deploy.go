package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/trebuchet-org/nftdeploy/internal/usecase"
)

// DeployRenderer renders the outcome of a deploy run
type DeployRenderer struct {
	out  io.Writer
	plan *PlanRenderer
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer) *DeployRenderer {
	return &DeployRenderer{out: out, plan: NewPlanRenderer(out)}
}

// Render renders the plan followed by the deployment result
func (r *DeployRenderer) Render(result *usecase.DeployContractResult) error {
	if err := r.plan.Render(result.Plan); err != nil {
		return err
	}
	fmt.Fprintln(r.out)

	d := result.Deployment
	if d.DryRun {
		fmt.Fprintln(r.out, FormatWarning("Dry run: nothing was broadcast"))
		fmt.Fprintf(r.out, "   %s\n", color.New(color.Faint).Sprint(strings.Join(d.Command, " ")))
		return nil
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Deployed %s", d.Artifact)))
	fmt.Fprintf(r.out, "   Address:     %s\n", color.New(color.FgGreen, color.Bold).Sprint(d.Address))
	if d.TxHash != "" {
		fmt.Fprintf(r.out, "   Transaction: %s\n", d.TxHash)
	}
	if d.Deployer != "" {
		fmt.Fprintf(r.out, "   Deployer:    %s\n", d.Deployer)
	}
	if result.Record != nil {
		fmt.Fprintf(r.out, "   Recorded as: %s\n", color.New(color.FgCyan).Sprint(result.Record.ID))
	}
	return nil
}
