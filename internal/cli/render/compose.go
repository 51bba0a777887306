package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/nftdeploy/internal/usecase"
)

// ComposeRenderer renders the steps of a compose run
type ComposeRenderer struct {
	out io.Writer
}

// NewComposeRenderer creates a new compose renderer
func NewComposeRenderer(out io.Writer) *ComposeRenderer {
	return &ComposeRenderer{out: out}
}

// Render renders one row per executed step and a summary line
func (r *ComposeRenderer) Render(result *usecase.ComposeResult) error {
	t := newTable(r.out)
	t.AppendHeader(table.Row{"STEP", "VARIANT", "ARTIFACT", "ARGS", "RESULT"})
	dryRun := false
	for _, s := range result.Steps {
		row := table.Row{s.Step.Name, s.Step.Variant, s.Step.Artifact, "", ""}
		switch {
		case s.Error != "":
			row[4] = color.New(color.FgRed).Sprint("failed")
		case s.Result.Deployment.DryRun:
			dryRun = true
			row[4] = color.New(color.Faint).Sprint("simulated")
		default:
			row[4] = color.New(color.FgGreen).Sprint(s.Result.Deployment.Address)
		}
		if s.Result != nil {
			row[2] = s.Result.Plan.Artifact
			row[3] = strings.Join(s.Result.Plan.Args, ", ")
		}
		t.AppendRow(row)
	}
	t.Render()
	fmt.Fprintln(r.out)

	switch {
	case result.FailedStep != "":
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Stopped at step %s after %d deployments", result.FailedStep, result.Deployed)))
	case dryRun:
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Dry run: %d steps simulated, nothing was broadcast", len(result.Steps))))
	default:
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Deployed %d contracts", result.Deployed)))
	}
	return nil
}
