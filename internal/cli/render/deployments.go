package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/nftdeploy/internal/usecase"
)

// DeploymentsRenderer renders recorded deployments
type DeploymentsRenderer struct {
	out io.Writer
}

// NewDeploymentsRenderer creates a new deployments renderer
func NewDeploymentsRenderer(out io.Writer) *DeploymentsRenderer {
	return &DeploymentsRenderer{out: out}
}

// Render renders the deployment list
func (r *DeploymentsRenderer) Render(result *usecase.DeploymentListResult) error {
	if len(result.Deployments) == 0 {
		fmt.Fprintln(r.out, "No deployments found")
		return nil
	}

	t := newTable(r.out)
	t.AppendHeader(table.Row{"NETWORK", "VARIANT", "ARTIFACT", "ADDRESS", "DEPLOYED"})
	for _, d := range result.Deployments {
		network := d.Network
		if network == "" {
			network = "default"
		}
		t.AppendRow(table.Row{
			network,
			d.Variant,
			d.Artifact,
			color.New(color.FgGreen).Sprint(d.Address),
			d.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	t.Render()

	fmt.Fprintf(r.out, "\nTotal: %d\n", len(result.Deployments))
	return nil
}
