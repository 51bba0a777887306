package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/nftdeploy/internal/usecase"
)

// VariantsRenderer renders the variant registry
type VariantsRenderer struct {
	out io.Writer
}

// NewVariantsRenderer creates a new variants renderer
func NewVariantsRenderer(out io.Writer) *VariantsRenderer {
	return &VariantsRenderer{out: out}
}

// Render renders one row per variant with key readiness
func (r *VariantsRenderer) Render(result *usecase.ListVariantsResult) error {
	t := newTable(r.out)
	t.AppendHeader(table.Row{"VARIANT", "ARTIFACT", "KEYS", "READY"})

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	for _, v := range result.Variants {
		keys := make([]string, len(v.Keys))
		for i, k := range v.Keys {
			if k.Present {
				keys[i] = green.Sprint(k.Key)
			} else {
				keys[i] = red.Sprint(k.Key)
			}
		}

		name := string(v.Spec.Variant)
		if !v.Spec.BuiltIn {
			name += color.New(color.Faint).Sprint(" (custom)")
		}
		ready := red.Sprint("✗")
		if v.Ready {
			ready = green.Sprint("✓")
		}

		t.AppendRow(table.Row{name, v.Spec.Artifact, strings.Join(keys, "\n"), ready})
		t.AppendSeparator()
	}
	t.Render()

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, color.New(color.Faint).Sprint("Keys are listed in constructor order; red keys are not set."))
	return nil
}
