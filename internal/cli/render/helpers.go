package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/nftdeploy/internal/domain"
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error for the terminal, adding a hint for
// configuration problems the user can fix.
func FormatError(err error) string {
	msg := err.Error()
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}
	out := color.New(color.FgRed).Sprintf("❌ %s", msg)

	var missing domain.MissingConfigValueError
	if errors.As(err, &missing) {
		out += "\n" + color.New(color.FgYellow).Sprintf("   Set %s in the environment or in .env", missing.Key)
	}
	if errors.Is(err, domain.ErrArtifactNotFound) {
		out += "\n" + color.New(color.FgYellow).Sprint("   Build the project first or pass --skip-artifact-check")
	}
	return out
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// JSON writes v as indented JSON
func JSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// newTable returns a borderless table in the CLI's style
func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = true
	t.Style().Format.Header = text.FormatDefault
	return t
}
