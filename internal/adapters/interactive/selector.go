package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/nftdeploy/internal/config"
	"github.com/trebuchet-org/nftdeploy/internal/domain"
	"github.com/trebuchet-org/nftdeploy/internal/usecase"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectVariant asks the user which variant to deploy
func (s *SelectorAdapter) SelectVariant(ctx context.Context, variants []domain.VariantSpec) (domain.VariantSpec, error) {
	if len(variants) == 0 {
		return domain.VariantSpec{}, fmt.Errorf("no variants registered")
	}

	if s.config.NonInteractive {
		names := make([]string, len(variants))
		for i, v := range variants {
			names[i] = string(v.Variant)
		}
		return domain.VariantSpec{}, fmt.Errorf("interactive selection not available in non-interactive mode (choose one of: %s)",
			strings.Join(names, ", "))
	}

	options := formatVariantOptions(variants)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:     "Select contract variant",
		Items:     options,
		Templates: templates,
		Size:      10,
		Searcher:  createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return domain.VariantSpec{}, fmt.Errorf("selection cancelled: %w", err)
	}

	return variants[index], nil
}

// formatVariantOptions creates display strings for variant selection
func formatVariantOptions(variants []domain.VariantSpec) []string {
	options := make([]string, len(variants))
	for i, v := range variants {
		name := color.New(color.FgWhite, color.Bold).Sprint(v.Variant)
		artifact := color.New(color.FgBlue).Sprint(v.Artifact)
		params := strings.Join(v.Keys, ", ")
		options[i] = fmt.Sprintf("%s → %s (%s)", name, artifact, params)
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.VariantSelector = (*SelectorAdapter)(nil)
