package domain

import (
	"errors"
	"fmt"
)

// ComposeFile describes several deployments run in order. Defaults apply to
// every step and a step's Values override them.
type ComposeFile struct {
	Defaults ConfigValues  `yaml:"defaults,omitempty" json:"defaults,omitempty"`
	Steps    []ComposeStep `yaml:"steps" json:"steps"`
}

// ComposeStep is a single deployment of a compose file
type ComposeStep struct {
	Name     string       `yaml:"name,omitempty" json:"name"`
	Variant  string       `yaml:"variant" json:"variant"`
	Artifact string       `yaml:"artifact,omitempty" json:"artifact,omitempty"`
	Values   ConfigValues `yaml:"values,omitempty" json:"values,omitempty"`
}

// Validate checks every step against the registry and fills in missing step
// names as "step-N".
func (f *ComposeFile) Validate(registry *Registry) error {
	if len(f.Steps) == 0 {
		return errors.New("compose file has no steps")
	}

	seen := make(map[string]bool, len(f.Steps))
	for i := range f.Steps {
		step := &f.Steps[i]
		if step.Name == "" {
			step.Name = fmt.Sprintf("step-%d", i+1)
		}
		if seen[step.Name] {
			return fmt.Errorf("duplicate step name %q", step.Name)
		}
		seen[step.Name] = true

		if step.Variant == "" {
			return fmt.Errorf("step %q: variant is required", step.Name)
		}
		if _, err := registry.Lookup(step.Variant); err != nil {
			return fmt.Errorf("step %q: %w", step.Name, err)
		}
	}
	return nil
}

// StepValues returns the defaults merged with the step's own values
func (f *ComposeFile) StepValues(step ComposeStep) ConfigValues {
	values := make(ConfigValues, len(f.Defaults)+len(step.Values))
	for k, v := range f.Defaults {
		values[k] = v
	}
	for k, v := range step.Values {
		values[k] = v
	}
	return values
}
