package domain

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

// Registry maps variant tags to their constructor shapes.
// A Registry is immutable once built; With returns a modified copy.
type Registry struct {
	specs map[string]VariantSpec // keyed by lowercased tag
}

var defaultRegistry = mustRegistry(builtinVariants()...)

// DefaultRegistry returns the registry of built-in variants
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// NewRegistry builds a registry from the given specs
func NewRegistry(specs ...VariantSpec) (*Registry, error) {
	r := &Registry{specs: make(map[string]VariantSpec, len(specs))}
	for _, spec := range specs {
		if err := r.add(spec); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func mustRegistry(specs ...VariantSpec) *Registry {
	r, err := NewRegistry(specs...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) add(spec VariantSpec) error {
	if err := validateSpec(spec); err != nil {
		return err
	}
	key := strings.ToLower(string(spec.Variant))
	if _, exists := r.specs[key]; exists {
		return fmt.Errorf("%w: variant %s registered twice", ErrInvalidVariant, spec.Variant)
	}
	spec.Keys = slices.Clone(spec.Keys)
	r.specs[key] = spec
	return nil
}

func validateSpec(spec VariantSpec) error {
	if strings.TrimSpace(string(spec.Variant)) == "" {
		return fmt.Errorf("%w: empty variant name", ErrInvalidVariant)
	}
	if spec.Artifact == "" {
		return fmt.Errorf("%w: variant %s has no artifact", ErrInvalidVariant, spec.Variant)
	}
	if len(spec.Keys) == 0 {
		return fmt.Errorf("%w: variant %s declares no keys", ErrInvalidVariant, spec.Variant)
	}
	for _, key := range spec.Keys {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("%w: variant %s has an empty key", ErrInvalidVariant, spec.Variant)
		}
	}
	return nil
}

// With returns a copy of the registry with spec added. If a variant with the
// same tag exists it is replaced.
func (r *Registry) With(spec VariantSpec) (*Registry, error) {
	if err := validateSpec(spec); err != nil {
		return nil, err
	}
	next := &Registry{specs: make(map[string]VariantSpec, len(r.specs)+1)}
	for k, v := range r.specs {
		next.specs[k] = v
	}
	spec.Keys = slices.Clone(spec.Keys)
	next.specs[strings.ToLower(string(spec.Variant))] = spec
	return next, nil
}

// Lookup finds a variant by tag, ignoring case
func (r *Registry) Lookup(tag string) (VariantSpec, error) {
	spec, ok := r.specs[strings.ToLower(strings.TrimSpace(tag))]
	if !ok {
		return VariantSpec{}, UnknownVariantError{Tag: tag, Suggestions: r.Suggest(tag)}
	}
	spec.Keys = slices.Clone(spec.Keys)
	return spec, nil
}

// Variants returns all registered variants sorted by name
func (r *Registry) Variants() []VariantSpec {
	specs := lo.Map(lo.Values(r.specs), func(s VariantSpec, _ int) VariantSpec {
		s.Keys = slices.Clone(s.Keys)
		return s
	})
	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Variant < specs[j].Variant
	})
	return specs
}

// Names returns the canonical variant names sorted
func (r *Registry) Names() []string {
	return lo.Map(r.Variants(), func(s VariantSpec, _ int) string {
		return string(s.Variant)
	})
}

// Suggest returns registered variant names that fuzzily match tag, best first
func (r *Registry) Suggest(tag string) []string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return nil
	}

	names := r.Names()
	lowered := lo.Map(names, func(n string, _ int) string { return strings.ToLower(n) })

	var out []string
	for _, match := range fuzzy.Find(tag, lowered) {
		out = append(out, names[match.Index])
	}
	// Typo-level mistakes rarely form a subsequence, fall back to prefixes
	if len(out) == 0 {
		for i, n := range lowered {
			if len(tag) >= 3 && strings.HasPrefix(n, tag[:3]) {
				out = append(out, names[i])
			}
		}
	}
	return out
}
