package usecase

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/trebuchet-org/nftdeploy/internal/domain"
)

// KeyStatus reports whether a required key is set in the current configuration
type KeyStatus struct {
	Key     string `json:"key"`
	Present bool   `json:"present"`
}

// VariantStatus is a registered variant along with its readiness
type VariantStatus struct {
	Spec  domain.VariantSpec `json:"spec"`
	Keys  []KeyStatus        `json:"keys"`
	Ready bool               `json:"ready"`
}

// ListVariantsResult contains the result of listing variants
type ListVariantsResult struct {
	Variants []VariantStatus `json:"variants"`
}

// ListVariants is a use case for listing registered variants
type ListVariants struct {
	registry *domain.Registry
	source   ConfigSource
}

// NewListVariants creates a new ListVariants use case
func NewListVariants(registry *domain.Registry, source ConfigSource) *ListVariants {
	return &ListVariants{registry: registry, source: source}
}

// Run executes the use case
func (uc *ListVariants) Run(ctx context.Context) (*ListVariantsResult, error) {
	values, err := uc.source.Values(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	statuses := lo.Map(uc.registry.Variants(), func(spec domain.VariantSpec, _ int) VariantStatus {
		keys := lo.Map(spec.Keys, func(key string, _ int) KeyStatus {
			return KeyStatus{Key: key, Present: values[key] != ""}
		})
		return VariantStatus{
			Spec:  spec,
			Keys:  keys,
			Ready: lo.EveryBy(keys, func(k KeyStatus) bool { return k.Present }),
		}
	})

	return &ListVariantsResult{Variants: statuses}, nil
}
