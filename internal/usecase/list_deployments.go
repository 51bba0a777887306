package usecase

import (
	"context"
	"sort"

	"github.com/trebuchet-org/nftdeploy/internal/domain"
)

// ListDeploymentsParams contains parameters for listing deployments
type ListDeploymentsParams struct {
	Network string
	Variant string
}

// DeploymentListResult contains the result of listing deployments
type DeploymentListResult struct {
	Deployments []*domain.DeploymentRecord `json:"deployments"`
}

// ListDeployments is a use case for listing recorded deployments
type ListDeployments struct {
	registry *domain.Registry
	store    DeploymentStore
}

// NewListDeployments creates a new ListDeployments use case
func NewListDeployments(registry *domain.Registry, store DeploymentStore) *ListDeployments {
	return &ListDeployments{registry: registry, store: store}
}

// Run executes the list deployments use case
func (uc *ListDeployments) Run(ctx context.Context, params ListDeploymentsParams) (*DeploymentListResult, error) {
	filter := domain.DeploymentFilter{Network: params.Network}
	if params.Variant != "" {
		spec, err := uc.registry.Lookup(params.Variant)
		if err != nil {
			return nil, err
		}
		filter.Variant = spec.Variant
	}

	deployments, err := uc.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(deployments, func(i, j int) bool {
		return deployments[i].CreatedAt.After(deployments[j].CreatedAt)
	})

	return &DeploymentListResult{Deployments: deployments}, nil
}
