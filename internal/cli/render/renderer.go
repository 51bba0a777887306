package render

import (
	"github.com/trebuchet-org/nftdeploy/internal/domain"
	"github.com/trebuchet-org/nftdeploy/internal/usecase"
)

// Renderer renders a use case result for the terminal
type Renderer[T any] interface {
	Render(result T) error
}

var (
	_ Renderer[*domain.DeploymentPlan]        = (*PlanRenderer)(nil)
	_ Renderer[*usecase.DeployContractResult] = (*DeployRenderer)(nil)
	_ Renderer[*usecase.ListVariantsResult]   = (*VariantsRenderer)(nil)
	_ Renderer[*usecase.DeploymentListResult] = (*DeploymentsRenderer)(nil)
	_ Renderer[*usecase.ComposeResult]        = (*ComposeRenderer)(nil)
)
