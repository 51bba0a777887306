package app

import (
	"github.com/trebuchet-org/nftdeploy/internal/config"
	"github.com/trebuchet-org/nftdeploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	ResolveArguments  *usecase.ResolveArguments
	DeployContract    *usecase.DeployContract
	ComposeDeployment *usecase.ComposeDeployment
	ListVariants      *usecase.ListVariants
	ListDeployments   *usecase.ListDeployments
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	resolveArguments *usecase.ResolveArguments,
	deployContract *usecase.DeployContract,
	composeDeployment *usecase.ComposeDeployment,
	listVariants *usecase.ListVariants,
	listDeployments *usecase.ListDeployments,
) (*App, error) {
	return &App{
		Config:            cfg,
		ResolveArguments:  resolveArguments,
		DeployContract:    deployContract,
		ComposeDeployment: composeDeployment,
		ListVariants:      listVariants,
		ListDeployments:   listDeployments,
	}, nil
}
