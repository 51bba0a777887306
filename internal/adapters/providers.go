package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/nftdeploy/internal/adapters/artifact"
	"github.com/trebuchet-org/nftdeploy/internal/adapters/environment"
	"github.com/trebuchet-org/nftdeploy/internal/adapters/forge"
	"github.com/trebuchet-org/nftdeploy/internal/adapters/fs"
	"github.com/trebuchet-org/nftdeploy/internal/adapters/interactive"
	"github.com/trebuchet-org/nftdeploy/internal/config"
	"github.com/trebuchet-org/nftdeploy/internal/domain"
	"github.com/trebuchet-org/nftdeploy/internal/usecase"
)

// ProvideRegistry provides the variant registry from RuntimeConfig
func ProvideRegistry(cfg *config.RuntimeConfig) *domain.Registry {
	if cfg.Registry == nil {
		return domain.DefaultRegistry()
	}
	return cfg.Registry
}

// EnvironmentSet provides configuration value sources
var EnvironmentSet = wire.NewSet(
	environment.NewEnvSource,
	wire.Bind(new(usecase.ConfigSource), new(*environment.EnvSource)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewDeploymentStore,
	wire.Bind(new(usecase.DeploymentStore), new(*fs.DeploymentStore)),

	artifact.NewInspector,
	wire.Bind(new(usecase.ArtifactInspector), new(*artifact.Inspector)),
)

// ForgeSet provides forge-based implementations
var ForgeSet = wire.NewSet(
	forge.NewDeployer,
	wire.Bind(new(usecase.ContractDeployer), new(*forge.Deployer)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.VariantSelector), new(*interactive.SelectorAdapter)),
)

// AllAdapters provides every adapter
var AllAdapters = wire.NewSet(
	ProvideRegistry,
	EnvironmentSet,
	FSSet,
	ForgeSet,
	InteractiveSet,
)
