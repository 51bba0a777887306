//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/nftdeploy/internal/adapters"
	"github.com/trebuchet-org/nftdeploy/internal/config"
	"github.com/trebuchet-org/nftdeploy/internal/logging"
	"github.com/trebuchet-org/nftdeploy/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewResolveArguments,
		usecase.NewDeployContract,
		usecase.NewComposeDeployment,
		usecase.NewListVariants,
		usecase.NewListDeployments,

		// App
		NewApp,
	)
	return nil, nil
}
