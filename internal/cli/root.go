package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/nftdeploy/internal/adapters/progress"
	"github.com/trebuchet-org/nftdeploy/internal/app"
	"github.com/trebuchet-org/nftdeploy/internal/config"
	"github.com/trebuchet-org/nftdeploy/internal/logging"
	"github.com/trebuchet-org/nftdeploy/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
	// sinkKey is the context key for the progress sink
	sinkKey contextKey = "sink"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nftdeploy",
		Short: "Deploy NFT contract artifacts with constructor arguments from the environment",
		Long: `nftdeploy resolves the constructor arguments of an NFT contract variant from
environment variables (and .env files) and deploys the compiled artifact with
forge create.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			// Projects without foundry.toml still work from the current directory
			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				projectRoot = "."
			}

			v := config.SetupViper(projectRoot)
			config.BindFlags(v, cmd)

			sink := newProgressSink(v)

			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			ctx = context.WithValue(ctx, sinkKey, sink)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (name from foundry.toml [rpc_endpoints] or an RPC URL)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	composeCmd := NewComposeCmd()
	composeCmd.GroupID = "main"
	rootCmd.AddCommand(composeCmd)

	argsCmd := NewArgsCmd()
	argsCmd.GroupID = "main"
	rootCmd.AddCommand(argsCmd)

	variantsCmd := NewVariantsCmd()
	variantsCmd.GroupID = "management"
	rootCmd.AddCommand(variantsCmd)

	listCmd := NewListCmd()
	listCmd.GroupID = "management"
	rootCmd.AddCommand(listCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// newProgressSink picks a spinner for interactive terminals and the logger otherwise
func newProgressSink(v *viper.Viper) usecase.ProgressSink {
	if v.GetBool("json") || v.GetBool("debug") || v.GetBool("non_interactive") {
		return progress.NewLogSink(logging.NewLogger(&config.RuntimeConfig{Debug: v.GetBool("debug")}))
	}
	return progress.NewSpinnerSink(os.Stderr)
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}

// stopProgress stops a running spinner so that output is not interleaved
func stopProgress(cmd *cobra.Command) {
	if s, ok := cmd.Context().Value(sinkKey).(*progress.SpinnerSink); ok {
		s.Stop()
	}
}
