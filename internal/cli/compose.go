package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/nftdeploy/internal/cli/render"
	"github.com/trebuchet-org/nftdeploy/internal/usecase"
)

// NewComposeCmd creates the compose command
func NewComposeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compose [file]",
		Short: "Deploy several variants in order from a YAML file",
		Long: `Deploy every step of a compose file in order. Each step names a variant and
may set its own configuration values, which take precedence over the
environment. Values under "defaults" apply to every step.

All steps are resolved and checked before the first deployment. A failed
deployment stops the run; steps already broadcast stay recorded.

Example nftdeploy-compose.yaml:

  defaults:
    TOKEN_BASE_URI: ipfs://bafy.../
  steps:
    - name: genesis
      variant: Basic
      values:
        CONTRACT_NAME: Genesis
        CONTRACT_SYMBOL: GEN
    - name: shop
      variant: TokenWithPayment
      artifact: src/Shop.sol:ShopNFT
      values:
        CONTRACT_NAME: Shop
        CONTRACT_SYMBOL: SHOP`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			defer stopProgress(cmd)

			cfg := app.Config
			path := usecase.DefaultComposeFile
			if len(args) > 0 {
				path = args[0]
			}

			result, runErr := app.ComposeDeployment.Run(cmd.Context(), usecase.ComposeParams{
				ConfigPath:        path,
				SkipArtifactCheck: cfg.SkipArtifactCheck,
				DryRun:            cfg.DryRun,
				ExtraArgs:         cfg.ForgeArgs,
				Debug:             cfg.Debug,
			})
			stopProgress(cmd)
			if result == nil {
				return runErr
			}

			if cfg.JSON {
				if err := render.JSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			} else if err := render.NewComposeRenderer(cmd.OutOrStdout()).Render(result); err != nil {
				return err
			}
			return runErr
		},
	}

	cmd.Flags().Bool("dry-run", false, "Simulate every step without broadcasting")
	cmd.Flags().Bool("skip-artifact-check", false, "Do not compare constructors against the compiled artifacts")
	cmd.Flags().StringArray("forge-args", nil, "Extra argument passed to every forge create (repeatable)")

	return cmd
}
