package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/nftdeploy/internal/cli/render"
	"github.com/trebuchet-org/nftdeploy/internal/usecase"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy [variant]",
		Short: "Deploy a contract variant with arguments from the environment",
		Long: `Resolve the constructor arguments of a contract variant from environment
variables and .env files, check them against the compiled artifact and deploy
it with forge create.

Built-in variants:
  Basic             CONTRACT_NAME CONTRACT_SYMBOL
  TokenWithPayment  CONTRACT_NAME CONTRACT_SYMBOL TOKEN_BASE_URI
                    COIN_CONTRACT_ADDRESS COIN_WALLET_ADDRESS
  VersionedToken    CONTRACT_VERSION CONTRACT_NAME CONTRACT_SYMBOL
                    TOKEN_BASE_URI ERC20_CONTRACT_ADDRESS

Signing is left to forge: pass --account, --private-key or --ledger through
--forge-args or NFTDEPLOY_FORGE_ARGS.

Examples:
  # Deploy the basic variant to a network from foundry.toml
  nftdeploy deploy Basic --network sepolia

  # Simulate without broadcasting
  nftdeploy deploy VersionedToken --network sepolia --dry-run

  # Deploy a differently named artifact with the TokenWithPayment arguments
  nftdeploy deploy TokenWithPayment --artifact src/Shop.sol:ShopNFT --forge-args=--account --forge-args=deployer`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			defer stopProgress(cmd)

			cfg := app.Config
			variant := cfg.Variant
			if len(args) > 0 {
				variant = args[0]
			}

			result, err := app.DeployContract.Run(cmd.Context(), usecase.DeployParams{
				ResolveParams: usecase.ResolveParams{
					Variant:           variant,
					Artifact:          cfg.Artifact,
					SkipArtifactCheck: cfg.SkipArtifactCheck,
				},
				DryRun:    cfg.DryRun,
				ExtraArgs: cfg.ForgeArgs,
				Debug:     cfg.Debug,
			})
			if err != nil {
				return err
			}
			stopProgress(cmd)

			if cfg.JSON {
				return render.JSON(cmd.OutOrStdout(), result)
			}
			return render.NewDeployRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().String("artifact", "", "Artifact to deploy instead of the variant's default (Name or path/File.sol:Name)")
	cmd.Flags().Bool("dry-run", false, "Simulate the deployment without broadcasting")
	cmd.Flags().Bool("skip-artifact-check", false, "Do not compare the constructor against the compiled artifact")
	cmd.Flags().StringArray("forge-args", nil, "Extra argument passed to forge create (repeatable)")

	return cmd
}
