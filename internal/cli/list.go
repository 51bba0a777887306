package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/nftdeploy/internal/cli/render"
	"github.com/trebuchet-org/nftdeploy/internal/usecase"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var variant string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recorded deployments",
		Long: `List deployments recorded in .nftdeploy/deployments.json, newest first.
Use --network and --variant to narrow the listing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListDeploymentsParams{
				Network: app.Config.NetworkName,
				Variant: variant,
			}
			if app.Config.Network != nil {
				params.Network = app.Config.Network.Name
			}

			result, err := app.ListDeployments.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result)
			}
			return render.NewDeploymentsRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "", "Only show deployments of this variant")

	return cmd
}
