package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/nftdeploy/internal/cli/render"
)

// NewVariantsCmd creates the variants command
func NewVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List contract variants and the keys they require",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListVariants.Run(cmd.Context())
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result)
			}
			return render.NewVariantsRenderer(cmd.OutOrStdout()).Render(result)
		},
	}
}
