package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/nftdeploy/internal/cli/render"
	"github.com/trebuchet-org/nftdeploy/internal/usecase"
)

// NewArgsCmd creates the args command
func NewArgsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "args [variant]",
		Short: "Show the constructor arguments a deployment would use",
		Long: `Resolve the constructor arguments of a variant without deploying anything.
Useful to check the environment before running deploy.`,
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

			plan, err := app.ResolveArguments.Run(cmd.Context(), usecase.ResolveParams{
				Variant:           variant,
				Artifact:          cfg.Artifact,
				SkipArtifactCheck: cfg.SkipArtifactCheck,
			})
			if err != nil {
				return err
			}
			stopProgress(cmd)

			if cfg.JSON {
				return render.JSON(cmd.OutOrStdout(), plan)
			}
			return render.NewPlanRenderer(cmd.OutOrStdout()).Render(plan)
		},
	}

	cmd.Flags().String("artifact", "", "Artifact to check instead of the variant's default")
	cmd.Flags().Bool("skip-artifact-check", false, "Do not compare the constructor against the compiled artifact")

	return cmd
}
