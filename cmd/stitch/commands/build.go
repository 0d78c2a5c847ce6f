package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stitch/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [bundles...]",
		Short: "Build bundles and everything they depend on",
		Long:  "Build the named bundles and their dependencies. Without arguments every bundle is built.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parallel, _ := cmd.Flags().GetInt("parallel")
			timings, _ := cmd.Flags().GetBool("timings")
			_, err := c.app.Build(cmd.Context(), dirFlag(cmd), app.BuildOptions{
				Targets:     args,
				Parallelism: parallel,
				Timings:     timings,
			})
			return err
		},
	}
	cmd.Flags().IntP("parallel", "j", 0, "Maximum bundles built at once (0 uses the number of CPUs)")
	cmd.Flags().Bool("timings", false, "Log the duration of every build step")
	return cmd
}
