package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stitch/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove build outputs and cached state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cache, _ := cmd.Flags().GetBool("cache")
			all, _ := cmd.Flags().GetBool("all")

			var opts app.CleanOptions
			switch {
			case all:
				opts.Outputs = true
				opts.Cache = true
			case cache:
				opts.Cache = true
			default:
				opts.Outputs = true
			}

			return c.app.Clean(cmd.Context(), dirFlag(cmd), opts)
		},
	}

	cmd.Flags().Bool("cache", false, "Remove build records and stored blobs instead of outputs")
	cmd.Flags().BoolP("all", "a", false, "Remove outputs and cached state")

	return cmd
}
