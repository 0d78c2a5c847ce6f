package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stitch/internal/adapters/watcher"
	"go.trai.ch/stitch/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [bundles...]",
		Short: "Build bundles and rebuild them when sources change",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parallel, _ := cmd.Flags().GetInt("parallel")
			debounce, _ := cmd.Flags().GetDuration("debounce")
			return c.app.Watch(cmd.Context(), dirFlag(cmd), app.WatchOptions{
				BuildOptions: app.BuildOptions{
					Targets:     args,
					Parallelism: parallel,
				},
				Debounce: debounce,
			})
		},
	}
	cmd.Flags().IntP("parallel", "j", 0, "Maximum bundles built at once (0 uses the number of CPUs)")
	cmd.Flags().Duration("debounce", watcher.DefaultDebounceWindow, "Quiet period after the last change before rebuilding")
	return cmd
}
