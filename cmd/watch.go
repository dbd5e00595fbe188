package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fuzzbed/mangle/internal/controller"
	"github.com/fuzzbed/mangle/internal/domain"
)

// watchCmd represents the watch command: a run with a live terminal view.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run mutation sessions with a live terminal view",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			tui := controller.NewTUI(cmd.OutOrStdout())
			if err := tui.Start(); err != nil {
				return err
			}
			defer tui.Close()

			summary, err := workflow.Run(domain.RunArgs{
				Config:   cfg,
				Progress: tui.DisplayProgress,
			})
			if err != nil {
				return err
			}

			return tui.DisplaySummary(summary)
		},
	}

	addSessionFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
