package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in sample shapes",
		RunE: func(_ *cobra.Command, _ []string) error {
			return ui.DisplayShapes(workflow.Shapes())
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
