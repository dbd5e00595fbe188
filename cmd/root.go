// Package cmd provides the root command and CLI setup for mangle.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fuzzbed/mangle/internal/adapter"
	"github.com/fuzzbed/mangle/internal/controller"
	"github.com/fuzzbed/mangle/internal/domain"
)

var sampleStore adapter.SampleStore
var configLoader adapter.ConfigLoader
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewSimpleUI(rootCmd)
	sampleStore = adapter.NewSampleStore()
	configLoader = adapter.NewConfigLoader()
	workflow = domain.NewWorkflow(sampleStore, zap.NewNop())
}

var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mangle",
		Short: "Structure-aware mutation engine for fuzz testing",
		Long: `Mangle mutates typed in-memory values into plausible-but-perturbed
variants for feeding to a fuzz target: primitives get bit flips,
arithmetic walks and boundary values; growable sequences are resized
under a byte budget; enum discriminants decay into raw integers that
exercise unknown-value handling in the target.

The CLI drives the engine over built-in sample shapes:

  mangle list            show the built-in shapes
  mangle run -n 10000    run mutation sessions and print statistics
  mangle watch           run with a live terminal view`,
	}

	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log every mutation pass")

	return cmd
}

// sessionLogger builds the workflow logger from the persistent flags.
func sessionLogger() (*zap.Logger, error) {
	if !verboseFlag {
		return zap.NewNop(), nil
	}

	return zap.NewDevelopment()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
