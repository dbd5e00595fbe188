package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fuzzbed/mangle/internal/domain"
	m "github.com/fuzzbed/mangle/internal/model"
)

var runPassesFlag int
var runParallelFlag int
var runSeedFlag uint64
var runModeFlag string
var runMaxSizeFlag int
var runOutputFlag string
var runConfigFlag string
var runShapeFlags []string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run mutation sessions over the built-in shapes",
		Long: `Run executes one mutation session per shape: the shape's sample value
is mutated pass after pass, each pass feeding on the previous result,
and the serialized sizes are tracked. With --out, every pass's
serialized sample is written for replay against a target.

A JWCC config file (--config) provides defaults; flags set on the
command line win over the file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			log, err := sessionLogger()
			if err != nil {
				return err
			}

			wf := workflow
			if verboseFlag {
				wf = domain.NewWorkflow(sampleStore, log)
			}

			if err := ui.Start(); err != nil {
				return err
			}
			defer ui.Close()

			summary, err := wf.Run(domain.RunArgs{
				Config:   cfg,
				Progress: ui.DisplayProgress,
			})
			if err != nil {
				return err
			}

			return ui.DisplaySummary(summary)
		},
	}

	addSessionFlags(cmd)

	return cmd
}

// addSessionFlags registers the flags shared by run and watch.
func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runPassesFlag, "passes", "n", 1000, "mutation passes per shape")
	cmd.Flags().IntVarP(&runParallelFlag, "parallel", "p", 1, "number of parallel shape sessions")
	cmd.Flags().Uint64Var(&runSeedFlag, "seed", 1, "base random seed; sessions derive per-shape streams")
	cmd.Flags().StringVarP(&runModeFlag, "mode", "m", "havoc", "mutation mode: bitflip, arithmetic, interesting or havoc")
	cmd.Flags().IntVar(&runMaxSizeFlag, "max-size", 4096, "byte budget for growable fields (0 = unconstrained)")
	cmd.Flags().StringVarP(&runOutputFlag, "out", "o", "", "directory to write serialized samples to")
	cmd.Flags().StringVarP(&runConfigFlag, "config", "c", "", "JWCC session config file")
	cmd.Flags().StringArrayVarP(&runShapeFlags, "shape", "s", nil, "shape to mutate (can be repeated; default all)")
}

// resolveConfig merges the config file, defaults, and explicit flags.
func resolveConfig(cmd *cobra.Command) (m.SessionConfig, error) {
	cfg := m.DefaultSessionConfig()

	if runConfigFlag != "" {
		loaded, err := configLoader.Load(m.Path(runConfigFlag))
		if err != nil {
			return cfg, err
		}

		cfg = loaded
	}

	flags := cmd.Flags()

	if flags.Changed("passes") {
		cfg.Passes = runPassesFlag
	}

	if flags.Changed("parallel") {
		cfg.Workers = runParallelFlag
	}

	if flags.Changed("seed") {
		cfg.Seed = runSeedFlag
	}

	if flags.Changed("mode") {
		cfg.Mode = runModeFlag
	}

	if flags.Changed("max-size") {
		cfg.MaxSize = runMaxSizeFlag
	}

	if flags.Changed("out") {
		cfg.Output = m.Path(runOutputFlag)
	}

	if len(runShapeFlags) > 0 {
		cfg.Shapes = nil
		for _, shape := range runShapeFlags {
			cfg.Shapes = append(cfg.Shapes, m.Shape(shape))
		}
	}

	return cfg, nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
