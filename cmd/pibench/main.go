// Command pibench runs one parallel π-estimation strategy and reports the
// configuration, per-run wall time, and the estimate.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/parlab/pibench"
	"github.com/spf13/cobra"
)

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := pibench.DefaultConfig()

	root := &cobra.Command{
		Use:           "pibench <strategy>",
		Short:         "Estimate π with one of the parallel integration strategies",
		Long:          "Estimate π as the midpoint-rule integral of 4/(1+x²) over [0,1],\nusing the named parallel decomposition. Run `pibench list` for the choices.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], cfg)
		},
	}

	root.Flags().Int64Var(&cfg.Steps, "steps", cfg.Steps, "number of integration steps")
	root.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "requested number of workers")
	root.Flags().IntVar(&cfg.Repetitions, "reps", cfg.Repetitions, "number of timed repetitions")
	root.Flags().Int64Var(&cfg.Threshold, "threshold", cfg.Threshold, "serial cutoff for the divide strategy")

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the available strategies",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range pibench.StrategyNames() {
				cmd.Println(name)
			}
		},
	})

	return root
}

func run(name string, cfg pibench.Config) error {
	strategy, ok := pibench.Strategies[name]
	if !ok {
		return fmt.Errorf("unknown strategy [%s], see `pibench list`", name)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	slog.Info("configuration",
		"strategy", name,
		"steps", cfg.Steps,
		"requested_workers", cfg.Workers,
		"granted_workers", pibench.Granted(cfg.Workers),
		"repetitions", cfg.Repetitions)

	runs, avg := pibench.MeasureRepeated(strategy, cfg)
	for _, r := range runs {
		slog.Info("run", "time_sec", fmt.Sprintf("%.3f", r.Elapsed.Seconds()))
	}
	if cfg.Repetitions > 1 {
		slog.Info("summary", "avg_time_sec", fmt.Sprintf("%.3f", avg.Seconds()))
	}

	fmt.Printf("pi=%.20f\n", runs[len(runs)-1].Estimate)
	return nil
}
