package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"intsort/internal/bench"
	"intsort/intio"
	"intsort/qsort"
)

func newBenchCmd(a *app) *cobra.Command {
	var sizes []int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the recursive and iterative sorters on generated data",
		Long: `Runs every size x pattern x algorithm combination from the config
(bench.sizes, bench.patterns, bench.runs) and writes bench_results.md and
bench_results.json to the output directory.

Sorted, reversed and equal patterns hit the quadratic worst case of the
first-element pivot; keep sizes modest.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("sizes") {
				cfg.Bench.Sizes = sizes
			}

			patterns := make([]bench.Pattern, 0, len(cfg.Bench.Patterns))
			for _, name := range cfg.Bench.Patterns {
				p, err := bench.ParsePattern(name)
				if err != nil {
					return err
				}
				patterns = append(patterns, p)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Benchmarking sizes=%v patterns=%v runs=%d\n",
				cfg.Bench.Sizes, cfg.Bench.Patterns, cfg.Bench.Runs)

			runner := &bench.Runner{
				Sizes:      cfg.Bench.Sizes,
				Patterns:   patterns,
				Algorithms: qsort.Algorithms,
				Runs:       cfg.Bench.Runs,
				Seed:       cfg.Bench.Seed,
				Logger:     a.logger,
			}
			results, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}

			if err := intio.EnsureDir(cfg.OutputDir); err != nil {
				return err
			}
			paths, err := bench.SaveReports(cfg.OutputDir, results, time.Now())
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintf(out, "Wrote %s\n", p)
			}
			fmt.Fprintf(out, "Done: %d runs.\n", len(results))
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&sizes, "sizes", nil, "data sizes, overrides bench.sizes")
	return cmd
}
