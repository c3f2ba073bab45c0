package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"intsort/internal/bench"
	"intsort/intio"
)

func newGenCmd(a *app) *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "gen <pattern> <n> [name]",
		Short: "Generate a dataset file in the input directory",
		Long: `Writes n integers shaped by pattern (random, sorted, reversed, equal) to
<input-dir>/<name>. The default name is <pattern>_<n>.txt.`,
		Example: "  intsort gen random 100000 random_100k.txt",
		Args:    cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			pattern, err := bench.ParsePattern(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return errors.Newf("n must be a positive integer, got %q", args[1])
			}
			name := fmt.Sprintf("%s_%d.txt", pattern, n)
			if len(args) == 3 {
				name = args[2]
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Bench.Seed
			}

			data, err := bench.Generate(pattern, n, seed)
			if err != nil {
				return err
			}
			if err := intio.EnsureDir(cfg.InputDir); err != nil {
				return err
			}
			path := filepath.Join(cfg.InputDir, name)
			if err := intio.WriteFile(path, data); err != nil {
				return err
			}

			a.logger.Debug("dataset generated", zap.String("path", path), zap.Int64("seed", seed))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s integers (%s) to %s\n",
				humanize.Comma(int64(n)), pattern, path)
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default from config)")
	return cmd
}
