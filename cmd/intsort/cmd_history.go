package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"intsort/internal/store"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded sort runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.Store.Backend == store.BackendNone {
				return errors.New("run history is disabled (set store.backend or --store)")
			}

			s, err := store.Open(cfg.Store.Backend, cfg.Store.Path, a.logger)
			if err != nil {
				return err
			}
			defer s.Close()

			records, err := s.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No runs recorded.")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSTARTED\tINPUT\tCOUNT\tALGORITHM\tDURATION\tALLOC")
			for _, r := range records {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%v\t%s\n",
					r.ID, humanize.Time(r.StartedAt), r.Input, humanize.Comma(int64(r.Count)),
					r.Algorithm, r.Duration, humanize.Bytes(r.AllocBytes))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs (0 for all)")
	return cmd
}
