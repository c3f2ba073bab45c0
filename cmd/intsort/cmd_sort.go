package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"intsort/internal/bench"
	"intsort/internal/config"
	"intsort/internal/store"
	"intsort/intio"
	"intsort/qsort"
)

// runSort <input-dir>/<name>을 읽어 정렬하고 <output-dir>/<name>에 쓴다
func (a *app) runSort(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}
	algo, err := qsort.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}

	name := args[0]
	inPath := filepath.Join(cfg.InputDir, name)
	outPath := filepath.Join(cfg.OutputDir, name)

	if err := intio.EnsureDir(cfg.OutputDir); err != nil {
		return err
	}

	data, err := intio.ReadFile(inPath, a.logger)
	if err != nil {
		if errors.Is(err, intio.ErrNoIntegers) {
			return errors.Newf("no integers read from: %s", inPath)
		}
		return errors.Wrapf(err, "failed to read input file: %s", inPath)
	}

	startedAt := time.Now()
	sortFn := algo.Func()
	var (
		duration time.Duration
		alloc    uint64
	)
	if cfg.Store.Backend == store.BackendNone {
		// 기록하지 않으면 GC를 동반하는 할당량 측정은 생략
		sortFn(data)
		duration = time.Since(startedAt)
	} else {
		measure := a.measure
		if measure == nil {
			measure = bench.Measure
		}
		duration, alloc, _ = measure(func() { sortFn(data) })
	}
	a.logger.Info("sorted",
		zap.Int("count", len(data)),
		zap.String("algorithm", string(algo)),
		zap.Duration("duration", duration))

	if err := intio.WriteFile(outPath, data); err != nil {
		return errors.Wrapf(err, "failed to write output file: %s", outPath)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Sorted %d integers.\n", len(data))
	fmt.Fprintf(out, "Input : %s\n", inPath)
	fmt.Fprintf(out, "Output: %s\n", outPath)

	a.recordRun(cmd.Context(), cfg, &store.Record{
		StartedAt:  startedAt,
		Input:      inPath,
		Output:     outPath,
		Algorithm:  string(algo),
		Count:      len(data),
		Duration:   duration,
		AllocBytes: alloc,
	})
	return nil
}

// recordRun 실행 기록 저장. 실패해도 정렬 결과에는 영향 없이 경고만 남긴다
func (a *app) recordRun(ctx context.Context, cfg *config.Config, rec *store.Record) {
	if cfg.Store.Backend == store.BackendNone {
		return
	}
	s, err := store.Open(cfg.Store.Backend, cfg.Store.Path, a.logger)
	if err != nil {
		a.logger.Warn("run history unavailable", zap.Error(err))
		return
	}
	defer func() {
		if err := s.Close(); err != nil {
			a.logger.Warn("close run history", zap.Error(err))
		}
	}()

	if err := s.Put(ctx, rec); err != nil {
		a.logger.Warn("record run", zap.Error(err))
		return
	}
	a.logger.Debug("run recorded", zap.Uint64("id", rec.ID))
}
