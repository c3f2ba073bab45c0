package bench

import (
	"context"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"intsort/qsort"
)

// Result 벤치마크 한 번의 결과
type Result struct {
	Algorithm  qsort.Algorithm `json:"algorithm"`
	Pattern    Pattern         `json:"pattern"`
	DataSize   int             `json:"data_size"`
	TestRun    int             `json:"test_run"`
	Duration   time.Duration   `json:"duration"`
	AllocBytes uint64          `json:"alloc_bytes"`
	Mallocs    uint64          `json:"mallocs"`
}

// Runner 크기 x 패턴 x 알고리즘 x 반복 조합을 모두 실행
type Runner struct {
	Sizes      []int
	Patterns   []Pattern
	Algorithms []qsort.Algorithm
	Runs       int
	Seed       int64
	Logger     *zap.Logger
}

// Run 모든 조합을 순차로 실행한다. 정렬 결과가 틀리면 에러
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	algorithms := r.Algorithms
	if len(algorithms) == 0 {
		algorithms = qsort.Algorithms
	}

	var results []Result
	for _, size := range r.Sizes {
		for _, pattern := range r.Patterns {
			data, err := Generate(pattern, size, r.Seed)
			if err != nil {
				return results, err
			}
			logger.Info("benchmarking",
				zap.Int("size", size),
				zap.String("pattern", string(pattern)))

			for _, algo := range algorithms {
				for run := 1; run <= r.Runs; run++ {
					if err := ctx.Err(); err != nil {
						return results, err
					}
					result, err := runBenchmark(algo, pattern, data)
					if err != nil {
						return results, err
					}
					result.TestRun = run
					logger.Debug("run finished",
						zap.String("algorithm", string(algo)),
						zap.Int("run", run),
						zap.Duration("duration", result.Duration))
					results = append(results, result)
				}
			}
		}
	}
	return results, nil
}

// runBenchmark data 복사본을 정렬하며 측정. data 자체는 건드리지 않는다
func runBenchmark(algo qsort.Algorithm, pattern Pattern, data []int) (Result, error) {
	testData := slices.Clone(data)
	sortFn := algo.Func()

	duration, alloc, mallocs := Measure(func() { sortFn(testData) })
	if !slices.IsSorted(testData) {
		return Result{}, errors.Newf("%s produced unsorted output (pattern=%s, n=%d)", algo, pattern, len(data))
	}

	return Result{
		Algorithm:  algo,
		Pattern:    pattern,
		DataSize:   len(data),
		Duration:   duration,
		AllocBytes: alloc,
		Mallocs:    mallocs,
	}, nil
}
