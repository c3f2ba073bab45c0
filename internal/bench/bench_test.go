package bench

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"intsort/qsort"
)

func TestGenerate(t *testing.T) {
	sorted, err := Generate(Sorted, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, sorted)

	reversed, err := Generate(Reversed, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1}, reversed)

	equal, err := Generate(Equal, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 7, 7}, equal)

	empty, err := Generate(Random, 0, 1)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = Generate(Random, -1, 1)
	assert.Error(t, err)
	_, err = Generate("zigzag", 3, 1)
	assert.ErrorIs(t, err, ErrUnknownPattern)
}

func TestGenerateRandomIsSeeded(t *testing.T) {
	a, err := Generate(Random, 1000, 42)
	require.NoError(t, err)
	b, err := Generate(Random, 1000, 42)
	require.NoError(t, err)
	c, err := Generate(Random, 1000, 43)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	for _, v := range a {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, maxValue)
	}
}

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern("reversed")
	require.NoError(t, err)
	assert.Equal(t, Reversed, p)

	_, err = ParsePattern("")
	assert.ErrorIs(t, err, ErrUnknownPattern)
}

func TestRunnerRun(t *testing.T) {
	r := &Runner{
		Sizes:    []int{0, 100},
		Patterns: []Pattern{Random, Sorted},
		Runs:     2,
		Seed:     42,
		Logger:   zaptest.NewLogger(t),
	}

	results, err := r.Run(context.Background())
	require.NoError(t, err)
	// 2 크기 x 2 패턴 x 2 알고리즘 x 2 반복
	require.Len(t, results, 16)

	first := results[0]
	assert.Equal(t, 0, first.DataSize)
	assert.Equal(t, Random, first.Pattern)
	assert.Equal(t, qsort.Recursive, first.Algorithm)
	assert.Equal(t, 1, first.TestRun)
	assert.Equal(t, 2, results[1].TestRun)
	assert.Equal(t, qsort.Iterative, results[2].Algorithm)
}

func TestRunnerRespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &Runner{Sizes: []int{10}, Patterns: []Pattern{Random}, Runs: 1}
	results, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestRunBenchmarkLeavesInputAlone(t *testing.T) {
	data := []int{3, 1, 2}
	res, err := runBenchmark(qsort.Recursive, Random, data)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, data)
	assert.Equal(t, 3, res.DataSize)
}

func sampleResults() []Result {
	return []Result{
		{Algorithm: qsort.Recursive, Pattern: Random, DataSize: 1000, TestRun: 1, Duration: 2 * time.Millisecond, AllocBytes: 2048},
		{Algorithm: qsort.Recursive, Pattern: Random, DataSize: 1000, TestRun: 2, Duration: 4 * time.Millisecond},
		{Algorithm: qsort.Iterative, Pattern: Random, DataSize: 1000, TestRun: 1, Duration: 5 * time.Millisecond},
	}
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	require.NoError(t, WriteMarkdown(&buf, sampleResults(), now))

	out := buf.String()
	assert.Contains(t, out, "실행 시간: 2024-05-01 09:30:00")
	assert.Contains(t, out, "## random - 1,000개 데이터")
	assert.Contains(t, out, "| recursive | 1 | 2ms | 2.0 kB | 0 |")
	assert.Contains(t, out, "| random | 1,000 | recursive | 3ms |")
	assert.Contains(t, out, "| random | 1,000 | iterative | 5ms |")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResults()))

	var decoded []Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleResults(), decoded)
}

func TestSaveReports(t *testing.T) {
	dir := t.TempDir()
	paths, err := SaveReports(dir, sampleResults(), time.Now())
	require.NoError(t, err)
	require.Len(t, paths, 2)

	for _, p := range paths {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
	assert.True(t, slices.ContainsFunc(paths, func(p string) bool { return strings.HasSuffix(p, JSONFile) }))
}
