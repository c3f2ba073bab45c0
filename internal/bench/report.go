package bench

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
)

// 리포트 파일 이름
const (
	MarkdownFile = "bench_results.md"
	JSONFile     = "bench_results.json"
)

type groupKey struct {
	size    int
	pattern Pattern
}

// WriteMarkdown 크기/패턴별 표와 평균 요약
func WriteMarkdown(w io.Writer, results []Result, now time.Time) error {
	bw := bufio.NewWriterSize(w, 32*1024)

	fmt.Fprintf(bw, "# 정렬 벤치마크 결과\n\n")
	fmt.Fprintf(bw, "실행 시간: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(bw, "CPU 코어 수: %d\n\n", runtime.NumCPU())

	// 입력 순서대로 그룹 유지
	var groups []groupKey
	byGroup := map[groupKey][]Result{}
	for _, r := range results {
		k := groupKey{r.DataSize, r.Pattern}
		if _, ok := byGroup[k]; !ok {
			groups = append(groups, k)
		}
		byGroup[k] = append(byGroup[k], r)
	}

	for _, k := range groups {
		fmt.Fprintf(bw, "## %s - %s개 데이터\n\n", k.pattern, humanize.Comma(int64(k.size)))
		fmt.Fprintf(bw, "| 알고리즘 | 테스트 | 실행시간 | 메모리사용량 | 할당횟수 |\n")
		fmt.Fprintf(bw, "|----------|--------|----------|--------------|----------|\n")
		for _, r := range byGroup[k] {
			fmt.Fprintf(bw, "| %s | %d | %v | %s | %d |\n",
				r.Algorithm, r.TestRun, r.Duration, humanize.Bytes(r.AllocBytes), r.Mallocs)
		}
		fmt.Fprintf(bw, "\n")
	}

	fmt.Fprintf(bw, "## 요약 통계\n\n")
	fmt.Fprintf(bw, "| 패턴 | 크기 | 알고리즘 | 평균 실행시간 |\n")
	fmt.Fprintf(bw, "|------|------|----------|---------------|\n")
	for _, k := range groups {
		var order []string
		total := map[string]time.Duration{}
		count := map[string]int{}
		for _, r := range byGroup[k] {
			name := string(r.Algorithm)
			if count[name] == 0 {
				order = append(order, name)
			}
			total[name] += r.Duration
			count[name]++
		}
		for _, name := range order {
			fmt.Fprintf(bw, "| %s | %s | %s | %v |\n",
				k.pattern, humanize.Comma(int64(k.size)), name, total[name]/time.Duration(count[name]))
		}
	}

	return errors.Wrap(bw.Flush(), "write markdown")
}

// WriteJSON 결과 전체를 들여쓴 JSON으로
func WriteJSON(w io.Writer, results []Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(results), "write json")
}

// SaveReports dir에 마크다운과 JSON 리포트를 쓰고 경로를 돌려준다
func SaveReports(dir string, results []Result, now time.Time) ([]string, error) {
	mdPath := filepath.Join(dir, MarkdownFile)
	jsonPath := filepath.Join(dir, JSONFile)

	if err := writeFile(mdPath, func(w io.Writer) error { return WriteMarkdown(w, results, now) }); err != nil {
		return nil, err
	}
	if err := writeFile(jsonPath, func(w io.Writer) error { return WriteJSON(w, results) }); err != nil {
		return nil, err
	}
	return []string{mdPath, jsonPath}, nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := fn(file); err != nil {
		file.Close()
		return errors.Wrapf(err, "%s", path)
	}
	return errors.Wrapf(file.Close(), "close %s", path)
}
