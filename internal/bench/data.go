// Package bench 데이터셋 생성과 정렬 벤치마크
package bench

import (
	"math/rand"

	"github.com/cockroachdb/errors"
)

// Pattern 입력 데이터 모양
type Pattern string

const (
	Random   Pattern = "random"
	Sorted   Pattern = "sorted"
	Reversed Pattern = "reversed"
	Equal    Pattern = "equal" // 모든 값이 같음
)

// maxValue 랜덤 값 범위 [0, maxValue)
const maxValue = 1_000_000

// ErrUnknownPattern 지원하지 않는 패턴 이름
var ErrUnknownPattern = errors.New("unknown data pattern")

// Patterns 전체 패턴 목록
var Patterns = []Pattern{Random, Sorted, Reversed, Equal}

// ParsePattern 이름을 Pattern으로 변환
func ParsePattern(name string) (Pattern, error) {
	for _, p := range Patterns {
		if string(p) == name {
			return p, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownPattern, "%q", name)
}

// Generate pattern 모양의 데이터 n개. 같은 seed면 같은 결과
func Generate(pattern Pattern, n int, seed int64) ([]int, error) {
	if n < 0 {
		return nil, errors.Newf("negative size %d", n)
	}
	data := make([]int, n)

	switch pattern {
	case Random:
		rng := rand.New(rand.NewSource(seed))
		for i := range n {
			data[i] = rng.Intn(maxValue)
		}
	case Sorted:
		for i := range n {
			data[i] = i
		}
	case Reversed:
		for i := range n {
			data[i] = n - i
		}
	case Equal:
		v := int(seed % maxValue)
		for i := range n {
			data[i] = v
		}
	default:
		return nil, errors.Wrapf(ErrUnknownPattern, "%q", pattern)
	}
	return data, nil
}
