package qsort

import (
	"github.com/cockroachdb/errors"
)

// Algorithm 정렬 구현 선택
type Algorithm string

const (
	Recursive Algorithm = "recursive"
	Iterative Algorithm = "iterative"
)

// ErrUnknownAlgorithm 지원하지 않는 알고리즘 이름
var ErrUnknownAlgorithm = errors.New("unknown sort algorithm")

// Algorithms 벤치마크 등에서 순회할 전체 목록
var Algorithms = []Algorithm{Recursive, Iterative}

// ParseAlgorithm 이름을 Algorithm으로 변환
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case Recursive, Iterative:
		return Algorithm(name), nil
	}
	return "", errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// Func 알고리즘에 해당하는 정렬 함수
func (a Algorithm) Func() func([]int) {
	if a == Iterative {
		return SortIterative
	}
	return Sort
}
