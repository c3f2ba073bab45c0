package qsort

// span 아직 정렬되지 않은 부분 구간 [low, high]
type span struct {
	low, high int
}

// SortIterative 명시적 스택을 쓰는 Sort.
// 분할 루틴이 같으므로 출력도 Sort와 같다. 재귀 깊이 대신 힙 메모리를 쓴다.
func SortIterative(arr []int) {
	if len(arr) < 2 {
		return
	}

	stack := make([]span, 0, 64)
	stack = append(stack, span{0, len(arr) - 1})

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.low >= s.high {
			continue
		}

		p := partitionFirstPivot(arr, s.low, s.high)
		// 어느 쪽을 먼저 처리해도 결과는 같다 (두 구간은 겹치지 않음)
		stack = append(stack, span{p + 1, s.high}, span{s.low, p - 1})
	}
}
