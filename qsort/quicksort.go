// Package qsort 첫 번째 원소를 피벗으로 쓰는 제자리 퀵소트.
//
// 피벗 정책은 고정이다. 이미 정렬된 입력, 역순 입력, 모두 같은 값인 입력에서는
// 분할이 (0, n-1)로 치우치므로 O(n²) 시간과 O(n) 재귀 깊이가 된다.
// 깊이가 문제라면 SortIterative를 쓴다. 결과는 Sort와 원소 단위로 같다.
// 같은 값의 상대 순서는 보장하지 않는다.
package qsort

// Sort 오름차순 제자리 정렬 (재귀)
func Sort(arr []int) {
	if len(arr) < 2 {
		return
	}
	quickSortHelper(arr, 0, len(arr)-1)
}

func quickSortHelper(arr []int, low, high int) {
	if low >= high {
		return
	}
	p := partitionFirstPivot(arr, low, high)
	quickSortHelper(arr, low, p-1)
	quickSortHelper(arr, p+1, high)
}

// partitionFirstPivot 첫 원소를 high로 옮긴 뒤 Lomuto 분할.
// arr[low..p-1] <= pivot < arr[p+1..high], 반환값 p가 경계 인덱스
func partitionFirstPivot(arr []int, low, high int) int {
	swap(arr, low, high)
	pivot := arr[high]

	i := low // 다음 "pivot 이하" 원소가 들어갈 자리
	for j := low; j < high; j++ {
		if arr[j] <= pivot {
			swap(arr, i, j)
			i++
		}
	}
	swap(arr, i, high)
	return i
}

func swap(arr []int, a, b int) {
	arr[a], arr[b] = arr[b], arr[a]
}
