package bench

import (
	"runtime"
	"time"
)

// systemStats 측정 구간의 시작 시점 상태
type systemStats struct {
	startTime time.Time
	startMem  runtime.MemStats
}

// startStats 측정 시작. GC를 먼저 돌려 이전 할당이 섞이지 않게 한다
func startStats() *systemStats {
	runtime.GC()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return &systemStats{
		startTime: time.Now(),
		startMem:  m,
	}
}

// endStats 경과 시간, 할당 바이트, 할당 횟수
func (s *systemStats) endStats() (time.Duration, uint64, uint64) {
	duration := time.Since(s.startTime)

	var end runtime.MemStats
	runtime.ReadMemStats(&end)

	return duration, end.TotalAlloc - s.startMem.TotalAlloc, end.Mallocs - s.startMem.Mallocs
}

// Measure fn 한 번 실행의 시간과 할당량
func Measure(fn func()) (duration time.Duration, allocBytes, mallocs uint64) {
	stats := startStats()
	fn()
	return stats.endStats()
}
