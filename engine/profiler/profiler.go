package profiler

import (
	"runtime"
	"time"

	"github.com/meshsplat/meshsplat/engine/logging"
)

// Profiler tracks frame rate, drawn splat throughput and memory statistics,
// logging a summary line at a fixed interval. The splat figures make buffer
// re-upload costs visible: a sorted cloud shows up as allocation rate and a
// culled one as a visible count below the cloud size.
type Profiler struct {
	frameCount     int
	splatSum       uint64
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// NewProfiler creates a profiler that logs once per second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
}

// Tick records one rendered frame and the number of splat instances it drew.
// When the update interval has elapsed it logs FPS, average splats per frame,
// heap usage, allocation rate and GC pauses.
//
// Parameters:
//   - splatsDrawn: splat instances submitted this frame, summed over scenes
//
// Returns:
//   - bool: true if stats were logged this tick
func (p *Profiler) Tick(splatsDrawn int) bool {
	p.frameCount++
	p.splatSum += uint64(splatsDrawn)
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()
	avgSplats := p.splatSum / uint64(p.frameCount)

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	// TotalAlloc only grows, so the delta over the interval is the churn.
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 GC pauses.
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			pause := p.memStats.PauseNs[i%256] / 1000
			if pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	logging.LogInfo("[Profiler] FPS: %.2f | Splats/frame: %d | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		fps, avgSplats, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

	p.frameCount = 0
	p.splatSum = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
