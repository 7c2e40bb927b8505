package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use
	TotalAlloc   uint64 // cumulative bytes allocated
	Mallocs      uint64 // cumulative heap objects allocated
	NumGC        uint32 // completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads the current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		TotalAlloc:   m.TotalAlloc,
		Mallocs:      m.Mallocs,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
	}
}

// MemoryDelta is the allocation activity between two snapshots.
type MemoryDelta struct {
	PeakHeap     uint64 // HeapAlloc of the later snapshot
	Allocated    uint64
	Mallocs      uint64
	NumGC        uint32
	PauseTotalNs uint64
}

// Since returns the activity from before to s. Cumulative counters that
// went backwards are reported as zero.
func (s MemorySnapshot) Since(before MemorySnapshot) MemoryDelta {
	return MemoryDelta{
		PeakHeap:     s.HeapAlloc,
		Allocated:    sub(s.TotalAlloc, before.TotalAlloc),
		Mallocs:      sub(s.Mallocs, before.Mallocs),
		NumGC:        uint32(sub(uint64(s.NumGC), uint64(before.NumGC))),
		PauseTotalNs: sub(s.PauseTotalNs, before.PauseTotalNs),
	}
}

func sub(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}
