// Package profiler records nested timing scopes and exports them as a
// speedscope evented profile. Scope recording is compiled in only with the
// "profile" build tag; without it Start returns a no-op and Dump reports
// ErrDisabled. Runtime statistics are available in every build.
package profiler

import (
	"errors"
	"runtime"
)

var (
	// ErrDisabled is returned by Dump in builds without the "profile" tag.
	ErrDisabled = errors.New("profiler: built without the profile tag")
	// ErrNoEvents is returned by Dump before any scope was recorded.
	ErrNoEvents = errors.New("profiler: no events recorded")
)

// Stats is a snapshot of process-level runtime counters.
type Stats struct {
	HeapAlloc  uint64 // bytes of live heap objects
	Mallocs    uint64 // cumulative heap allocations
	NumGC      uint32
	Goroutines int
	CPUs       int
}

// HeapMB is HeapAlloc in mebibytes.
func (s Stats) HeapMB() float32 { return float32(s.HeapAlloc) / (1 << 20) }

// ReadStats reads the runtime counters. It stops the world briefly, so call
// it at most once per frame.
func ReadStats() Stats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Stats{
		HeapAlloc:  m.HeapAlloc,
		Mallocs:    m.Mallocs,
		NumGC:      m.NumGC,
		Goroutines: runtime.NumGoroutine(),
		CPUs:       runtime.NumCPU(),
	}
}
