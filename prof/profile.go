// Package prof collects lightweight timing measurements for the
// encryption driver, without pulling in a full tracing dependency.
package prof

import (
	"fmt"
	"sync"
	"time"
)

// Entry represents a single timing measurement. Depth and RangeSize
// are only meaningful for entries recorded by TrackNode -- callers
// that use the plain Track still get a valid Entry, just with both
// left at their zero value.
type Entry struct {
	Label     string
	Dur       time.Duration
	Depth     int
	RangeSize float64
}

var (
	mu     sync.Mutex
	record []Entry
)

// Track logs the duration since start with the given name. Intended
// to be called as defer prof.Track(time.Now(), "op") at the top of a
// traced function.
func Track(start time.Time, name string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: name, Dur: elapsed})
	mu.Unlock()
}

// TrackNode logs one step of the recursive encryption driver: depth is
// the recursion depth (0 at the root call), and outSize is the size of
// the out_range slice the driver is currently halving. Together they
// let a caller see how quickly a given encryption converges and at
// what range magnitude each hypergeometric draw happened.
func TrackNode(start time.Time, name string, depth int, outSize float64) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: name, Dur: elapsed, Depth: depth, RangeSize: outSize})
	mu.Unlock()
}

// SnapshotAndReset returns the collected timing entries and clears them.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}

// Summarize formats entries as one line each, for CLI tools that want
// a quick human-readable timing report. Entries recorded via TrackNode
// include their recursion depth and the out_range size at that node.
func Summarize(entries []Entry) string {
	out := ""
	for _, e := range entries {
		if e.RangeSize > 0 {
			out += fmt.Sprintf("%s: %s (depth=%d out_range_size=%v)\n", e.Label, e.Dur, e.Depth, e.RangeSize)
		} else {
			out += fmt.Sprintf("%s: %s\n", e.Label, e.Dur)
		}
	}
	return out
}
