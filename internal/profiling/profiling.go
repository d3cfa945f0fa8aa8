package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-tick CPU span tracker. The frame controller resets it at the top of
// every tick and the app loop reports the heaviest spans of slow ticks.

type span struct {
	total time.Duration
	calls int
}

var (
	mu    sync.Mutex
	spans = make(map[string]span)
)

// Track returns a stop function that adds the elapsed time to name.
// Usage: defer profiling.Track("frame.RenderWindow")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		s := spans[name]
		s.total += d
		s.calls++
		spans[name] = s
		mu.Unlock()
	}
}

// ResetTick clears the totals collected for the current tick.
func ResetTick() {
	mu.Lock()
	clear(spans)
	mu.Unlock()
}

// Snapshot returns a copy of the current tick's totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(spans))
	for k, v := range spans {
		out[k] = v.total
	}
	return out
}

// calls returns how many times name was tracked during the current tick.
func calls(name string) int {
	mu.Lock()
	defer mu.Unlock()
	return spans[name].calls
}

// TopN formats the n heaviest spans of the current tick, heaviest first.
// Example: "frame.RenderWindow:4.2ms, graphics.DrawSolarSystem:2.1ms"
func TopN(n int) string {
	ss := Snapshot()
	names := make([]string, 0, len(ss))
	for k := range ss {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if ss[names[i]] == ss[names[j]] {
			return names[i] < names[j]
		}
		return ss[names[i]] > ss[names[j]]
	})
	if n > len(names) {
		n = len(names)
	}
	parts := make([]string, 0, n)
	for _, name := range names[:n] {
		parts = append(parts, name+":"+formatMs(ss[name]))
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0".
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
