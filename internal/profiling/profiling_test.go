package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	ResetTick()
	for i := 0; i < 3; i++ {
		Track("a")()
	}
	if got := calls("a"); got != 3 {
		t.Fatalf("calls(a) = %d, want 3", got)
	}
	if _, ok := Snapshot()["a"]; !ok {
		t.Fatal("snapshot missing span a")
	}

	ResetTick()
	if got := len(Snapshot()); got != 0 {
		t.Fatalf("snapshot has %d spans after reset", got)
	}
}

func TestTopNOrder(t *testing.T) {
	ResetTick()
	mu.Lock()
	spans["slow"] = span{total: 4200 * time.Microsecond, calls: 1}
	spans["fast"] = span{total: 2 * time.Millisecond, calls: 2}
	spans["tiny"] = span{total: 10 * time.Microsecond, calls: 1}
	mu.Unlock()
	defer ResetTick()

	got := TopN(2)
	if got != "slow:4.2ms, fast:2ms" {
		t.Fatalf("TopN(2) = %q", got)
	}
	if all := TopN(10); strings.Count(all, ",") != 2 {
		t.Fatalf("TopN(10) = %q", all)
	}
}

func TestFormatMs(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0ms"},
		{1500 * time.Microsecond, "1.5ms"},
		{33 * time.Millisecond, "33ms"},
	}
	for _, tc := range cases {
		if got := formatMs(tc.in); got != tc.want {
			t.Errorf("formatMs(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func BenchmarkTrack(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Track("bench")()
	}
}
