package game

import (
	"time"

	"solarnav/internal/config"
)

// TickTimer paces the tick loop at config.GetTickInterval. It is re-armed
// after every tick, so a slow tick delays the next one instead of queueing
// extra ticks.
type TickTimer struct {
	next time.Time
}

func NewTickTimer() *TickTimer {
	return &TickTimer{}
}

// Wait blocks until the next tick is due, sleeping for most of the interval
// and spinning for the last few microseconds.
func (t *TickTimer) Wait() {
	interval := config.GetTickInterval()

	if t.next.IsZero() {
		t.next = time.Now().Add(interval)
	} else {
		t.next = t.next.Add(interval)
	}

	for {
		remaining := time.Until(t.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		if time.Until(t.next) <= 0 {
			break
		}
	}

	// More than a whole interval behind: resync instead of bursting.
	if late := -time.Until(t.next); late > interval {
		t.next = time.Now().Add(interval)
	}
}

// Reset drops the schedule; the next Wait lasts one full interval.
func (t *TickTimer) Reset() {
	t.next = time.Time{}
}
