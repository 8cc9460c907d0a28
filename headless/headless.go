// Package headless provides a window-less graphics.Context for rendering
// into an offscreen surface, e.g. when recording on a machine without a
// display.
package headless

import "time"

// clock is the monotonic counter a headless context reports.
type clock struct {
	start time.Time
}

func newClock() clock { return clock{start: time.Now()} }

func (c clock) Time() float64 { return time.Since(c.start).Seconds() }

// Timer counts nanoseconds since the context was created.
func (c clock) Timer() (uint64, uint64) {
	return uint64(time.Since(c.start).Nanoseconds()), uint64(time.Second)
}
