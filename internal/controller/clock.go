package controller

import "time"

// Clock returns the monotonic time since the strip started
type Clock interface {
	Now() time.Duration
}

type systemClock struct {
	start time.Time
}

func newSystemClock() systemClock {
	return systemClock{start: time.Now()}
}

func (c systemClock) Now() time.Duration {
	return time.Since(c.start)
}

// timer fires once every period, when checked against the clock
type timer struct {
	period time.Duration
	last   time.Duration
}

func (t *timer) ready(now time.Duration) bool {
	if now-t.last < t.period {
		return false
	}
	t.last = now
	return true
}
