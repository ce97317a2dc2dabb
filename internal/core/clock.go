package core

import "time"

// maxCatchUp bounds how many ticks a single Advance can report, so a stalled
// frontend resumes smoothly instead of replaying the whole gap at once.
const maxCatchUp = 8

// Clock converts wall time into a count of due simulation ticks at a fixed
// ticks-per-second rate.
type Clock struct {
	step    time.Duration
	residue time.Duration
	last    time.Time
}

// NewClock returns a clock targeting tps ticks per second.
func NewClock(tps int) *Clock {
	c := &Clock{}
	c.SetTPS(tps)
	return c
}

// SetTPS changes the tick rate. Accumulated fractional time carries over.
func (c *Clock) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	c.step = time.Second / time.Duration(tps)
}

// Advance reports how many ticks became due since the previous call. The
// first call always reports one tick.
func (c *Clock) Advance(now time.Time) int {
	if c.last.IsZero() {
		c.last = now
		return 1
	}
	c.residue += now.Sub(c.last)
	c.last = now
	n := int(c.residue / c.step)
	if n > maxCatchUp {
		n = maxCatchUp
		c.residue = 0
	} else {
		c.residue -= time.Duration(n) * c.step
	}
	return n
}
