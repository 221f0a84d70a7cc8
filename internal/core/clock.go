package core

import "time"

// FrameClock turns frame timestamps into frame times in seconds.
type FrameClock struct {
	last     time.Time
	nominal  float64 // Used for the first frame
	maxFrame float64 // Upper bound on a single frame, 0 for none
}

// NewFrameClock creates a clock for a frontend running at tickRate frames
// per second.
func NewFrameClock(tickRate int, maxFrame float64) FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return FrameClock{
		nominal:  1 / float64(tickRate),
		maxFrame: maxFrame,
	}
}

// Advance returns the time since the previous frame, clamped to
// [0, maxFrame]. The first call returns one nominal frame.
func (c *FrameClock) Advance(now time.Time) float64 {
	dt := c.nominal
	if !c.last.IsZero() {
		dt = now.Sub(c.last).Seconds()
	}
	c.last = now

	if c.maxFrame > 0 {
		return ClampF(dt, 0, c.maxFrame)
	}
	return max(dt, 0)
}
