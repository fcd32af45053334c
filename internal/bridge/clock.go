package bridge

import "time"

// WallClock follows real time from Start until the duration has passed. It
// stands in for a player when audio output is off.
type WallClock struct {
	duration time.Duration
	now      func() time.Time
	start    time.Time
}

// NewWallClock returns a stopped clock for a segment of the given length.
func NewWallClock(duration time.Duration) *WallClock {
	return &WallClock{duration: duration, now: time.Now}
}

// Start begins counting from now.
func (c *WallClock) Start() { c.start = c.now() }

// Elapsed returns the time since Start, capped at the duration.
func (c *WallClock) Elapsed() time.Duration {
	if c.start.IsZero() {
		return 0
	}
	d := c.now().Sub(c.start)
	if d > c.duration {
		return c.duration
	}
	return d
}

// Playing reports whether Start was called and the duration has not passed.
func (c *WallClock) Playing() bool {
	return !c.start.IsZero() && c.now().Sub(c.start) < c.duration
}
