package core

import (
	"math/rand"
	"time"
)

// Clock is the time source for cooldowns and the game loop
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to. Used to step simulations deterministically.
type ManualClock struct {
	now time.Time
}

// NewManualClock starts a manual clock at an arbitrary fixed instant
func NewManualClock() *ManualClock {
	return &ManualClock{now: time.Unix(1_000_000, 0)}
}

func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Cooldown is a restartable countdown. A cooldown that was never reset
// counts as finished.
type Cooldown struct {
	clock    Clock
	base     time.Duration
	variance time.Duration
	rng      *rand.Rand

	duration time.Duration // current roll of base +/- variance
	start    time.Time
}

// NewCooldown creates a fixed-length cooldown
func NewCooldown(clock Clock, d time.Duration) *Cooldown {
	return &Cooldown{clock: clock, base: d, duration: d}
}

// NewVariableCooldown creates a cooldown whose length is re-rolled in
// [base-variance, base+variance] on every reset
func NewVariableCooldown(clock Clock, base, variance time.Duration, rng *rand.Rand) *Cooldown {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Cooldown{clock: clock, base: base, variance: variance, rng: rng, duration: base}
}

// Finished reports whether the countdown has run out
func (c *Cooldown) Finished() bool {
	if c.start.IsZero() {
		return true
	}
	return c.clock.Now().Sub(c.start) >= c.duration
}

// Reset restarts the countdown from now
func (c *Cooldown) Reset() {
	c.start = c.clock.Now()
	c.duration = c.base
	if c.variance > 0 && c.rng != nil {
		c.duration += time.Duration(c.rng.Int63n(int64(2*c.variance)+1)) - c.variance
	}
	if c.duration < 0 {
		c.duration = 0
	}
}

// Remaining returns how long until the countdown finishes
func (c *Cooldown) Remaining() time.Duration {
	if c.start.IsZero() {
		return 0
	}
	left := c.duration - c.clock.Now().Sub(c.start)
	if left < 0 {
		return 0
	}
	return left
}

// Duration returns the length of the current countdown
func (c *Cooldown) Duration() time.Duration { return c.duration }
