package core

import (
	"errors"
	"fmt"
	"time"
)

var ErrNegativeDuration = errors.New("duration must not be negative")

// Cooldown debounces an action: it is ready once Duration has elapsed since
// construction or since the last Fire
type Cooldown struct {
	duration time.Duration
	elapsed  time.Duration
}

// NewCooldown creates a cooldown in the reset state
func NewCooldown(d time.Duration) (Cooldown, error) {
	if d < 0 {
		return Cooldown{}, fmt.Errorf("cooldown %v: %w", d, ErrNegativeDuration)
	}
	return Cooldown{duration: d}, nil
}

// Tick accumulates elapsed time, saturating at duration
func (c *Cooldown) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	c.elapsed += dt
	if c.elapsed > c.duration {
		c.elapsed = c.duration
	}
}

// Ready reports whether the action may fire
func (c *Cooldown) Ready() bool {
	return c.elapsed >= c.duration
}

// TryFire consumes the ready window; returns false if not ready
func (c *Cooldown) TryFire() bool {
	if !c.Ready() {
		return false
	}
	c.elapsed = 0
	return true
}

// Reset restarts the window without firing
func (c *Cooldown) Reset() {
	c.elapsed = 0
}

func (c *Cooldown) Duration() time.Duration { return c.duration }
func (c *Cooldown) Elapsed() time.Duration  { return c.elapsed }
