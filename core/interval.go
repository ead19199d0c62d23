package core

import (
	"errors"
	"fmt"
	"time"
)

var ErrNonPositivePeriod = errors.New("period must be positive")

// Interval is a repeating timer; Advance reports how many periods completed
type Interval struct {
	period time.Duration
	acc    time.Duration
}

func NewInterval(period time.Duration) (Interval, error) {
	if period <= 0 {
		return Interval{}, fmt.Errorf("interval %v: %w", period, ErrNonPositivePeriod)
	}
	return Interval{period: period}, nil
}

// Advance adds dt and returns the number of elapsed periods, remainder carried
func (iv *Interval) Advance(dt time.Duration) int {
	if dt <= 0 || iv.period <= 0 {
		return 0
	}
	iv.acc += dt
	n := int(iv.acc / iv.period)
	iv.acc -= time.Duration(n) * iv.period
	return n
}

func (iv *Interval) Reset() {
	iv.acc = 0
}

func (iv *Interval) Period() time.Duration { return iv.period }
