// Package frames provides a cooperative animation-frame scheduler. The
// roulette engine advances on frame callbacks instead of wall-clock sleeps,
// so tests can drive it deterministically with a manual driver.
package frames

import (
	"context"
	"time"
)

// DefaultInterval approximates a 60Hz display refresh
const DefaultInterval = time.Second / 60

// Driver invokes a callback once per frame until the context is canceled
// or the callback returns false.
type Driver interface {
	Run(ctx context.Context, frame func(now time.Time) bool)
}

// Ticker drives frames from a real time.Ticker
type Ticker struct {
	Interval time.Duration
}

// NewTicker returns a driver ticking at the given interval, or
// DefaultInterval when zero.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Ticker{Interval: interval}
}

// Run invokes frame once per tick until cancellation or frame returns false
func (t *Ticker) Run(ctx context.Context, frame func(now time.Time) bool) {
	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if !frame(now) {
				return
			}
		}
	}
}

// Manual is a test driver advanced explicitly by calling Step
type Manual struct {
	now   time.Time
	frame func(now time.Time) bool
	done  bool
}

// NewManual returns a manual driver starting at the given time
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Run records the frame callback; frames fire only via Step
func (m *Manual) Run(_ context.Context, frame func(now time.Time) bool) {
	m.frame = frame
	m.done = false
}

// Step advances the virtual clock and fires one frame. It reports whether
// the callback wants more frames.
func (m *Manual) Step(d time.Duration) bool {
	if m.frame == nil || m.done {
		return false
	}
	m.now = m.now.Add(d)
	if !m.frame(m.now) {
		m.done = true
		return false
	}
	return true
}

// StepN fires n frames of the given duration each
func (m *Manual) StepN(n int, d time.Duration) {
	for i := 0; i < n; i++ {
		if !m.Step(d) {
			return
		}
	}
}

// Now returns the driver's current virtual time
func (m *Manual) Now() time.Time {
	return m.now
}
