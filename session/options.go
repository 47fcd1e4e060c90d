package session

import (
	"time"

	"github.com/StaticAccess/Lynai/contract"
)

type Option func(*Controller)

// WithSinks attaches event consumers at construction, before the first
// ConnectionChanged fires.
func WithSinks(sinks ...contract.EventSink) Option {
	return func(c *Controller) {
		c.sinks = append(c.sinks, sinks...)
	}
}

// WithTickSource replaces the 1 s countdown cadence. Tests use it to
// drive virtual time; each received value counts as one elapsed second.
func WithTickSource(tick <-chan time.Time) Option {
	return func(c *Controller) {
		c.tick = tick
		c.stopTick = func() {}
	}
}

// WithClock replaces the arrival-time source of inbound messages.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}
