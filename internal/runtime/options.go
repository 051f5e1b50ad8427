package runtime

import (
	"log/slog"
	"time"

	"github.com/aretw0/onboarding/pkg/domain"
)

// Selector picks the transition recipe for a (from, to) step pair.
type Selector interface {
	Select(from, to int) domain.TransitionSpec
}

// LayoutEngine computes step geometry for an orientation class.
type LayoutEngine interface {
	Layout(step domain.Step, o domain.Orientation) domain.Geometry
}

// Option configures a Controller.
type Option func(*Controller)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Controller) {
		c.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSelector replaces the canonical transition table.
func WithSelector(s Selector) Option {
	return func(c *Controller) {
		if s != nil {
			c.selector = s
		}
	}
}

// WithLayout replaces the default layout adapter.
func WithLayout(l LayoutEngine) Option {
	return func(c *Controller) {
		if l != nil {
			c.layout = l
		}
	}
}

// WithOrientation sets the orientation the first step is laid out in.
func WithOrientation(o domain.Orientation) Option {
	return func(c *Controller) {
		c.orientation = o
	}
}

// WithAssets overrides the asset names passed to hosts.
func WithAssets(a domain.Assets) Option {
	return func(c *Controller) {
		c.assets = a
	}
}

// WithID sets the id stamped on lifecycle events.
func WithID(id string) Option {
	return func(c *Controller) {
		c.id = id
	}
}

// WithClock sets the time source used for event timestamps and transition timing.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}
