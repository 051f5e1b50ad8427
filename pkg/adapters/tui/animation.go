package tui

import (
	"time"

	"github.com/aretw0/onboarding/pkg/domain"
	"github.com/aretw0/onboarding/pkg/transition"
	"github.com/charmbracelet/harmonica"
)

// animation tracks one transition being played. Spring curves are stepped
// once per frame; the others are eased from wall time.
type animation struct {
	plan  domain.TransitionPlan
	start time.Time

	spring   *harmonica.Spring
	pos, vel float64

	linear   float64
	progress float64
}

func newAnimation(plan domain.TransitionPlan, start time.Time, fps int) *animation {
	a := &animation{plan: plan, start: start}
	if plan.Spec.Curve == domain.CurveSpring {
		s := harmonica.NewSpring(harmonica.FPS(fps), plan.Spec.Spring.Frequency, plan.Spec.Spring.Damping)
		a.spring = &s
	}
	return a
}

func (a *animation) advance(now time.Time) {
	if d := a.plan.Spec.Duration; d > 0 {
		a.linear = min(1, max(0, now.Sub(a.start).Seconds()/d.Seconds()))
	} else {
		a.linear = 1
	}

	switch {
	case a.linear >= 1:
		a.progress = 1
	case a.spring != nil:
		a.pos, a.vel = a.spring.Update(a.pos, a.vel, 1)
		a.progress = a.pos
	default:
		a.progress = transition.Ease(a.plan.Spec.Curve, a.linear)
	}
}

func (a *animation) finished() bool {
	return a.linear >= 1
}

// scale is the size of the incoming view for scale-spring; it may overshoot 1.
func (a *animation) scale() float64 {
	from := a.plan.Spec.FromScale
	return from + (1-from)*a.progress
}
