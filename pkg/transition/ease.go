package transition

import "github.com/aretw0/onboarding/pkg/domain"

// Ease maps linear progress t in [0, 1] through a timing curve. CurveSpring
// is driven by a physics step in hosts, so Ease treats it as ease-out.
func Ease(c domain.Curve, t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}

	switch c {
	case domain.CurveEaseIn:
		return t * t * t
	case domain.CurveEaseOut, domain.CurveSpring:
		u := 1 - t
		return 1 - u*u*u
	case domain.CurveEaseInOut:
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := -2*t + 2
		return 1 - u*u*u/2
	default:
		return t
	}
}
