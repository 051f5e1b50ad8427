package domain

import (
	"fmt"
	"time"
)

// TransitionStyle names the animation used to move between two steps.
type TransitionStyle string

const (
	// StyleNone swaps views without animation.
	StyleNone TransitionStyle = "none"
	// StyleCrossFade fades the outgoing view out while the incoming fades in.
	StyleCrossFade TransitionStyle = "cross-fade"
	// StyleSlide moves both views horizontally at the same time.
	StyleSlide TransitionStyle = "slide"
	// StyleScaleSpring fades the incoming view in while it springs up to full size.
	StyleScaleSpring TransitionStyle = "scale-spring"
)

// Valid reports whether s is a known style.
func (s TransitionStyle) Valid() bool {
	switch s {
	case StyleNone, StyleCrossFade, StyleSlide, StyleScaleSpring:
		return true
	}
	return false
}

// Curve is the timing function of an animation.
type Curve string

const (
	CurveLinear    Curve = "linear"
	CurveEaseIn    Curve = "ease-in"
	CurveEaseOut   Curve = "ease-out"
	CurveEaseInOut Curve = "ease-in-out"
	// CurveSpring defers timing to the Spring parameters.
	CurveSpring Curve = "spring"
)

// Valid reports whether c is a known curve.
func (c Curve) Valid() bool {
	switch c {
	case CurveLinear, CurveEaseIn, CurveEaseOut, CurveEaseInOut, CurveSpring:
		return true
	}
	return false
}

// Direction is the travel direction of a slide.
type Direction string

const (
	// DirectionForward: the old view exits to the leading edge, the new one enters from the trailing edge.
	DirectionForward Direction = "forward"
	// DirectionBackward mirrors DirectionForward.
	DirectionBackward Direction = "backward"
)

// Spring holds damped-spring parameters (angular frequency and damping ratio).
type Spring struct {
	Frequency float64 `json:"frequency" yaml:"frequency"`
	Damping   float64 `json:"damping" yaml:"damping"`
}

// TransitionSpec is the recipe a host follows to animate between two views.
type TransitionSpec struct {
	Style     TransitionStyle `json:"style" yaml:"style"`
	Duration  time.Duration   `json:"duration" yaml:"duration"`
	Curve     Curve           `json:"curve" yaml:"curve"`
	Direction Direction       `json:"direction,omitempty" yaml:"direction,omitempty"`

	// FromScale is the initial scale of the incoming view for StyleScaleSpring.
	FromScale float64 `json:"from_scale,omitempty" yaml:"from_scale,omitempty"`
	Spring    Spring  `json:"spring,omitempty" yaml:"spring,omitempty"`
}

// Animated reports whether the host has anything to play.
func (t TransitionSpec) Animated() bool {
	return t.Style != StyleNone && t.Style != "" && t.Duration > 0
}

func (t TransitionSpec) String() string {
	if t.Style == StyleSlide && t.Direction != "" {
		return fmt.Sprintf("%s(%s) %s %s", t.Style, t.Direction, t.Duration, t.Curve)
	}
	return fmt.Sprintf("%s %s %s", t.Style, t.Duration, t.Curve)
}

// TransitionPlan is a transition bound to a concrete pair of steps. The ID is
// echoed back by the host when the animation finishes.
type TransitionPlan struct {
	ID       uint64
	From     int
	To       int
	Spec     TransitionSpec
	Terminal bool
}
