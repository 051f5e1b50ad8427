package domain

import (
	"fmt"
	"strings"
)

// Orientation is the device orientation class.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// Orientations lists both orientation classes.
var Orientations = []Orientation{Portrait, Landscape}

// Valid reports whether o is portrait or landscape.
func (o Orientation) Valid() bool {
	return o == Portrait || o == Landscape
}

// ParseOrientation accepts "portrait" and "landscape" (case-insensitive).
func ParseOrientation(s string) (Orientation, error) {
	o := Orientation(strings.ToLower(strings.TrimSpace(s)))
	if !o.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownOrientation, s)
	}
	return o, nil
}

// OrientationFor classifies a viewport: landscape iff it is wider than tall.
func OrientationFor(width, height float64) Orientation {
	if width > height {
		return Landscape
	}
	return Portrait
}

// Slot names a positioned element of a step screen.
type Slot string

const (
	SlotImage       Slot = "image"
	SlotHero        Slot = "hero"
	SlotBadge       Slot = "badge"
	SlotTitle       Slot = "title"
	SlotDescription Slot = "description"
	SlotOptions     Slot = "options"
	SlotConfirm     Slot = "confirm"
	SlotProgress    Slot = "progress"
)

// Anchor is the reference a frame's vertical spacing is measured from.
type Anchor string

const (
	// AnchorSafeTop measures down from the top safe content edge.
	AnchorSafeTop Anchor = "safe-top"
	// AnchorSafeBottom measures up from the bottom safe content edge.
	AnchorSafeBottom Anchor = "safe-bottom"
	// AnchorBelow places the slot below Frame.Relative.
	AnchorBelow Anchor = "below"
	// AnchorAbove places the slot above Frame.Relative.
	AnchorAbove Anchor = "above"
)

// Frame positions one slot. All values are resolution-independent points
// measured from safe content edges. A zero Width fills the space between the
// leading and trailing insets; a zero Height means intrinsic height.
type Frame struct {
	Anchor   Anchor  `json:"anchor" yaml:"anchor"`
	Relative Slot    `json:"relative,omitempty" yaml:"relative,omitempty"`
	Spacing  float64 `json:"spacing" yaml:"spacing"`
	Leading  float64 `json:"leading" yaml:"leading"`
	Trailing float64 `json:"trailing" yaml:"trailing"`
	Width    float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height   float64 `json:"height,omitempty" yaml:"height,omitempty"`
}

// Placement binds a frame to a slot.
type Placement struct {
	Slot  Slot  `json:"slot" yaml:"slot"`
	Frame Frame `json:"frame" yaml:"frame"`
}

// Geometry is the complete layout of one step in one orientation.
type Geometry struct {
	Kind        StepKind    `json:"kind" yaml:"kind"`
	Orientation Orientation `json:"orientation" yaml:"orientation"`
	Placements  []Placement `json:"placements" yaml:"placements"`
}

// Frame returns the frame placed in slot.
func (g Geometry) Frame(slot Slot) (Frame, bool) {
	for _, p := range g.Placements {
		if p.Slot == slot {
			return p.Frame, true
		}
	}
	return Frame{}, false
}
