package domain

import "fmt"

// Input is a typed event delivered by the host to the flow controller.
type Input interface {
	InputName() string
}

// Confirm is the confirmation action of the displayed step.
type Confirm struct{}

// Select picks the option at Index (zero-based) on a choice step.
type Select struct {
	Index int
}

// Rotate reports an orientation change.
type Rotate struct {
	Orientation Orientation
}

// TransitionDone reports that the host finished playing plan ID.
type TransitionDone struct {
	ID uint64
}

func (Confirm) InputName() string        { return "confirm" }
func (Select) InputName() string         { return "select" }
func (Rotate) InputName() string         { return "rotate" }
func (TransitionDone) InputName() string { return "transition_done" }

func (s Select) String() string         { return fmt.Sprintf("select(%d)", s.Index) }
func (r Rotate) String() string         { return fmt.Sprintf("rotate(%s)", r.Orientation) }
func (t TransitionDone) String() string { return fmt.Sprintf("transition_done(%d)", t.ID) }
