package domain

import "slices"

// StepKind selects the screen a step is presented with.
type StepKind string

const (
	// KindWelcome is the opening screen: a logo and a greeting.
	KindWelcome StepKind = "welcome"
	// KindHighlight showcases a feature with hero artwork.
	KindHighlight StepKind = "highlight"
	// KindChoice asks the user to pick one option before advancing.
	KindChoice StepKind = "choice"
	// KindCompletion closes the flow.
	KindCompletion StepKind = "completion"
)

// Kinds lists every step kind in canonical order.
var Kinds = []StepKind{KindWelcome, KindHighlight, KindChoice, KindCompletion}

// Valid reports whether k is one of the known kinds.
func (k StepKind) Valid() bool {
	return slices.Contains(Kinds, k)
}

// NoSelection marks the absence of a chosen option.
const NoSelection = -1

// Option is a selectable answer of a choice step.
type Option struct {
	Label string `json:"label" yaml:"label"`
}

// Step describes one onboarding screen. Steps are values: the engine copies
// the table at construction and never mutates it afterwards.
type Step struct {
	Kind         StepKind `json:"kind" yaml:"kind"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
	ConfirmLabel string   `json:"confirm_label" yaml:"confirm_label"`
	Options      []Option `json:"options,omitempty" yaml:"options,omitempty"`

	// Image overrides the primary asset the kind would otherwise use.
	Image Asset `json:"image,omitempty" yaml:"image,omitempty"`
}

// RequiresSelection reports whether confirming this step is gated on a choice.
func (s Step) RequiresSelection() bool {
	return s.Kind == KindChoice
}

// Clone returns a copy that shares no memory with s.
func (s Step) Clone() Step {
	s.Options = slices.Clone(s.Options)
	return s
}

// CloneSteps deep-copies a step table.
func CloneSteps(steps []Step) []Step {
	out := make([]Step, len(steps))
	for i, s := range steps {
		out[i] = s.Clone()
	}
	return out
}
