package domain

// Phase is the mode of the flow controller.
type Phase string

const (
	PhaseIdle          Phase = "idle"          // A step is displayed and accepts input.
	PhaseTransitioning Phase = "transitioning" // An animation is in flight; input is dropped.
	PhaseDismissed     Phase = "dismissed"     // Sink state; the dismiss signal has fired.
)

// Outcome is the observable result of an accepted input.
type Outcome string

const (
	// OutcomeRendered: the first step was displayed.
	OutcomeRendered Outcome = "rendered"
	// OutcomeAdvancing: a transition started; the index moves at commit.
	OutcomeAdvancing Outcome = "advancing"
	// OutcomeCommitted: the in-flight transition finished and the next step is current.
	OutcomeCommitted Outcome = "committed"
	// OutcomeDismissed: the last step was confirmed.
	OutcomeDismissed Outcome = "dismissed"
	// OutcomeGateNotSatisfied: confirm was refused because the step needs a selection.
	OutcomeGateNotSatisfied Outcome = "gate_not_satisfied"
	// OutcomeSelected: the selection now holds the requested option.
	OutcomeSelected Outcome = "selected"
	// OutcomeIgnored: input arrived while a transition was in flight and was dropped.
	OutcomeIgnored Outcome = "ignored"
	// OutcomeRelaid: the displayed step was re-laid-out for a new orientation.
	OutcomeRelaid Outcome = "relaid"
	// OutcomeDeferred: the orientation was recorded and will be applied at the next render.
	OutcomeDeferred Outcome = "deferred"
	// OutcomeUnchanged: the input matched the current state.
	OutcomeUnchanged Outcome = "unchanged"
)

// Snapshot is a read-only view of the controller state.
type Snapshot struct {
	ID          string
	Phase       Phase
	Started     bool
	Index       int
	Count       int
	Selection   int
	Orientation Orientation

	// Pending is set while Phase is PhaseTransitioning.
	Pending *TransitionPlan
}
