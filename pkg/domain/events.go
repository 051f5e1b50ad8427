package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStepEnter        EventType = "step_enter"
	EventStepLeave        EventType = "step_leave"
	EventTransitionStart  EventType = "transition_start"
	EventTransitionCommit EventType = "transition_commit"
	EventGateBlocked      EventType = "gate_blocked"
	EventInputIgnored     EventType = "input_ignored"
	EventLayout           EventType = "layout"
	EventDismiss          EventType = "dismiss"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	WizardID  string    `json:"wizard_id"`
}

// StepEvent represents entry into or exit from a step.
type StepEvent struct {
	EventBase
	Index int      `json:"index"`
	Kind  StepKind `json:"kind"`
}

// TransitionEvent represents the start or commit of a transition.
type TransitionEvent struct {
	EventBase
	Plan TransitionPlan `json:"plan"`
	// Elapsed is set on commit: wall time between start and commit.
	Elapsed time.Duration `json:"elapsed,omitempty"`
}

// LayoutEvent represents a relayout of the displayed step.
type LayoutEvent struct {
	EventBase
	Index       int         `json:"index"`
	Kind        StepKind    `json:"kind"`
	Orientation Orientation `json:"orientation"`
	Deferred    bool        `json:"deferred,omitempty"`
}

// InputEvent represents an input that was refused or dropped.
type InputEvent struct {
	EventBase
	Index  int    `json:"index"`
	Input  string `json:"input"`
	Reason string `json:"reason"`
}

// LifecycleHooks defines callbacks for controller observability.
type LifecycleHooks struct {
	OnStepEnter        func(context.Context, *StepEvent)
	OnStepLeave        func(context.Context, *StepEvent)
	OnTransitionStart  func(context.Context, *TransitionEvent)
	OnTransitionCommit func(context.Context, *TransitionEvent)
	OnGateBlocked      func(context.Context, *InputEvent)
	OnInputIgnored     func(context.Context, *InputEvent)
	OnLayout           func(context.Context, *LayoutEvent)
	OnDismiss          func(context.Context, *TransitionEvent)
}
