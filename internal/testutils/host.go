package testutils

import (
	"context"
	"sync"

	"github.com/aretw0/onboarding/pkg/domain"
)

// Rendered is one recorded Render call.
type Rendered struct {
	View     domain.StepView
	Geometry domain.Geometry
}

// RecordingHost is a ports.Host that records every call.
type RecordingHost struct {
	mu         sync.Mutex
	renders    []Rendered
	plans      []domain.TransitionPlan
	dismissals int

	RenderErr  error
	PlayErr    error
	DismissErr error

	// OnPlay, when set, runs inside PlayTransition after the plan is recorded.
	OnPlay func(plan domain.TransitionPlan)
}

func (h *RecordingHost) Render(_ context.Context, view domain.StepView, geo domain.Geometry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.RenderErr != nil {
		return h.RenderErr
	}
	h.renders = append(h.renders, Rendered{View: view, Geometry: geo})
	return nil
}

func (h *RecordingHost) PlayTransition(_ context.Context, plan domain.TransitionPlan) error {
	h.mu.Lock()
	if h.PlayErr != nil {
		h.mu.Unlock()
		return h.PlayErr
	}
	h.plans = append(h.plans, plan)
	onPlay := h.OnPlay
	h.mu.Unlock()

	if onPlay != nil {
		onPlay(plan)
	}
	return nil
}

func (h *RecordingHost) Dismiss(context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dismissals++
	return h.DismissErr
}

// Renders returns a copy of every recorded render.
func (h *RecordingHost) Renders() []Rendered {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Rendered(nil), h.renders...)
}

// LastRender returns the most recent render.
func (h *RecordingHost) LastRender() (Rendered, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.renders) == 0 {
		return Rendered{}, false
	}
	return h.renders[len(h.renders)-1], true
}

// Plans returns every transition the host was asked to play.
func (h *RecordingHost) Plans() []domain.TransitionPlan {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]domain.TransitionPlan(nil), h.plans...)
}

// LastPlan returns the most recent transition plan.
func (h *RecordingHost) LastPlan() (domain.TransitionPlan, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.plans) == 0 {
		return domain.TransitionPlan{}, false
	}
	return h.plans[len(h.plans)-1], true
}

// Dismissals returns how many times Dismiss was called.
func (h *RecordingHost) Dismissals() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dismissals
}
