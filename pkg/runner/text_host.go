package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/onboarding/internal/presentation/tui"
	"github.com/aretw0/onboarding/pkg/domain"
)

// TextHost is a ports.Host that prints each view as markdown. Transitions
// are queued; the runner completes them.
type TextHost struct {
	Writer   io.Writer
	Renderer tui.Renderer

	mu        sync.Mutex
	pending   []domain.TransitionPlan
	dismissed bool
}

// TextHostOption configures a TextHost.
type TextHostOption func(*TextHost)

// WithRenderer configures the markdown renderer (default: plain text).
func WithRenderer(r tui.Renderer) TextHostOption {
	return func(h *TextHost) {
		h.Renderer = r
	}
}

// NewTextHost creates a host writing to w.
func NewTextHost(w io.Writer, opts ...TextHostOption) *TextHost {
	if w == nil {
		w = os.Stdout
	}
	h := &TextHost{
		Writer:   w,
		Renderer: tui.PlainRenderer,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHost) Render(_ context.Context, view domain.StepView, geo domain.Geometry) error {
	md := tui.Markdown(view)
	out, err := h.Renderer(md)
	if err != nil {
		out = md
	}

	_, err = fmt.Fprintf(h.Writer, "\n[%d/%d %s, %s]\n%s\n",
		view.Progress.Current+1, view.Progress.Total, view.Kind(), geo.Orientation, strings.TrimSpace(out))
	return err
}

func (h *TextHost) PlayTransition(_ context.Context, plan domain.TransitionPlan) error {
	h.mu.Lock()
	h.pending = append(h.pending, plan)
	h.mu.Unlock()

	_, err := fmt.Fprintf(h.Writer, "~ %s ~\n", plan.Spec)
	return err
}

func (h *TextHost) Dismiss(context.Context) error {
	h.mu.Lock()
	h.dismissed = true
	h.mu.Unlock()

	_, err := fmt.Fprintln(h.Writer, "Onboarding complete.")
	return err
}

// TakePending returns the queued transitions and clears the queue.
func (h *TextHost) TakePending() []domain.TransitionPlan {
	h.mu.Lock()
	defer h.mu.Unlock()
	plans := h.pending
	h.pending = nil
	return plans
}

// Dismissed reports whether Dismiss was called.
func (h *TextHost) Dismissed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dismissed
}
