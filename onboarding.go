package onboarding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/onboarding/internal/logging"
	"github.com/aretw0/onboarding/internal/runtime"
	"github.com/aretw0/onboarding/pkg/domain"
	"github.com/aretw0/onboarding/pkg/layout"
	"github.com/aretw0/onboarding/pkg/ports"
	"github.com/aretw0/onboarding/pkg/transition"
	"github.com/google/uuid"
)

// Wizard is the high-level entry point of the library.
// It wraps the internal flow controller and provides a simplified API for hosts.
//
// A Wizard is not safe for concurrent use. Run serializes inputs from a
// channel; hosts calling the methods directly must do so from one goroutine.
type Wizard struct {
	controller *runtime.Controller
	id         string
	logger     *slog.Logger

	hooks       domain.LifecycleHooks
	table       *transition.Table
	profile     *layout.Profile
	assets      *domain.Assets
	orientation domain.Orientation
}

// Option defines a functional option for configuring the Wizard.
type Option func(*Wizard)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(w *Wizard) {
		w.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the wizard.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Wizard) {
		w.logger = logger
	}
}

// WithTransitionTable replaces the canonical transition table.
func WithTransitionTable(t transition.Table) Option {
	return func(w *Wizard) {
		w.table = &t
	}
}

// WithLayoutProfile replaces the default layout profile.
func WithLayoutProfile(p layout.Profile) Option {
	return func(w *Wizard) {
		w.profile = &p
	}
}

// WithOrientation sets the orientation the first step is laid out in (default: portrait).
func WithOrientation(o domain.Orientation) Option {
	return func(w *Wizard) {
		w.orientation = o
	}
}

// WithAssets overrides the asset names passed to the host.
func WithAssets(a domain.Assets) Option {
	return func(w *Wizard) {
		w.assets = &a
	}
}

// WithID sets the wizard id used in logs and events (default: a random UUID).
func WithID(id string) Option {
	return func(w *Wizard) {
		w.id = id
	}
}

// New validates steps and the configured tables and returns a wizard
// positioned on the first step. Configuration problems are reported as a
// *domain.ConfigurationError.
func New(steps []domain.Step, host ports.Host, opts ...Option) (*Wizard, error) {
	w := &Wizard{orientation: domain.Portrait}
	for _, opt := range opts {
		opt(w)
	}

	if w.id == "" {
		w.id = uuid.NewString()
	}
	if w.logger == nil {
		w.logger = logging.NewNop()
	}
	w.logger = w.logger.With("wizard_id", w.id, "steps", len(steps))

	runtimeOpts := []runtime.Option{
		runtime.WithLifecycleHooks(w.hooks),
		runtime.WithLogger(w.logger),
		runtime.WithOrientation(w.orientation),
		runtime.WithID(w.id),
	}
	if w.table != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithSelector(*w.table))
	}
	if w.profile != nil {
		adapter, err := layout.New(*w.profile)
		if err != nil {
			return nil, err
		}
		runtimeOpts = append(runtimeOpts, runtime.WithLayout(adapter))
	}
	if w.assets != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithAssets(*w.assets))
	}

	c, err := runtime.NewController(steps, host, runtimeOpts...)
	if err != nil {
		return nil, err
	}
	w.controller = c
	return w, nil
}

// NewFromLoader reads the step table from loader. When the loader also
// carries transitions they replace the canonical table unless an explicit
// WithTransitionTable is given.
func NewFromLoader(loader ports.TableLoader, host ports.Host, opts ...Option) (*Wizard, error) {
	steps, err := loader.LoadSteps()
	if err != nil {
		return nil, fmt.Errorf("load steps: %w", err)
	}

	if tl, ok := loader.(ports.TransitionLoader); ok {
		table, found, err := tl.LoadTransitions()
		if err != nil {
			return nil, fmt.Errorf("load transitions: %w", err)
		}
		if found {
			opts = append([]Option{WithTransitionTable(table)}, opts...)
		}
	}
	return New(steps, host, opts...)
}

// ID returns the wizard id.
func (w *Wizard) ID() string {
	return w.id
}

// Start renders the first step.
func (w *Wizard) Start(ctx context.Context) (domain.Outcome, error) {
	return w.controller.Start(ctx)
}

// Confirm handles the confirmation action of the displayed step.
func (w *Wizard) Confirm(ctx context.Context) (domain.Outcome, error) {
	return w.controller.Confirm(ctx)
}

// SelectOption highlights option k (zero-based) of the displayed choice step.
func (w *Wizard) SelectOption(ctx context.Context, k int) (domain.Outcome, error) {
	return w.controller.SelectOption(ctx, k)
}

// OrientationChanged re-lays-out the displayed step for o.
func (w *Wizard) OrientationChanged(ctx context.Context, o domain.Orientation) (domain.Outcome, error) {
	return w.controller.OrientationChanged(ctx, o)
}

// CompleteTransition commits the in-flight transition with the given plan id.
func (w *Wizard) CompleteTransition(ctx context.Context, id uint64) (domain.Outcome, error) {
	return w.controller.CompleteTransition(ctx, id)
}

// Handle dispatches a typed input.
func (w *Wizard) Handle(ctx context.Context, in domain.Input) (domain.Outcome, error) {
	return w.controller.Handle(ctx, in)
}

// CanAdvance reports whether a confirm would move the flow forward now.
func (w *Wizard) CanAdvance() bool {
	return w.controller.CanAdvance()
}

// IsComplete reports whether the wizard has been dismissed.
func (w *Wizard) IsComplete() bool {
	return w.controller.IsComplete()
}

// Snapshot returns the current state.
func (w *Wizard) Snapshot() domain.Snapshot {
	return w.controller.Snapshot()
}

// Steps returns a copy of the step table.
func (w *Wizard) Steps() []domain.Step {
	p := w.controller.Presenter()
	steps := make([]domain.Step, 0, p.Count())
	for i := range p.Count() {
		s, _ := p.Step(i)
		steps = append(steps, s)
	}
	return steps
}

// Run starts the wizard if needed and then consumes inputs one at a time
// until the flow is dismissed, the channel is closed or ctx is done.
// Contract violations are logged and skipped; host failures end the loop.
func (w *Wizard) Run(ctx context.Context, inputs <-chan domain.Input) error {
	if !w.controller.Snapshot().Started {
		if _, err := w.controller.Start(ctx); err != nil {
			return err
		}
	}

	for !w.controller.IsComplete() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in, ok := <-inputs:
			if !ok {
				w.logger.Debug("input channel closed", "step", w.controller.Snapshot().Index)
				return nil
			}
			out, err := w.controller.Handle(ctx, in)
			if errors.Is(err, domain.ErrContractViolation) {
				continue
			}
			if err != nil {
				return err
			}
			w.logger.Debug("input handled", "input", in.InputName(), "outcome", out)
		}
	}
	return nil
}
