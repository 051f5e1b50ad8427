package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/onboarding/internal/logging"
	"github.com/aretw0/onboarding/internal/validator"
	"github.com/aretw0/onboarding/pkg/domain"
	"github.com/aretw0/onboarding/pkg/layout"
	"github.com/aretw0/onboarding/pkg/ports"
	"github.com/aretw0/onboarding/pkg/transition"
)

// Controller is the onboarding flow state machine. It owns the current step
// index and selection, asks the Presenter for content, the Selector for
// transitions and the LayoutEngine for geometry, and drives a ports.Host.
//
// A Controller must be driven from a single goroutine. Host callbacks may
// re-enter it (for example CompleteTransition from inside PlayTransition).
type Controller struct {
	id        string
	presenter *Presenter
	host      ports.Host
	selector  Selector
	layout    LayoutEngine
	assets    domain.Assets
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	now       func() time.Time

	phase       domain.Phase
	started     bool
	index       int
	selection   int
	orientation domain.Orientation

	// laidOut is the orientation the most recently rendered view used.
	laidOut   domain.Orientation
	pending   *domain.TransitionPlan
	pendingAt time.Time
	// commitErr holds a relayout failure of a commit made from inside
	// PlayTransition so advance can return it to its caller.
	commitErr error
	lastID    uint64
}

// NewController validates the step table and builds a controller positioned
// on step 0. Nothing is rendered until Start.
func NewController(steps []domain.Step, host ports.Host, opts ...Option) (*Controller, error) {
	if err := validator.ValidateTable(steps); err != nil {
		return nil, err
	}

	c := &Controller{
		host:        host,
		selector:    transition.Canonical(),
		layout:      layout.Default(),
		assets:      domain.DefaultAssets(),
		logger:      logging.NewNop(),
		now:         time.Now,
		phase:       domain.PhaseIdle,
		selection:   domain.NoSelection,
		orientation: domain.Portrait,
	}
	for _, opt := range opts {
		opt(c)
	}

	var reasons []string
	if host == nil {
		reasons = append(reasons, "host is required")
	}
	if !c.orientation.Valid() {
		reasons = append(reasons, fmt.Sprintf("unknown orientation %q", c.orientation))
	}
	if v, ok := c.selector.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	if len(reasons) > 0 {
		return nil, &domain.ConfigurationError{Source: "controller", Reasons: reasons}
	}

	c.presenter = NewPresenter(steps, c.assets)
	return c, nil
}

// Presenter exposes the read-only presenter.
func (c *Controller) Presenter() *Presenter {
	return c.presenter
}

// Start renders the first step.
func (c *Controller) Start(ctx context.Context) (domain.Outcome, error) {
	const op = "start"
	if err := c.checkLive(op, false); err != nil {
		return "", err
	}
	if c.started {
		return "", c.violate(op, domain.ErrAlreadyStarted)
	}

	if err := c.render(ctx, c.index); err != nil {
		return "", err
	}
	c.started = true
	c.logger.Debug("flow started", "step", c.index, "orientation", c.orientation)
	c.emitStep(ctx, domain.EventStepEnter, c.hooks.OnStepEnter, c.index)
	return domain.OutcomeRendered, nil
}

// Confirm handles the confirmation action of the displayed step.
func (c *Controller) Confirm(ctx context.Context) (domain.Outcome, error) {
	const op = "confirm"
	if err := c.checkLive(op, true); err != nil {
		return "", err
	}
	if c.phase == domain.PhaseTransitioning {
		return c.ignore(ctx, domain.Confirm{}), nil
	}

	if ok, _ := c.presenter.IsSatisfied(c.index, c.selection); !ok {
		c.logger.Debug("confirm blocked by gate", "step", c.index)
		if c.hooks.OnGateBlocked != nil {
			c.hooks.OnGateBlocked(ctx, c.inputEvent(domain.EventGateBlocked, domain.Confirm{}, "selection required"))
		}
		return domain.OutcomeGateNotSatisfied, nil
	}

	next := c.index + 1
	plan := domain.TransitionPlan{
		ID:       c.nextID(),
		From:     c.index,
		To:       next,
		Spec:     c.selector.Select(c.index, next),
		Terminal: next == c.presenter.Count(),
	}
	if plan.Terminal {
		return c.dismiss(ctx, plan)
	}
	return c.advance(ctx, plan)
}

// SelectOption highlights option k of the displayed choice step.
func (c *Controller) SelectOption(ctx context.Context, k int) (domain.Outcome, error) {
	const op = "select_option"
	if err := c.checkLive(op, true); err != nil {
		return "", err
	}
	if c.phase == domain.PhaseTransitioning {
		return c.ignore(ctx, domain.Select{Index: k}), nil
	}

	step, _ := c.presenter.Step(c.index)
	if !step.RequiresSelection() {
		return "", c.violate(op, fmt.Errorf("%w: step %d is %s", domain.ErrNotChoiceStep, c.index, step.Kind))
	}
	if k < 0 || k >= len(step.Options) {
		return "", c.violate(op, fmt.Errorf("%w: option %d of %d", domain.ErrOutOfRange, k, len(step.Options)))
	}
	if k == c.selection {
		return domain.OutcomeUnchanged, nil
	}

	prev := c.selection
	c.selection = k
	if err := c.render(ctx, c.index); err != nil {
		c.selection = prev
		return "", err
	}
	c.logger.Debug("option selected", "step", c.index, "option", k, "label", step.Options[k].Label)
	return domain.OutcomeSelected, nil
}

// OrientationChanged re-lays-out the displayed step. Before Start and during
// a transition the orientation is only recorded and applied at the next render.
func (c *Controller) OrientationChanged(ctx context.Context, o domain.Orientation) (domain.Outcome, error) {
	const op = "orientation_changed"
	if !o.Valid() {
		return "", c.violate(op, fmt.Errorf("%w: %q", domain.ErrUnknownOrientation, o))
	}
	if err := c.checkLive(op, false); err != nil {
		return "", err
	}
	if o == c.orientation {
		return domain.OutcomeUnchanged, nil
	}

	prev := c.orientation
	c.orientation = o
	if !c.started || c.phase == domain.PhaseTransitioning {
		c.logger.Debug("relayout deferred", "orientation", o, "phase", c.phase)
		return domain.OutcomeDeferred, nil
	}

	if err := c.render(ctx, c.index); err != nil {
		c.orientation = prev
		return "", err
	}
	c.logger.Debug("relayout", "step", c.index, "orientation", o)
	c.emitLayout(ctx, false)
	return domain.OutcomeRelaid, nil
}

// CompleteTransition commits the in-flight transition identified by id.
func (c *Controller) CompleteTransition(ctx context.Context, id uint64) (domain.Outcome, error) {
	const op = "complete_transition"
	if err := c.checkLive(op, true); err != nil {
		return "", err
	}
	if c.pending == nil {
		return "", c.violate(op, domain.ErrNoTransition)
	}
	if c.pending.ID != id {
		return "", c.violate(op, fmt.Errorf("%w: got id %d, in flight %d", domain.ErrNoTransition, id, c.pending.ID))
	}
	return c.commit(ctx)
}

// Handle dispatches a typed input.
func (c *Controller) Handle(ctx context.Context, in domain.Input) (domain.Outcome, error) {
	switch in := in.(type) {
	case domain.Confirm:
		return c.Confirm(ctx)
	case domain.Select:
		return c.SelectOption(ctx, in.Index)
	case domain.Rotate:
		return c.OrientationChanged(ctx, in.Orientation)
	case domain.TransitionDone:
		return c.CompleteTransition(ctx, in.ID)
	default:
		return "", c.violate("handle", fmt.Errorf("unsupported input %T", in))
	}
}

// CanAdvance reports whether Confirm would move the flow forward now.
func (c *Controller) CanAdvance() bool {
	if !c.started || c.phase != domain.PhaseIdle {
		return false
	}
	ok, _ := c.presenter.IsSatisfied(c.index, c.selection)
	return ok
}

// IsComplete reports whether the flow has been dismissed.
func (c *Controller) IsComplete() bool {
	return c.phase == domain.PhaseDismissed
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() domain.Snapshot {
	s := domain.Snapshot{
		ID:          c.id,
		Phase:       c.phase,
		Started:     c.started,
		Index:       c.index,
		Count:       c.presenter.Count(),
		Selection:   c.selection,
		Orientation: c.orientation,
	}
	if c.pending != nil {
		plan := *c.pending
		s.Pending = &plan
	}
	return s
}

func (c *Controller) advance(ctx context.Context, plan domain.TransitionPlan) (domain.Outcome, error) {
	// The incoming step is rendered without a selection.
	if err := c.renderView(ctx, plan.To, domain.NoSelection); err != nil {
		return "", err
	}

	c.phase = domain.PhaseTransitioning
	c.pending = &plan
	c.pendingAt = c.now()
	c.logger.Debug("transition started", "from", plan.From, "to", plan.To, "style", plan.Spec.Style, "id", plan.ID)
	c.emitTransition(ctx, domain.EventTransitionStart, c.hooks.OnTransitionStart, plan, 0)

	if !plan.Spec.Animated() {
		return c.commit(ctx)
	}

	c.commitErr = nil
	if err := c.host.PlayTransition(ctx, plan); err != nil {
		err = fmt.Errorf("play transition %d->%d: %w", plan.From, plan.To, err)
		if c.pending != nil && c.pending.ID == plan.ID {
			c.phase = domain.PhaseIdle
			c.pending = nil
			// The host already shows the incoming step.
			if rerr := c.renderView(ctx, plan.From, c.selection); rerr != nil {
				err = errors.Join(err, rerr)
			}
		}
		return "", err
	}

	if c.pending == nil {
		// The host completed the transition synchronously.
		err := c.commitErr
		c.commitErr = nil
		return domain.OutcomeCommitted, err
	}
	return domain.OutcomeAdvancing, nil
}

func (c *Controller) commit(ctx context.Context) (domain.Outcome, error) {
	plan := *c.pending
	elapsed := c.now().Sub(c.pendingAt)

	c.emitStep(ctx, domain.EventStepLeave, c.hooks.OnStepLeave, plan.From)
	c.index = plan.To
	c.selection = domain.NoSelection
	c.pending = nil
	c.phase = domain.PhaseIdle

	c.logger.Debug("transition committed", "step", c.index, "id", plan.ID, "elapsed", elapsed)
	c.emitTransition(ctx, domain.EventTransitionCommit, c.hooks.OnTransitionCommit, plan, elapsed)
	c.emitStep(ctx, domain.EventStepEnter, c.hooks.OnStepEnter, c.index)

	if c.laidOut != c.orientation {
		if err := c.render(ctx, c.index); err != nil {
			c.commitErr = err
			return domain.OutcomeCommitted, err
		}
		c.logger.Debug("deferred relayout applied", "step", c.index, "orientation", c.orientation)
		c.emitLayout(ctx, true)
	}
	return domain.OutcomeCommitted, nil
}

func (c *Controller) dismiss(ctx context.Context, plan domain.TransitionPlan) (domain.Outcome, error) {
	c.phase = domain.PhaseDismissed
	c.logger.Debug("flow dismissed", "step", c.index, "style", plan.Spec.Style)
	c.emitStep(ctx, domain.EventStepLeave, c.hooks.OnStepLeave, c.index)
	c.emitTransition(ctx, domain.EventDismiss, c.hooks.OnDismiss, plan, 0)

	if err := c.host.Dismiss(ctx); err != nil {
		return domain.OutcomeDismissed, fmt.Errorf("dismiss: %w", err)
	}
	return domain.OutcomeDismissed, nil
}

func (c *Controller) render(ctx context.Context, index int) error {
	return c.renderView(ctx, index, c.selection)
}

func (c *Controller) renderView(ctx context.Context, index, selection int) error {
	view, err := c.presenter.View(index, selection)
	if err != nil {
		return err
	}
	step, _ := c.presenter.Step(index)
	geo := c.layout.Layout(step, c.orientation)

	if err := c.host.Render(ctx, view, geo); err != nil {
		return fmt.Errorf("render step %d: %w", index, err)
	}
	c.laidOut = c.orientation
	return nil
}

func (c *Controller) checkLive(op string, needStarted bool) error {
	if c.phase == domain.PhaseDismissed {
		return c.violate(op, domain.ErrDismissed)
	}
	if needStarted && !c.started {
		return c.violate(op, domain.ErrNotStarted)
	}
	return nil
}

func (c *Controller) violate(op string, err error) error {
	c.logger.Warn("contract violation", "op", op, "err", err, "step", c.index, "phase", c.phase)
	return domain.Violation(op, err)
}

func (c *Controller) ignore(ctx context.Context, in domain.Input) domain.Outcome {
	c.logger.Debug("input ignored during transition", "input", in.InputName(), "step", c.index)
	if c.hooks.OnInputIgnored != nil {
		c.hooks.OnInputIgnored(ctx, c.inputEvent(domain.EventInputIgnored, in, "transition in flight"))
	}
	return domain.OutcomeIgnored
}

func (c *Controller) nextID() uint64 {
	c.lastID++
	return c.lastID
}

func (c *Controller) base(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: c.now(), Type: t, WizardID: c.id}
}

func (c *Controller) kind(index int) domain.StepKind {
	step, err := c.presenter.Step(index)
	if err != nil {
		return ""
	}
	return step.Kind
}

func (c *Controller) inputEvent(t domain.EventType, in domain.Input, reason string) *domain.InputEvent {
	return &domain.InputEvent{EventBase: c.base(t), Index: c.index, Input: in.InputName(), Reason: reason}
}

func (c *Controller) emitStep(ctx context.Context, t domain.EventType, hook func(context.Context, *domain.StepEvent), index int) {
	if hook == nil {
		return
	}
	hook(ctx, &domain.StepEvent{EventBase: c.base(t), Index: index, Kind: c.kind(index)})
}

func (c *Controller) emitTransition(ctx context.Context, t domain.EventType, hook func(context.Context, *domain.TransitionEvent), plan domain.TransitionPlan, elapsed time.Duration) {
	if hook == nil {
		return
	}
	hook(ctx, &domain.TransitionEvent{EventBase: c.base(t), Plan: plan, Elapsed: elapsed})
}

func (c *Controller) emitLayout(ctx context.Context, deferred bool) {
	if c.hooks.OnLayout == nil {
		return
	}
	c.hooks.OnLayout(ctx, &domain.LayoutEvent{
		EventBase:   c.base(domain.EventLayout),
		Index:       c.index,
		Kind:        c.kind(c.index),
		Orientation: c.orientation,
		Deferred:    deferred,
	})
}
