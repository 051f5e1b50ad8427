package runtime_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/onboarding/internal/runtime"
	"github.com/aretw0/onboarding/internal/testutils"
	"github.com/aretw0/onboarding/pkg/domain"
	"github.com/aretw0/onboarding/pkg/transition"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStarted(t *testing.T, host *testutils.RecordingHost, opts ...runtime.Option) *runtime.Controller {
	t.Helper()
	c, err := runtime.NewController(testutils.FourSteps(), host, opts...)
	require.NoError(t, err)
	out, err := c.Start(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeRendered, out)
	return c
}

// advance confirms and lets the host finish the animation.
func advance(t *testing.T, c *runtime.Controller, host *testutils.RecordingHost) {
	t.Helper()
	ctx := context.Background()

	out, err := c.Confirm(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeAdvancing, out)

	plan, ok := host.LastPlan()
	require.True(t, ok)
	out, err = c.CompleteTransition(ctx, plan.ID)
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeCommitted, out)
}

func TestNewController_Validation(t *testing.T) {
	host := &testutils.RecordingHost{}

	t.Run("Choice Without Options", func(t *testing.T) {
		steps := testutils.FourSteps()
		steps[2].Options = nil
		_, err := runtime.NewController(steps, host)
		assert.True(t, errors.Is(err, domain.ErrConfiguration))
	})

	t.Run("Missing Host", func(t *testing.T) {
		_, err := runtime.NewController(testutils.FourSteps(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "host is required")
	})

	t.Run("Unknown Orientation", func(t *testing.T) {
		_, err := runtime.NewController(testutils.FourSteps(), host, runtime.WithOrientation("sideways"))
		assert.True(t, errors.Is(err, domain.ErrConfiguration))
	})

	t.Run("Invalid Transition Table", func(t *testing.T) {
		table := transition.Canonical().With(1, 0, transition.DefaultSpec())
		_, err := runtime.NewController(testutils.FourSteps(), host, runtime.WithSelector(table))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1->0")
	})

	t.Run("Short Table With Canonical Transitions", func(t *testing.T) {
		steps := testutils.FourSteps()
		_, err := runtime.NewController([]domain.Step{steps[0], steps[3]}, host)
		assert.NoError(t, err)
	})

	t.Run("Nothing Rendered Before Start", func(t *testing.T) {
		h := &testutils.RecordingHost{}
		_, err := runtime.NewController(testutils.FourSteps(), h)
		require.NoError(t, err)
		assert.Empty(t, h.Renders())
	})
}

func TestController_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("Renders First Step", func(t *testing.T) {
		host := &testutils.RecordingHost{}
		c := newStarted(t, host)

		r, ok := host.LastRender()
		require.True(t, ok)
		assert.Equal(t, 0, r.View.Index)
		assert.Equal(t, domain.Portrait, r.Geometry.Orientation)
		assert.Equal(t, domain.KindWelcome, r.Geometry.Kind)
		assert.True(t, c.CanAdvance())
	})

	t.Run("Twice", func(t *testing.T) {
		c := newStarted(t, &testutils.RecordingHost{})
		_, err := c.Start(ctx)
		assert.True(t, errors.Is(err, domain.ErrAlreadyStarted))
		assert.True(t, errors.Is(err, domain.ErrContractViolation))
	})

	t.Run("Input Before Start", func(t *testing.T) {
		c, err := runtime.NewController(testutils.FourSteps(), &testutils.RecordingHost{})
		require.NoError(t, err)
		_, err = c.Confirm(ctx)
		assert.True(t, errors.Is(err, domain.ErrNotStarted))
		assert.False(t, c.CanAdvance())
	})

	t.Run("Render Failure Leaves Flow Unstarted", func(t *testing.T) {
		host := &testutils.RecordingHost{RenderErr: errors.New("no window")}
		c, err := runtime.NewController(testutils.FourSteps(), host)
		require.NoError(t, err)
		_, err = c.Start(ctx)
		require.Error(t, err)
		assert.False(t, errors.Is(err, domain.ErrContractViolation))
		assert.False(t, c.Snapshot().Started)
	})
}

func TestController_ScenarioA_FullFlow(t *testing.T) {
	ctx := context.Background()
	host := &testutils.RecordingHost{}

	var dismissed []domain.TransitionPlan
	hooks := domain.LifecycleHooks{
		OnDismiss: func(_ context.Context, e *domain.TransitionEvent) {
			dismissed = append(dismissed, e.Plan)
		},
	}
	c := newStarted(t, host, runtime.WithLifecycleHooks(hooks))

	advance(t, c, host)
	advance(t, c, host)

	out, err := c.SelectOption(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSelected, out)

	advance(t, c, host)

	out, err = c.Confirm(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDismissed, out)
	assert.True(t, c.IsComplete())
	assert.Equal(t, 1, host.Dismissals())

	var styles []domain.TransitionStyle
	for _, p := range host.Plans() {
		styles = append(styles, p.Spec.Style)
	}
	assert.Equal(t, []domain.TransitionStyle{domain.StyleScaleSpring, domain.StyleSlide, domain.StyleCrossFade}, styles)

	require.Len(t, dismissed, 1)
	assert.True(t, dismissed[0].Terminal)
	assert.Equal(t, 3, dismissed[0].From)
	assert.Equal(t, 4, dismissed[0].To)
	assert.Equal(t, domain.StyleCrossFade, dismissed[0].Spec.Style)

	t.Run("Dismissed Is Terminal", func(t *testing.T) {
		inputs := []domain.Input{domain.Confirm{}, domain.Select{Index: 0}, domain.Rotate{Orientation: domain.Landscape}, domain.TransitionDone{ID: 1}}
		for _, in := range inputs {
			_, err := c.Handle(ctx, in)
			assert.True(t, errors.Is(err, domain.ErrDismissed), "input %s", in.InputName())
		}
		assert.Equal(t, 1, host.Dismissals())
		assert.Equal(t, domain.PhaseDismissed, c.Snapshot().Phase)
	})
}

func TestController_ScenarioB_GateBlocks(t *testing.T) {
	ctx := context.Background()
	host := &testutils.RecordingHost{}

	blocked := 0
	c := newStarted(t, host, runtime.WithLifecycleHooks(domain.LifecycleHooks{
		OnGateBlocked: func(context.Context, *domain.InputEvent) { blocked++ },
	}))

	advance(t, c, host)
	advance(t, c, host)

	renders := len(host.Renders())
	for i := 0; i < 5; i++ {
		out, err := c.Confirm(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeGateNotSatisfied, out)
	}

	snap := c.Snapshot()
	assert.Equal(t, 2, snap.Index)
	assert.Equal(t, domain.PhaseIdle, snap.Phase)
	assert.Equal(t, domain.NoSelection, snap.Selection)
	assert.Len(t, host.Renders(), renders, "a blocked confirm has no observable effect")
	assert.Len(t, host.Plans(), 2)
	assert.Equal(t, 5, blocked)
	assert.False(t, c.CanAdvance())
}

func TestController_ScenarioC_RotationRoundTrip(t *testing.T) {
	ctx := context.Background()
	host := &testutils.RecordingHost{}
	c := newStarted(t, host)

	advance(t, c, host)
	advance(t, c, host)
	_, err := c.SelectOption(ctx, 2)
	require.NoError(t, err)

	before, _ := host.LastRender()
	snapBefore := c.Snapshot()

	out, err := c.OrientationChanged(ctx, domain.Landscape)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRelaid, out)

	rotated, _ := host.LastRender()
	assert.Equal(t, before.View, rotated.View, "only geometry changes")
	assert.NotEqual(t, before.Geometry, rotated.Geometry)
	assert.Equal(t, domain.Landscape, rotated.Geometry.Orientation)

	out, err = c.OrientationChanged(ctx, domain.Portrait)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRelaid, out)

	back, _ := host.LastRender()
	if diff := cmp.Diff(before.Geometry, back.Geometry); diff != "" {
		t.Errorf("round trip changed geometry (-want +got):\n%s", diff)
	}

	snapAfter := c.Snapshot()
	snapBefore.Orientation, snapAfter.Orientation = "", ""
	assert.Equal(t, snapBefore, snapAfter)
	assert.Equal(t, 2, snapAfter.Selection)
}

func TestController_TransitionRejectsInterleavedInput(t *testing.T) {
	ctx := context.Background()
	host := &testutils.RecordingHost{}

	ignored := 0
	c := newStarted(t, host, runtime.WithLifecycleHooks(domain.LifecycleHooks{
		OnInputIgnored: func(context.Context, *domain.InputEvent) { ignored++ },
	}))

	out, err := c.Confirm(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeAdvancing, out)

	snap := c.Snapshot()
	assert.Equal(t, domain.PhaseTransitioning, snap.Phase)
	assert.Equal(t, 0, snap.Index, "index moves only at commit")
	require.NotNil(t, snap.Pending)
	assert.False(t, c.CanAdvance())

	for i := 0; i < 3; i++ {
		out, err = c.Confirm(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeIgnored, out)
	}
	out, err = c.SelectOption(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeIgnored, out)

	assert.Equal(t, 0, c.Snapshot().Index)
	assert.Len(t, host.Plans(), 1)
	assert.Equal(t, 4, ignored)

	_, err = c.CompleteTransition(ctx, snap.Pending.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Snapshot().Index)
}

func TestController_CompleteTransition(t *testing.T) {
	ctx := context.Background()

	t.Run("Without Transition", func(t *testing.T) {
		c := newStarted(t, &testutils.RecordingHost{})
		_, err := c.CompleteTransition(ctx, 1)
		assert.True(t, errors.Is(err, domain.ErrNoTransition))
	})

	t.Run("Stale ID", func(t *testing.T) {
		host := &testutils.RecordingHost{}
		c := newStarted(t, host)
		_, err := c.Confirm(ctx)
		require.NoError(t, err)

		plan, _ := host.LastPlan()
		_, err = c.CompleteTransition(ctx, plan.ID+1)
		assert.True(t, errors.Is(err, domain.ErrNoTransition))
		assert.Equal(t, domain.PhaseTransitioning, c.Snapshot().Phase)
	})

	t.Run("Synchronous Host", func(t *testing.T) {
		host := &testutils.RecordingHost{}
		c, err := runtime.NewController(testutils.FourSteps(), host)
		require.NoError(t, err)
		host.OnPlay = func(plan domain.TransitionPlan) {
			_, err := c.CompleteTransition(ctx, plan.ID)
			require.NoError(t, err)
		}
		_, err = c.Start(ctx)
		require.NoError(t, err)

		out, err := c.Confirm(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeCommitted, out)
		assert.Equal(t, 1, c.Snapshot().Index)
		assert.Equal(t, domain.PhaseIdle, c.Snapshot().Phase)
	})

	t.Run("Synchronous Host Relayout Failure", func(t *testing.T) {
		host := &testutils.RecordingHost{}
		c, err := runtime.NewController(testutils.FourSteps(), host)
		require.NoError(t, err)
		host.OnPlay = func(plan domain.TransitionPlan) {
			out, err := c.OrientationChanged(ctx, domain.Landscape)
			require.NoError(t, err)
			require.Equal(t, domain.OutcomeDeferred, out)

			host.RenderErr = errors.New("surface lost")
			_, err = c.CompleteTransition(ctx, plan.ID)
			require.Error(t, err)
		}
		_, err = c.Start(ctx)
		require.NoError(t, err)

		out, err := c.Confirm(ctx)
		assert.Equal(t, domain.OutcomeCommitted, out)
		require.Error(t, err)
		assert.ErrorContains(t, err, "surface lost")
		assert.Equal(t, 1, c.Snapshot().Index)
		assert.Equal(t, domain.PhaseIdle, c.Snapshot().Phase)

		// A later synchronous commit does not report the old failure.
		host.RenderErr = nil
		host.OnPlay = func(plan domain.TransitionPlan) {
			_, err := c.CompleteTransition(ctx, plan.ID)
			require.NoError(t, err)
		}
		out, err = c.Confirm(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeCommitted, out)
	})

	t.Run("Unanimated Transition Commits Immediately", func(t *testing.T) {
		host := &testutils.RecordingHost{}
		table := transition.Canonical().With(0, 1, domain.TransitionSpec{Style: domain.StyleNone})
		c := newStarted(t, host, runtime.WithSelector(table))

		out, err := c.Confirm(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeCommitted, out)
		assert.Empty(t, host.Plans())
		assert.Equal(t, 1, c.Snapshot().Index)
	})

	t.Run("Play Failure Reverts", func(t *testing.T) {
		host := &testutils.RecordingHost{}
		c := newStarted(t, host)
		host.PlayErr = errors.New("compositor gone")

		_, err := c.Confirm(ctx)
		require.Error(t, err)
		assert.ErrorContains(t, err, "compositor gone")
		snap := c.Snapshot()
		assert.Equal(t, domain.PhaseIdle, snap.Phase)
		assert.Equal(t, 0, snap.Index)
		assert.Nil(t, snap.Pending)

		// The host is put back on the step the controller holds.
		last, ok := host.LastRender()
		require.True(t, ok)
		assert.Equal(t, 0, last.View.Index)
		assert.Equal(t, domain.KindWelcome, last.View.Kind())
	})
}

func TestController_SelectOption(t *testing.T) {
	ctx := context.Background()

	t.Run("Not A Choice Step", func(t *testing.T) {
		c := newStarted(t, &testutils.RecordingHost{})
		_, err := c.SelectOption(ctx, 0)
		assert.True(t, errors.Is(err, domain.ErrNotChoiceStep))
		assert.Equal(t, domain.NoSelection, c.Snapshot().Selection)
	})

	host := &testutils.RecordingHost{}
	c := newStarted(t, host)
	advance(t, c, host)
	advance(t, c, host)

	t.Run("Out Of Range", func(t *testing.T) {
		for _, k := range []int{-1, 3} {
			_, err := c.SelectOption(ctx, k)
			assert.True(t, errors.Is(err, domain.ErrOutOfRange))
		}
		assert.Equal(t, domain.NoSelection, c.Snapshot().Selection)
	})

	t.Run("Idempotent", func(t *testing.T) {
		out, err := c.SelectOption(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeSelected, out)
		renders := len(host.Renders())

		for i := 0; i < 3; i++ {
			out, err = c.SelectOption(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, domain.OutcomeUnchanged, out)
		}
		assert.Equal(t, 1, c.Snapshot().Selection)
		assert.Len(t, host.Renders(), renders)
	})

	t.Run("Rerenders With Confirm Enabled", func(t *testing.T) {
		_, err := c.SelectOption(ctx, 0)
		require.NoError(t, err)
		r, _ := host.LastRender()
		assert.True(t, r.View.Confirm.Enabled)
		assert.Equal(t, 0, r.View.Screen.(domain.ChoiceScreen).Selected)
	})

	t.Run("Advance Clears Selection", func(t *testing.T) {
		advance(t, c, host)
		snap := c.Snapshot()
		assert.Equal(t, 3, snap.Index)
		assert.Equal(t, domain.NoSelection, snap.Selection)
	})

	t.Run("Render Failure Restores Selection", func(t *testing.T) {
		h := &testutils.RecordingHost{}
		c := newStarted(t, h)
		advance(t, c, h)
		advance(t, c, h)
		h.RenderErr = errors.New("boom")
		_, err := c.SelectOption(ctx, 2)
		require.Error(t, err)
		assert.Equal(t, domain.NoSelection, c.Snapshot().Selection)
	})
}

func TestController_Orientation(t *testing.T) {
	ctx := context.Background()

	t.Run("Before Start Is Deferred", func(t *testing.T) {
		host := &testutils.RecordingHost{}
		c, err := runtime.NewController(testutils.FourSteps(), host)
		require.NoError(t, err)

		out, err := c.OrientationChanged(ctx, domain.Landscape)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeDeferred, out)
		assert.Empty(t, host.Renders())

		_, err = c.Start(ctx)
		require.NoError(t, err)
		r, _ := host.LastRender()
		assert.Equal(t, domain.Landscape, r.Geometry.Orientation)
	})

	t.Run("During Transition Applies At Commit", func(t *testing.T) {
		host := &testutils.RecordingHost{}
		var layouts []*domain.LayoutEvent
		c := newStarted(t, host, runtime.WithLifecycleHooks(domain.LifecycleHooks{
			OnLayout: func(_ context.Context, e *domain.LayoutEvent) { layouts = append(layouts, e) },
		}))

		_, err := c.Confirm(ctx)
		require.NoError(t, err)
		renders := len(host.Renders())

		out, err := c.OrientationChanged(ctx, domain.Landscape)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeDeferred, out)
		assert.Len(t, host.Renders(), renders, "no relayout mid-animation")

		plan, _ := host.LastPlan()
		_, err = c.CompleteTransition(ctx, plan.ID)
		require.NoError(t, err)

		r, _ := host.LastRender()
		assert.Equal(t, 1, r.View.Index)
		assert.Equal(t, domain.Landscape, r.Geometry.Orientation)
		require.Len(t, layouts, 1)
		assert.True(t, layouts[0].Deferred)
	})

	t.Run("Same Orientation", func(t *testing.T) {
		host := &testutils.RecordingHost{}
		c := newStarted(t, host)
		out, err := c.OrientationChanged(ctx, domain.Portrait)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeUnchanged, out)
		assert.Len(t, host.Renders(), 1)
	})

	t.Run("Unknown Orientation", func(t *testing.T) {
		c := newStarted(t, &testutils.RecordingHost{})
		_, err := c.OrientationChanged(ctx, "diagonal")
		assert.True(t, errors.Is(err, domain.ErrUnknownOrientation))
		assert.True(t, errors.Is(err, domain.ErrContractViolation))
	})

	t.Run("Render Failure Restores Orientation", func(t *testing.T) {
		host := &testutils.RecordingHost{}
		c := newStarted(t, host)
		host.RenderErr = errors.New("boom")
		_, err := c.OrientationChanged(ctx, domain.Landscape)
		require.Error(t, err)
		assert.Equal(t, domain.Portrait, c.Snapshot().Orientation)
	})
}

func TestController_LifecycleHooks(t *testing.T) {
	ctx := context.Background()
	host := &testutils.RecordingHost{}
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var log []string
	var commits []*domain.TransitionEvent
	hooks := domain.LifecycleHooks{
		OnStepEnter:       func(_ context.Context, e *domain.StepEvent) { log = append(log, "enter:"+string(e.Kind)) },
		OnStepLeave:       func(_ context.Context, e *domain.StepEvent) { log = append(log, "leave:"+string(e.Kind)) },
		OnTransitionStart: func(_ context.Context, e *domain.TransitionEvent) { log = append(log, "start:"+string(e.Plan.Spec.Style)) },
		OnTransitionCommit: func(_ context.Context, e *domain.TransitionEvent) {
			log = append(log, "commit")
			commits = append(commits, e)
		},
		OnDismiss: func(context.Context, *domain.TransitionEvent) { log = append(log, "dismiss") },
	}

	c := newStarted(t, host,
		runtime.WithLifecycleHooks(hooks),
		runtime.WithID("wiz-1"),
		runtime.WithClock(func() time.Time {
			clock = clock.Add(10 * time.Millisecond)
			return clock
		}),
	)

	advance(t, c, host)
	advance(t, c, host)
	_, err := c.SelectOption(ctx, 0)
	require.NoError(t, err)
	advance(t, c, host)
	_, err = c.Confirm(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"enter:welcome",
		"start:scale-spring", "leave:welcome", "commit", "enter:highlight",
		"start:slide", "leave:highlight", "commit", "enter:choice",
		"start:cross-fade", "leave:choice", "commit", "enter:completion",
		"leave:completion", "dismiss",
	}, log)

	require.Len(t, commits, 3)
	assert.Equal(t, "wiz-1", commits[0].WizardID)
	assert.Equal(t, domain.EventTransitionCommit, commits[0].Type)
	assert.Positive(t, commits[0].Elapsed)
}

func TestController_Handle(t *testing.T) {
	ctx := context.Background()
	host := &testutils.RecordingHost{}
	c := newStarted(t, host)

	out, err := c.Handle(ctx, domain.Confirm{})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAdvancing, out)

	plan, _ := host.LastPlan()
	out, err = c.Handle(ctx, domain.TransitionDone{ID: plan.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCommitted, out)

	out, err = c.Handle(ctx, domain.Rotate{Orientation: domain.Landscape})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRelaid, out)

	_, err = c.Handle(ctx, domain.Select{Index: 0})
	assert.True(t, errors.Is(err, domain.ErrNotChoiceStep))
}
