package onboarding_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/onboarding"
	"github.com/aretw0/onboarding/internal/testutils"
	"github.com/aretw0/onboarding/pkg/adapters/memory"
	"github.com/aretw0/onboarding/pkg/domain"
	"github.com/aretw0/onboarding/pkg/layout"
	"github.com/aretw0/onboarding/pkg/transition"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestNew(t *testing.T) {
	t.Run("Generates UUID", func(t *testing.T) {
		wiz, err := onboarding.New(testutils.FourSteps(), &testutils.RecordingHost{})
		require.NoError(t, err)
		_, err = uuid.Parse(wiz.ID())
		assert.NoError(t, err)
		assert.Equal(t, wiz.ID(), wiz.Snapshot().ID)
	})

	t.Run("Custom ID", func(t *testing.T) {
		wiz, err := onboarding.New(testutils.FourSteps(), &testutils.RecordingHost{}, onboarding.WithID("first-run"))
		require.NoError(t, err)
		assert.Equal(t, "first-run", wiz.ID())
	})

	t.Run("Invalid Layout Profile", func(t *testing.T) {
		p := layout.DefaultProfile()
		delete(p.Portrait, domain.KindCompletion)
		_, err := onboarding.New(testutils.FourSteps(), &testutils.RecordingHost{}, onboarding.WithLayoutProfile(p))
		assert.True(t, errors.Is(err, domain.ErrConfiguration))
	})

	t.Run("Invalid Transition Table", func(t *testing.T) {
		table := transition.Table{Default: domain.TransitionSpec{Style: "wipe"}}
		_, err := onboarding.New(testutils.FourSteps(), &testutils.RecordingHost{}, onboarding.WithTransitionTable(table))
		assert.True(t, errors.Is(err, domain.ErrConfiguration))
	})

	t.Run("Landscape Start", func(t *testing.T) {
		host := &testutils.RecordingHost{}
		wiz, err := onboarding.New(testutils.FourSteps(), host, onboarding.WithOrientation(domain.Landscape))
		require.NoError(t, err)
		_, err = wiz.Start(context.Background())
		require.NoError(t, err)
		r, _ := host.LastRender()
		assert.Equal(t, domain.Landscape, r.Geometry.Orientation)
	})

	t.Run("Steps Are Copied", func(t *testing.T) {
		wiz, err := onboarding.New(testutils.FourSteps(), &testutils.RecordingHost{})
		require.NoError(t, err)
		steps := wiz.Steps()
		steps[2].Options[0].Label = "mutated"
		assert.Equal(t, "new", wiz.Steps()[2].Options[0].Label)
	})
}

func TestNewFromLoader(t *testing.T) {
	loader := memory.NewFromSteps(testutils.FourSteps())
	wiz, err := onboarding.NewFromLoader(loader, &testutils.RecordingHost{})
	require.NoError(t, err)
	assert.Len(t, wiz.Steps(), 4)
}

func TestWizard_Run(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("Completes Canonical Flow", func(t *testing.T) {
		ctx := context.Background()
		host := &testutils.RecordingHost{}
		wiz, err := onboarding.New(testutils.FourSteps(), host)
		require.NoError(t, err)
		host.OnPlay = func(plan domain.TransitionPlan) {
			_, err := wiz.CompleteTransition(ctx, plan.ID)
			assert.NoError(t, err)
		}

		inputs := make(chan domain.Input, 8)
		for _, in := range []domain.Input{
			domain.Confirm{}, domain.Confirm{}, domain.Select{Index: 1}, domain.Confirm{}, domain.Confirm{},
		} {
			inputs <- in
		}

		require.NoError(t, wiz.Run(ctx, inputs))
		assert.True(t, wiz.IsComplete())
		assert.Equal(t, 1, host.Dismissals())
		assert.Len(t, host.Plans(), 3)
	})

	t.Run("Drops Double Tap", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		inputs := make(chan domain.Input, 8)
		host := &testutils.RecordingHost{
			// The animation finishes after whatever is already queued.
			OnPlay: func(plan domain.TransitionPlan) { inputs <- domain.TransitionDone{ID: plan.ID} },
		}
		ignored := 0
		wiz, err := onboarding.New(testutils.FourSteps(), host, onboarding.WithLifecycleHooks(domain.LifecycleHooks{
			OnInputIgnored:     func(context.Context, *domain.InputEvent) { ignored++ },
			OnTransitionCommit: func(context.Context, *domain.TransitionEvent) { cancel() },
		}))
		require.NoError(t, err)

		inputs <- domain.Confirm{}
		inputs <- domain.Confirm{}

		err = wiz.Run(ctx, inputs)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, ignored)
		assert.Equal(t, 1, wiz.Snapshot().Index)
		assert.Len(t, host.Plans(), 1)
	})

	t.Run("Skips Contract Violations", func(t *testing.T) {
		host := &testutils.RecordingHost{}
		wiz, err := onboarding.New(testutils.FourSteps(), host)
		require.NoError(t, err)

		inputs := make(chan domain.Input, 2)
		inputs <- domain.Select{Index: 0} // welcome has no options
		inputs <- domain.TransitionDone{ID: 42}
		close(inputs)

		require.NoError(t, wiz.Run(context.Background(), inputs))
		assert.Equal(t, 0, wiz.Snapshot().Index)
	})

	t.Run("Stops On Cancel", func(t *testing.T) {
		wiz, err := onboarding.New(testutils.FourSteps(), &testutils.RecordingHost{})
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err = wiz.Run(ctx, make(chan domain.Input))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("Returns Host Failure", func(t *testing.T) {
		host := &testutils.RecordingHost{}
		wiz, err := onboarding.New(testutils.FourSteps(), host)
		require.NoError(t, err)
		_, err = wiz.Start(context.Background())
		require.NoError(t, err)

		host.PlayErr = errors.New("display lost")
		inputs := make(chan domain.Input, 1)
		inputs <- domain.Confirm{}

		err = wiz.Run(context.Background(), inputs)
		assert.ErrorContains(t, err, "display lost")
	})
}
