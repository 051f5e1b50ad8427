package runner

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/aretw0/onboarding/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextHost(t *testing.T) {
	ctx := context.Background()

	t.Run("Render Uses Renderer", func(t *testing.T) {
		out := &bytes.Buffer{}
		host := NewTextHost(out, WithRenderer(func(md string) (string, error) {
			return "Rendered: " + md, nil
		}))

		view := domain.StepView{
			Screen:   domain.WelcomeScreen{Title: "Hi", Logo: "logo"},
			Confirm:  domain.ConfirmControl{Label: "Go", Enabled: true},
			Progress: domain.Progress{Current: 0, Total: 2},
		}
		require.NoError(t, host.Render(ctx, view, domain.Geometry{Orientation: domain.Landscape}))
		assert.Contains(t, out.String(), "[1/2 welcome, landscape]\nRendered: ![logo](logo)")
		assert.Contains(t, out.String(), "# Hi")
	})

	t.Run("Renderer Failure Falls Back To Markdown", func(t *testing.T) {
		out := &bytes.Buffer{}
		host := NewTextHost(out, WithRenderer(func(string) (string, error) {
			return "", errors.New("boom")
		}))
		view := domain.StepView{
			Screen:   domain.CompletionScreen{Title: "Done"},
			Confirm:  domain.ConfirmControl{Label: "Close", Enabled: true},
			Progress: domain.Progress{Current: 0, Total: 1},
		}
		require.NoError(t, host.Render(ctx, view, domain.Geometry{Orientation: domain.Portrait}))
		assert.Contains(t, out.String(), "# Done")
	})

	t.Run("Queues Transitions", func(t *testing.T) {
		out := &bytes.Buffer{}
		host := NewTextHost(out)
		plan := domain.TransitionPlan{ID: 7, From: 0, To: 1, Spec: domain.TransitionSpec{Style: domain.StyleNone}}

		require.NoError(t, host.PlayTransition(ctx, plan))
		assert.Equal(t, []domain.TransitionPlan{plan}, host.TakePending())
		assert.Empty(t, host.TakePending())
	})

	t.Run("Dismiss", func(t *testing.T) {
		out := &bytes.Buffer{}
		host := NewTextHost(out)
		assert.False(t, host.Dismissed())
		require.NoError(t, host.Dismiss(ctx))
		assert.True(t, host.Dismissed())
		assert.Equal(t, "Onboarding complete.\n", out.String())
	})
}
