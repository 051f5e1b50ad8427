package ports

import (
	"context"

	"github.com/aretw0/onboarding/pkg/domain"
)

// Host is the UI shell the flow controller drives. All calls are made from
// the goroutine that delivers input to the controller.
type Host interface {
	// Render displays a step view laid out with geo. It is also called with
	// the current view when only the geometry changed.
	Render(ctx context.Context, view domain.StepView, geo domain.Geometry) error

	// PlayTransition animates from the view at plan.From to the one at
	// plan.To, both already rendered. The host reports the end of the
	// animation with a TransitionDone input carrying plan.ID.
	PlayTransition(ctx context.Context, plan domain.TransitionPlan) error

	// Dismiss signals that onboarding is complete. It is called exactly once.
	Dismiss(ctx context.Context) error
}
