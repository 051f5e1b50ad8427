package ports

import (
	"github.com/aretw0/onboarding/pkg/domain"
	"github.com/aretw0/onboarding/pkg/transition"
)

// TableLoader defines where the step table comes from.
// This allows the source (DSL, YAML, JSON) to be decoupled from the controller.
type TableLoader interface {
	// LoadSteps returns the ordered step table. Callers own the returned slice.
	LoadSteps() ([]domain.Step, error)
}

// TransitionLoader is implemented by loaders whose source also carries
// transition recipes. ok is false when the source defines none.
type TransitionLoader interface {
	LoadTransitions() (table transition.Table, ok bool, err error)
}
