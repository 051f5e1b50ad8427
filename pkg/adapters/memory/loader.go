package memory

import (
	"github.com/aretw0/onboarding/pkg/domain"
	"github.com/aretw0/onboarding/pkg/transition"
)

// Loader implements ports.TableLoader over an in-memory table.
type Loader struct {
	steps       []domain.Step
	transitions *transition.Table
}

// NewFromSteps copies steps into a new loader.
func NewFromSteps(steps []domain.Step) *Loader {
	return &Loader{steps: domain.CloneSteps(steps)}
}

// WithTransitions returns a copy of the loader that also carries t.
func (l *Loader) WithTransitions(t transition.Table) *Loader {
	table := t.Clone()
	return &Loader{steps: l.steps, transitions: &table}
}

// LoadSteps returns a copy of the table.
func (l *Loader) LoadSteps() ([]domain.Step, error) {
	return domain.CloneSteps(l.steps), nil
}

// LoadTransitions returns the transition table, if any.
func (l *Loader) LoadTransitions() (transition.Table, bool, error) {
	if l.transitions == nil {
		return transition.Table{}, false, nil
	}
	return *l.transitions, true, nil
}
