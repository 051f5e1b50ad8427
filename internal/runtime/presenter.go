package runtime

import (
	"fmt"
	"time"

	"github.com/aretw0/onboarding/pkg/domain"
)

// highlightEntrance is the scale-up fade highlight screens play when they appear.
var highlightEntrance = domain.Entrance{
	FromScale: 0.4,
	Duration:  100 * time.Millisecond,
	Curve:     domain.CurveEaseOut,
}

// Presenter turns step indices into step views and owns the gating rules.
// It is a pure function of the immutable table it was built with.
type Presenter struct {
	steps  []domain.Step
	assets domain.Assets
}

// NewPresenter copies steps. The table is expected to be validated.
func NewPresenter(steps []domain.Step, assets domain.Assets) *Presenter {
	return &Presenter{
		steps:  domain.CloneSteps(steps),
		assets: assets,
	}
}

// Count returns the number of steps.
func (p *Presenter) Count() int {
	return len(p.steps)
}

// Step returns a copy of the step at index.
func (p *Presenter) Step(index int) (domain.Step, error) {
	if err := p.check("step", index); err != nil {
		return domain.Step{}, err
	}
	return p.steps[index].Clone(), nil
}

// Present returns the view of the step at index with nothing selected.
func (p *Presenter) Present(index int) (domain.StepView, error) {
	return p.View(index, domain.NoSelection)
}

// View returns the view of the step at index given the current selection.
func (p *Presenter) View(index, selection int) (domain.StepView, error) {
	if err := p.check("present", index); err != nil {
		return domain.StepView{}, err
	}
	step := p.steps[index]

	view := domain.StepView{
		Index:    index,
		Confirm:  domain.ConfirmControl{Label: step.ConfirmLabel, Enabled: p.satisfied(step, selection)},
		Progress: domain.Progress{Current: index, Total: len(p.steps)},
	}

	switch step.Kind {
	case domain.KindWelcome:
		view.Screen = domain.WelcomeScreen{
			Title: step.Title,
			Logo:  primary(step, p.assets.Logo),
		}
	case domain.KindHighlight:
		entrance := highlightEntrance
		view.Entrance = &entrance
		view.Screen = domain.HighlightScreen{
			Title:       step.Title,
			Description: step.Description,
			Logo:        primary(step, p.assets.Logo),
			Hero:        p.assets.Hero,
			Badge:       p.assets.Badge,
		}
	case domain.KindChoice:
		if selection < 0 || selection >= len(step.Options) {
			selection = domain.NoSelection
		}
		view.Screen = domain.ChoiceScreen{
			Title:    step.Title,
			Prompt:   step.Description,
			Options:  append([]domain.Option(nil), step.Options...),
			Selected: selection,
			Icon:     primary(step, p.assets.Icon),
		}
	case domain.KindCompletion:
		view.Screen = domain.CompletionScreen{
			Title:       step.Title,
			Description: step.Description,
		}
	}
	return view, nil
}

// IsSatisfied reports whether the step at index may be confirmed.
func (p *Presenter) IsSatisfied(index, selection int) (bool, error) {
	if err := p.check("is_satisfied", index); err != nil {
		return false, err
	}
	return p.satisfied(p.steps[index], selection), nil
}

func (p *Presenter) satisfied(step domain.Step, selection int) bool {
	if !step.RequiresSelection() {
		return true
	}
	return selection >= 0 && selection < len(step.Options)
}

func (p *Presenter) check(op string, index int) error {
	if index < 0 || index >= len(p.steps) {
		return domain.Violation(op, fmt.Errorf("%w: step %d of %d", domain.ErrOutOfRange, index, len(p.steps)))
	}
	return nil
}

func primary(step domain.Step, fallback domain.Asset) domain.Asset {
	if step.Image != "" {
		return step.Image
	}
	return fallback
}
