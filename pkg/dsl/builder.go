package dsl

import (
	"fmt"

	"github.com/aretw0/onboarding/internal/validator"
	"github.com/aretw0/onboarding/pkg/adapters/memory"
	"github.com/aretw0/onboarding/pkg/domain"
	"github.com/aretw0/onboarding/pkg/transition"
)

// Builder manages the step table construction.
type Builder struct {
	steps       []*StepBuilder
	transitions *transition.Table
}

// New creates an empty builder.
func New() *Builder {
	return &Builder{}
}

// Welcome appends a welcome step.
func (b *Builder) Welcome(title string) *StepBuilder {
	return b.add(domain.KindWelcome, title)
}

// Highlight appends a feature highlight step.
func (b *Builder) Highlight(title string) *StepBuilder {
	return b.add(domain.KindHighlight, title)
}

// Choice appends a step gated on picking one of its options.
func (b *Builder) Choice(title string) *StepBuilder {
	return b.add(domain.KindChoice, title)
}

// Completion appends a closing step.
func (b *Builder) Completion(title string) *StepBuilder {
	return b.add(domain.KindCompletion, title)
}

// Transition binds a recipe to a step pair. The first call starts from the
// canonical table.
func (b *Builder) Transition(from, to int, spec domain.TransitionSpec) *Builder {
	table := transition.Canonical()
	if b.transitions != nil {
		table = *b.transitions
	}
	table = table.With(from, to, spec)
	b.transitions = &table
	return b
}

func (b *Builder) add(kind domain.StepKind, title string) *StepBuilder {
	sb := &StepBuilder{step: domain.Step{Kind: kind, Title: title}}
	b.steps = append(b.steps, sb)
	return sb
}

// Steps returns the validated step table.
func (b *Builder) Steps() ([]domain.Step, error) {
	steps := make([]domain.Step, 0, len(b.steps))
	for _, sb := range b.steps {
		steps = append(steps, sb.step.Clone())
	}
	if err := validator.ValidateTable(steps); err != nil {
		return nil, err
	}
	return steps, nil
}

// Build compiles the table into a memory loader.
func (b *Builder) Build() (*memory.Loader, error) {
	steps, err := b.Steps()
	if err != nil {
		return nil, fmt.Errorf("failed to build step table: %w", err)
	}

	loader := memory.NewFromSteps(steps)
	if b.transitions != nil {
		if err := b.transitions.Validate(); err != nil {
			return nil, fmt.Errorf("failed to build transition table: %w", err)
		}
		loader = loader.WithTransitions(*b.transitions)
	}
	return loader, nil
}

// StepBuilder provides a fluent API for configuring a step.
type StepBuilder struct {
	step domain.Step
}

// Describe sets the body text. On choice steps it is the prompt above the options.
func (s *StepBuilder) Describe(text string) *StepBuilder {
	s.step.Description = text
	return s
}

// Options appends selectable options.
func (s *StepBuilder) Options(labels ...string) *StepBuilder {
	for _, l := range labels {
		s.step.Options = append(s.step.Options, domain.Option{Label: l})
	}
	return s
}

// Confirm sets the label of the confirmation control.
func (s *StepBuilder) Confirm(label string) *StepBuilder {
	s.step.ConfirmLabel = label
	return s
}

// Image overrides the primary artwork of the step.
func (s *StepBuilder) Image(asset domain.Asset) *StepBuilder {
	s.step.Image = asset
	return s
}
