package dto

import (
	"fmt"
	"time"

	"github.com/aretw0/onboarding/pkg/domain"
	"github.com/aretw0/onboarding/pkg/transition"
)

// TableDocument is the on-disk shape of a step table file.
// It uses "mapstructure" tags to match the snake_case YAML/JSON keys.
type TableDocument struct {
	Steps       []StepDocument       `json:"steps" mapstructure:"steps"`
	Transitions *TransitionsDocument `json:"transitions,omitempty" mapstructure:"transitions"`
}

type StepDocument struct {
	Kind         string   `json:"kind" mapstructure:"kind"`
	Title        string   `json:"title" mapstructure:"title"`
	Description  string   `json:"description,omitempty" mapstructure:"description"`
	ConfirmLabel string   `json:"confirm_label" mapstructure:"confirm_label"`
	Options      []string `json:"options,omitempty" mapstructure:"options"`
	Image        string   `json:"image,omitempty" mapstructure:"image"`
}

type TransitionsDocument struct {
	Default *SpecDocument  `json:"default,omitempty" mapstructure:"default"`
	Rules   []RuleDocument `json:"rules,omitempty" mapstructure:"rules"`
}

type RuleDocument struct {
	From         int `json:"from" mapstructure:"from"`
	To           int `json:"to" mapstructure:"to"`
	SpecDocument `mapstructure:",squash"`
}

type SpecDocument struct {
	Style     string          `json:"style" mapstructure:"style"`
	Duration  time.Duration   `json:"duration" mapstructure:"duration"`
	Curve     string          `json:"curve" mapstructure:"curve"`
	Direction string          `json:"direction,omitempty" mapstructure:"direction"`
	FromScale float64         `json:"from_scale,omitempty" mapstructure:"from_scale"`
	Spring    *SpringDocument `json:"spring,omitempty" mapstructure:"spring"`
}

type SpringDocument struct {
	Frequency float64 `json:"frequency" mapstructure:"frequency"`
	Damping   float64 `json:"damping" mapstructure:"damping"`
}

// ToSteps converts the document into domain steps. It does not validate them.
func (d TableDocument) ToSteps() []domain.Step {
	steps := make([]domain.Step, 0, len(d.Steps))
	for _, s := range d.Steps {
		step := domain.Step{
			Kind:         domain.StepKind(s.Kind),
			Title:        s.Title,
			Description:  s.Description,
			ConfirmLabel: s.ConfirmLabel,
			Image:        domain.Asset(s.Image),
		}
		for _, label := range s.Options {
			step.Options = append(step.Options, domain.Option{Label: label})
		}
		steps = append(steps, step)
	}
	return steps
}

// ToTable converts the transitions section. Rules are layered over the
// canonical table; a missing default keeps the canonical fallback.
func (d TransitionsDocument) ToTable() (transition.Table, error) {
	table := transition.Canonical()
	if d.Default != nil {
		table.Default = d.Default.ToSpec()
	}

	seen := make(map[transition.Pair]bool, len(d.Rules))
	for _, r := range d.Rules {
		p := transition.Pair{From: r.From, To: r.To}
		if seen[p] {
			return transition.Table{}, fmt.Errorf("duplicate transition rule %s", p)
		}
		seen[p] = true
		table = table.With(r.From, r.To, r.ToSpec())
	}
	return table, nil
}

func (s SpecDocument) ToSpec() domain.TransitionSpec {
	spec := domain.TransitionSpec{
		Style:     domain.TransitionStyle(s.Style),
		Duration:  s.Duration,
		Curve:     domain.Curve(s.Curve),
		Direction: domain.Direction(s.Direction),
		FromScale: s.FromScale,
	}
	if s.Spring != nil {
		spec.Spring = domain.Spring{Frequency: s.Spring.Frequency, Damping: s.Spring.Damping}
	}
	return spec
}
