package transition

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/aretw0/onboarding/pkg/domain"
)

// Pair is a (from, to) step index pair.
type Pair struct {
	From int
	To   int
}

func (p Pair) String() string {
	return fmt.Sprintf("%d->%d", p.From, p.To)
}

// Table is a configurable transition selector.
type Table struct {
	Rules   map[Pair]domain.TransitionSpec
	Default domain.TransitionSpec
}

// Canonical springs into the first highlight, slides into the choice step and
// cross-fades into completion. Everything else cross-fades.
func Canonical() Table {
	return Table{
		Rules: map[Pair]domain.TransitionSpec{
			{From: 0, To: 1}: {
				Style:     domain.StyleScaleSpring,
				Duration:  500 * time.Millisecond,
				Curve:     domain.CurveSpring,
				FromScale: 0.4,
				Spring:    domain.Spring{Frequency: 6, Damping: 0.5},
			},
			{From: 1, To: 2}: {
				Style:     domain.StyleSlide,
				Duration:  350 * time.Millisecond,
				Curve:     domain.CurveEaseInOut,
				Direction: domain.DirectionForward,
			},
			{From: 2, To: 3}: {
				Style:    domain.StyleCrossFade,
				Duration: 300 * time.Millisecond,
				Curve:    domain.CurveEaseOut,
			},
		},
		Default: DefaultSpec(),
	}
}

// DefaultSpec is the fallback cross-fade.
func DefaultSpec() domain.TransitionSpec {
	return domain.TransitionSpec{
		Style:    domain.StyleCrossFade,
		Duration: 250 * time.Millisecond,
		Curve:    domain.CurveEaseInOut,
	}
}

// Select returns the recipe for the pair, or the default when unlisted.
func (t Table) Select(from, to int) domain.TransitionSpec {
	if spec, ok := t.Rules[Pair{From: from, To: to}]; ok {
		return spec
	}
	return t.Default
}

// Pairs returns the listed pairs in ascending order.
func (t Table) Pairs() []Pair {
	return slices.SortedFunc(maps.Keys(t.Rules), func(a, b Pair) int {
		return cmp.Or(cmp.Compare(a.From, b.From), cmp.Compare(a.To, b.To))
	})
}

// Clone returns a copy of t that shares no map with it.
func (t Table) Clone() Table {
	rules := make(map[Pair]domain.TransitionSpec, len(t.Rules)+1)
	maps.Copy(rules, t.Rules)
	return Table{Rules: rules, Default: t.Default}
}

// With returns a copy of t with spec bound to the pair.
func (t Table) With(from, to int, spec domain.TransitionSpec) Table {
	out := t.Clone()
	out.Rules[Pair{From: from, To: to}] = spec
	return out
}

// Validate reports every malformed recipe as a *domain.ConfigurationError.
func (t Table) Validate() error {
	var reasons []string

	reasons = append(reasons, checkSpec("default", t.Default)...)
	for _, p := range t.Pairs() {
		if p.From < 0 || p.To <= p.From {
			reasons = append(reasons, fmt.Sprintf("%s: pairs must move forward from a non-negative index", p))
		}
		reasons = append(reasons, checkSpec(p.String(), t.Rules[p])...)
	}

	if len(reasons) > 0 {
		return &domain.ConfigurationError{Source: "transition table", Reasons: reasons}
	}
	return nil
}

func checkSpec(at string, s domain.TransitionSpec) []string {
	var reasons []string
	if !s.Style.Valid() {
		return append(reasons, fmt.Sprintf("%s: unknown style %q", at, s.Style))
	}
	if s.Duration < 0 {
		reasons = append(reasons, fmt.Sprintf("%s: negative duration %s", at, s.Duration))
	}
	if s.Style == domain.StyleNone {
		return reasons
	}
	if s.Duration == 0 {
		reasons = append(reasons, fmt.Sprintf("%s: %s needs a duration", at, s.Style))
	}
	if !s.Curve.Valid() {
		reasons = append(reasons, fmt.Sprintf("%s: unknown curve %q", at, s.Curve))
	}

	switch s.Style {
	case domain.StyleSlide:
		if s.Direction != domain.DirectionForward && s.Direction != domain.DirectionBackward {
			reasons = append(reasons, fmt.Sprintf("%s: slide needs a direction", at))
		}
	case domain.StyleScaleSpring:
		if s.FromScale <= 0 || s.FromScale > 1 {
			reasons = append(reasons, fmt.Sprintf("%s: from_scale %v outside (0, 1]", at, s.FromScale))
		}
		if s.Curve == domain.CurveSpring && (s.Spring.Frequency <= 0 || s.Spring.Damping <= 0) {
			reasons = append(reasons, fmt.Sprintf("%s: spring needs positive frequency and damping", at))
		}
	}
	if s.Curve == domain.CurveSpring && s.Style != domain.StyleScaleSpring {
		reasons = append(reasons, fmt.Sprintf("%s: spring curve is only valid for %s", at, domain.StyleScaleSpring))
	}
	return reasons
}
