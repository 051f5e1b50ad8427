package validator

import (
	"fmt"

	"github.com/aretw0/onboarding/pkg/domain"
)

// ValidateTable checks a step table and reports every problem at once.
// It returns nil or a *domain.ConfigurationError.
func ValidateTable(steps []domain.Step) error {
	var reasons []string

	if len(steps) == 0 {
		reasons = append(reasons, "step table is empty")
	}

	for i, s := range steps {
		at := fmt.Sprintf("step %d", i)

		if !s.Kind.Valid() {
			reasons = append(reasons, fmt.Sprintf("%s: unknown kind %q", at, s.Kind))
			continue
		}
		if s.Title == "" {
			reasons = append(reasons, fmt.Sprintf("%s (%s): empty title", at, s.Kind))
		}
		if s.ConfirmLabel == "" {
			reasons = append(reasons, fmt.Sprintf("%s (%s): empty confirm label", at, s.Kind))
		}

		// Options exist iff the step gates on a selection.
		switch {
		case s.RequiresSelection() && len(s.Options) == 0:
			reasons = append(reasons, fmt.Sprintf("%s (%s): no options", at, s.Kind))
		case !s.RequiresSelection() && len(s.Options) > 0:
			reasons = append(reasons, fmt.Sprintf("%s (%s): options are only allowed on choice steps", at, s.Kind))
		}

		seen := make(map[string]int, len(s.Options))
		for j, o := range s.Options {
			if o.Label == "" {
				reasons = append(reasons, fmt.Sprintf("%s option %d: empty label", at, j))
				continue
			}
			if prev, dup := seen[o.Label]; dup {
				reasons = append(reasons, fmt.Sprintf("%s option %d: label %q duplicates option %d", at, j, o.Label, prev))
				continue
			}
			seen[o.Label] = j
		}
	}

	if len(reasons) > 0 {
		return &domain.ConfigurationError{Source: "step table", Reasons: reasons}
	}
	return nil
}
