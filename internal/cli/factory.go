package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/onboarding/internal/config"
	"github.com/aretw0/onboarding/internal/logging"
	"github.com/aretw0/onboarding/pkg/adapters/file"
	"github.com/aretw0/onboarding/pkg/adapters/memory"
	"github.com/aretw0/onboarding/pkg/dsl"
	"github.com/aretw0/onboarding/pkg/ports"
)

// Loader is a table loader that may also carry transitions.
type Loader interface {
	ports.TableLoader
	ports.TransitionLoader
}

// LoadTable resolves the step table named by cfg. Without a steps file the
// built-in djay table is used. A transitions file replaces the table's own
// transitions.
func LoadTable(cfg config.Config) (Loader, error) {
	var base Loader
	if cfg.Steps == "" {
		l, err := dsl.Canonical().Build()
		if err != nil {
			return nil, fmt.Errorf("built-in table: %w", err)
		}
		base = l
	} else {
		l, err := file.New(cfg.Steps)
		if err != nil {
			return nil, err
		}
		base = l
	}

	if cfg.Transitions == "" {
		return base, nil
	}

	tl, err := file.New(cfg.Transitions)
	if err != nil {
		return nil, err
	}
	table, found, err := tl.LoadTransitions()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%s: no transitions section", cfg.Transitions)
	}

	steps, err := base.LoadSteps()
	if err != nil {
		return nil, err
	}
	return memory.NewFromSteps(steps).WithTransitions(table), nil
}

// NewLogger builds the CLI logger. Logs go to w so they never mix with the
// flow on stdout.
func NewLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(w, level, cfg.Format), nil
}
