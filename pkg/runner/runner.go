package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/onboarding/internal/logging"
	"github.com/aretw0/onboarding/pkg/domain"
)

// Flow is the part of the wizard the runner drives.
type Flow interface {
	Start(ctx context.Context) (domain.Outcome, error)
	Handle(ctx context.Context, in domain.Input) (domain.Outcome, error)
	CompleteTransition(ctx context.Context, id uint64) (domain.Outcome, error)
	IsComplete() bool
	Snapshot() domain.Snapshot
}

// InputHandler reads one command line.
type InputHandler interface {
	Input(ctx context.Context) (string, error)
}

// Runner handles the execution loop of a flow over line-oriented IO.
type Runner struct {
	Handler InputHandler
	Host    *TextHost

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Animate waits for each transition's duration before completing it.
	Animate bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the runner logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithAnimation makes the runner wait out transition durations.
func WithAnimation(enabled bool) Option {
	return func(r *Runner) {
		r.Animate = enabled
	}
}

// New creates a runner reading from handler and completing host's transitions.
func New(handler InputHandler, host *TextHost, opts ...Option) *Runner {
	r := &Runner{
		Handler: handler,
		Host:    host,
		Logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run starts the flow if needed and executes commands until the flow is
// dismissed, the user quits or input ends. Contract violations are reported
// to the user and the loop continues.
func (r *Runner) Run(ctx context.Context, flow Flow) error {
	if !flow.Snapshot().Started {
		if _, err := flow.Start(ctx); err != nil {
			return err
		}
	}

	for !flow.IsComplete() {
		if err := r.completeTransitions(ctx, flow); err != nil {
			return err
		}
		if flow.IsComplete() {
			break
		}

		line, err := r.Handler.Input(ctx)
		if errors.Is(err, io.EOF) {
			r.Logger.Debug("input ended", "step", flow.Snapshot().Index)
			return nil
		}
		if err != nil {
			return err
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			r.printf("Error: %v. Type help for commands.\n", err)
			continue
		}

		switch cmd.Kind {
		case CommandQuit:
			r.Logger.Debug("user quit", "step", flow.Snapshot().Index)
			return nil
		case CommandHelp:
			r.printf("%s\n", HelpText)
		case CommandStatus:
			r.printf("%s\n", FormatStatus(flow.Snapshot()))
		case CommandInput:
			if err := r.handle(ctx, flow, cmd.Input); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Runner) handle(ctx context.Context, flow Flow, in domain.Input) error {
	out, err := flow.Handle(ctx, in)
	if errors.Is(err, domain.ErrContractViolation) {
		r.printf("Error: %v\n", err)
		return nil
	}
	if err != nil {
		return err
	}

	r.Logger.Debug("input handled", "input", in.InputName(), "outcome", out)
	switch out {
	case domain.OutcomeGateNotSatisfied:
		r.printf("Pick an option first (select N).\n")
	case domain.OutcomeIgnored:
		r.printf("Still animating, input ignored.\n")
	}
	return nil
}

// completeTransitions commits every transition the host queued.
func (r *Runner) completeTransitions(ctx context.Context, flow Flow) error {
	for _, plan := range r.Host.TakePending() {
		if r.Animate {
			timer := time.NewTimer(plan.Spec.Duration)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
		if _, err := flow.CompleteTransition(ctx, plan.ID); err != nil {
			if errors.Is(err, domain.ErrContractViolation) {
				r.Logger.Warn("stale transition", "id", plan.ID, "err", err)
				continue
			}
			return err
		}
	}
	return nil
}

func (r *Runner) printf(format string, args ...any) {
	if r.Host != nil {
		fmt.Fprintf(r.Host.Writer, format, args...)
	}
}

// FormatStatus renders a snapshot on one line.
func FormatStatus(s domain.Snapshot) string {
	status := fmt.Sprintf("step %d/%d, %s, %s", s.Index+1, s.Count, s.Orientation, s.Phase)
	if s.Selection != domain.NoSelection {
		status += fmt.Sprintf(", option %d selected", s.Selection+1)
	}
	if s.Pending != nil {
		status += fmt.Sprintf(", animating %d->%d", s.Pending.From, s.Pending.To)
	}
	return status
}
