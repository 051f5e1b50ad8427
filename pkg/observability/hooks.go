package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/onboarding/pkg/domain"
)

// CombineHooks returns hooks that call each set in order.
func CombineHooks(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepEnter: func(ctx context.Context, e *domain.StepEvent) {
			for _, s := range sets {
				if s.OnStepEnter != nil {
					s.OnStepEnter(ctx, e)
				}
			}
		},
		OnStepLeave: func(ctx context.Context, e *domain.StepEvent) {
			for _, s := range sets {
				if s.OnStepLeave != nil {
					s.OnStepLeave(ctx, e)
				}
			}
		},
		OnTransitionStart: func(ctx context.Context, e *domain.TransitionEvent) {
			for _, s := range sets {
				if s.OnTransitionStart != nil {
					s.OnTransitionStart(ctx, e)
				}
			}
		},
		OnTransitionCommit: func(ctx context.Context, e *domain.TransitionEvent) {
			for _, s := range sets {
				if s.OnTransitionCommit != nil {
					s.OnTransitionCommit(ctx, e)
				}
			}
		},
		OnGateBlocked: func(ctx context.Context, e *domain.InputEvent) {
			for _, s := range sets {
				if s.OnGateBlocked != nil {
					s.OnGateBlocked(ctx, e)
				}
			}
		},
		OnInputIgnored: func(ctx context.Context, e *domain.InputEvent) {
			for _, s := range sets {
				if s.OnInputIgnored != nil {
					s.OnInputIgnored(ctx, e)
				}
			}
		},
		OnLayout: func(ctx context.Context, e *domain.LayoutEvent) {
			for _, s := range sets {
				if s.OnLayout != nil {
					s.OnLayout(ctx, e)
				}
			}
		},
		OnDismiss: func(ctx context.Context, e *domain.TransitionEvent) {
			for _, s := range sets {
				if s.OnDismiss != nil {
					s.OnDismiss(ctx, e)
				}
			}
		},
	}
}

// LoggingHooks logs every lifecycle event at Info.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepEnter: func(ctx context.Context, e *domain.StepEvent) {
			logger.InfoContext(ctx, "step_enter", "step", e.Index, "kind", e.Kind)
		},
		OnStepLeave: func(ctx context.Context, e *domain.StepEvent) {
			logger.InfoContext(ctx, "step_leave", "step", e.Index, "kind", e.Kind)
		},
		OnTransitionStart: func(ctx context.Context, e *domain.TransitionEvent) {
			logger.InfoContext(ctx, "transition_start",
				"from", e.Plan.From,
				"to", e.Plan.To,
				"style", e.Plan.Spec.Style,
				"duration", e.Plan.Spec.Duration,
			)
		},
		OnTransitionCommit: func(ctx context.Context, e *domain.TransitionEvent) {
			logger.InfoContext(ctx, "transition_commit", "to", e.Plan.To, "elapsed", e.Elapsed)
		},
		OnGateBlocked: func(ctx context.Context, e *domain.InputEvent) {
			logger.InfoContext(ctx, "gate_blocked", "step", e.Index, "reason", e.Reason)
		},
		OnInputIgnored: func(ctx context.Context, e *domain.InputEvent) {
			logger.InfoContext(ctx, "input_ignored", "step", e.Index, "input", e.Input)
		},
		OnLayout: func(ctx context.Context, e *domain.LayoutEvent) {
			logger.InfoContext(ctx, "layout", "step", e.Index, "orientation", e.Orientation, "deferred", e.Deferred)
		},
		OnDismiss: func(ctx context.Context, e *domain.TransitionEvent) {
			logger.InfoContext(ctx, "dismiss", "from", e.Plan.From, "style", e.Plan.Spec.Style)
		},
	}
}
