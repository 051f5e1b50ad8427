package observability

import (
	"context"
	"fmt"

	"github.com/aretw0/onboarding/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of the onboarding flow.
type Metrics struct {
	StepEnters  *prometheus.CounterVec
	Transitions *prometheus.CounterVec
	Latency     *prometheus.HistogramVec
	GateBlocked *prometheus.CounterVec
	Ignored     *prometheus.CounterVec
	Relayouts   *prometheus.CounterVec
	Dismissals  prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		StepEnters: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "onboarding_step_enters_total",
				Help: "Total number of times a step became current",
			},
			[]string{"kind"},
		),
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "onboarding_transitions_total",
				Help: "Total number of committed transitions",
			},
			[]string{"style"},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "onboarding_transition_seconds",
				Help:    "Wall time between transition start and commit",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2},
			},
			[]string{"style"},
		),
		GateBlocked: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "onboarding_gate_blocked_total",
				Help: "Confirms refused because the step needs a selection",
			},
			[]string{"kind"},
		),
		Ignored: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "onboarding_inputs_ignored_total",
				Help: "Inputs dropped while a transition was in flight",
			},
			[]string{"input"},
		),
		Relayouts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "onboarding_relayouts_total",
				Help: "Orientation relayouts of the displayed step",
			},
			[]string{"orientation"},
		),
		Dismissals: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "onboarding_dismissals_total",
			Help: "Completed onboarding flows",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.StepEnters, m.Transitions, m.Latency, m.GateBlocked, m.Ignored, m.Relayouts, m.Dismissals,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	kinds := make(map[int]domain.StepKind)

	return domain.LifecycleHooks{
		OnStepEnter: func(_ context.Context, e *domain.StepEvent) {
			kinds[e.Index] = e.Kind
			m.StepEnters.WithLabelValues(string(e.Kind)).Inc()
		},
		OnTransitionCommit: func(_ context.Context, e *domain.TransitionEvent) {
			style := string(e.Plan.Spec.Style)
			m.Transitions.WithLabelValues(style).Inc()
			m.Latency.WithLabelValues(style).Observe(e.Elapsed.Seconds())
		},
		OnGateBlocked: func(_ context.Context, e *domain.InputEvent) {
			m.GateBlocked.WithLabelValues(string(kinds[e.Index])).Inc()
		},
		OnInputIgnored: func(_ context.Context, e *domain.InputEvent) {
			m.Ignored.WithLabelValues(e.Input).Inc()
		},
		OnLayout: func(_ context.Context, e *domain.LayoutEvent) {
			m.Relayouts.WithLabelValues(string(e.Orientation)).Inc()
		},
		OnDismiss: func(context.Context, *domain.TransitionEvent) {
			m.Dismissals.Inc()
		},
	}
}
