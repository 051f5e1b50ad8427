package tui

import (
	"context"
	"errors"
	"time"

	"github.com/aretw0/onboarding/pkg/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
)

// Flow is the part of the wizard the model drives.
type Flow interface {
	Start(ctx context.Context) (domain.Outcome, error)
	Handle(ctx context.Context, in domain.Input) (domain.Outcome, error)
	IsComplete() bool
	Snapshot() domain.Snapshot
}

// frameMsg is one animation tick.
type frameMsg time.Time

// screen is one rendered step.
type screen struct {
	view domain.StepView
	geo  domain.Geometry
}

// Model is a Bubble Tea model and a ports.Host. Create it with New, pass it
// to the wizard as host, then Attach the wizard before running the program.
type Model struct {
	ctx    context.Context
	flow   Flow
	keys   KeyMap
	help   help.Model
	dots   paginator.Model
	styles Styles
	fps    int
	now    func() time.Time

	width, height int

	current  *screen
	previous *screen
	anim     *animation
	ticking  bool

	// entrance is set while the current screen plays its own entrance.
	entrance      *domain.Entrance
	entranceStart time.Time
	entranceDone  bool

	status string
	err    error
	done   bool
}

// Option configures a Model.
type Option func(*Model)

// WithFPS sets the animation frame rate (default: 60).
func WithFPS(fps int) Option {
	return func(m *Model) {
		if fps > 0 {
			m.fps = fps
		}
	}
}

// WithKeyMap replaces the default keybindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) {
		m.keys = k
	}
}

// WithStyles replaces the default theme.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.styles = s
	}
}

// WithClock sets the time source used to start animations.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// New creates a model with no flow attached.
func New(opts ...Option) *Model {
	m := &Model{
		ctx:    context.Background(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: DefaultStyles(),
		fps:    60,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.dots = paginator.New()
	m.dots.Type = paginator.Dots
	m.dots.ActiveDot = m.styles.ActiveDot
	m.dots.InactiveDot = m.styles.InactiveDot
	return m
}

// Attach binds the flow the model drives. ctx is passed to every flow call.
func (m *Model) Attach(ctx context.Context, flow Flow) {
	m.ctx = ctx
	m.flow = flow
}

// Err returns the error that stopped the model, if any.
func (m *Model) Err() error {
	return m.err
}

// Render implements ports.Host.
func (m *Model) Render(_ context.Context, view domain.StepView, geo domain.Geometry) error {
	m.previous = m.current
	m.current = &screen{view: view, geo: geo}
	m.dots.SetTotalPages(view.Progress.Total)
	m.dots.Page = view.Progress.Current

	m.entrance = nil
	if view.Entrance != nil && (m.previous == nil || m.previous.view.Index != view.Index) {
		m.entrance = view.Entrance
		m.entranceStart = m.now()
		m.entranceDone = false
	}
	return nil
}

// PlayTransition implements ports.Host. The dots stay on the outgoing page
// until the transition commits.
func (m *Model) PlayTransition(_ context.Context, plan domain.TransitionPlan) error {
	m.anim = newAnimation(plan, m.now(), m.fps)
	if m.previous != nil {
		m.dots.Page = m.previous.view.Progress.Current
	}
	return nil
}

// Dismiss implements ports.Host.
func (m *Model) Dismiss(context.Context) error {
	m.done = true
	return nil
}

func (m *Model) Init() tea.Cmd {
	if m.flow == nil {
		m.err = errors.New("tui: no flow attached")
		return tea.Quit
	}
	if !m.flow.Snapshot().Started {
		if _, err := m.flow.Start(m.ctx); err != nil {
			m.err = err
			return tea.Quit
		}
	}
	return m.next()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		// Terminal cells are about twice as tall as they are wide.
		o := domain.OrientationFor(float64(msg.Width), float64(msg.Height*2))
		m.handle(domain.Rotate{Orientation: o})

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Confirm):
			m.handle(domain.Confirm{})
		case key.Matches(msg, m.keys.Up):
			m.moveSelection(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveSelection(1)
		case key.Matches(msg, m.keys.Pick):
			m.handle(domain.Select{Index: int(msg.String()[0]-'0') - 1})
		case key.Matches(msg, m.keys.Rotate) && m.flow != nil:
			o := domain.Landscape
			if m.flow.Snapshot().Orientation == domain.Landscape {
				o = domain.Portrait
			}
			m.handle(domain.Rotate{Orientation: o})
		}

	case frameMsg:
		m.ticking = false
		m.step(time.Time(msg))
	}

	return m, m.next()
}

// next schedules the following frame while something is animating.
func (m *Model) next() tea.Cmd {
	if m.err != nil || m.done {
		return tea.Quit
	}
	if !m.animating() || m.ticking {
		return nil
	}
	m.ticking = true
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) animating() bool {
	return m.anim != nil || (m.entrance != nil && !m.entranceDone)
}

func (m *Model) step(now time.Time) {
	if m.anim != nil {
		m.anim.advance(now)
		if !m.anim.finished() {
			return
		}
		id := m.anim.plan.ID
		m.anim = nil
		m.previous = nil
		m.dots.Page = m.current.view.Progress.Current
		if m.entrance != nil {
			m.entranceStart = now
		}
		m.handle(domain.TransitionDone{ID: id})
		return
	}

	if m.entrance != nil && now.Sub(m.entranceStart) >= m.entrance.Duration {
		m.entranceDone = true
	}
}

func (m *Model) moveSelection(delta int) {
	if m.current == nil {
		return
	}
	choice, ok := m.current.view.Screen.(domain.ChoiceScreen)
	if !ok || len(choice.Options) == 0 {
		return
	}

	n := len(choice.Options)
	sel := choice.Selected
	switch {
	case sel == domain.NoSelection && delta > 0:
		sel = 0
	case sel == domain.NoSelection:
		sel = n - 1
	default:
		sel = (sel + delta + n) % n
	}
	m.handle(domain.Select{Index: sel})
}

func (m *Model) handle(in domain.Input) {
	if m.flow == nil {
		return
	}
	out, err := m.flow.Handle(m.ctx, in)
	if errors.Is(err, domain.ErrContractViolation) {
		m.status = err.Error()
		return
	}
	if err != nil {
		m.err = err
		return
	}

	switch out {
	case domain.OutcomeGateNotSatisfied:
		m.status = "Pick an option to continue"
	case domain.OutcomeIgnored, domain.OutcomeUnchanged, domain.OutcomeDeferred:
	default:
		m.status = ""
	}
}

// Run runs the model as a Bubble Tea program until the flow is dismissed,
// the user quits or ctx is done.
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return err
	}
	return m.err
}
