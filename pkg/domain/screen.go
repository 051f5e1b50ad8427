package domain

import "time"

// Asset is an opaque image reference resolved by the host.
type Asset string

// Assets maps the artwork slots of each screen kind to host asset names.
type Assets struct {
	Logo  Asset `json:"logo" yaml:"logo"`
	Hero  Asset `json:"hero" yaml:"hero"`
	Badge Asset `json:"badge" yaml:"badge"`
	Icon  Asset `json:"icon" yaml:"icon"`
}

// DefaultAssets returns the asset names shipped with the reference app.
func DefaultAssets() Assets {
	return Assets{
		Logo:  "logo",
		Hero:  "hero",
		Badge: "ada",
		Icon:  "icon",
	}
}

// Screen is the content of a step view. It is a closed set: WelcomeScreen,
// HighlightScreen, ChoiceScreen and CompletionScreen.
type Screen interface {
	Kind() StepKind
	isScreen()
}

// WelcomeScreen greets the user.
type WelcomeScreen struct {
	Title string
	Logo  Asset
}

// HighlightScreen presents a feature with logo, hero artwork and a badge.
type HighlightScreen struct {
	Title       string
	Description string
	Logo        Asset
	Hero        Asset
	Badge       Asset
}

// ChoiceScreen lists options and tracks the highlighted one.
type ChoiceScreen struct {
	Title    string
	Prompt   string
	Options  []Option
	Selected int
	Icon     Asset
}

// CompletionScreen ends the flow.
type CompletionScreen struct {
	Title       string
	Description string
}

func (WelcomeScreen) Kind() StepKind    { return KindWelcome }
func (HighlightScreen) Kind() StepKind  { return KindHighlight }
func (ChoiceScreen) Kind() StepKind     { return KindChoice }
func (CompletionScreen) Kind() StepKind { return KindCompletion }

func (WelcomeScreen) isScreen()    {}
func (HighlightScreen) isScreen()  {}
func (ChoiceScreen) isScreen()     {}
func (CompletionScreen) isScreen() {}

// HasSelection reports whether an option is highlighted.
func (c ChoiceScreen) HasSelection() bool {
	return c.Selected >= 0 && c.Selected < len(c.Options)
}

// ConfirmControl describes the confirmation button of a view.
type ConfirmControl struct {
	Label   string
	Enabled bool
}

// Progress is the page indicator state: Current is zero-based.
type Progress struct {
	Current int
	Total   int
}

// Entrance describes how a screen's content animates in once displayed.
type Entrance struct {
	FromScale float64
	Duration  time.Duration
	Curve     Curve
}

// StepView is everything the host needs to display one step.
type StepView struct {
	Index    int
	Screen   Screen
	Confirm  ConfirmControl
	Progress Progress

	// Entrance is nil when the screen appears without its own animation.
	Entrance *Entrance
}

// Kind is a shortcut for the screen kind.
func (v StepView) Kind() StepKind {
	if v.Screen == nil {
		return ""
	}
	return v.Screen.Kind()
}
