// Package tui is a Bubble Tea host for the onboarding flow.
//
// Model implements both tea.Model and ports.Host: the flow renders into the
// model, and the model plays transitions frame by frame before reporting
// them back with TransitionDone. Terminal size changes become orientation
// changes.
package tui
