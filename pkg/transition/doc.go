// Package transition selects the animation recipe used between two steps.
//
// A Table maps (from, to) step index pairs to a domain.TransitionSpec and
// falls back to a default recipe for every unlisted pair, including the
// terminal confirm that dismisses the flow. Selection is a pure function of
// the pair, so tables can be swapped or loaded from files without touching
// the flow controller.
package transition
