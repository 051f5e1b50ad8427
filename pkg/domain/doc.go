/*
Package domain contains the core domain models of the onboarding flow engine.
It defines the immutable step table, the screens a host is asked to display,
transition recipes, layout geometry and the lifecycle events emitted while a
wizard runs. This package is kept pure and free of external dependencies like
I/O or rendering, following Hexagonal Architecture principles.

# Key Entities

  - Step: One entry of the step table (Welcome, Highlight, Choice or Completion).
  - StepView: What the host should display for a step (a Screen variant plus confirm control).
  - TransitionSpec: How the host should animate between two rendered steps.
  - Geometry: Resolution-independent slot placements for one (kind, orientation) pair.
  - Input: Typed events delivered by the host (confirm, select, rotate, transition done).
*/
package domain
