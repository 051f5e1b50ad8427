/*
Package onboarding drives a linear onboarding wizard: a fixed sequence of steps
(welcome, feature highlight, choice, completion) shown one at a time, each
gated by a confirmation action, laid out per device orientation and animated
between steps.

The Wizard owns the step index and the current selection. A host UI shell
implements ports.Host and feeds the wizard typed inputs; the wizard answers
with views to render, transitions to play and, once the last step is
confirmed, a single dismiss signal. It never draws anything itself.

# Usage

	steps, err := dsl.Canonical().Steps()
	if err != nil {
		log.Fatal(err)
	}

	wiz, err := onboarding.New(steps, host,
		onboarding.WithOrientation(domain.Portrait),
	)
	if err != nil {
		log.Fatal(err)
	}

	// Inputs arrive from the UI: taps, option picks, rotations and
	// "animation finished" notifications.
	inputs := make(chan domain.Input)
	go ui.Forward(inputs)

	if err := wiz.Run(ctx, inputs); err != nil {
		log.Fatal(err)
	}

# Flow

A confirm on a step whose gate is satisfied starts a transition. The host
plays it and reports back with a TransitionDone input; only then does the
wizard move to the next step. Confirm and select inputs that arrive while a
transition is in flight are dropped. Orientation changes re-lay-out the
displayed step at once, or at commit if a transition is in flight.
*/
package onboarding
