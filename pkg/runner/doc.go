/*
Package runner drives an onboarding flow from a line-oriented terminal.

It bridges the flow controller and the outside world: TextHost implements
the host port by printing each view as markdown, and Runner reads commands
from a TextHandler and feeds them to the flow.

# Commands

	confirm, c or an empty line   press the confirm button
	select N, s N or N            pick option N (1-based) of a choice step
	rotate portrait|landscape     change orientation
	status                        print the current state
	help                          list commands
	quit                          leave the flow

# Usage

	host := runner.NewTextHost(os.Stdout)
	wizard, err := onboarding.New(steps, host)
	if err != nil {
		log.Fatal(err)
	}

	r := runner.New(runner.NewTextHandler(os.Stdin, os.Stdout), host)
	if err := r.Run(ctx, wizard); err != nil {
		log.Fatal(err)
	}
*/
package runner
