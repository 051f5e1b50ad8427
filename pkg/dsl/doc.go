/*
Package dsl provides a fluent Go builder for onboarding step tables.

It is the programmatic counterpart of the YAML/JSON table files: steps are
appended in order, each kind gets its own constructor, and Build validates the
table eagerly so a malformed flow never reaches a wizard.

Example usage:

	b := dsl.New()

	b.Welcome("Welcome!").Confirm("Continue")
	b.Choice("Pick a level").
		Describe("How experienced are you?").
		Options("Beginner", "Advanced").
		Confirm("Next")
	b.Completion("Done").Confirm("Finish")

	loader, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}
	// ... pass loader to onboarding.NewFromLoader(...)
*/
package dsl
