package dsl

// Canonical returns the builder for the reference DJ app onboarding.
func Canonical() *Builder {
	b := New()

	b.Welcome("Welcome to djay!").
		Confirm("Continue")

	b.Highlight("Mix Your Favorite Music").
		Confirm("Continue")

	b.Choice("Welcome DJ").
		Describe("What's your DJ skill level?").
		Options("I'm new to DJing", "I've used DJ apps before", "I'm a professional DJ").
		Confirm("Let's go")

	b.Completion("You're All Set!").
		Confirm("Done")

	return b
}
