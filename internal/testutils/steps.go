package testutils

import "github.com/aretw0/onboarding/pkg/domain"

// FourSteps returns a welcome, highlight, three-option choice and completion table.
func FourSteps() []domain.Step {
	return []domain.Step{
		{Kind: domain.KindWelcome, Title: "Welcome", ConfirmLabel: "Continue"},
		{Kind: domain.KindHighlight, Title: "Mix", ConfirmLabel: "Continue"},
		{Kind: domain.KindChoice, Title: "Welcome DJ", Description: "Level?", ConfirmLabel: "Let's go", Options: []domain.Option{
			{Label: "new"}, {Label: "some"}, {Label: "pro"},
		}},
		{Kind: domain.KindCompletion, Title: "All set", ConfirmLabel: "Done"},
	}
}
