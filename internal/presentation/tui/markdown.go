package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/onboarding/pkg/domain"
)

// Markdown formats a step view as a markdown document. Images are written
// as asset references since terminals have no artwork.
func Markdown(view domain.StepView) string {
	var sb strings.Builder

	switch s := view.Screen.(type) {
	case domain.WelcomeScreen:
		fmt.Fprintf(&sb, "![%s](%s)\n\n", s.Logo, s.Logo)
		fmt.Fprintf(&sb, "# %s\n\n", s.Title)
	case domain.HighlightScreen:
		fmt.Fprintf(&sb, "![%s](%s) ![%s](%s)\n\n", s.Logo, s.Logo, s.Hero, s.Hero)
		fmt.Fprintf(&sb, "# %s\n\n", s.Title)
		if s.Description != "" {
			fmt.Fprintf(&sb, "%s\n\n", s.Description)
		}
		fmt.Fprintf(&sb, "![%s](%s)\n\n", s.Badge, s.Badge)
	case domain.ChoiceScreen:
		fmt.Fprintf(&sb, "![%s](%s)\n\n", s.Icon, s.Icon)
		fmt.Fprintf(&sb, "# %s\n\n", s.Title)
		if s.Prompt != "" {
			fmt.Fprintf(&sb, "%s\n\n", s.Prompt)
		}
		for i, opt := range s.Options {
			mark := " "
			if i == s.Selected {
				mark = "x"
			}
			fmt.Fprintf(&sb, "%d. [%s] %s\n", i+1, mark, opt.Label)
		}
		sb.WriteString("\n")
	case domain.CompletionScreen:
		fmt.Fprintf(&sb, "# %s\n\n", s.Title)
		if s.Description != "" {
			fmt.Fprintf(&sb, "%s\n\n", s.Description)
		}
	}

	if view.Confirm.Enabled {
		fmt.Fprintf(&sb, "**[ %s ]**\n\n", view.Confirm.Label)
	} else {
		fmt.Fprintf(&sb, "~~[ %s ]~~\n\n", view.Confirm.Label)
	}
	sb.WriteString(Dots(view.Progress))
	sb.WriteString("\n")
	return sb.String()
}

// Dots draws the page indicator, one dot per step.
func Dots(p domain.Progress) string {
	var sb strings.Builder
	for i := range p.Total {
		if i > 0 {
			sb.WriteString(" ")
		}
		if i == p.Current {
			sb.WriteString("●")
		} else {
			sb.WriteString("○")
		}
	}
	return sb.String()
}
