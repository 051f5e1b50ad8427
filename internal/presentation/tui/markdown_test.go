package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/onboarding/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown(t *testing.T) {
	t.Run("Choice Marks Selection", func(t *testing.T) {
		view := domain.StepView{
			Index: 2,
			Screen: domain.ChoiceScreen{
				Title:    "Welcome DJ",
				Prompt:   "Level?",
				Options:  []domain.Option{{Label: "new"}, {Label: "pro"}},
				Selected: 1,
				Icon:     "icon",
			},
			Confirm:  domain.ConfirmControl{Label: "Let's go", Enabled: true},
			Progress: domain.Progress{Current: 2, Total: 4},
		}

		md := Markdown(view)
		assert.Contains(t, md, "# Welcome DJ")
		assert.Contains(t, md, "Level?")
		assert.Contains(t, md, "1. [ ] new")
		assert.Contains(t, md, "2. [x] pro")
		assert.Contains(t, md, "**[ Let's go ]**")
		assert.True(t, strings.HasSuffix(md, "○ ○ ● ○\n"))
	})

	t.Run("Disabled Confirm", func(t *testing.T) {
		view := domain.StepView{
			Screen:   domain.ChoiceScreen{Title: "Pick", Selected: domain.NoSelection},
			Confirm:  domain.ConfirmControl{Label: "Next"},
			Progress: domain.Progress{Total: 1},
		}
		assert.Contains(t, Markdown(view), "~~[ Next ]~~")
	})

	t.Run("Highlight Skips Empty Description", func(t *testing.T) {
		view := domain.StepView{
			Screen:   domain.HighlightScreen{Title: "Mix", Logo: "logo", Hero: "hero", Badge: "ada"},
			Confirm:  domain.ConfirmControl{Label: "Continue", Enabled: true},
			Progress: domain.Progress{Current: 1, Total: 4},
		}
		md := Markdown(view)
		assert.Contains(t, md, "![hero](hero)")
		assert.Contains(t, md, "# Mix\n\n![ada](ada)")
	})
}

func TestDots(t *testing.T) {
	assert.Equal(t, "● ○ ○", Dots(domain.Progress{Current: 0, Total: 3}))
	assert.Equal(t, "", Dots(domain.Progress{}))
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)

	// A buffer is not a terminal, so no escape sequences are written.
	out := buf.String()
	require.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, `\___/|_| |_|_.__/`)
}

func TestPlainRenderer(t *testing.T) {
	out, err := PlainRenderer("# Title")
	require.NoError(t, err)
	assert.Equal(t, "# Title", out)
}
