package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/onboarding/pkg/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	maxContentWidth = 72
	minContentWidth = 12

	// pointsPerLine converts layout spacing into blank lines.
	pointsPerLine = 16
)

func (m *Model) View() string {
	if m.current == nil || m.done {
		return ""
	}

	width := m.contentWidth()
	body := m.renderScreen(m.current, width)

	switch {
	case m.anim != nil:
		body = m.animate(body, width)
	case m.entrance != nil && !m.entranceDone:
		body = m.styles.Faint.Render(body)
	}

	footer := []string{m.dots.View()}
	if m.status != "" {
		footer = append(footer, m.styles.Status.Render(m.status))
	}
	footer = append(footer, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, body, "", strings.Join(footer, "\n"))
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 60
	}
	return max(minContentWidth, min(maxContentWidth, m.width-4))
}

// animate blends the outgoing and incoming screens for the current frame.
func (m *Model) animate(incoming string, width int) string {
	a := m.anim
	spec := a.plan.Spec

	switch spec.Style {
	case domain.StyleCrossFade:
		if a.progress < 0.5 && m.previous != nil {
			return m.styles.Faint.Render(m.renderScreen(m.previous, width))
		}
		return m.styles.Faint.Render(incoming)

	case domain.StyleSlide:
		shift := min(width, max(0, int(a.progress*float64(width))))
		if m.previous == nil {
			return lipgloss.NewStyle().MarginLeft(width - shift).Render(incoming)
		}
		outgoing := m.renderScreen(m.previous, width)
		if spec.Direction == domain.DirectionBackward {
			// The outgoing screen leaves towards the trailing edge.
			return slideWindow(incoming, outgoing, width, width-shift)
		}
		return slideWindow(outgoing, incoming, width, shift)

	case domain.StyleScaleSpring:
		scaled := max(minContentWidth, int(a.scale()*float64(width)))
		body := m.renderScreen(m.current, scaled)
		if a.progress < 1 {
			body = m.styles.Faint.Render(body)
		}
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
	}
	return incoming
}

// slideWindow lays left and right side by side and returns the width columns
// starting at column from.
func slideWindow(left, right string, width, from int) string {
	strip := lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.PlaceHorizontal(width, lipgloss.Left, left), right)
	lines := strings.Split(strip, "\n")
	for i, line := range lines {
		lines[i] = ansi.Cut(line, from, from+width)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderScreen(s *screen, width int) string {
	st := m.styles
	text := lipgloss.NewStyle().Width(width)

	var art, lines []string
	switch v := s.view.Screen.(type) {
	case domain.WelcomeScreen:
		art = append(art, m.art(v.Logo))
		lines = append(lines, m.gap(s.geo, domain.SlotTitle), text.Render(st.Title.Render(v.Title)))
	case domain.HighlightScreen:
		art = append(art, m.art(v.Logo), m.art(v.Hero))
		lines = append(lines, m.gap(s.geo, domain.SlotTitle), text.Render(st.Title.Render(v.Title)))
		if v.Description != "" {
			lines = append(lines, text.Render(st.Description.Render(v.Description)))
		}
		lines = append(lines, m.gap(s.geo, domain.SlotBadge), m.art(v.Badge))
	case domain.ChoiceScreen:
		art = append(art, m.art(v.Icon))
		lines = append(lines, m.gap(s.geo, domain.SlotTitle), text.Render(st.Title.Render(v.Title)))
		if v.Prompt != "" {
			lines = append(lines, text.Render(st.Description.Render(v.Prompt)))
		}
		lines = append(lines, m.gap(s.geo, domain.SlotOptions))
		for i, opt := range v.Options {
			label := fmt.Sprintf("%d. %s", i+1, opt.Label)
			if i == v.Selected {
				lines = append(lines, st.Selected.Render("› "+label))
				continue
			}
			lines = append(lines, st.Option.Render(label))
		}
	case domain.CompletionScreen:
		lines = append(lines, m.gap(s.geo, domain.SlotTitle), text.Render(st.Title.Render(v.Title)))
		if v.Description != "" {
			lines = append(lines, text.Render(st.Description.Render(v.Description)))
		}
	}

	button := st.ButtonDisabled
	if s.view.Confirm.Enabled {
		button = st.Button
	}
	confirm := button.Render(s.view.Confirm.Label)

	column := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if s.geo.Orientation == domain.Landscape && len(art) > 0 {
		images := lipgloss.JoinVertical(lipgloss.Left, art...)
		return lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, images, "  ", column),
			"",
			confirm,
		)
	}

	parts := append([]string{}, art...)
	parts = append(parts, column, "", confirm)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) art(asset domain.Asset) string {
	return m.styles.Art.Render(string(asset))
}

// gap renders the spacing a slot's frame asks for as blank lines.
func (m *Model) gap(geo domain.Geometry, slot domain.Slot) string {
	f, ok := geo.Frame(slot)
	if !ok {
		return ""
	}
	n := min(2, int(f.Spacing/pointsPerLine))
	return strings.Repeat("\n", max(0, n-1))
}
