package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/onboarding/pkg/domain"
)

// Selector picks the transition between two consecutive steps.
type Selector interface {
	Select(from, to int) domain.TransitionSpec
}

// Overlay contains dynamic state data to visualize on the graph.
type Overlay struct {
	Visited []int
	Current int
}

// GenerateMermaid produces a Mermaid flowchart of the step table.
// It applies semantic styling:
// - Welcome: ((Circle))
// - Choice (gated): [/Parallelogram/]
// - Completion: ([Stadium])
// - Default: [Rectangle]
// Edges are labelled with the transition spec; edges leaving a gated step
// are dotted. The last step ends in the dismiss node.
func GenerateMermaid(steps []domain.Step, sel Selector, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for i, step := range steps {
		opener, closer := "[", "]"
		switch step.Kind {
		case domain.KindWelcome:
			opener, closer = "((", "))"
		case domain.KindChoice:
			opener, closer = "[/", "/]"
		case domain.KindCompletion:
			opener, closer = "([", "])"
		}
		fmt.Fprintf(&sb, "    %s%s\"%d: %s\"%s\n", nodeID(i), opener, i, escape(step.Title), closer)
	}
	sb.WriteString("    dismiss(((\"dismiss\")))\n")

	for i, step := range steps {
		to := nodeID(i + 1)
		label := "confirm"
		if i+1 == len(steps) {
			to = "dismiss"
		} else if sel != nil {
			label = sel.Select(i, i+1).String()
		}

		if step.RequiresSelection() {
			fmt.Fprintf(&sb, "    %s -. \"%s | needs selection\" .-> %s\n", nodeID(i), escape(label), to)
			continue
		}
		fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", nodeID(i), escape(label), to)
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[int]bool)
		for _, i := range overlay.Visited {
			if i < 0 || i >= len(steps) || seen[i] || i == overlay.Current {
				continue
			}
			seen[i] = true
			fmt.Fprintf(&sb, "    class %s visited;\n", nodeID(i))
		}
		if overlay.Current >= 0 && overlay.Current < len(steps) {
			fmt.Fprintf(&sb, "    class %s current;\n", nodeID(overlay.Current))
		}
	}

	return sb.String()
}

func nodeID(i int) string {
	return fmt.Sprintf("s%d", i)
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
