package layout

import (
	"fmt"
	"maps"
	"slices"

	"github.com/aretw0/onboarding/pkg/domain"
)

// Profile is the layout configuration of a step table.
type Profile struct {
	// Portrait lists the placements of each kind in dependency order: a
	// placement may only be relative to a slot listed before it.
	Portrait map[domain.StepKind][]domain.Placement `json:"portrait" yaml:"portrait"`

	// Landscape maps each slot to the factor its portrait values are scaled by.
	Landscape map[domain.Slot]float64 `json:"landscape" yaml:"landscape"`

	// OptionRowHeight sizes the options slot from the option count. Zero keeps
	// the portrait height.
	OptionRowHeight float64 `json:"option_row_height" yaml:"option_row_height"`
}

func bottomControls() []domain.Placement {
	return []domain.Placement{
		{Slot: domain.SlotConfirm, Frame: domain.Frame{Anchor: domain.AnchorSafeBottom, Spacing: 56, Leading: 32, Trailing: 32, Height: 44}},
		{Slot: domain.SlotProgress, Frame: domain.Frame{Anchor: domain.AnchorSafeBottom, Spacing: 10}},
	}
}

// DefaultProfile returns the geometry of the reference phone layout.
func DefaultProfile() Profile {
	return Profile{
		Portrait: map[domain.StepKind][]domain.Placement{
			domain.KindWelcome: append(bottomControls(),
				domain.Placement{Slot: domain.SlotImage, Frame: domain.Frame{Anchor: domain.AnchorSafeTop, Spacing: 255, Leading: 81, Trailing: 99, Height: 64}},
				domain.Placement{Slot: domain.SlotTitle, Frame: domain.Frame{Anchor: domain.AnchorAbove, Relative: domain.SlotConfirm, Spacing: 24, Leading: 41, Trailing: 41}},
			),
			domain.KindHighlight: append(bottomControls(),
				domain.Placement{Slot: domain.SlotImage, Frame: domain.Frame{Anchor: domain.AnchorSafeTop, Spacing: 120, Leading: 90, Trailing: 90, Height: 64}},
				domain.Placement{Slot: domain.SlotHero, Frame: domain.Frame{Anchor: domain.AnchorBelow, Relative: domain.SlotImage, Spacing: 32, Leading: 41.5, Trailing: 41.5, Height: 140}},
				domain.Placement{Slot: domain.SlotTitle, Frame: domain.Frame{Anchor: domain.AnchorBelow, Relative: domain.SlotHero, Spacing: 32, Leading: 32, Trailing: 32}},
				domain.Placement{Slot: domain.SlotDescription, Frame: domain.Frame{Anchor: domain.AnchorBelow, Relative: domain.SlotTitle, Spacing: 8, Leading: 32, Trailing: 32}},
				domain.Placement{Slot: domain.SlotBadge, Frame: domain.Frame{Anchor: domain.AnchorBelow, Relative: domain.SlotDescription, Spacing: 32, Leading: 95.3, Trailing: 95.3, Height: 64}},
			),
			domain.KindChoice: append(bottomControls(),
				domain.Placement{Slot: domain.SlotImage, Frame: domain.Frame{Anchor: domain.AnchorSafeTop, Spacing: 124, Width: 80, Height: 80}},
				domain.Placement{Slot: domain.SlotTitle, Frame: domain.Frame{Anchor: domain.AnchorBelow, Relative: domain.SlotImage, Spacing: 40, Leading: 32, Trailing: 32}},
				domain.Placement{Slot: domain.SlotDescription, Frame: domain.Frame{Anchor: domain.AnchorBelow, Relative: domain.SlotTitle, Spacing: 8, Leading: 32, Trailing: 32}},
				domain.Placement{Slot: domain.SlotOptions, Frame: domain.Frame{Anchor: domain.AnchorBelow, Relative: domain.SlotDescription, Spacing: 24, Leading: 32, Trailing: 32, Height: 200}},
			),
			domain.KindCompletion: append(bottomControls(),
				domain.Placement{Slot: domain.SlotTitle, Frame: domain.Frame{Anchor: domain.AnchorSafeTop, Spacing: 388, Leading: 32, Trailing: 32}},
				domain.Placement{Slot: domain.SlotDescription, Frame: domain.Frame{Anchor: domain.AnchorBelow, Relative: domain.SlotTitle, Spacing: 8, Leading: 32, Trailing: 32}},
			),
		},
		Landscape: map[domain.Slot]float64{
			domain.SlotImage:       0.5,
			domain.SlotHero:        0.45,
			domain.SlotBadge:       0.5,
			domain.SlotTitle:       0.75,
			domain.SlotDescription: 0.8,
			domain.SlotOptions:     0.85,
			domain.SlotConfirm:     0.9,
			domain.SlotProgress:    1.0,
		},
		// 48pt minimum cell height plus 6pt padding above and below.
		OptionRowHeight: 60,
	}
}

// Clone returns a deep copy of p.
func (p Profile) Clone() Profile {
	out := Profile{
		Portrait:        make(map[domain.StepKind][]domain.Placement, len(p.Portrait)),
		Landscape:       maps.Clone(p.Landscape),
		OptionRowHeight: p.OptionRowHeight,
	}
	for k, v := range p.Portrait {
		out.Portrait[k] = slices.Clone(v)
	}
	return out
}

// Validate checks that every (kind, orientation) pair can be laid out.
func (p Profile) Validate() error {
	var reasons []string

	if p.OptionRowHeight < 0 {
		reasons = append(reasons, fmt.Sprintf("negative option row height %v", p.OptionRowHeight))
	}

	for _, kind := range domain.Kinds {
		placements, ok := p.Portrait[kind]
		if !ok || len(placements) == 0 {
			reasons = append(reasons, fmt.Sprintf("%s: no portrait placements", kind))
			continue
		}
		reasons = append(reasons, checkKind(kind, placements, p.Landscape)...)
	}
	for kind := range p.Portrait {
		if !kind.Valid() {
			reasons = append(reasons, fmt.Sprintf("unknown kind %q", kind))
		}
	}
	for _, slot := range slices.Sorted(maps.Keys(p.Landscape)) {
		if f := p.Landscape[slot]; f <= 0 || f > 1 {
			reasons = append(reasons, fmt.Sprintf("slot %s: landscape factor %v outside (0, 1]", slot, f))
		}
	}

	if len(reasons) > 0 {
		return &domain.ConfigurationError{Source: "layout profile", Reasons: reasons}
	}
	return nil
}

func checkKind(kind domain.StepKind, placements []domain.Placement, landscape map[domain.Slot]float64) []string {
	var reasons []string
	seen := make(map[domain.Slot]bool, len(placements))
	// The description is skipped for steps without one, so slots hanging
	// off it need a slot of its own to move up to.
	var descriptionParent domain.Slot

	for _, pl := range placements {
		at := fmt.Sprintf("%s/%s", kind, pl.Slot)
		f := pl.Frame

		if seen[pl.Slot] {
			reasons = append(reasons, at+": placed twice")
		}

		switch f.Anchor {
		case domain.AnchorSafeTop, domain.AnchorSafeBottom:
			if f.Relative != "" {
				reasons = append(reasons, at+": safe-edge anchors take no relative slot")
			}
		case domain.AnchorBelow, domain.AnchorAbove:
			if !seen[f.Relative] {
				reasons = append(reasons, fmt.Sprintf("%s: relative slot %q must be placed earlier", at, f.Relative))
			} else if f.Relative == domain.SlotDescription && descriptionParent == "" {
				reasons = append(reasons, at+": anchored to a description that is not relative to another slot")
			}
		default:
			reasons = append(reasons, fmt.Sprintf("%s: unknown anchor %q", at, f.Anchor))
		}

		if f.Spacing < 0 || f.Leading < 0 || f.Trailing < 0 || f.Width < 0 || f.Height < 0 {
			reasons = append(reasons, at+": negative dimension")
		}
		if _, ok := landscape[pl.Slot]; !ok {
			reasons = append(reasons, at+": no landscape factor")
		}
		if pl.Slot == domain.SlotDescription {
			descriptionParent = f.Relative
		}
		seen[pl.Slot] = true
	}

	for _, required := range []domain.Slot{domain.SlotTitle, domain.SlotConfirm} {
		if !seen[required] {
			reasons = append(reasons, fmt.Sprintf("%s: missing %s slot", kind, required))
		}
	}
	if kind == domain.KindChoice && !seen[domain.SlotOptions] {
		reasons = append(reasons, fmt.Sprintf("%s: missing %s slot", kind, domain.SlotOptions))
	}
	return reasons
}
