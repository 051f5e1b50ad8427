package layout

import (
	"math"

	"github.com/aretw0/onboarding/pkg/domain"
)

// Adapter lays out steps from a validated Profile. It is safe for
// concurrent use: the profile is copied at construction and never mutated.
type Adapter struct {
	profile Profile
}

// New validates p and returns an Adapter bound to a private copy of it.
func New(p Profile) (*Adapter, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Adapter{profile: p.Clone()}, nil
}

// Default returns an Adapter for DefaultProfile.
func Default() *Adapter {
	return &Adapter{profile: DefaultProfile()}
}

// Profile returns a copy of the adapter's profile.
func (a *Adapter) Profile() Profile {
	return a.profile.Clone()
}

// Layout returns the geometry of step in orientation o. Anything other than
// landscape is laid out as portrait. A description slot is only placed when
// the step has a description; an options slot grows with the option count.
func (a *Adapter) Layout(step domain.Step, o domain.Orientation) domain.Geometry {
	if o != domain.Landscape {
		o = domain.Portrait
	}

	portrait := a.profile.Portrait[step.Kind]
	geo := domain.Geometry{
		Kind:        step.Kind,
		Orientation: o,
		Placements:  make([]domain.Placement, 0, len(portrait)),
	}

	for _, pl := range portrait {
		if pl.Slot == domain.SlotDescription && step.Description == "" {
			continue
		}

		f := pl.Frame
		if pl.Slot == domain.SlotOptions && a.profile.OptionRowHeight > 0 && len(step.Options) > 0 {
			f.Height = float64(len(step.Options)) * a.profile.OptionRowHeight
		}
		if o == domain.Landscape {
			f = scale(f, a.profile.Landscape[pl.Slot])
		}
		geo.Placements = append(geo.Placements, domain.Placement{Slot: pl.Slot, Frame: f})
	}

	// Slots anchored to a skipped description move up to the slot it hung from.
	if step.Description == "" {
		reanchor(geo.Placements, portrait)
	}
	return geo
}

func scale(f domain.Frame, factor float64) domain.Frame {
	f.Spacing = round(f.Spacing * factor)
	f.Leading = round(f.Leading * factor)
	f.Trailing = round(f.Trailing * factor)
	f.Width = round(f.Width * factor)
	f.Height = round(f.Height * factor)
	return f
}

func round(v float64) float64 {
	return math.Round(v*100) / 100
}

func reanchor(placements []domain.Placement, portrait []domain.Placement) {
	var parent domain.Slot
	for _, pl := range portrait {
		if pl.Slot == domain.SlotDescription {
			parent = pl.Frame.Relative
		}
	}
	if parent == "" {
		return
	}
	for i := range placements {
		if placements[i].Frame.Relative == domain.SlotDescription {
			placements[i].Frame.Relative = parent
		}
	}
}
