package scoring

import "github.com/kingrea/seawolf/internal/model"

// Proximity grades a single value against a target range.
type Proximity int

const (
	Far Proximity = iota
	Near
	Inside
)

func (p Proximity) String() string {
	switch p {
	case Inside:
		return "inside"
	case Near:
		return "near"
	default:
		return "far"
	}
}

// ProximityOf reports whether v is inside r, within one of an edge, or further away.
func ProximityOf(v int, r model.Range) Proximity {
	switch {
	case r.Contains(v):
		return Inside
	case v == r.Low-1 || v == r.High+1:
		return Near
	default:
		return Far
	}
}

// AttributePreview is the running average of one attribute over a partial selection.
type AttributePreview struct {
	Attribute string
	Mean      float64
	Range     model.Range
	InRange   bool
}

// Preview summarizes a partial selection while the player is still choosing.
// It never contributes to a score.
type Preview struct {
	Count        int
	Attributes   []AttributePreview
	HasDesired   bool
	HasUndesired bool
}

// PreviewOf computes running averages for 0..n selected candidates.
func PreviewOf(site model.Site, selected []model.Candidate) Preview {
	p := Preview{Count: len(selected)}
	if len(selected) == 0 {
		return p
	}
	for _, attr := range site.Attributes {
		sum := 0
		for _, c := range selected {
			sum += c.Value(attr)
		}
		r := site.Ranges[attr]
		p.Attributes = append(p.Attributes, AttributePreview{
			Attribute: attr,
			Mean:      float64(sum) / float64(len(selected)),
			Range:     r,
			InRange:   r.ContainsMean(sum, len(selected)),
		})
	}
	for _, c := range selected {
		switch c.Trait {
		case site.Desired:
			p.HasDesired = true
		case site.Undesired:
			p.HasUndesired = true
		}
	}
	return p
}
