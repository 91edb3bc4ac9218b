// Package scoring evaluates a treatment trio against a site's requirements.
package scoring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kingrea/seawolf/internal/model"
)

// TrioSize is the number of candidates in a treatment.
const TrioSize = 3

// DefaultPenaltyPerUnit is the deduction for one unmet condition.
const DefaultPenaltyPerUnit = 20

// ErrMalformedTrio is returned when a trio is not exactly three distinct members.
var ErrMalformedTrio = errors.New("scoring: treatment must be exactly 3 distinct candidates")

// Kind identifies the condition a line reports on.
type Kind string

const (
	KindAttribute  Kind = "attribute"
	KindDesired    Kind = "desired"
	KindUndesired  Kind = "undesired"
	KindIncomplete Kind = "incomplete"
)

// Line is one evaluated condition.
type Line struct {
	Kind      Kind        `json:"kind"`
	Subject   string      `json:"subject"`
	Met       bool        `json:"met"`
	Units     int         `json:"units"`
	Mean      float64     `json:"mean,omitempty"`
	Range     model.Range `json:"range"`
	Offenders []string    `json:"offenders,omitempty"`
	Note      string      `json:"note,omitempty"`
}

// String renders the line for the explanation list.
func (l Line) String() string {
	flag := "[met]"
	if !l.Met {
		flag = "[unmet]"
	}
	switch l.Kind {
	case KindAttribute:
		if l.Met {
			return fmt.Sprintf("%s %s: avg %.2f (range %s)", flag, l.Subject, l.Mean, l.Range)
		}
		return fmt.Sprintf("%s %s: avg %.2f (range %s), out of range", flag, l.Subject, l.Mean, l.Range)
	case KindDesired:
		if l.Met {
			return fmt.Sprintf("%s Desired trait %s: present", flag, l.Subject)
		}
		return fmt.Sprintf("%s Desired trait %s: missing", flag, l.Subject)
	case KindUndesired:
		if l.Met {
			return fmt.Sprintf("%s Undesired trait %s: absent", flag, l.Subject)
		}
		return fmt.Sprintf("%s Undesired trait %s: present in %s", flag, l.Subject, strings.Join(l.Offenders, ", "))
	default:
		return fmt.Sprintf("%s %s", flag, l.Note)
	}
}

// Result is a scored treatment.
type Result struct {
	Score        int      `json:"score"`
	PenaltyUnits int      `json:"penalty_units"`
	Lines        []Line   `json:"lines"`
	Trio         []string `json:"trio,omitempty"`
	Incomplete   bool     `json:"incomplete,omitempty"`
}

// Explanation returns the rendered lines in evaluation order.
func (r Result) Explanation() []string {
	out := make([]string, len(r.Lines))
	for i, l := range r.Lines {
		out[i] = l.String()
	}
	return out
}

// Scorer evaluates trios with a fixed penalty weight.
type Scorer struct {
	PenaltyPerUnit int
}

// New returns a scorer; a non-positive penalty falls back to the default.
func New(penaltyPerUnit int) Scorer {
	if penaltyPerUnit <= 0 {
		penaltyPerUnit = DefaultPenaltyPerUnit
	}
	return Scorer{PenaltyPerUnit: penaltyPerUnit}
}

// Evaluate scores trio against site with the default penalty weight.
func Evaluate(site model.Site, trio []model.Candidate) (Result, error) {
	return New(DefaultPenaltyPerUnit).Evaluate(site, trio)
}

// Evaluate scores trio against site. Attribute and desired-trait conditions
// cost at most one unit each; every undesired-trait member costs one unit.
func (s Scorer) Evaluate(site model.Site, trio []model.Candidate) (Result, error) {
	if err := checkTrio(trio); err != nil {
		return Result{}, err
	}
	res := Result{Trio: model.Names(trio)}

	for _, attr := range site.Attributes {
		r := site.Ranges[attr]
		sum := 0
		for _, c := range trio {
			sum += c.Value(attr)
		}
		line := Line{
			Kind:    KindAttribute,
			Subject: attr,
			Mean:    float64(sum) / float64(len(trio)),
			Range:   r,
			Met:     r.ContainsMean(sum, len(trio)),
		}
		if !line.Met {
			line.Units = 1
		}
		res.add(line)
	}

	desired := Line{Kind: KindDesired, Subject: site.Desired}
	for _, c := range trio {
		if c.Trait == site.Desired {
			desired.Met = true
			break
		}
	}
	if !desired.Met {
		desired.Units = 1
	}
	res.add(desired)

	undesired := Line{Kind: KindUndesired, Subject: site.Undesired}
	for _, c := range trio {
		if c.Trait == site.Undesired {
			undesired.Offenders = append(undesired.Offenders, c.Name)
		}
	}
	undesired.Units = len(undesired.Offenders)
	undesired.Met = undesired.Units == 0
	res.add(undesired)

	res.Score = max(0, 100-s.PenaltyPerUnit*res.PenaltyUnits)
	return res, nil
}

func (r *Result) add(l Line) {
	r.Lines = append(r.Lines, l)
	r.PenaltyUnits += l.Units
}

// Incomplete is the result recorded for a site that was force-finalized
// without a full treatment.
func Incomplete(reason string) Result {
	if strings.TrimSpace(reason) == "" {
		reason = "incomplete selection"
	}
	return Result{
		Score:      0,
		Incomplete: true,
		Lines:      []Line{{Kind: KindIncomplete, Note: reason}},
	}
}

func checkTrio(trio []model.Candidate) error {
	if len(trio) != TrioSize {
		return fmt.Errorf("%w: got %d", ErrMalformedTrio, len(trio))
	}
	seen := make(map[string]struct{}, len(trio))
	for _, c := range trio {
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("%w: %q appears twice", ErrMalformedTrio, c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}
