// internal/model/model.go
//
// Core data types shared by generation, scoring and the session flow.
// Candidates and sites are immutable once generated; nothing here mutates them.

package model

import (
	"fmt"
	"strings"
)

const (
	// MinValue and MaxValue bound every attribute value and every range edge.
	MinValue = 1
	MaxValue = 10

	// AttributesPerSite is fixed: scoring evaluates exactly three averages.
	AttributesPerSite = 3
)

// Candidate is one generated microbe. Name is the identity.
type Candidate struct {
	Name       string         `json:"name" yaml:"name"`
	Icon       string         `json:"icon" yaml:"icon"`
	Attributes map[string]int `json:"attributes" yaml:"attributes"`
	Trait      string         `json:"trait" yaml:"trait"`
}

// Value returns the candidate's value for attr, or 0 when the attribute is unknown.
func (c Candidate) Value(attr string) int {
	return c.Attributes[attr]
}

// Range is an inclusive integer target range.
type Range struct {
	Low  int `json:"low" yaml:"low"`
	High int `json:"high" yaml:"high"`
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool {
	return r.Low <= v && v <= r.High
}

// ContainsMean reports whether sum/n lies within the range. The comparison is
// done by cross-multiplication so no rounding is involved.
func (r Range) ContainsMean(sum, n int) bool {
	if n <= 0 {
		return false
	}
	return r.Low*n <= sum && sum <= r.High*n
}

// Width is High-Low.
func (r Range) Width() int { return r.High - r.Low }

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Low, r.High)
}

// TraitRole classifies a trait relative to a site.
type TraitRole int

const (
	RoleForeign TraitRole = iota
	RoleDesired
	RoleUndesired
	RoleNeutral
)

func (r TraitRole) String() string {
	switch r {
	case RoleDesired:
		return "desired"
	case RoleUndesired:
		return "undesired"
	case RoleNeutral:
		return "neutral"
	default:
		return "foreign"
	}
}

// Site is one cleanup target.
type Site struct {
	Number     int              `json:"number" yaml:"number"`
	Attributes []string         `json:"attributes" yaml:"attributes"`
	Ranges     map[string]Range `json:"ranges" yaml:"ranges"`
	Desired    string           `json:"desired" yaml:"desired"`
	Undesired  string           `json:"undesired" yaml:"undesired"`
	Neutral    []string         `json:"neutral,omitempty" yaml:"neutral,omitempty"`
}

// Traits returns desired, undesired and then the neutral traits.
func (s Site) Traits() []string {
	out := make([]string, 0, 2+len(s.Neutral))
	out = append(out, s.Desired, s.Undesired)
	return append(out, s.Neutral...)
}

// TraitRole reports what a trait means for this site.
func (s Site) TraitRole(trait string) TraitRole {
	switch trait {
	case s.Desired:
		return RoleDesired
	case s.Undesired:
		return RoleUndesired
	}
	for _, n := range s.Neutral {
		if n == trait {
			return RoleNeutral
		}
	}
	return RoleForeign
}

// Characteristics lists everything a player may profile: attributes first, then traits.
func (s Site) Characteristics() []string {
	out := make([]string, 0, len(s.Attributes)+2+len(s.Neutral))
	out = append(out, s.Attributes...)
	return append(out, s.Traits()...)
}

// HasCharacteristic reports whether name is one of the site's attributes or traits.
func (s Site) HasCharacteristic(name string) bool {
	for _, c := range s.Characteristics() {
		if c == name {
			return true
		}
	}
	return false
}

// Validate checks the generation contract. A failure here is a programming
// error, not a player-facing condition.
func (s Site) Validate() error {
	if len(s.Attributes) != AttributesPerSite {
		return fmt.Errorf("site %d: want %d attributes, got %d", s.Number, AttributesPerSite, len(s.Attributes))
	}
	seen := make(map[string]struct{}, len(s.Attributes))
	for _, attr := range s.Attributes {
		if _, dup := seen[attr]; dup {
			return fmt.Errorf("site %d: duplicate attribute %q", s.Number, attr)
		}
		seen[attr] = struct{}{}
		r, ok := s.Ranges[attr]
		if !ok {
			return fmt.Errorf("site %d: missing range for %q", s.Number, attr)
		}
		if r.Low < MinValue || r.High > MaxValue || r.Low > r.High {
			return fmt.Errorf("site %d: invalid range %s for %q", s.Number, r, attr)
		}
	}
	if strings.TrimSpace(s.Desired) == "" || strings.TrimSpace(s.Undesired) == "" {
		return fmt.Errorf("site %d: desired and undesired traits are required", s.Number)
	}
	if s.Desired == s.Undesired {
		return fmt.Errorf("site %d: desired and undesired trait are both %q", s.Number, s.Desired)
	}
	return nil
}

// Pool holds every candidate population a site needs. All of it is generated
// at session start.
type Pool struct {
	Browse  []Candidate   `json:"browse" yaml:"browse"`
	Starter []Candidate   `json:"starter" yaml:"starter"`
	Rounds  [][]Candidate `json:"rounds" yaml:"rounds"`
}

// Names returns the names of the given candidates in order.
func Names(cs []Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}
