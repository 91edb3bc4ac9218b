// Package namegen produces unique two-token candidate names.
package namegen

import (
	"fmt"
	"math/rand/v2"
)

// Generator draws "<prefix> <suffix>" names from fixed vocabularies.
type Generator struct {
	prefixes    []string
	suffixes    []string
	stem        string
	maxAttempts int
	rng         *rand.Rand
}

// New builds a generator. rng is shared with the caller so a seeded session
// yields the same names every time.
func New(rng *rand.Rand, prefixes, suffixes []string, stem string, maxAttempts int) *Generator {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Generator{
		prefixes:    prefixes,
		suffixes:    suffixes,
		stem:        stem,
		maxAttempts: maxAttempts,
		rng:         rng,
	}
}

// Generate returns a name not present in used and records it there. After
// maxAttempts collisions it falls back to "<stem>-NNNN"; a collision of the
// fallback itself is accepted.
func (g *Generator) Generate(used map[string]struct{}) string {
	if len(g.prefixes) > 0 && len(g.suffixes) > 0 {
		for range g.maxAttempts {
			name := g.prefixes[g.rng.IntN(len(g.prefixes))] + " " + g.suffixes[g.rng.IntN(len(g.suffixes))]
			if _, taken := used[name]; !taken {
				used[name] = struct{}{}
				return name
			}
		}
	}
	name := fmt.Sprintf("%s-%d", g.stem, 1000+g.rng.IntN(9000))
	used[name] = struct{}{}
	return name
}
