// internal/generate/generate.go
//
// Procedural generation of sites and their candidate pools. Every draw comes
// from one PCG source seeded per session, so a seed reproduces the whole game.

package generate

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/kingrea/seawolf/internal/config"
	"github.com/kingrea/seawolf/internal/model"
	"github.com/kingrea/seawolf/internal/namegen"
)

// NumSites is the number of cleanup targets in a session.
const NumSites = 3

// seedStream decorrelates the second PCG word from the seed.
const seedStream = 0x5eaf00d

// Generator owns the session RNG and the used-name set.
type Generator struct {
	cfg    config.Game
	seed   uint64
	rng    *rand.Rand
	names  *namegen.Generator
	used   map[string]struct{}
	logger *zap.Logger
}

// Option customizes a Generator.
type Option func(*Generator)

// WithLogger routes generation diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New builds a generator for seed.
func New(cfg config.Game, seed uint64, opts ...Option) *Generator {
	rng := rand.New(rand.NewPCG(seed, seed^seedStream))
	g := &Generator{
		cfg:    cfg,
		seed:   seed,
		rng:    rng,
		names:  namegen.New(rng, cfg.Names.Prefixes, cfg.Names.Suffixes, cfg.Names.FallbackStem, cfg.Names.MaxAttempts),
		used:   map[string]struct{}{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// RandomSeed draws a fresh seed for normal play.
func RandomSeed() uint64 {
	return rand.Uint64()
}

// Seed returns the seed this generator was built with.
func (g *Generator) Seed() uint64 { return g.seed }

// Sites builds n sites. Attributes and traits are drawn without replacement
// across sites; when the remainder is too small the full vocabulary is used
// again for that site.
func (g *Generator) Sites(n int) []model.Site {
	usedAttrs := map[string]struct{}{}
	usedTraits := map[string]struct{}{}
	sites := make([]model.Site, 0, n)
	for i := 0; i < n; i++ {
		site := g.site(i+1, usedAttrs, usedTraits)
		if err := site.Validate(); err != nil {
			panic(fmt.Sprintf("generate: %v", err))
		}
		sites = append(sites, site)
	}
	return sites
}

func (g *Generator) site(number int, usedAttrs, usedTraits map[string]struct{}) model.Site {
	attrs := g.sampleUnused(g.cfg.Vocabulary.Attributes, usedAttrs, model.AttributesPerSite, "attributes", number)
	ranges := make(map[string]model.Range, len(attrs))
	for _, attr := range attrs {
		ranges[attr] = g.targetRange()
	}

	traits := g.sampleUnused(g.cfg.Vocabulary.Traits, usedTraits, g.cfg.Sites.TraitsPerSite, "traits", number)
	site := model.Site{
		Number:     number,
		Attributes: attrs,
		Ranges:     ranges,
		Desired:    traits[0],
		Undesired:  traits[1],
	}
	if len(traits) > 2 {
		site.Neutral = traits[2:]
	}
	return site
}

// sampleUnused picks count entries from vocab not yet in used, marking them.
func (g *Generator) sampleUnused(vocab []string, used map[string]struct{}, count int, what string, site int) []string {
	available := make([]string, 0, len(vocab))
	for _, v := range vocab {
		if _, taken := used[v]; !taken {
			available = append(available, v)
		}
	}
	if len(available) < count {
		g.logger.Debug("vocabulary exhausted, reusing full list",
			zap.String("vocabulary", what),
			zap.Int("site", site),
			zap.Int("available", len(available)),
			zap.Int("needed", count))
		available = append([]string(nil), vocab...)
	}
	picked := g.sample(available, count)
	for _, p := range picked {
		used[p] = struct{}{}
	}
	return picked
}

// sample returns count distinct entries of from in random order.
func (g *Generator) sample(from []string, count int) []string {
	pool := append([]string(nil), from...)
	g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if count > len(pool) {
		count = len(pool)
	}
	return pool[:count]
}

// targetRange draws low in [LowMin, LowMax] and widens by [WidthMin, WidthMax],
// capped at MaxValue. A width that collapses below one is widened downwards.
func (g *Generator) targetRange() model.Range {
	p := g.cfg.Ranges
	low := g.intIn(p.LowMin, p.LowMax)
	high := min(low+g.intIn(p.WidthMin, p.WidthMax), model.MaxValue)
	if high-low < max(1, p.WidthMin) {
		low = max(model.MinValue, high-2)
	}
	return model.Range{Low: low, High: high}
}

// intIn returns a uniform integer in [lo, hi].
func (g *Generator) intIn(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.IntN(hi-lo+1)
}
