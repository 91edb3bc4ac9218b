package generate

import (
	"github.com/kingrea/seawolf/internal/config"
	"github.com/kingrea/seawolf/internal/model"
)

// Candidate generates one candidate for site, drawing a name unique within
// the generator's session.
func (g *Generator) Candidate(site model.Site) model.Candidate {
	values := make(map[string]int, len(site.Attributes))
	for _, attr := range site.Attributes {
		values[attr] = g.attributeValue(site.Ranges[attr])
	}
	return model.Candidate{
		Name:       g.names.Generate(g.used),
		Icon:       g.cfg.Vocabulary.Icons[g.rng.IntN(len(g.cfg.Vocabulary.Icons))],
		Attributes: values,
		Trait:      g.trait(site),
	}
}

// attributeValue applies the configured value policy. The biased policy puts
// NearRangeChance of the draws inside the target range widened by Slack.
func (g *Generator) attributeValue(r model.Range) int {
	if g.cfg.Values.Policy == config.ValuePolicyBiased && g.rng.Float64() < g.cfg.Values.NearRangeChance {
		lo := max(model.MinValue, r.Low-g.cfg.Values.Slack)
		hi := min(model.MaxValue, r.High+g.cfg.Values.Slack)
		return g.intIn(lo, hi)
	}
	return g.intIn(model.MinValue, model.MaxValue)
}

// trait assigns exactly one trait from a single draw.
func (g *Generator) trait(site model.Site) string {
	r := g.rng.Float64()
	switch {
	case r < g.cfg.TraitBands.Desired:
		return site.Desired
	case r < g.cfg.TraitBands.Undesired:
		return site.Undesired
	}
	pool := site.Neutral
	if len(pool) == 0 {
		pool = make([]string, 0, len(g.cfg.Vocabulary.Traits))
		for _, t := range g.cfg.Vocabulary.Traits {
			if t != site.Desired && t != site.Undesired {
				pool = append(pool, t)
			}
		}
	}
	if len(pool) == 0 {
		pool = g.cfg.Vocabulary.Traits
	}
	return pool[g.rng.IntN(len(pool))]
}

func (g *Generator) candidates(site model.Site, n int) []model.Candidate {
	out := make([]model.Candidate, n)
	for i := range out {
		out[i] = g.Candidate(site)
	}
	return out
}

// Pool generates every population a site needs: the browsing pool, the
// starter set and the forced-choice rounds.
func (g *Generator) Pool(site model.Site) model.Pool {
	p := g.cfg.Pools
	pool := model.Pool{
		Browse:  g.candidates(site, p.Browse),
		Starter: g.candidates(site, p.Starter),
		Rounds:  make([][]model.Candidate, p.Rounds),
	}
	for i := range pool.Rounds {
		pool.Rounds[i] = g.candidates(site, p.RoundSize)
	}
	return pool
}

// Pools generates a pool per site, in site order.
func (g *Generator) Pools(sites []model.Site) []model.Pool {
	pools := make([]model.Pool, len(sites))
	for i, site := range sites {
		pools[i] = g.Pool(site)
	}
	return pools
}

// World is a fully generated session: sites and their pools.
type World struct {
	Seed  uint64       `json:"seed" yaml:"seed"`
	Sites []model.Site `json:"sites" yaml:"sites"`
	Pools []model.Pool `json:"pools" yaml:"pools"`
}

// Generate builds the complete world for seed.
func Generate(cfg config.Game, seed uint64, opts ...Option) World {
	g := New(cfg, seed, opts...)
	sites := g.Sites(NumSites)
	return World{Seed: seed, Sites: sites, Pools: g.Pools(sites)}
}
