package config

// Default returns the canonical game configuration: biased values, one
// mandatory trait per candidate and five traits per site.
func Default() Game {
	return Game{
		Version: 1,
		Vocabulary: Vocabulary{
			Attributes: []string{
				"Permeability", "Rigidity", "Size", "Energy", "Adhesion",
				"Speed", "Density", "Mobility", "Salinity", "Resilience",
			},
			Traits: []string{
				"Heat-resistant", "Aerobic", "Hydrophilic", "Bioluminescent",
				"Acidophilic", "UV-tolerant", "Phosphorus-removing", "Photosensitive",
				"Cryogenic", "Alkaliphilic", "Halophilic", "Anaerobic",
				"Motile", "Spore-forming", "Nitrogen-fixing", "Oil-degrading",
			},
			Icons: []string{"🦠", "🧫", "🔬", "💊", "🧬", "⚗️", "🫧", "🌀", "💠", "🔮"},
		},
		Names: NameConfig{
			Prefixes: []string{
				"Cyro", "Ops", "Neo", "Flux", "Zeta", "Axo", "Viro", "Plex",
				"Kino", "Rho", "Sigma", "Tau", "Delta", "Omni", "Hexa",
			},
			Suffixes: []string{
				"Virus", "Amoeba", "Bacillus", "Spore", "Phage",
				"Coccus", "Flagella", "Microbe", "Cell", "Organism",
			},
			FallbackStem: "Microbe",
			MaxAttempts:  200,
		},
		Sites: SiteConfig{TraitsPerSite: 5},
		Ranges: RangePolicy{
			LowMin:   1,
			LowMax:   7,
			WidthMin: 1,
			WidthMax: 3,
		},
		Values: ValuePolicy{
			Policy:          ValuePolicyBiased,
			NearRangeChance: 0.55,
			Slack:           1,
		},
		TraitBands: TraitBands{Desired: 0.35, Undesired: 0.55},
		Pools: PoolSizes{
			Browse:         10,
			Starter:        6,
			Rounds:         4,
			RoundSize:      3,
			ProspectSeed:   6,
			ProspectTarget: 10,
		},
		Scoring: ScoringConfig{PenaltyPerUnit: 20},
		Timer:   TimerConfig{BudgetSeconds: 30 * 60},
	}
}
