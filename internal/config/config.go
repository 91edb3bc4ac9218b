// internal/config/config.go
//
// This package handles configuration and the .seawolf directory structure.
// Every directory Sea Wolf runs from gets a .seawolf/ folder holding config.yaml
// and the logs written during play.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// Dir is the name of the directory we create in the working directory
	Dir = ".seawolf"

	configFileName = "config.yaml"
	logsDirName    = "logs"

	configHeader = `# sea wolf configuration
#
# Vocabularies, generation policy, pool sizes and the session timer.
# Delete this file to regenerate the defaults.
`
)

// Value policies for candidate attribute generation.
const (
	ValuePolicyBiased  = "biased"
	ValuePolicyUniform = "uniform"
)

// Pool bounds. Prospects and round offers are picked with single digit keys.
const (
	MaxProspects = 10
	MaxRoundSize = 9
)

// Vocabulary holds the fixed word lists generation draws from.
type Vocabulary struct {
	Attributes []string `yaml:"attributes"`
	Traits     []string `yaml:"traits"`
	Icons      []string `yaml:"icons"`
}

// NameConfig drives the candidate name generator.
type NameConfig struct {
	Prefixes     []string `yaml:"prefixes"`
	Suffixes     []string `yaml:"suffixes"`
	FallbackStem string   `yaml:"fallback_stem"`
	MaxAttempts  int      `yaml:"max_attempts"`
}

// SiteConfig controls per-site trait counts.
type SiteConfig struct {
	TraitsPerSite int `yaml:"traits_per_site"`
}

// RangePolicy controls target range placement and width.
type RangePolicy struct {
	LowMin   int `yaml:"low_min"`
	LowMax   int `yaml:"low_max"`
	WidthMin int `yaml:"width_min"`
	WidthMax int `yaml:"width_max"`
}

// ValuePolicy controls how candidate attribute values are drawn.
type ValuePolicy struct {
	Policy          string  `yaml:"policy"`
	NearRangeChance float64 `yaml:"near_range_chance"`
	Slack           int     `yaml:"slack"`
}

// TraitBands are the cumulative thresholds of the single trait draw.
// A draw below Desired yields the desired trait, below Undesired the undesired one.
type TraitBands struct {
	Desired   float64 `yaml:"desired"`
	Undesired float64 `yaml:"undesired"`
}

// PoolSizes sets how many candidates each population holds.
type PoolSizes struct {
	Browse         int `yaml:"browse"`
	Starter        int `yaml:"starter"`
	Rounds         int `yaml:"rounds"`
	RoundSize      int `yaml:"round_size"`
	ProspectSeed   int `yaml:"prospect_seed"`
	ProspectTarget int `yaml:"prospect_target"`
}

// ScoringConfig holds the penalty weight.
type ScoringConfig struct {
	PenaltyPerUnit int `yaml:"penalty_per_unit"`
}

// TimerConfig holds the session budget.
type TimerConfig struct {
	BudgetSeconds int `yaml:"budget_seconds"`
}

// Game models .seawolf/config.yaml.
type Game struct {
	Version    int           `yaml:"version"`
	Vocabulary Vocabulary    `yaml:"vocabulary"`
	Names      NameConfig    `yaml:"names"`
	Sites      SiteConfig    `yaml:"sites"`
	Ranges     RangePolicy   `yaml:"ranges"`
	Values     ValuePolicy   `yaml:"values"`
	TraitBands TraitBands    `yaml:"trait_bands"`
	Pools      PoolSizes     `yaml:"pools"`
	Scoring    ScoringConfig `yaml:"scoring"`
	Timer      TimerConfig   `yaml:"timer"`
}

// Config holds the runtime configuration for Sea Wolf.
type Config struct {
	// ProjectDir is the directory where the user ran `seawolf` from
	ProjectDir string

	// StateDir is ProjectDir/.seawolf
	StateDir string

	Game Game
}

// InitDir creates the .seawolf directory structure in the given directory and
// writes the default config when none exists.
//
// Structure created:
// .seawolf/
// ├── config.yaml
// └── logs/
func InitDir(projectDir string) error {
	stateDir := filepath.Join(projectDir, Dir)
	if err := os.MkdirAll(filepath.Join(stateDir, logsDirName), 0o755); err != nil {
		return fmt.Errorf("config: ensure %s: %w", stateDir, err)
	}
	return ensureConfigFile(filepath.Join(stateDir, configFileName))
}

// NewConfig creates a Config populated from .seawolf/config.yaml. A missing
// file yields the defaults.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir: projectDir,
		StateDir:   filepath.Join(projectDir, Dir),
		Game:       Default(),
	}
	game, err := Load(cfg.ConfigPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	cfg.Game = game
	return cfg, nil
}

// ConfigPath returns the on-disk location of the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.StateDir, configFileName)
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.StateDir, logsDirName)
}

// JournalPath returns the play journal location.
func (c *Config) JournalPath() string {
	return filepath.Join(c.LogsDir(), "journey.log")
}

// Load reads a game config from path. Fields missing from the file keep
// their defaults.
func Load(path string) (Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Game{}, err
	}
	return Parse(data)
}

// Parse decodes, schema-checks, normalizes and validates a YAML document.
func Parse(data []byte) (Game, error) {
	if err := validateSchema(data); err != nil {
		return Game{}, fmt.Errorf("config: %w", err)
	}
	game := Default()
	if err := yaml.Unmarshal(data, &game); err != nil {
		return Game{}, fmt.Errorf("config: parse: %w", err)
	}
	game.applyDefaults()
	game.normalize()
	if err := game.Validate(); err != nil {
		return Game{}, fmt.Errorf("config: %w", err)
	}
	return game, nil
}

// Encode renders the game config as YAML with the standard header.
func Encode(g Game) ([]byte, error) {
	body, err := yaml.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return append([]byte(configHeader), body...), nil
}

func (g *Game) applyDefaults() {
	def := Default()
	if g.Version == 0 {
		g.Version = def.Version
	}
	if strings.TrimSpace(g.Names.FallbackStem) == "" {
		g.Names.FallbackStem = def.Names.FallbackStem
	}
	if g.Names.MaxAttempts == 0 {
		g.Names.MaxAttempts = def.Names.MaxAttempts
	}
	if g.Sites.TraitsPerSite == 0 {
		g.Sites.TraitsPerSite = def.Sites.TraitsPerSite
	}
	if strings.TrimSpace(g.Values.Policy) == "" {
		g.Values.Policy = def.Values.Policy
	}
	if g.Scoring.PenaltyPerUnit == 0 {
		g.Scoring.PenaltyPerUnit = def.Scoring.PenaltyPerUnit
	}
	if g.Timer.BudgetSeconds == 0 {
		g.Timer.BudgetSeconds = def.Timer.BudgetSeconds
	}
}

func (g *Game) normalize() {
	g.Vocabulary.Attributes = uniqueTrimmed(g.Vocabulary.Attributes)
	g.Vocabulary.Traits = uniqueTrimmed(g.Vocabulary.Traits)
	g.Vocabulary.Icons = uniqueTrimmed(g.Vocabulary.Icons)
	g.Names.Prefixes = uniqueTrimmed(g.Names.Prefixes)
	g.Names.Suffixes = uniqueTrimmed(g.Names.Suffixes)
	g.Names.FallbackStem = strings.TrimSpace(g.Names.FallbackStem)
	g.Values.Policy = strings.ToLower(strings.TrimSpace(g.Values.Policy))
}

// Validate checks the semantic constraints the schema cannot express.
func (g Game) Validate() error {
	if g.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if len(g.Vocabulary.Attributes) < 3 {
		return fmt.Errorf("vocabulary.attributes needs at least 3 entries")
	}
	if len(g.Vocabulary.Traits) < g.Sites.TraitsPerSite {
		return fmt.Errorf("vocabulary.traits needs at least %d entries", g.Sites.TraitsPerSite)
	}
	if len(g.Vocabulary.Icons) == 0 {
		return fmt.Errorf("vocabulary.icons is required")
	}
	if len(g.Names.Prefixes) == 0 || len(g.Names.Suffixes) == 0 {
		return fmt.Errorf("names.prefixes and names.suffixes are required")
	}
	if g.Sites.TraitsPerSite < 2 {
		return fmt.Errorf("sites.traits_per_site must be >= 2")
	}
	r := g.Ranges
	if r.LowMin < 1 || r.LowMax > 10 || r.LowMin > r.LowMax {
		return fmt.Errorf("ranges: low bounds must satisfy 1 <= low_min <= low_max <= 10")
	}
	if r.WidthMin < 0 || r.WidthMin > r.WidthMax || r.WidthMax > 9 {
		return fmt.Errorf("ranges: width bounds must satisfy 0 <= width_min <= width_max <= 9")
	}
	switch g.Values.Policy {
	case ValuePolicyBiased, ValuePolicyUniform:
	default:
		return fmt.Errorf("values.policy must be %q or %q", ValuePolicyBiased, ValuePolicyUniform)
	}
	if g.Values.NearRangeChance < 0 || g.Values.NearRangeChance > 1 {
		return fmt.Errorf("values.near_range_chance must be within [0,1]")
	}
	if g.TraitBands.Desired < 0 || g.TraitBands.Desired > g.TraitBands.Undesired || g.TraitBands.Undesired > 1 {
		return fmt.Errorf("trait_bands must satisfy 0 <= desired <= undesired <= 1")
	}
	p := g.Pools
	if p.Browse < 1 || p.Starter < 0 || p.Rounds < 0 || p.RoundSize < 1 {
		return fmt.Errorf("pools: browse and round_size must be >= 1")
	}
	if p.RoundSize > MaxRoundSize {
		return fmt.Errorf("pools: round_size must be <= %d", MaxRoundSize)
	}
	if p.ProspectSeed < 0 || p.ProspectTarget < p.ProspectSeed {
		return fmt.Errorf("pools: prospect_target must be >= prospect_seed >= 0")
	}
	if p.ProspectTarget > MaxProspects {
		return fmt.Errorf("pools: prospect_target must be <= %d", MaxProspects)
	}
	if g.Scoring.PenaltyPerUnit < 1 {
		return fmt.Errorf("scoring.penalty_per_unit must be >= 1")
	}
	if g.Timer.BudgetSeconds < 1 {
		return fmt.Errorf("timer.budget_seconds must be >= 1")
	}
	return nil
}

func ensureConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	data, err := Encode(Default())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func uniqueTrimmed(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
