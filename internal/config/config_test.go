package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewConfigDefaultsWhenMissing(t *testing.T) {
	projectDir := t.TempDir()
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if diff := cmp.Diff(Default(), c.Game); diff != "" {
		t.Fatalf("expected defaults (-want +got):\n%s", diff)
	}
	if c.StateDir != filepath.Join(projectDir, Dir) {
		t.Fatalf("unexpected state dir %s", c.StateDir)
	}
}

func TestInitDirWritesLoadableDefaults(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitDir(projectDir); err != nil {
		t.Fatalf("InitDir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(projectDir, Dir, "logs")); err != nil {
		t.Fatalf("expected logs dir: %v", err)
	}
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if diff := cmp.Diff(Default(), c.Game); diff != "" {
		t.Fatalf("written config does not round-trip (-want +got):\n%s", diff)
	}

	// A second init must not clobber user edits.
	custom := []byte("timer:\n  budget_seconds: 60\n")
	if err := os.WriteFile(c.ConfigPath(), custom, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := InitDir(projectDir); err != nil {
		t.Fatalf("second InitDir: %v", err)
	}
	data, err := os.ReadFile(c.ConfigPath())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(custom) {
		t.Fatalf("InitDir overwrote existing config: %q", data)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	doc := strings.TrimSpace(`
sites:
  traits_per_site: 2
values:
  policy: Uniform
trait_bands:
  desired: 0.3
  undesired: 0.45
timer:
  budget_seconds: 90
`)
	g, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Sites.TraitsPerSite != 2 {
		t.Fatalf("traits per site = %d, want 2", g.Sites.TraitsPerSite)
	}
	if g.Values.Policy != ValuePolicyUniform {
		t.Fatalf("policy = %q, want normalized %q", g.Values.Policy, ValuePolicyUniform)
	}
	if g.Timer.BudgetSeconds != 90 {
		t.Fatalf("budget = %d, want 90", g.Timer.BudgetSeconds)
	}
	if diff := cmp.Diff(Default().Vocabulary, g.Vocabulary); diff != "" {
		t.Fatalf("vocabulary should keep defaults (-want +got):\n%s", diff)
	}
	if g.Pools.Browse != 10 || g.Pools.Starter != 6 || g.Pools.Rounds != 4 {
		t.Fatalf("pool sizes should keep defaults, got %+v", g.Pools)
	}
}

func TestParseNormalizesVocabulary(t *testing.T) {
	doc := "vocabulary:\n  attributes: [' Size ', Size, Energy, Speed, '']\n"
	g, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []string{"Size", "Energy", "Speed"}
	if diff := cmp.Diff(want, g.Vocabulary.Attributes); diff != "" {
		t.Fatalf("attributes (-want +got):\n%s", diff)
	}
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":        "difficulty: hard\n",
		"range out of bound": "ranges:\n  low_max: 12\n",
		"bad policy":         "values:\n  policy: skewed\n",
		"inverted bands":     "trait_bands:\n  desired: 0.7\n  undesired: 0.2\n",
		"low bounds":         "ranges:\n  low_min: 8\n  low_max: 3\n",
		"tiny vocabulary":    "vocabulary:\n  attributes: [Size, Energy]\n",
		"too few traits":     "vocabulary:\n  traits: [A, B, C]\n",
		"prospect bounds":    "pools:\n  prospect_seed: 8\n  prospect_target: 4\n",
		"prospect target":    "pools:\n  prospect_target: 12\n",
		"round size":         "pools:\n  round_size: 10\n",
		"wrong type":         "timer:\n  budget_seconds: soon\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); err == nil {
				t.Fatalf("expected error for %q", doc)
			}
		})
	}
}

func TestParseEmptyDocumentYieldsDefaults(t *testing.T) {
	g, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if diff := cmp.Diff(Default(), g); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestNewConfigSurfacesParseErrors(t *testing.T) {
	projectDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(projectDir, Dir), 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(projectDir, Dir, "config.yaml")
	if err := os.WriteFile(path, []byte("version: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewConfig(projectDir); err == nil {
		t.Fatalf("expected invalid version to be rejected")
	}
}

func TestValidatePoolBounds(t *testing.T) {
	g := Default()
	g.Pools.ProspectTarget = MaxProspects + 1
	if err := g.Validate(); err == nil || !strings.Contains(err.Error(), "prospect_target") {
		t.Fatalf("prospect_target above %d accepted: %v", MaxProspects, err)
	}
	g = Default()
	g.Pools.RoundSize = MaxRoundSize + 1
	if err := g.Validate(); err == nil || !strings.Contains(err.Error(), "round_size") {
		t.Fatalf("round_size above %d accepted: %v", MaxRoundSize, err)
	}
	g = Default()
	g.Pools.RoundSize = MaxRoundSize
	g.Pools.ProspectTarget = MaxProspects
	if err := g.Validate(); err != nil {
		t.Fatalf("bounds themselves must be valid: %v", err)
	}
}
