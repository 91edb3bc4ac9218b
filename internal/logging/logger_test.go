package logging

import (
	"os"
	"strings"
	"testing"

	"github.com/kingrea/seawolf/internal/config"
)

func TestNewWritesJSONLines(t *testing.T) {
	cfg, err := config.NewConfig(t.TempDir())
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	logger, err := New(cfg, true)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug("debug enabled")
	logger.Info("site scored")
	_ = logger.Sync()

	data, err := os.ReadFile(Path(cfg))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	text := string(data)
	for _, want := range []string{`"msg":"debug enabled"`, `"msg":"site scored"`} {
		if !strings.Contains(text, want) {
			t.Fatalf("log missing %s:\n%s", want, text)
		}
	}
}

func TestNewDropsDebugWhenQuiet(t *testing.T) {
	cfg, err := config.NewConfig(t.TempDir())
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	logger, err := New(cfg, false)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("shown")
	_ = logger.Sync()

	data, err := os.ReadFile(Path(cfg))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Fatalf("debug line written at info level:\n%s", data)
	}
}

func TestNewRequiresConfig(t *testing.T) {
	if _, err := New(nil, false); err == nil {
		t.Fatalf("expected error for nil config")
	}
}
