package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// isolate points HOME and the working directory at empty temp dirs so the
// developer's own config files do not leak into tests.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(wd)
	return home, wd
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded = %+v\nhardcoded = %+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Game.Variant != "classic" || cfg.Game.Tick != 100*time.Millisecond {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, wd := isolate(t)

	writeFile(t, filepath.Join(wd, "configs", "snake.yaml"), "game:\n  variant: small\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Game.Variant != "small" {
		t.Errorf("local config ignored: variant = %q", cfg.Game.Variant)
	}

	writeFile(t, filepath.Join(home, ".snake", "config.yaml"), "game:\n  variant: wide\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Game.Variant != "wide" {
		t.Errorf("user config should win over local: variant = %q", cfg.Game.Variant)
	}

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "game:\n  variant: classic\n  tick: 50ms\nfood:\n  placement_budget: 0\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Game.Variant != "classic" || cfg.Game.Tick != 50*time.Millisecond {
		t.Errorf("custom config ignored: %+v", cfg.Game)
	}
	if cfg.Food.PlacementBudget != 0 {
		t.Errorf("placement_budget = %d, expected 0", cfg.Food.PlacementBudget)
	}
	if cfg.Storage.DB != "~/.snake/scores.db" {
		t.Errorf("missing keys should keep defaults, db = %q", cfg.Storage.DB)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "game: [unclosed\n")
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "game:\n  tick: 0s\n")
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		ok     bool
	}{
		{"defaults", func(*SnakeConfig) {}, true},
		{"empty variant", func(c *SnakeConfig) { c.Game.Variant = "" }, false},
		{"zero tick", func(c *SnakeConfig) { c.Game.Tick = 0 }, false},
		{"negative budget", func(c *SnakeConfig) { c.Food.PlacementBudget = -1 }, false},
		{"zero budget", func(c *SnakeConfig) { c.Food.PlacementBudget = 0 }, true},
		{"negative idle timeout", func(c *SnakeConfig) { c.Server.IdleTimeout = -time.Second }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() error = %v, expected nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := isolate(t)

	if got := ExpandHome("~/.snake/scores.db"); got != filepath.Join(home, ".snake", "scores.db") {
		t.Errorf("ExpandHome() = %q", got)
	}
	if got := ExpandHome("/tmp/scores.db"); got != "/tmp/scores.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
