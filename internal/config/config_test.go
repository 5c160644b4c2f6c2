package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if cfg != DefaultAbyssConfig() {
		t.Errorf("embedded YAML drifted from DefaultAbyssConfig:\n got %+v\nwant %+v", cfg, DefaultAbyssConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuned.yaml")
	data := "physics:\n  gravity: 0.7\nboss:\n  health: 40\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Physics.Gravity != 0.7 {
		t.Errorf("Gravity = %v, expected 0.7", cfg.Physics.Gravity)
	}
	if cfg.Boss.Health != 40 {
		t.Errorf("Boss.Health = %d, expected 40", cfg.Boss.Health)
	}
	// Keys not named in the file keep their defaults
	if cfg.Physics.MaxCharge != 25 {
		t.Errorf("MaxCharge = %v, expected default 25", cfg.Physics.MaxCharge)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("field: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("field:\n  width: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "field dimensions") {
		t.Errorf("expected field validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AbyssConfig)
		ok     bool
	}{
		{"defaults", func(*AbyssConfig) {}, true},
		{"zero charge", func(c *AbyssConfig) { c.Physics.MaxCharge = 0 }, false},
		{"negative gap range", func(c *AbyssConfig) { c.Platforms.GapRange = -1 }, false},
		{"friction above one", func(c *AbyssConfig) { c.Physics.Friction = 1.5 }, false},
		{"player wider than field", func(c *AbyssConfig) { c.Player.Size = 500 }, false},
		{"zero boss cooldown", func(c *AbyssConfig) { c.Boss.EnragedCooldown = 0 }, false},
		{"no revives", func(c *AbyssConfig) { c.Revive.MaxPerRun = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultAbyssConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, expected error")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"", DifficultyNormal, true},
		{"normal", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"hard", DifficultyHard, true},
		{"fixed", DifficultyFixed, true},
		{"nightmare", "", false},
	}

	for _, tc := range tests {
		got, ok := ParsePreset(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParsePreset(%q) = (%q, %v), expected (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
