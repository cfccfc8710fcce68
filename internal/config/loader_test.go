package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}

	if cfg != DefaultInvasionConfig() {
		t.Errorf("embedded defaults differ from DefaultInvasionConfig():\n%+v\n%+v", cfg, DefaultInvasionConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
ship:
  limit: 7
gameplay:
  life_pause: 2s
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Ship.Limit != 7 {
		t.Errorf("Ship.Limit = %d, expected 7", cfg.Ship.Limit)
	}
	if cfg.Gameplay.LifePause != 2*time.Second {
		t.Errorf("LifePause = %s, expected 2s", cfg.Gameplay.LifePause)
	}
	// Untouched keys keep defaults
	if cfg.Ship.Width != 60 || cfg.Screen.Width != 600 {
		t.Errorf("untouched keys should keep defaults, got ship width %d screen width %d", cfg.Ship.Width, cfg.Screen.Width)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultInvasionConfig()
	cfg.Ship.Limit = 0
	cfg.Fleet.Direction = 0
	cfg.Bot.FireProbability = 2

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}

	for _, want := range []string{"ship: limit", "fleet: direction", "bot: fire_probability"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q should mention %q", err, want)
		}
	}
}

func TestValidateRejectsFlatScaling(t *testing.T) {
	tests := []struct {
		name           string
		speedup, score float64
	}{
		{"speedup of one", 1.0, 1.5},
		{"score of one", 1.1, 1.0},
		{"speedup below one", 0.9, 1.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultInvasionConfig()
			cfg.Scaling.SpeedupScale = tc.speedup
			cfg.Scaling.ScoreScale = tc.score

			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), "scaling:") {
				t.Errorf("Validate() = %v, expected a scaling error", err)
			}
		})
	}
}

func TestPresetsStayValid(t *testing.T) {
	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		cfg := DefaultInvasionConfig()
		ApplyInvasionPreset(&cfg, preset)
		if err := cfg.Validate(); err != nil {
			t.Errorf("%q: Validate() = %v", preset, err)
		}
	}
	if got := ParsePreset("fixed"); got != "" {
		t.Errorf("ParsePreset(\"fixed\") = %q, expected no preset", got)
	}
}

func TestValidateAllowsTinyScreen(t *testing.T) {
	cfg := DefaultInvasionConfig()
	cfg.Screen.Width = 50
	cfg.Screen.Height = 50

	if err := cfg.Validate(); err != nil {
		t.Errorf("a fleet that does not fit should not be a config error: %v", err)
	}
}

func TestLoadInvasionCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("alien:\n  points: 75\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvasion(path)
	if err != nil {
		t.Fatalf("LoadInvasion() failed: %v", err)
	}
	if cfg.Alien.Points != 75 {
		t.Errorf("Alien.Points = %d, expected 75", cfg.Alien.Points)
	}
}

func TestLoadInvasionMissingCustomPath(t *testing.T) {
	_, err := LoadInvasion(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("LoadInvasion() with a missing custom path should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultInvasionConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg != DefaultInvasionConfig() {
		t.Errorf("round trip changed config: %+v", cfg)
	}
}

func TestApplyInvasionPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		shipLimit int
		speedup   float64
	}{
		{DifficultyEasy, 5, 1.05},
		{DifficultyNormal, 3, 1.1},
		{DifficultyHard, 2, 1.2},
		{ParsePreset("bogus"), 3, 1.1},
	}

	for _, tc := range tests {
		cfg := DefaultInvasionConfig()
		ApplyInvasionPreset(&cfg, tc.preset)
		if cfg.Ship.Limit != tc.shipLimit {
			t.Errorf("%q: Ship.Limit = %d, expected %d", tc.preset, cfg.Ship.Limit, tc.shipLimit)
		}
		if cfg.Scaling.SpeedupScale != tc.speedup {
			t.Errorf("%q: SpeedupScale = %g, expected %g", tc.preset, cfg.Scaling.SpeedupScale, tc.speedup)
		}
	}
}
