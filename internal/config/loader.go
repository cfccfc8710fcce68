package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadInvasion loads Alien Invasion configuration.
// Search order: customPath -> ~/.invasion/configs/invasion.yaml -> ./configs/invasion.yaml -> embedded default.
// Files are decoded on top of the defaults, so a file only needs the keys it changes.
func LoadInvasion(customPath string) (InvasionConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultInvasionConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultInvasionConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("invasion.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/invasion.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultInvasionYAML)
	if err != nil {
		return DefaultInvasionConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the hardcoded defaults and validates the result.
func Parse(data []byte) (InvasionConfig, error) {
	cfg := DefaultInvasionConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg InvasionConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// Validate reports every field that would make the simulation meaningless.
// A fleet that does not fit on screen is allowed; the engine handles it.
func (c InvasionConfig) Validate() error {
	var errs []error

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen: size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Ship.Width <= 0 || c.Ship.Height <= 0 {
		errs = append(errs, fmt.Errorf("ship: size must be positive, got %dx%d", c.Ship.Width, c.Ship.Height))
	}
	if c.Ship.Limit < 1 {
		errs = append(errs, fmt.Errorf("ship: limit must be at least 1, got %d", c.Ship.Limit))
	}
	if c.Alien.Width <= 0 || c.Alien.Height <= 0 {
		errs = append(errs, fmt.Errorf("alien: size must be positive, got %dx%d", c.Alien.Width, c.Alien.Height))
	}
	if c.Alien.Points < 0 {
		errs = append(errs, fmt.Errorf("alien: points must not be negative, got %d", c.Alien.Points))
	}
	if c.Bullet.Width <= 0 || c.Bullet.Height <= 0 {
		errs = append(errs, fmt.Errorf("bullet: size must be positive, got %dx%d", c.Bullet.Width, c.Bullet.Height))
	}
	if c.Bullet.Allowed < 0 {
		errs = append(errs, fmt.Errorf("bullet: allowed must not be negative, got %d", c.Bullet.Allowed))
	}
	if c.Fleet.Direction != 1 && c.Fleet.Direction != -1 {
		errs = append(errs, fmt.Errorf("fleet: direction must be 1 or -1, got %d", c.Fleet.Direction))
	}
	if c.Scaling.SpeedupScale <= 1 || c.Scaling.ScoreScale <= 1 {
		errs = append(errs, fmt.Errorf("scaling: scales must be greater than 1, got speedup=%g score=%g",
			c.Scaling.SpeedupScale, c.Scaling.ScoreScale))
	}
	if c.Gameplay.LifePause < 0 {
		errs = append(errs, fmt.Errorf("gameplay: life_pause must not be negative, got %s", c.Gameplay.LifePause))
	}
	if c.Bot.FireProbability < 0 || c.Bot.FireProbability > 1 {
		errs = append(errs, fmt.Errorf("bot: fire_probability must be in [0,1], got %g", c.Bot.FireProbability))
	}
	if c.Bot.SpeedMultiplier <= 0 {
		errs = append(errs, fmt.Errorf("bot: speed_multiplier must be positive, got %g", c.Bot.SpeedMultiplier))
	}
	if c.Input.HoldTicks < 1 {
		errs = append(errs, fmt.Errorf("input: hold_ticks must be at least 1, got %d", c.Input.HoldTicks))
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invasion", "configs", filename)
}
