// Package config provides YAML-based game configuration loading and
// difficulty presets for the invasion engine.
package config

import "time"

// InvasionConfig contains all tunables for Alien Invasion.
// Sizes are in field pixels; speeds are pixels per tick.
type InvasionConfig struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Ship     ShipConfig     `yaml:"ship"`
	Alien    AlienConfig    `yaml:"alien"`
	Bullet   BulletConfig   `yaml:"bullet"`
	Fleet    FleetConfig    `yaml:"fleet"`
	Scaling  ScalingConfig  `yaml:"scaling"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Bot      BotConfig      `yaml:"bot"`
	Input    InputConfig    `yaml:"input"`
}

// ScreenConfig defines the size of the playing field.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ShipConfig defines the player's ship.
type ShipConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Limit  int     `yaml:"limit"` // Ships per game
	Speed  float64 `yaml:"speed"` // Initial speed factor
}

// AlienConfig defines a single alien.
type AlienConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"`  // Initial speed factor
	Points int     `yaml:"points"` // Initial points per alien
}

// BulletConfig defines the ship's projectiles.
type BulletConfig struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Color   string  `yaml:"color"`
	Allowed int     `yaml:"allowed"` // Max live bullets
	Speed   float64 `yaml:"speed"`   // Initial speed factor
}

// FleetConfig defines fleet-wide movement.
type FleetConfig struct {
	DropSpeed int `yaml:"drop_speed"`
	Direction int `yaml:"direction"` // 1 = right, -1 = left
}

// ScalingConfig defines how the game speeds up on every cleared wave.
type ScalingConfig struct {
	SpeedupScale float64 `yaml:"speedup_scale"`
	ScoreScale   float64 `yaml:"score_scale"`
}

// GameplayConfig holds timing rules.
type GameplayConfig struct {
	LifePause time.Duration `yaml:"life_pause"` // Freeze after losing a ship
}

// BotConfig tunes the scripted player.
type BotConfig struct {
	FireProbability float64 `yaml:"fire_probability"` // Per-tick chance to shoot
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Applied to speed factors at bot start
	EdgeMargin      int     `yaml:"edge_margin"`      // Sweep turn-around distance
}

// InputConfig tunes the terminal input layer.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a movement key stays held after its last repeat
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string into a preset.
// Unknown values yield the empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyInvasionPreset modifies the config based on a difficulty preset.
func ApplyInvasionPreset(cfg *InvasionConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ship.Limit = 5
		cfg.Bullet.Allowed = 5
		cfg.Scaling.SpeedupScale = 1.05
	case DifficultyHard:
		cfg.Ship.Limit = 2
		cfg.Bullet.Allowed = 2
		cfg.Scaling.SpeedupScale = 1.2
	}
}
