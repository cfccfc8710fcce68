package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/invasion.yaml
var defaultInvasionYAML []byte

// DefaultInvasionConfig returns the default Alien Invasion configuration.
func DefaultInvasionConfig() InvasionConfig {
	return InvasionConfig{
		Screen: ScreenConfig{
			Width:  600,
			Height: 500,
		},
		Ship: ShipConfig{
			Width:  60,
			Height: 48,
			Limit:  3,
			Speed:  1.5,
		},
		Alien: AlienConfig{
			Width:  60,
			Height: 58,
			Speed:  1.0,
			Points: 50,
		},
		Bullet: BulletConfig{
			Width:   3,
			Height:  15,
			Color:   "gray",
			Allowed: 3,
			Speed:   3.0,
		},
		Fleet: FleetConfig{
			DropSpeed: 10,
			Direction: 1,
		},
		Scaling: ScalingConfig{
			SpeedupScale: 1.1,
			ScoreScale:   1.5,
		},
		Gameplay: GameplayConfig{
			LifePause: 500 * time.Millisecond,
		},
		Bot: BotConfig{
			FireProbability: 0.01,
			SpeedMultiplier: 1.0,
			EdgeMargin:      10,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvasionYAML
}
