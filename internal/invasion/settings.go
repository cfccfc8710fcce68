// Package invasion implements the Alien Invasion simulation: a ship at the
// bottom of the field shoots at a marching, descending fleet of aliens.
//
// The package is pure game logic. Engine owns every entity and advances the
// world one tick at a time; Game adapts the engine to the arcade registry so
// the terminal platform can drive and draw it.
package invasion

import (
	"math"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// FleetState is the direction shared by every alien of the fleet.
// It lives on Settings and is handed to fleet operations by pointer.
type FleetState struct {
	Direction int // 1 = right, -1 = left
}

// Reverse flips the horizontal direction.
func (f *FleetState) Reverse() {
	f.Direction *= -1
}

// dynamics holds the per-game starting values of the dynamic settings.
type dynamics struct {
	shipSpeed   float64
	bulletSpeed float64
	alienSpeed  float64
	alienPoints int
	direction   int
}

// Settings holds static geometry and the dynamic values that change
// as the game speeds up.
type Settings struct {
	// Static
	ScreenWidth    int
	ScreenHeight   int
	ShipWidth      int
	ShipHeight     int
	AlienWidth     int
	AlienHeight    int
	ShipLimit      int
	BulletWidth    int
	BulletHeight   int
	BulletColor    core.Color
	BulletsAllowed int
	FleetDropSpeed int
	SpeedupScale   float64
	ScoreScale     float64
	PauseTicks     int // Frozen ticks after losing a ship

	// Dynamic, reset by InitializeDynamic and scaled by IncreaseSpeed
	ShipSpeed   float64
	BulletSpeed float64
	AlienSpeed  float64
	AlienPoints int
	Fleet       FleetState

	initial dynamics
}

// NewSettings builds settings from a config. tickRate converts the life-loss
// pause into ticks; non-positive rates fall back to 60.
func NewSettings(cfg config.InvasionConfig, tickRate int) *Settings {
	if tickRate <= 0 {
		tickRate = 60
	}

	s := &Settings{
		ScreenWidth:    cfg.Screen.Width,
		ScreenHeight:   cfg.Screen.Height,
		ShipWidth:      cfg.Ship.Width,
		ShipHeight:     cfg.Ship.Height,
		AlienWidth:     cfg.Alien.Width,
		AlienHeight:    cfg.Alien.Height,
		ShipLimit:      cfg.Ship.Limit,
		BulletWidth:    cfg.Bullet.Width,
		BulletHeight:   cfg.Bullet.Height,
		BulletColor:    ParseColor(cfg.Bullet.Color),
		BulletsAllowed: cfg.Bullet.Allowed,
		FleetDropSpeed: cfg.Fleet.DropSpeed,
		SpeedupScale:   cfg.Scaling.SpeedupScale,
		ScoreScale:     cfg.Scaling.ScoreScale,
		PauseTicks:     int(math.Round(cfg.Gameplay.LifePause.Seconds() * float64(tickRate))),
		initial: dynamics{
			shipSpeed:   cfg.Ship.Speed,
			bulletSpeed: cfg.Bullet.Speed,
			alienSpeed:  cfg.Alien.Speed,
			alienPoints: cfg.Alien.Points,
			direction:   cfg.Fleet.Direction,
		},
	}
	s.InitializeDynamic()
	return s
}

// DefaultSettings returns settings built from the hardcoded defaults at 60 ticks per second.
func DefaultSettings() *Settings {
	return NewSettings(config.DefaultInvasionConfig(), 60)
}

// InitializeDynamic restores the values that change during a game.
func (s *Settings) InitializeDynamic() {
	s.ShipSpeed = s.initial.shipSpeed
	s.BulletSpeed = s.initial.bulletSpeed
	s.AlienSpeed = s.initial.alienSpeed
	s.AlienPoints = s.initial.alienPoints
	s.Fleet = FleetState{Direction: s.initial.direction}
}

// IncreaseSpeed is the level-up transform: speeds grow by SpeedupScale and
// the alien reward by ScoreScale, truncated to an integer.
func (s *Settings) IncreaseSpeed() {
	s.ScaleSpeeds(s.SpeedupScale)
	s.AlienPoints = int(float64(s.AlienPoints) * s.ScoreScale)
}

// ScaleSpeeds multiplies the three speed factors by f.
func (s *Settings) ScaleSpeeds(f float64) {
	s.ShipSpeed *= f
	s.BulletSpeed *= f
	s.AlienSpeed *= f
}

// ScreenRect returns the playing field.
func (s *Settings) ScreenRect() core.Rect {
	return core.NewRect(0, 0, s.ScreenWidth, s.ScreenHeight)
}

// ParseColor maps a config color name to a palette color.
func ParseColor(name string) core.Color {
	switch name {
	case "red":
		return core.ColorRed
	case "green":
		return core.ColorGreen
	case "yellow":
		return core.ColorYellow
	case "cyan":
		return core.ColorCyan
	case "white":
		return core.ColorWhite
	case "gray", "grey":
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}
