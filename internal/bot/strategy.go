// Package bot implements the scripted player: it reads the engine's public
// state each tick and issues the same movement and fire commands a human
// would, before the engine ticks.
package bot

import (
	"math/rand"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/invasion"
)

// Controls is the part of the engine the bot may read and drive.
// *invasion.Engine implements it.
type Controls interface {
	Aliens() []core.Rect
	ShipBounds() core.Rect
	ScreenBounds() core.Rect
	Moving() (left, right bool)
	SetMoving(side invasion.Side, on bool)
	Fire() bool
	Active() bool
	Paused() bool
}

var _ Controls = (*invasion.Engine)(nil)

// Mode is the bot's current movement strategy.
type Mode int

const (
	ModeIdle  Mode = iota // Engine inactive or paused, no decision made
	ModeSweep             // Oscillate between the field edges
	ModeChase             // Track the lowest alien
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeSweep:
		return "sweep"
	case ModeChase:
		return "chase"
	default:
		return "idle"
	}
}

// Decision records what the bot did in one Act call.
type Decision struct {
	Mode  Mode
	Fired bool
}

// Strategy is the fixed heuristic player.
type Strategy struct {
	cfg       config.BotConfig
	rng       *rand.Rand
	fleetSize int // Baseline captured by the first Begin, never refreshed
	begun     bool
}

// New creates a strategy with a deterministic RNG.
func New(cfg config.BotConfig, seed int64) *Strategy {
	return &Strategy{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)), //#nosec G404 -- gameplay randomness
	}
}

// Start begins a game on the engine, applies the speed multiplier, and
// captures the fleet-size baseline on the first run. It reports whether a
// game started.
func (s *Strategy) Start(e *invasion.Engine) bool {
	if !e.StartGame() {
		return false
	}
	if s.cfg.SpeedMultiplier != 1 {
		e.ModifySpeed(s.cfg.SpeedMultiplier)
	}
	s.Begin(e)
	return true
}

// Begin captures the fleet-size baseline from the current fleet. Later calls
// keep the first baseline.
func (s *Strategy) Begin(c Controls) {
	if s.begun {
		return
	}
	s.fleetSize = len(c.Aliens())
	s.begun = true
}

// FleetSize returns the baseline captured by Begin.
func (s *Strategy) FleetSize() int {
	return s.fleetSize
}

// Act makes one decision. It does nothing while the engine is inactive or paused.
func (s *Strategy) Act(c Controls) Decision {
	if !c.Active() || c.Paused() {
		return Decision{Mode: ModeIdle}
	}

	var d Decision
	aliens := c.Aliens()
	if float64(len(aliens)) <= float64(s.fleetSize)/2 {
		d.Mode = ModeChase
		s.chase(c, aliens)
	} else {
		d.Mode = ModeSweep
		s.sweep(c)
	}

	if s.rng.Float64() <= s.cfg.FireProbability {
		d.Fired = c.Fire()
	}
	return d
}

// chase steers toward the target alien's left edge.
func (s *Strategy) chase(c Controls, aliens []core.Rect) {
	target, ok := Target(aliens)
	if !ok {
		return
	}

	ship := c.ShipBounds()
	switch {
	case ship.X < target.X:
		c.SetMoving(invasion.SideLeft, false)
		c.SetMoving(invasion.SideRight, true)
	case ship.X > target.X:
		c.SetMoving(invasion.SideRight, false)
		c.SetMoving(invasion.SideLeft, true)
	default:
		c.SetMoving(invasion.SideLeft, false)
		c.SetMoving(invasion.SideRight, false)
	}
}

// sweep bounces the ship between the field edges.
func (s *Strategy) sweep(c Controls) {
	ship := c.ShipBounds()
	screen := c.ScreenBounds()
	left, right := c.Moving()
	margin := s.cfg.EdgeMargin

	switch {
	case !left && !right:
		c.SetMoving(invasion.SideRight, true)
	case right && ship.Right()+margin > screen.Right():
		c.SetMoving(invasion.SideRight, false)
		c.SetMoving(invasion.SideLeft, true)
	case left && ship.Left() < margin:
		c.SetMoving(invasion.SideLeft, false)
		c.SetMoving(invasion.SideRight, true)
	}
}

// Target returns the alien with the greatest y, ties broken by greatest x.
// ok is false when there are no aliens.
func Target(aliens []core.Rect) (target core.Rect, ok bool) {
	for _, a := range aliens {
		if !ok || a.Y > target.Y || (a.Y == target.Y && a.X > target.X) {
			target, ok = a, true
		}
	}
	return target, ok
}
