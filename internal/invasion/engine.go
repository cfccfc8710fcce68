package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Phase is the engine's lifecycle state.
type Phase int

const (
	PhaseInactive Phase = iota // Waiting for StartGame, or game over
	PhaseActive                // World advances every tick
	PhasePaused                // Frozen after losing a ship
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhasePaused:
		return "paused"
	default:
		return "inactive"
	}
}

// EventKind identifies something that happened during a tick or command.
type EventKind int

const (
	EventGameStarted EventKind = iota
	EventAliensDestroyed
	EventHighScore
	EventLevelUp
	EventShipHit
	EventResumed
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventGameStarted:
		return "game_started"
	case EventAliensDestroyed:
		return "aliens_destroyed"
	case EventHighScore:
		return "high_score"
	case EventLevelUp:
		return "level_up"
	case EventShipHit:
		return "ship_hit"
	case EventResumed:
		return "resumed"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a notable state change. Count is the number of aliens destroyed
// for EventAliensDestroyed and zero otherwise.
type Event struct {
	Kind      EventKind
	Tick      uint64
	Score     int
	Level     int
	ShipsLeft int
	Count     int
}

// TickResult is what a single Tick produced.
type TickResult struct {
	Phase  Phase
	Events []Event
}

// Engine owns the ship, fleet, bullets, stats, and settings, and runs the
// per-tick update order. It does no I/O: shells drive it through commands
// and persist the high score themselves.
type Engine struct {
	settings *Settings
	stats    *Stats
	ship     *Ship
	fleet    *Fleet
	bullets  []*Bullet

	phase       Phase
	pauseLeft   int
	played      bool // At least one game was started
	quit        bool
	hitThisTick bool
	degenerate  bool // Fleet geometry yields zero aliens
	tick        uint64

	events []Event // Pending, drained by Tick
}

// NewEngine creates an inactive engine with the ship centered and a fleet on
// screen. highScore seeds the persisted best.
func NewEngine(settings *Settings, highScore int) *Engine {
	e := &Engine{
		settings: settings,
		stats:    NewStats(settings.ShipLimit, highScore),
		ship:     NewShip(settings),
		fleet:    NewFleet(settings),
	}
	e.createFleet()
	return e
}

// StartGame resets dynamic settings and stats and begins a game.
// It is a no-op while a game is running; it reports whether a game started.
func (e *Engine) StartGame() bool {
	if e.quit || e.phase != PhaseInactive {
		return false
	}

	e.settings.InitializeDynamic()
	e.stats.Reset()
	e.stats.Active = true
	e.phase = PhaseActive
	e.pauseLeft = 0
	e.played = true

	e.fleet.Clear()
	e.bullets = nil
	e.createFleet()
	e.ship.Center()

	e.emit(EventGameStarted, 0)
	return true
}

// SetMoving records a movement intent. Intents are kept in every phase.
func (e *Engine) SetMoving(side Side, on bool) {
	e.ship.SetMoving(side, on)
}

// Moving returns the ship's movement intents.
func (e *Engine) Moving() (left, right bool) {
	return e.ship.MovingLeft, e.ship.MovingRight
}

// Fire spawns a bullet at the ship's top-center if the game is running and
// fewer than BulletsAllowed bullets are alive. It reports whether one spawned.
func (e *Engine) Fire() bool {
	if e.phase != PhaseActive {
		return false
	}
	if len(e.bullets) >= e.settings.BulletsAllowed {
		return false
	}
	e.bullets = append(e.bullets, newBullet(e.settings, e.ship.Bounds()))
	return true
}

// Quit marks the engine finished. Later ticks and commands do nothing.
func (e *Engine) Quit() {
	e.quit = true
}

// Quitting reports whether Quit was called.
func (e *Engine) Quitting() bool {
	return e.quit
}

// ModifySpeed multiplies the ship, bullet, and alien speeds by f.
func (e *Engine) ModifySpeed(f float64) {
	e.settings.ScaleSpeeds(f)
}

// Tick advances the world by one step.
//
// Order: ship, bullets (move, cull, collide, wave clear), then aliens
// (edges, move, ship collision, bottom reach).
func (e *Engine) Tick() TickResult {
	if !e.quit {
		switch e.phase {
		case PhaseActive:
			e.tick++
			e.hitThisTick = false
			e.ship.Update()
			e.updateBullets()
			if e.phase == PhaseActive {
				e.updateAliens()
			}
		case PhasePaused:
			e.tick++
			e.pauseLeft--
			if e.pauseLeft <= 0 {
				e.phase = PhaseActive
				e.emit(EventResumed, 0)
			}
		}
	}

	res := TickResult{Phase: e.phase, Events: e.events}
	e.events = nil
	return res
}

func (e *Engine) updateBullets() {
	for _, b := range e.bullets {
		b.Update()
	}
	e.removeSpentBullets()
	e.checkBulletAlienCollisions()
}

func (e *Engine) removeSpentBullets() {
	kept := e.bullets[:0]
	for _, b := range e.bullets {
		if !b.Spent() {
			kept = append(kept, b)
		}
	}
	clear(e.bullets[len(kept):])
	e.bullets = kept
}

// checkBulletAlienCollisions removes every bullet that hit something along
// with every alien it overlaps, then starts a new level once the fleet is gone.
func (e *Engine) checkBulletAlienCollisions() {
	destroyed := 0
	kept := e.bullets[:0]
	for _, b := range e.bullets {
		n := e.fleet.DestroyOverlapping(b.Bounds())
		if n == 0 {
			kept = append(kept, b)
			continue
		}
		destroyed += n
	}
	clear(e.bullets[len(kept):])
	e.bullets = kept

	if destroyed > 0 {
		e.stats.Score += destroyed * e.settings.AlienPoints
		e.emit(EventAliensDestroyed, destroyed)
		if e.stats.CheckHighScore() {
			e.emit(EventHighScore, 0)
		}
	}

	if e.fleet.Empty() && !e.degenerate {
		e.startNewLevel()
	}
}

func (e *Engine) startNewLevel() {
	e.bullets = nil
	e.settings.IncreaseSpeed()
	e.createFleet()
	e.stats.Level++
	e.emit(EventLevelUp, 0)
}

func (e *Engine) updateAliens() {
	e.fleet.CheckFleetEdges(&e.settings.Fleet)
	e.fleet.Update()

	if e.fleet.Collides(e.ship.Bounds()) {
		e.shipHit()
	}
	if e.fleet.ReachedBottom(e.settings.ScreenHeight) {
		e.shipHit()
	}
}

// shipHit loses a ship. At most one hit counts per tick.
func (e *Engine) shipHit() {
	if e.hitThisTick {
		return
	}
	e.hitThisTick = true

	if e.stats.ShipsLeft > 1 {
		e.stats.ShipsLeft--
		e.fleet.Clear()
		e.bullets = nil
		e.createFleet()
		e.ship.Center()
		e.emit(EventShipHit, 0)

		if e.settings.PauseTicks > 0 {
			e.phase = PhasePaused
			e.pauseLeft = e.settings.PauseTicks
		}
		return
	}

	e.stats.ShipsLeft = 0
	e.stats.Active = false
	e.phase = PhaseInactive
	e.emit(EventGameOver, 0)
}

func (e *Engine) createFleet() {
	e.degenerate = e.fleet.Populate() == 0
}

func (e *Engine) emit(kind EventKind, count int) {
	e.events = append(e.events, Event{
		Kind:      kind,
		Tick:      e.tick,
		Score:     e.stats.Score,
		Level:     e.stats.Level,
		ShipsLeft: e.stats.ShipsLeft,
		Count:     count,
	})
}

// Phase returns the lifecycle state.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Active reports whether a game is running, paused or not.
func (e *Engine) Active() bool {
	return e.phase != PhaseInactive
}

// Paused reports whether the engine is frozen after a lost ship.
func (e *Engine) Paused() bool {
	return e.phase == PhasePaused
}

// GameOver reports whether a started game has ended.
func (e *Engine) GameOver() bool {
	return e.played && e.phase == PhaseInactive
}

// Degenerate reports whether the configured geometry fits no aliens.
func (e *Engine) Degenerate() bool {
	return e.degenerate
}

// Stats returns a copy of the current stats.
func (e *Engine) Stats() Stats {
	return *e.stats
}

// Settings returns the engine's settings. Callers must treat them as read-only.
func (e *Engine) Settings() *Settings {
	return e.settings
}

// Ticks returns the number of ticks simulated while a game was running.
func (e *Engine) Ticks() uint64 {
	return e.tick
}

// ShipBounds returns the ship's bounding box.
func (e *Engine) ShipBounds() core.Rect {
	return e.ship.Bounds()
}

// ScreenBounds returns the playing field.
func (e *Engine) ScreenBounds() core.Rect {
	return e.settings.ScreenRect()
}

// Aliens returns the bounding boxes of the live aliens.
func (e *Engine) Aliens() []core.Rect {
	out := make([]core.Rect, 0, e.fleet.Len())
	for _, a := range e.fleet.Aliens() {
		out = append(out, a.Bounds())
	}
	return out
}

// Bullets returns the bounding boxes of the live bullets.
func (e *Engine) Bullets() []core.Rect {
	out := make([]core.Rect, 0, len(e.bullets))
	for _, b := range e.bullets {
		out = append(out, b.Bounds())
	}
	return out
}

// LowestAlien returns the alien with the greatest top edge (ties: greatest left edge).
func (e *Engine) LowestAlien() (core.Rect, bool) {
	return e.fleet.Lowest()
}
