package invasion

import (
	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig loads the configuration with the CLI overrides applied.
// A broken config file falls back to defaults and the error is returned
// alongside so callers can report it.
func LoadConfig() (config.InvasionConfig, error) {
	cfg, err := config.LoadInvasion(configPath)
	if err != nil {
		cfg = config.DefaultInvasionConfig()
	}

	if difficultyPreset != "" {
		config.ApplyInvasionPreset(&cfg, difficultyPreset)
	}
	return cfg, err
}

// Game adapts the engine to the registry: it maps input actions to engine
// commands, ticks the engine once per Step, and draws the field.
type Game struct {
	engine    *Engine
	cfg       config.InvasionConfig
	runtime   core.RuntimeConfig
	highScore int
	last      TickResult
	configErr error
}

// New creates a new Alien Invasion game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invasion"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Alien Invasion"
}

// SeedHighScore sets the persisted best used by the next Reset.
func (g *Game) SeedHighScore(score int) {
	g.highScore = score
}

// Reset loads configuration and builds a fresh, inactive engine.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg, g.configErr = LoadConfig()
	g.ResetWith(g.cfg, runtime)
}

// ResetWith builds a fresh engine from an explicit config.
func (g *Game) ResetWith(cfg config.InvasionConfig, runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = cfg
	if g.engine != nil {
		g.highScore = core.Max(g.highScore, g.engine.Stats().HighScore)
	}
	g.engine = NewEngine(NewSettings(cfg, runtime.TickRate), g.highScore)
	g.last = TickResult{}
}

// Step applies the frame's actions as engine commands and advances one tick.
// Releases are applied before presses so a re-pressed key keeps moving.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.Apply(in)
	g.last = g.engine.Tick()
	return core.StepResult{State: g.State()}
}

// Apply maps input actions onto engine commands without ticking.
func (g *Game) Apply(in core.InputFrame) {
	e := g.engine

	if in.Has(core.ActionQuit) {
		e.Quit()
		return
	}
	if in.Has(core.ActionStart) {
		e.StartGame()
	}

	if in.Has(core.ActionLeftRelease) {
		e.SetMoving(SideLeft, false)
	}
	if in.Has(core.ActionRightRelease) {
		e.SetMoving(SideRight, false)
	}
	if in.Has(core.ActionLeft) {
		e.SetMoving(SideLeft, true)
	}
	if in.Has(core.ActionRight) {
		e.SetMoving(SideRight, true)
	}

	if in.Has(core.ActionFire) {
		e.Fire()
	}
}

// Engine returns the running engine. Nil before the first Reset.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Config returns the configuration used by the last Reset.
func (g *Game) Config() config.InvasionConfig {
	return g.cfg
}

// ConfigError returns the error from loading configuration, if any.
func (g *Game) ConfigError() error {
	return g.configErr
}

// LastTick returns what the most recent Step produced.
func (g *Game) LastTick() TickResult {
	return g.last
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	stats := g.engine.Stats()
	return core.GameState{
		Score:     stats.Score,
		HighScore: stats.HighScore,
		Level:     stats.Level,
		Active:    g.engine.Active(),
		GameOver:  g.engine.GameOver(),
		Paused:    g.engine.Paused(),
		Quit:      g.engine.Quitting(),
	}
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	if g.engine == nil {
		return
	}
	Draw(dst, g.engine, "Press S to play, Q to quit")
}

func init() {
	registry.Register("invasion", func() registry.Game {
		return New()
	})
}
