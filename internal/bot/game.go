package bot

import (
	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/invasion"
	"github.com/vovakirdan/alien-invasion/internal/registry"
)

// Game is the bot-driven mode. The player only starts and quits; the
// strategy decides movement and fire before every engine tick.
type Game struct {
	*invasion.Game

	strategy *Strategy
	last     Decision
}

// NewGame creates a new bot-driven game instance.
func NewGame() *Game {
	return &Game{Game: invasion.New()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invasion_bot"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Alien Invasion (Bot)"
}

// Reset loads configuration and builds a fresh engine and strategy.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, _ := invasion.LoadConfig()
	g.ResetWith(cfg, runtime)
}

// ResetWith builds a fresh engine and strategy from an explicit config.
func (g *Game) ResetWith(cfg config.InvasionConfig, runtime core.RuntimeConfig) {
	g.Game.ResetWith(cfg, runtime)
	g.strategy = New(cfg.Bot, runtime.Seed)
	g.last = Decision{}
}

// Step lets the bot act and then advances the engine one tick.
// Start (re)launches a bot run and Quit stops it; other actions are ignored.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	e := g.Engine()

	if in.Has(core.ActionQuit) {
		e.Quit()
	} else if in.Has(core.ActionStart) {
		g.strategy.Start(e)
	}

	if !e.Quitting() {
		g.last = g.strategy.Act(e)
	}
	g.Game.Step(core.NewInputFrame())
	return core.StepResult{State: g.State()}
}

// Render draws the field with a bot-specific title hint.
func (g *Game) Render(dst *core.Screen) {
	if g.Engine() == nil {
		return
	}
	invasion.Draw(dst, g.Engine(), "Press S to watch the bot, Q to quit")
	if g.Engine().Active() {
		dst.DrawText(1, dst.Height()-1, "BOT: "+g.last.Mode.String())
	}
}

// Strategy returns the bot driving this game.
func (g *Game) Strategy() *Strategy {
	return g.strategy
}

// LastDecision returns what the bot did on the most recent Step.
func (g *Game) LastDecision() Decision {
	return g.last
}

func init() {
	registry.Register("invasion_bot", func() registry.Game {
		return NewGame()
	})
}
