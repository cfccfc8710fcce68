package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/registry"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// configured is implemented by modes that expose their loaded configuration.
type configured interface {
	Config() config.InvasionConfig
}

// Options holds the optional collaborators of a GameModel.
type Options struct {
	// Store records finished games. May be nil.
	Store *storage.Store

	// HighScore loads the best score before the first game and saves it
	// on game over and quit. May be nil.
	HighScore storage.HighScoreKeeper

	// Logger reports persistence failures and finished games. May be nil.
	Logger *log.Logger

	// Player names the player in log lines (the SSH user).
	Player string

	// ExitOnBack quits the program on Back instead of handing control to a
	// parent model.
	ExitOnBack bool
}

// GameModel is the Bubble Tea model for running a game mode.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	hold       *HoldTracker
	keyMapper  *KeyMapper
	gameState  core.GameState
	tickID     int64
	highScore  int // Best score known to be persisted
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the score has been saved for the current game over
}

// NewGameModel creates a model for game. The persisted high score is loaded
// and handed to the mode before its first Reset.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		hold:       NewHoldTracker(config.DefaultInvasionConfig().Input.HoldTicks),
		keyMapper:  NewKeyMapper(),
		tickID:     nextTickID(),
	}

	if opts.HighScore != nil {
		score, err := opts.HighScore.Load()
		if err != nil {
			m.logWarn("could not load high score", "error", err)
		}
		m.highScore = score
	}
	if seeder, ok := game.(registry.HighScoreSeeder); ok {
		seeder.SeedHighScore(m.highScore)
	}

	return m
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	if c, ok := m.game.(configured); ok {
		m.hold.SetHoldTicks(c.Config().Input.HoldTicks)
	}
	return tickCmd(m.config.TickRate, m.tickID)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The field is independent of the terminal, so a resize only
		// changes the projection.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		m.saveHighScore()
		return m, tea.Quit

	case action == core.ActionBack:
		// An abandoned game is not recorded, but its high score is kept.
		m.saveHighScore()
		m.backToMenu = true
		if m.opts.ExitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case action != core.ActionNone:
		m.hold.Press(action)
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	m.hold.Advance(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	wasActive := m.gameState.Active
	m.gameState = result.State

	if m.gameState.Active && !wasActive {
		m.scoreSaved = false
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.recordGame()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Keys held when the game ends do not carry into the next one
	if wasActive && !m.gameState.Active {
		m.hold.ReleaseAll(&m.inputFrame)
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate, m.tickID)
}

// recordGame stores the finished game and the high score.
func (m *GameModel) recordGame() {
	driver := DriverFor(m.game.ID())

	if m.opts.Logger != nil {
		m.opts.Logger.Info("game over",
			"player", m.opts.Player,
			"mode", m.game.ID(),
			"score", m.gameState.Score,
			"level", m.gameState.Level,
		)
	}

	if m.opts.Store != nil && m.gameState.Score > 0 {
		if _, err := m.opts.Store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Level, driver); err != nil {
			m.logWarn("could not save score", "error", err)
		}
	}
	m.saveHighScore()
}

// saveHighScore persists the game's best score if it beats the stored one.
func (m *GameModel) saveHighScore() {
	best := m.game.State().HighScore
	if m.opts.HighScore == nil || best <= m.highScore {
		return
	}
	if err := m.opts.HighScore.Save(best); err != nil {
		m.logWarn("could not save high score", "error", err)
		return
	}
	m.highScore = best
}

func (m *GameModel) logWarn(msg string, keyvals ...any) {
	if m.opts.Logger != nil {
		m.opts.Logger.Warn(msg, keyvals...)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".invasion", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// DriverFor tells who plays a mode: bot modes end in "_bot".
func DriverFor(gameID string) storage.Driver {
	if strings.HasSuffix(gameID, "_bot") {
		return storage.DriverBot
	}
	return storage.DriverHuman
}

// Run starts the Bubble Tea program for a single mode.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	opts.ExitOnBack = true
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
