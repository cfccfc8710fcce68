// invasion is a terminal rendition of Alien Invasion: shoot down the fleet
// before it lands, or watch the scripted bot do it.
//
// Usage:
//
//	invasion play            - Play a game
//	invasion bot             - Watch the bot play (or run it headless)
//	invasion menu            - Pick a mode interactively
//	invasion serve           - Start SSH server for remote play
//	invasion scores [mode]   - Show high scores
//	invasion list            - List available modes
//	invasion config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>              - Set tick rate (default: 60)
//	--seed <value>            - Set RNG seed for reproducible bot runs
//	--db <path>               - Set database path (default: ~/.invasion/scores.db)
//	--config <path>           - Use a custom config YAML
//	--difficulty <preset>     - easy, normal or hard
//	--high-score-file <path>  - High score file (default: ~/.invasion/high_score.json)
//	--log-level <level>       - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/invasion"
	"github.com/vovakirdan/alien-invasion/internal/storage"

	// Registers invasion and invasion_bot
	_ "github.com/vovakirdan/alien-invasion/internal/bot"
)

var (
	// Global flags
	flagFPS           int
	flagSeed          int64
	flagDBPath        string
	flagConfig        string
	flagDifficulty    string
	flagHighScoreFile string
	flagLogLevel      string
)

// logger is the root logger, built from --log-level before any command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "invasion",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invasion",
	Short: "Alien Invasion - defend the planet from your terminal",
	Long: `Alien Invasion is a terminal shoot-'em-up: a fleet of aliens sweeps
across the screen and drops closer at every edge. Shoot them all before
they land or ram your ship.

Available commands:
  play     - Play a game
  bot      - Watch the bot play, or run it headless
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show all available modes
  config   - Print the effective configuration

Examples:
  invasion play
  invasion play --difficulty hard
  invasion bot --headless --seed 42
  invasion serve --ssh :2222
  invasion scores`,
	PersistentPreRun: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invasion/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagHighScoreFile, "high-score-file", storage.DefaultHighScorePath, "Path to the high score file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(botCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies the global flags shared by every command.
func setup(_ *cobra.Command, _ []string) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid --log-level %q\n", flagLogLevel)
		os.Exit(1)
	}
	logger.SetLevel(level)

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (use easy, normal or hard)\n", flagDifficulty)
		os.Exit(1)
	}
	if flagFPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --fps must be positive, got %d\n", flagFPS)
		os.Exit(1)
	}

	invasion.SetConfigPath(flagConfig)
	invasion.SetDifficultyPreset(flagDifficulty)
}

// checkConfig loads the configuration once so a broken file is reported
// before the terminal switches to the alternate screen.
func checkConfig() {
	if _, err := invasion.LoadConfig(); err != nil {
		logger.Warn("invalid config, using defaults", "error", err)
	}
}

// runtimeConfig builds the runtime config from the flags and terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - the game still works
		return nil
	}
	return store
}

// highScoreKeeper picks where a mode's best score lives: the human mode
// uses the high score file, other modes their row in the database.
func highScoreKeeper(gameID string, store *storage.Store) storage.HighScoreKeeper {
	if gameID == "invasion" {
		return storage.NewHighScoreFile(flagHighScoreFile)
	}
	if store == nil {
		return nil
	}
	return &storage.DBHighScore{Store: store, GameID: gameID}
}
