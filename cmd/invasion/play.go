package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/platform/tui"
	"github.com/vovakirdan/alien-invasion/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game",
	Long: `Start playing Alien Invasion (or another registered mode).

Controls:
  Left/A, Right/D  - Move the ship
  Space            - Fire
  S/Enter          - Start a game
  Esc/B            - Leave (when not in the menu)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More ships and bullets, gentle speed-up
  normal - Default settings
  hard   - Fewer ships and bullets, steep speed-up

Examples:
  invasion play
  invasion play --difficulty hard
  invasion play --config ./my-invasion.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "invasion"
	if len(args) > 0 {
		gameID = args[0]
	}
	playMode(gameID)
}

// playMode runs one mode in the terminal until the player quits.
func playMode(gameID string) {
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'invasion list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	checkConfig()

	store := openStore()
	opts := tui.Options{
		Store:     store,
		HighScore: highScoreKeeper(gameID, store),
	}

	runErr := tui.Run(game, runtimeConfig(), opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
