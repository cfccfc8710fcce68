package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/bot"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/invasion"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

var (
	flagHeadless bool
	flagMaxTicks int
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Watch the bot play",
	Long: `Let the scripted bot play Alien Invasion.

The bot sweeps the ship across the screen while more than half of the
first fleet is alive, then chases the lowest alien. It fires at random
with the configured per-tick probability.

With --headless the game runs as fast as possible without a terminal,
logs what happens and records the final score.

Examples:
  invasion bot
  invasion bot --headless --seed 42
  invasion bot --headless --max-ticks 100000 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runBot,
}

func init() {
	botCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run without a terminal UI")
	botCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 36000, "Stop a headless run after this many ticks (0 = until game over)")
}

func runBot(_ *cobra.Command, _ []string) {
	if !flagHeadless {
		playMode("invasion_bot")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	summary, err := runHeadless(ctx, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Score: %d  Level: %d  Ticks: %d  Best: %d\n",
		summary.State.Score, summary.State.Level, summary.Ticks, summary.State.HighScore)
}

// headlessSummary describes a finished headless run.
type headlessSummary struct {
	State core.GameState
	Ticks int
}

// runHeadless plays one bot game without a terminal and records the result.
func runHeadless(ctx context.Context, store *storage.Store) (headlessSummary, error) {
	checkConfig()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := bot.NewGame()
	keeper := highScoreKeeper(g.ID(), store)
	best := 0
	if keeper != nil {
		var err error
		if best, err = keeper.Load(); err != nil {
			logger.Warn("could not load high score", "error", err)
		}
	}
	g.SeedHighScore(best)
	g.Reset(core.RuntimeConfig{TickRate: flagFPS, Seed: seed})

	logger.Info("bot run", "seed", seed, "max_ticks", flagMaxTicks)

	frame := core.NewInputFrame()
	frame.Set(core.ActionStart)

	var summary headlessSummary
	for flagMaxTicks <= 0 || summary.Ticks < flagMaxTicks {
		if err := ctx.Err(); err != nil {
			logger.Warn("bot run interrupted", "ticks", summary.Ticks)
			break
		}

		res := g.Step(frame)
		frame = core.NewInputFrame()
		summary.Ticks++
		summary.State = res.State
		logEvents(g.LastTick().Events)

		if res.State.GameOver {
			break
		}
	}

	if store != nil && summary.State.Score > 0 {
		if _, err := store.SaveScore(g.ID(), summary.State.Score, summary.State.Level, storage.DriverBot); err != nil {
			return summary, err
		}
	}
	if keeper != nil && summary.State.HighScore > best {
		if err := keeper.Save(summary.State.HighScore); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

// logEvents reports engine events through the root logger.
func logEvents(events []invasion.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case invasion.EventGameStarted:
			logger.Info("game started", "tick", ev.Tick, "ships_left", ev.ShipsLeft)
		case invasion.EventGameOver:
			logger.Info("game over", "tick", ev.Tick, "score", ev.Score, "level", ev.Level)
		case invasion.EventAliensDestroyed:
			logger.Debug("aliens destroyed", "tick", ev.Tick, "count", ev.Count, "score", ev.Score)
		case invasion.EventResumed:
			logger.Debug("resumed", "tick", ev.Tick)
		case invasion.EventHighScore:
			logger.Info("new high score", "tick", ev.Tick, "score", ev.Score)
		case invasion.EventShipHit:
			logger.Info("ship hit", "tick", ev.Tick, "ships_left", ev.ShipsLeft)
		case invasion.EventLevelUp:
			logger.Info("level up", "tick", ev.Tick, "level", ev.Level, "score", ev.Score)
		}
	}
}
