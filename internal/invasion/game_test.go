package invasion

import (
	"strings"
	"testing"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func newTestGame() *Game {
	g := New()
	g.ResetWith(config.DefaultInvasionConfig(), testRuntime())
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 3000)
	for i := range inputs {
		switch {
		case i == 0:
			inputs[i] = frame(core.ActionStart)
		case i%240 == 1:
			inputs[i] = frame(core.ActionLeft, core.ActionRightRelease)
		case i%240 == 121:
			inputs[i] = frame(core.ActionRight, core.ActionLeftRelease)
		case i%9 == 0:
			inputs[i] = frame(core.ActionFire)
		default:
			inputs[i] = core.NewInputFrame()
		}
	}

	run := func() Snapshot {
		g := newTestGame()
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Engine().Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
}

func TestGameStepMapsActions(t *testing.T) {
	g := newTestGame()

	res := g.Step(frame(core.ActionStart))
	if !res.State.Active {
		t.Fatal("ActionStart should start a game")
	}

	g.Step(frame(core.ActionRight))
	if _, right := g.Engine().Moving(); !right {
		t.Error("ActionRight should set the right intent")
	}

	g.Step(frame(core.ActionRightRelease))
	if _, right := g.Engine().Moving(); right {
		t.Error("ActionRightRelease should clear the right intent")
	}

	// Release and press in one frame keeps moving
	g.Step(frame(core.ActionLeftRelease, core.ActionLeft))
	if left, _ := g.Engine().Moving(); !left {
		t.Error("press should win over release in the same frame")
	}

	g.Step(frame(core.ActionFire))
	if len(g.Engine().Bullets()) != 1 {
		t.Errorf("bullets = %d, expected 1", len(g.Engine().Bullets()))
	}

	res = g.Step(frame(core.ActionQuit))
	if !res.State.Quit {
		t.Error("ActionQuit should set Quit")
	}
}

func TestGameSeedHighScore(t *testing.T) {
	g := New()
	g.SeedHighScore(1234)
	g.ResetWith(config.DefaultInvasionConfig(), testRuntime())

	if got := g.State().HighScore; got != 1234 {
		t.Errorf("HighScore = %d, expected 1234", got)
	}
}

func TestGameResetKeepsHighScore(t *testing.T) {
	g := newTestGame()
	g.Step(frame(core.ActionStart))
	e := g.Engine()
	placeAlien(e, 270, 392)
	e.Fire()
	g.Step(core.NewInputFrame())

	g.ResetWith(config.DefaultInvasionConfig(), testRuntime())
	if got := g.State().HighScore; got != 50 {
		t.Errorf("HighScore after reset = %d, expected 50", got)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame()
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected a score", screen.Row(0))
	}
	if !strings.Contains(screen.String(), "ALIEN INVASION") {
		t.Error("title overlay missing before the first game")
	}

	g.Step(frame(core.ActionStart))
	g.Render(screen)
	if !strings.ContainsRune(screen.Row(23), ShipChar) {
		t.Errorf("bottom row = %q, expected the ship", screen.Row(23))
	}
	if !strings.ContainsRune(screen.String(), AlienChar) {
		t.Error("aliens not drawn")
	}
	if strings.Contains(screen.String(), "ALIEN INVASION") {
		t.Error("title overlay should be gone once playing")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame()
	screen := core.NewScreen(20, 8)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected the too-small message")
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := newTestGame()
	g.Step(frame(core.ActionStart))
	e := g.Engine()
	e.stats.ShipsLeft = 1
	placeAlien(e, 100, 442)
	g.Step(core.NewInputFrame())

	if !g.State().GameOver {
		t.Fatal("State().GameOver = false")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestProjectionKeepsSmallRectsVisible(t *testing.T) {
	p := newProjection(core.NewRect(0, 0, 600, 500), 80, 22)

	r := p.cells(core.NewRect(299, 452, 3, 15))
	if r.W < 1 || r.H < 1 {
		t.Errorf("bullet projected to %+v, expected at least one cell", r)
	}

	ship := p.cells(core.NewRect(270, 452, 60, 48))
	if ship.Bottom() != 24 {
		t.Errorf("ship bottom row = %d, expected 24", ship.Bottom())
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("invasion") {
		t.Fatal("invasion should be registered")
	}
	g, err := registry.Create("invasion")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Alien Invasion" {
		t.Errorf("Title() = %q", g.Title())
	}
	if _, ok := g.(registry.HighScoreSeeder); !ok {
		t.Error("invasion should accept a seeded high score")
	}
}

func TestIncreaseSpeed(t *testing.T) {
	s := DefaultSettings()

	points := []int{75, 112, 168, 252}
	for i, want := range points {
		s.IncreaseSpeed()
		if s.AlienPoints != want {
			t.Errorf("level %d: AlienPoints = %d, expected %d", i+2, s.AlienPoints, want)
		}
	}

	s.InitializeDynamic()
	if s.AlienPoints != 50 || s.ShipSpeed != 1.5 || s.BulletSpeed != 3 || s.AlienSpeed != 1 {
		t.Errorf("InitializeDynamic() did not restore defaults: %+v", s)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		want core.Color
	}{
		{"gray", core.ColorGray},
		{"grey", core.ColorGray},
		{"red", core.ColorRed},
		{"unknown", core.ColorDefault},
	}

	for _, tc := range tests {
		if got := ParseColor(tc.name); got != tc.want {
			t.Errorf("ParseColor(%q) = %v, expected %v", tc.name, got, tc.want)
		}
	}
}
