package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// View is the read-only render boundary: every box a renderer draws plus
// the HUD values.
type View struct {
	Screen      core.Rect
	Ship        core.Rect
	Aliens      []core.Rect
	Bullets     []core.Rect
	BulletColor core.Color

	Score     int
	HighScore int
	Level     int
	ShipsLeft int
	Active    bool
	Paused    bool
	GameOver  bool
}

// View returns the current render state.
func (e *Engine) View() View {
	return View{
		Screen:      e.ScreenBounds(),
		Ship:        e.ShipBounds(),
		Aliens:      e.Aliens(),
		Bullets:     e.Bullets(),
		BulletColor: e.settings.BulletColor,

		Score:     e.stats.Score,
		HighScore: e.stats.HighScore,
		Level:     e.stats.Level,
		ShipsLeft: e.stats.ShipsLeft,
		Active:    e.Active(),
		Paused:    e.Paused(),
		GameOver:  e.GameOver(),
	}
}
