package invasion

import (
	"fmt"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Visual characters for rendering
const (
	ShipChar   = '▲'
	AlienChar  = 'W'
	BulletChar = '|'
	FloorChar  = '─'
)

// Minimum terminal size for a playable field
const (
	MinScreenW = 30
	MinScreenH = 12
)

// hudRows is the number of rows above the field.
const hudRows = 2

// Draw projects the engine's pixel field onto the terminal screen.
// Row 0 holds the HUD, row 1 a separator, and the rest the field.
// idleHint is shown on the title overlay before the first game.
func Draw(dst *core.Screen, e *Engine, idleHint string) {
	DrawView(dst, e.View(), idleHint)
}

// DrawView draws a view captured with Engine.View.
func DrawView(dst *core.Screen, v View, idleHint string) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	p := newProjection(v.Screen, dst.Width(), dst.Height()-hudRows)

	drawHUD(dst, v)

	for _, r := range v.Aliens {
		dst.DrawRect(p.cells(r), AlienChar, core.ColorGreen)
	}
	for _, r := range v.Bullets {
		dst.DrawRect(p.cells(r), BulletChar, v.BulletColor)
	}
	dst.DrawRect(p.cells(v.Ship), ShipChar, core.ColorCyan)

	drawOverlay(dst, v, idleHint)
}

// projection maps field pixels to terminal cells below the HUD.
type projection struct {
	fieldW, fieldH int
	cols, rows     int
}

func newProjection(field core.Rect, cols, rows int) projection {
	return projection{
		fieldW: core.Max(field.W, 1),
		fieldH: core.Max(field.H, 1),
		cols:   cols,
		rows:   rows,
	}
}

// cells converts a pixel rect to a cell rect at least one cell in size.
func (p projection) cells(r core.Rect) core.Rect {
	x0 := r.Left() * p.cols / p.fieldW
	x1 := ceilDiv(r.Right()*p.cols, p.fieldW)
	y0 := r.Top() * p.rows / p.fieldH
	y1 := ceilDiv(r.Bottom()*p.rows, p.fieldH)

	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0+hudRows, x1-x0, y1-y0)
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return a / b
	}
	return (a + b - 1) / b
}

// drawHUD draws score, level, ships, and high score.
func drawHUD(dst *core.Screen, v View) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", v.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Level: %d  Ships: %d", v.Level, v.ShipsLeft))

	best := fmt.Sprintf("Best: %d", v.HighScore)
	dst.DrawTextColored(dst.Width()-len(best)-1, 0, best, core.ColorYellow)

	dst.DrawHLine(0, 1, dst.Width(), FloorChar)
}

// drawOverlay draws the title, pause, and game over messages.
func drawOverlay(dst *core.Screen, v View, idleHint string) {
	switch {
	case v.Paused:
		dst.DrawTextCentered(dst.Height()-1, "Ship lost! Get ready...")

	case v.GameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press S to play again", v.Score)
		drawCenteredBox(dst, "GAME OVER", subtitle)

	case !v.Active:
		drawCenteredBox(dst, "ALIEN INVASION", idleHint)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
