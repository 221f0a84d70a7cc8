package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for terminal rendering
const (
	PlayerChar    = '●'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '▒'
	GroundTopChar = '═'
)

// viewport maps world units onto a character grid.
type viewport struct {
	sx, sy float64
}

func newViewport(snap Snapshot, dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / snap.Width,
		sy: float64(dst.Height()) / snap.Height,
	}
}

// cells returns the half-open cell range covered by r.
func (v viewport) cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X * v.sx))
	y0 = int(math.Floor(r.Y * v.sy))
	x1 = int(math.Ceil(r.Right() * v.sx))
	y1 = int(math.Ceil(r.Bottom() * v.sy))
	return x0, y0, x1, y1
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws a snapshot scaled to fill dst.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || snap.Width <= 0 || snap.Height <= 0 {
		return
	}
	vp := newViewport(snap, dst)

	for _, p := range snap.Pipes {
		drawPipe(dst, vp, p)
	}
	drawGround(dst, vp, snap.Ground)
	drawPlayer(dst, vp, snap.Body)

	hud := fmt.Sprintf(" Score: %d  Best: %d ", snap.Score, snap.Best)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightYellow)

	if snap.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawPipe renders both halves of a pipe with caps facing the gap.
func drawPipe(dst *core.Screen, vp viewport, p Pipe) {
	x0, y0, x1, y1 := vp.cells(p.Top)
	dst.FillRect(x0, y0, x1-x0, y1-y0, PipeChar, core.ColorGreen)
	if y1 > y0 {
		dst.FillRect(x0, y1-1, x1-x0, 1, PipeCapTop, core.ColorBrightGreen)
	}

	x0, y0, x1, y1 = vp.cells(p.Bottom)
	dst.FillRect(x0, y0, x1-x0, y1-y0, PipeChar, core.ColorGreen)
	if y1 > y0 {
		dst.FillRect(x0, y0, x1-x0, 1, PipeCapBottom, core.ColorBrightGreen)
	}
}

// drawGround renders the ground strip with an edge line on top.
func drawGround(dst *core.Screen, vp viewport, ground core.Rect) {
	x0, y0, x1, y1 := vp.cells(ground)
	dst.FillRect(x0, y0, x1-x0, y1-y0, GroundChar, core.ColorOrange)
	dst.DrawHLine(x0, y0, x1-x0, GroundTopChar, core.ColorYellow)
}

// drawPlayer renders the bird; it always covers at least one cell.
func drawPlayer(dst *core.Screen, vp viewport, body core.Rect) {
	x0, y0, x1, y1 := vp.cells(body)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	dst.FillRect(x0, y0, x1-x0, y1-y0, PlayerChar, core.ColorBrightYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
