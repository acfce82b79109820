package ui

import (
	"fmt"
	"image"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

// Font selects a text size in pixels.
type Font struct {
	Size int
}

var (
	HUDFont    = Font{Size: 24}
	BannerFont = Font{Size: 72}
)

// Colors used by the renderer.
var (
	Background    = types.Color{R: 40, G: 40, B: 60}
	GridLine      = types.Color{R: 0, G: 0, B: 0}
	SnakeColor    = types.Color{R: 200, G: 200, B: 200}
	TextColor     = types.Color{R: 255, G: 255, B: 255}
	GameOverColor = types.Color{R: 200, G: 30, B: 30}
)

// Canvas is the drawing surface a front end exposes. Coordinates are pixels
// on a types.ScreenWidth x types.ScreenHeight screen.
type Canvas interface {
	Clear(c types.Color)
	DrawLine(from, to image.Point, c types.Color, width int)
	DrawFilledRect(x, y, w, h int, c types.Color)
	DrawText(x, y int, text string, font Font, c types.Color)
	MeasureText(text string, font Font) (w, h int)
	Present()
}

// Frontend bundles a canvas with input polling and a monotonic clock.
type Frontend interface {
	Canvas
	// PollEvents returns every event received since the last call without blocking.
	PollEvents() []game.Event
	// Now returns the time elapsed since the front end was opened.
	Now() time.Duration
	Close() error
}

// Renderer turns a game snapshot into draw calls.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw renders one full frame. It runs every frame regardless of phase.
func (r *Renderer) Draw(c Canvas, g *game.Game) {
	c.Clear(Background)
	r.drawGrid(c, g.Grid)

	phase := g.Phase()
	if phase != types.Over && g.HasFood() {
		food := g.Food()
		c.DrawFilledRect(
			food.Pos.X*types.CellSize,
			food.Pos.Y*types.CellSize,
			types.CellSize, types.CellSize, food.Style.Color)
	}

	// Segments are inset by the line width so the grid shows between them
	for _, p := range g.Snake() {
		c.DrawFilledRect(
			p.X*types.CellSize+types.LineWidth,
			p.Y*types.CellSize+types.LineWidth,
			types.CellSize-types.LineWidth*2,
			types.CellSize-types.LineWidth*2,
			SnakeColor)
	}

	c.DrawText(30, 7, fmt.Sprintf("Speed: %d", g.SpeedTier()), HUDFont, TextColor)
	c.DrawText(150, 7, "Press Enter to start", HUDFont, TextColor)
	c.DrawText(450, 7, fmt.Sprintf("Score: %d", g.Score()), HUDFont, TextColor)

	switch {
	case phase == types.Paused:
		r.drawCentered(c, "PAUSED", BannerFont, TextColor, 0)
	case phase == types.Over && g.Started():
		_, h := r.drawCentered(c, "GAME OVER", BannerFont, GameOverColor, 0)
		best := fmt.Sprintf("Best: %d", g.Stats().GetHighScore())
		r.drawCentered(c, best, HUDFont, TextColor, h/2+HUDFont.Size)
	}

	c.Present()
}

func (r *Renderer) drawGrid(c Canvas, grid types.Grid) {
	top := grid.MinY * types.CellSize
	for x := (grid.MinX + 1) * types.CellSize; x < types.ScreenWidth; x += types.CellSize {
		c.DrawLine(image.Pt(x, top), image.Pt(x, types.ScreenHeight), GridLine, types.LineWidth)
	}
	for y := top; y < types.ScreenHeight; y += types.CellSize {
		c.DrawLine(image.Pt(0, y), image.Pt(types.ScreenWidth, y), GridLine, types.LineWidth)
	}
}

// drawCentered draws text centred on the screen, shifted down by dy, and
// returns the measured text size.
func (r *Renderer) drawCentered(c Canvas, text string, font Font, col types.Color, dy int) (w, h int) {
	w, h = c.MeasureText(text, font)
	c.DrawText((types.ScreenWidth-w)/2, (types.ScreenHeight-h)/2+dy, text, font, col)
	return w, h
}
