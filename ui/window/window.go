// Package window is the raylib desktop front end.
package window

import (
	"fmt"
	"image"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keymap = map[int32]game.Event{
	rl.KeyEnter:   game.EventConfirm,
	rl.KeyKpEnter: game.EventConfirm,
	rl.KeySpace:   game.EventTogglePause,
	rl.KeyW:       game.EventMoveUp,
	rl.KeyUp:      game.EventMoveUp,
	rl.KeyS:       game.EventMoveDown,
	rl.KeyDown:    game.EventMoveDown,
	rl.KeyA:       game.EventMoveLeft,
	rl.KeyLeft:    game.EventMoveLeft,
	rl.KeyD:       game.EventMoveRight,
	rl.KeyRight:   game.EventMoveRight,
}

// Overridden in tests, which run without a display.
var (
	initWindow  = rl.InitWindow
	windowReady = rl.IsWindowReady
	setFPS      = rl.SetTargetFPS
)

// Window draws into a fixed-size raylib window.
type Window struct{}

// Open creates the window and caps the frame rate at fps. It fails when
// raylib could not bring the window up, e.g. without a display.
func Open(title string, fps int) (*Window, error) {
	initWindow(types.ScreenWidth, types.ScreenHeight, title)
	if !windowReady() {
		return nil, fmt.Errorf("init window: %dx%d window %q not ready", types.ScreenWidth, types.ScreenHeight, title)
	}
	setFPS(int32(fps))
	return &Window{}, nil
}

var _ ui.Frontend = (*Window)(nil)

func (w *Window) PollEvents() []game.Event {
	var events []game.Event
	if rl.WindowShouldClose() {
		events = append(events, game.EventQuit)
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if ev, ok := keymap[key]; ok {
			events = append(events, ev)
		}
	}
	return events
}

func (w *Window) Now() time.Duration {
	return time.Duration(rl.GetTime() * float64(time.Second))
}

func (w *Window) Clear(c types.Color) {
	rl.BeginDrawing()
	rl.ClearBackground(color(c))
}

func (w *Window) DrawLine(from, to image.Point, c types.Color, width int) {
	rl.DrawLineEx(
		rl.Vector2{X: float32(from.X), Y: float32(from.Y)},
		rl.Vector2{X: float32(to.X), Y: float32(to.Y)},
		float32(width), color(c))
}

func (w *Window) DrawFilledRect(x, y, width, height int, c types.Color) {
	rl.DrawRectangle(int32(x), int32(y), int32(width), int32(height), color(c))
}

func (w *Window) DrawText(x, y int, text string, font ui.Font, c types.Color) {
	rl.DrawText(text, int32(x), int32(y), int32(font.Size), color(c))
}

func (w *Window) MeasureText(text string, font ui.Font) (int, int) {
	return int(rl.MeasureText(text, int32(font.Size))), font.Size
}

func (w *Window) Present() {
	rl.EndDrawing()
}

func (w *Window) Close() error {
	rl.CloseWindow()
	return nil
}

func color(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
