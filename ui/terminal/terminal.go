// Package terminal is a tcell front end that renders the game in a text
// terminal. Pixel coordinates are mapped onto character cells, two columns
// per grid cell so the board keeps a roughly square aspect.
package terminal

import (
	"fmt"
	"image"
	"time"
	"unicode"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/ui"

	"github.com/gdamore/tcell/v2"
)

const (
	cellWidth  = types.CellSize / 2 // pixels per terminal column
	cellHeight = types.CellSize     // pixels per terminal row

	columns = types.ScreenWidth / cellWidth
	rows    = types.ScreenHeight / cellHeight
)

// Terminal implements ui.Frontend on top of a tcell screen.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	frame  *time.Ticker
	start  time.Time
}

var _ ui.Frontend = (*Terminal)(nil)

// Open initialises the controlling terminal.
func Open(fps int) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return New(screen, fps)
}

// New takes ownership of an uninitialised screen. Present blocks until the
// next frame tick so the game loop runs at most fps times per second.
func New(screen tcell.Screen, fps int) (*Terminal, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("invalid frame rate %d", fps)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 100),
		quit:   make(chan struct{}),
		frame:  time.NewTicker(time.Second / time.Duration(fps)),
		start:  time.Now(),
	}
	go screen.ChannelEvents(t.events, t.quit)
	return t, nil
}

func (t *Terminal) PollEvents() []game.Event {
	var events []game.Event
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return events
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				t.screen.Sync()
			case *tcell.EventKey:
				if e, ok := translate(ev); ok {
					events = append(events, e)
				}
			}
		default:
			return events
		}
	}
}

// translate maps a key press to a game event.
func translate(ev *tcell.EventKey) (game.Event, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return game.EventConfirm, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.EventQuit, true
	case tcell.KeyUp:
		return game.EventMoveUp, true
	case tcell.KeyDown:
		return game.EventMoveDown, true
	case tcell.KeyLeft:
		return game.EventMoveLeft, true
	case tcell.KeyRight:
		return game.EventMoveRight, true
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case ' ':
			return game.EventTogglePause, true
		case 'q':
			return game.EventQuit, true
		case 'w':
			return game.EventMoveUp, true
		case 's':
			return game.EventMoveDown, true
		case 'a':
			return game.EventMoveLeft, true
		case 'd':
			return game.EventMoveRight, true
		}
	}
	return game.EventNone, false
}

func (t *Terminal) Now() time.Duration {
	return time.Since(t.start)
}

func (t *Terminal) Clear(c types.Color) {
	t.screen.Fill(' ', tcell.StyleDefault.Background(color(c)))
}

// DrawLine is a no-op: character cells already separate the board.
func (t *Terminal) DrawLine(from, to image.Point, c types.Color, width int) {}

// DrawFilledRect paints the background of every cell the rectangle touches.
func (t *Terminal) DrawFilledRect(x, y, w, h int, c types.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	style := tcell.StyleDefault.Background(color(c))
	for row := y / cellHeight; row <= (y+h-1)/cellHeight; row++ {
		for col := x / cellWidth; col <= (x+w-1)/cellWidth; col++ {
			t.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// DrawText writes one rune per column and keeps the cell's background.
func (t *Terminal) DrawText(x, y int, text string, font ui.Font, c types.Color) {
	col, row := x/cellWidth, y/cellHeight
	for _, r := range text {
		_, _, style, _ := t.screen.GetContent(col, row)
		t.screen.SetContent(col, row, r, nil, style.Foreground(color(c)))
		col++
	}
}

// MeasureText ignores the font: every glyph takes one cell.
func (t *Terminal) MeasureText(text string, font ui.Font) (int, int) {
	return len([]rune(text)) * cellWidth, cellHeight
}

func (t *Terminal) Present() {
	t.screen.Show()
	<-t.frame.C
}

func (t *Terminal) Close() error {
	close(t.quit)
	t.frame.Stop()
	t.screen.Fini()
	return nil
}

func color(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
