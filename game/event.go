package game

import "snake-arcade/game/types"

// Event is a logical input event. Front ends map their physical keys onto it;
// several keys may produce the same event.
type Event int

const (
	EventNone Event = iota
	EventQuit
	EventConfirm
	EventTogglePause
	EventMoveUp
	EventMoveDown
	EventMoveLeft
	EventMoveRight
)

// Direction returns the direction a move event asks for.
func (e Event) Direction() (types.Direction, bool) {
	switch e {
	case EventMoveUp:
		return types.Up, true
	case EventMoveDown:
		return types.Down, true
	case EventMoveLeft:
		return types.Left, true
	case EventMoveRight:
		return types.Right, true
	default:
		return 0, false
	}
}

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventQuit:
		return "quit"
	case EventConfirm:
		return "confirm"
	case EventTogglePause:
		return "toggle-pause"
	case EventMoveUp:
		return "move-up"
	case EventMoveDown:
		return "move-down"
	case EventMoveLeft:
		return "move-left"
	case EventMoveRight:
		return "move-right"
	default:
		return "unknown"
	}
}
