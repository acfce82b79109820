package types

import "time"

// Screen layout in pixels. The playfield is carved out of it in CellSize steps.
const (
	ScreenWidth  = 600
	ScreenHeight = 480
	CellSize     = 20
	LineWidth    = 1
)

// HeaderRows is the number of grid rows reserved at the top for HUD text.
const HeaderRows = 2

// Movement timing.
const (
	BaseSpeed  = 500 * time.Millisecond // Cooldown between steps at score 0
	SpeedStep  = 30 * time.Millisecond  // Subtracted per speed tier
	TierPoints = 100                    // Score needed per speed tier
	MinSpeed   = 50 * time.Millisecond
)

// Point is a grid coordinate (column, row).
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid is the playable area, inclusive on both ends.
type Grid struct {
	MinX, MaxX int
	MinY, MaxY int
}

// DefaultGrid returns the hardcoded playfield: every column of the screen and
// every row below the header band.
func DefaultGrid() Grid {
	return Grid{
		MinX: 0,
		MaxX: ScreenWidth/CellSize - 1,
		MinY: HeaderRows,
		MaxY: ScreenHeight/CellSize - 1,
	}
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= g.MinX && p.X <= g.MaxX && p.Y >= g.MinY && p.Y <= g.MaxY
}

func (g Grid) Width() int  { return g.MaxX - g.MinX + 1 }
func (g Grid) Height() int { return g.MaxY - g.MinY + 1 }

// Cells is the number of cells in the grid.
func (g Grid) Cells() int { return g.Width() * g.Height() }

// Color is an opaque 8-bit RGB colour.
type Color struct {
	R, G, B uint8
}

// Direction is one of the four movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Delta converts a Direction into a unit displacement vector.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1} // Rows grow downwards
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Vertical reports whether d moves along the Y axis.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Phase is the state of a game round.
type Phase int

const (
	NotStarted Phase = iota
	Running
	Paused
	Over
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

// CollisionType represents what ended a round
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	BoardFull // No free cell left for food
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case BoardFull:
		return "board-full"
	default:
		return "unknown"
	}
}
