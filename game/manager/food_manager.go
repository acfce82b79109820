package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

// MaxSpawnAttempts bounds rejection sampling before falling back to the free-cell scan.
const MaxSpawnAttempts = 64

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood places food on a uniformly random free cell with a random style.
// ok is false when the snake covers the whole grid.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (food entity.Food, ok bool) {
	pos, ok := fm.freeCell(snake)
	if !ok {
		return entity.Food{}, false
	}
	return entity.Food{Pos: pos, Style: fm.RandomStyle()}, true
}

// RandomStyle draws a style from the palette.
func (fm *FoodManager) RandomStyle() entity.FoodStyle {
	return entity.FoodStyles[fm.rng.Intn(len(entity.FoodStyles))]
}

func (fm *FoodManager) freeCell(snake *entity.Snake) (types.Point, bool) {
	for i := 0; i < MaxSpawnAttempts; i++ {
		pos := types.Point{
			X: fm.grid.MinX + fm.rng.Intn(fm.grid.Width()),
			Y: fm.grid.MinY + fm.rng.Intn(fm.grid.Height()),
		}
		if fm.collisionMgr.ValidateSpawnPosition(pos, snake) {
			return pos, true
		}
	}

	// Crowded board: sample from the explicit free-cell set instead
	free := make([]types.Point, 0, max(fm.grid.Cells()-snake.Len(), 0))
	for y := fm.grid.MinY; y <= fm.grid.MaxY; y++ {
		for x := fm.grid.MinX; x <= fm.grid.MaxX; x++ {
			pos := types.Point{X: x, Y: y}
			if !snake.Contains(pos) {
				free = append(free, pos)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}
