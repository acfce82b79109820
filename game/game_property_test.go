package game

import (
	"testing"
	"time"

	"snake-arcade/game/types"
	"snake-arcade/logger"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"golang.org/x/exp/rand"
)

// play drives a game with a generated action script: 0-3 turn, 4 confirm,
// 5 toggle pause, anything else advances the clock by one base step.
// check is called after every action and aborts the run on false.
func play(seed int64, actions []int, check func(g *Game) bool) bool {
	g := NewGame(types.DefaultGrid(), rand.New(rand.NewSource(uint64(seed))), logger.Discard())
	now := time.Duration(0)
	g.HandleEvent(EventConfirm, now)

	moves := []Event{EventMoveUp, EventMoveDown, EventMoveLeft, EventMoveRight}
	for _, a := range actions {
		switch {
		case a < 4:
			g.HandleEvent(moves[a], now)
		case a == 4:
			g.HandleEvent(EventConfirm, now)
		case a == 5:
			g.HandleEvent(EventTogglePause, now)
		default:
			now += types.BaseSpeed
			g.Update(now)
		}
		if !check(g) {
			return false
		}
	}
	return true
}

func noDuplicates(body []types.Point) bool {
	seen := make(map[types.Point]bool, len(body))
	for _, seg := range body {
		if seen[seg] {
			return false
		}
		seen[seg] = true
	}
	return true
}

func adjacent(a, b types.Point) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy == 1
}

func TestProperty_RunningSnakeHasNoDuplicates(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("a running snake never overlaps itself", prop.ForAll(
		func(seed int64, actions []int) bool {
			return play(seed, actions, func(g *Game) bool {
				if g.Phase() != types.Running {
					return true
				}
				return noDuplicates(g.Snake())
			})
		},
		gen.Int64(),
		gen.SliceOf(gen.IntRange(0, 9)),
	))

	properties.Property("consecutive segments stay adjacent and inside the grid", prop.ForAll(
		func(seed int64, actions []int) bool {
			return play(seed, actions, func(g *Game) bool {
				body := g.Snake()
				for i, seg := range body {
					if !g.Grid.Contains(seg) {
						return false
					}
					if i > 0 && !adjacent(body[i-1], seg) {
						return false
					}
				}
				return true
			})
		},
		gen.Int64(),
		gen.SliceOf(gen.IntRange(0, 9)),
	))

	properties.TestingRun(t)
}

func TestProperty_FoodNeverOnSnake(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("food is never placed on the snake", prop.ForAll(
		func(seed int64, actions []int) bool {
			return play(seed, actions, func(g *Game) bool {
				if g.Phase() == types.Over {
					return true
				}
				food := g.Food().Pos
				if !g.Grid.Contains(food) {
					return false
				}
				for _, seg := range g.Snake() {
					if seg == food {
						return false
					}
				}
				return true
			})
		},
		gen.Int64(),
		gen.SliceOf(gen.IntRange(0, 9)),
	))

	properties.Property("score only grows by palette weights", prop.ForAll(
		func(seed int64, actions []int) bool {
			last := 0
			return play(seed, actions, func(g *Game) bool {
				score := g.Score()
				defer func() { last = score }()
				if g.Phase() == types.Running && g.Steps == 0 {
					return score == 0
				}
				switch score - last {
				case 0, 10, 20, 30:
					return true
				}
				// A restart resets the score
				return score == 0
			})
		},
		gen.Int64(),
		gen.SliceOf(gen.IntRange(0, 9)),
	))

	properties.Property("speed always matches the score tier", prop.ForAll(
		func(seed int64, actions []int) bool {
			return play(seed, actions, func(g *Game) bool {
				return g.Speed() == SpeedFor(g.Score()) && g.Speed() >= types.MinSpeed
			})
		},
		gen.Int64(),
		gen.SliceOf(gen.IntRange(0, 9)),
	))

	properties.TestingRun(t)
}

func TestProperty_DoublePauseIsNoOp(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("pausing twice leaves the round unchanged", prop.ForAll(
		func(seed int64, pauseMs int) bool {
			g := NewGame(types.DefaultGrid(), rand.New(rand.NewSource(uint64(seed))), logger.Discard())
			g.Start(0)
			before := g.Snake()
			food, score := g.Food(), g.Score()

			g.TogglePause(100 * time.Millisecond)
			g.TogglePause(100*time.Millisecond + time.Duration(pauseMs)*time.Millisecond)
			if g.Phase() != types.Running || g.Food() != food || g.Score() != score {
				return false
			}
			after := g.Snake()
			for i := range before {
				if before[i] != after[i] {
					return false
				}
			}
			// The cooldown still has 400ms to run after the resume
			resumed := 100*time.Millisecond + time.Duration(pauseMs)*time.Millisecond
			return !g.Update(resumed+399*time.Millisecond) && g.Update(resumed+400*time.Millisecond)
		},
		gen.Int64(),
		gen.IntRange(0, 60000),
	))

	properties.TestingRun(t)
}
