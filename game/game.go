package game

import (
	"log/slog"
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Game owns the whole state of the arcade game and advances it in response
// to input events and clock readings. Clock values are monotonic offsets
// supplied by the caller, which keeps Game free of any real-time source.
type Game struct {
	Grid types.Grid
	ID   string // Current round, empty before the first start

	phase   types.Phase
	started bool // A round has been started at least once

	snake   *entity.Snake
	food    entity.Food
	hasFood bool // False when the snake left no free cell
	score   int
	speed   time.Duration

	lastMove   time.Duration
	pausedAt   time.Duration
	roundStart time.Duration
	turnOpen   bool // One direction change allowed per movement step

	Steps             int
	LastCollisionType types.CollisionType

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	scoreMgr     *manager.ScoreManager

	log      *slog.Logger
	roundLog *slog.Logger
}

// NewGame creates a game in phase NotStarted. rng drives food placement.
func NewGame(grid types.Grid, rng *rand.Rand, log *slog.Logger) *Game {
	if log == nil {
		log = slog.Default()
	}
	collisionMgr := manager.NewCollisionManager(grid)
	g := &Game{
		Grid:         grid,
		phase:        types.NotStarted,
		speed:        types.BaseSpeed,
		turnOpen:     true,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, rng),
		scoreMgr:     manager.NewScoreManager(),
		log:          log,
		roundLog:     log,
	}
	g.snake = g.initSnake()
	g.food, g.hasFood = g.foodMgr.GenerateFood(g.snake)
	if !g.hasFood {
		log.Warn("no free cell for food", "cells", grid.Cells())
	}
	return g
}

// initSnake lays out the starting snake: three segments on the first
// playable row, heading right.
func (g *Game) initSnake() *entity.Snake {
	row := g.Grid.MinY
	return entity.NewSnake(types.Right,
		types.Point{X: g.Grid.MinX + 2, Y: row},
		types.Point{X: g.Grid.MinX + 1, Y: row},
		types.Point{X: g.Grid.MinX, Y: row},
	)
}

// SpeedFor returns the step cooldown for a score.
func SpeedFor(score int) time.Duration {
	speed := types.BaseSpeed - types.SpeedStep*time.Duration(score/types.TierPoints)
	if speed < types.MinSpeed {
		return types.MinSpeed
	}
	return speed
}

// HandleEvent applies one input event. Quit is left to the caller.
func (g *Game) HandleEvent(ev Event, now time.Duration) {
	switch ev {
	case EventConfirm:
		if g.phase == types.NotStarted || g.phase == types.Over {
			g.Start(now)
		}
	case EventTogglePause:
		g.TogglePause(now)
	default:
		if dir, ok := ev.Direction(); ok {
			g.Turn(dir)
		}
	}
}

// Start resets every round field and enters Running.
func (g *Game) Start(now time.Duration) {
	g.ID = uuid.NewString()
	g.roundLog = g.log.With("round", g.ID)

	g.phase = types.Running
	g.started = true
	g.snake = g.initSnake()
	g.score = 0
	g.speed = types.BaseSpeed
	g.turnOpen = true
	g.Steps = 0
	g.LastCollisionType = types.NoCollision
	g.food, g.hasFood = g.foodMgr.GenerateFood(g.snake)
	g.lastMove = now
	g.roundStart = now

	if !g.hasFood {
		g.roundLog.Info("round started")
		g.endRound(types.BoardFull, now)
		return
	}
	g.roundLog.Info("round started", "food", g.food.Pos, "weight", g.food.Style.Weight)
}

// TogglePause switches between Running and Paused. On resume the move clock
// is shifted by the paused time so the remaining cooldown is preserved.
func (g *Game) TogglePause(now time.Duration) {
	switch g.phase {
	case types.Running:
		g.phase = types.Paused
		g.pausedAt = now
		g.roundLog.Debug("paused")
	case types.Paused:
		g.phase = types.Running
		g.lastMove += now - g.pausedAt
		g.roundLog.Debug("resumed", "paused_for", now-g.pausedAt)
	}
}

// Turn requests a new direction. It is accepted at most once per movement
// step and only when it leaves the current axis.
func (g *Game) Turn(dir types.Direction) bool {
	if g.phase != types.Running && g.phase != types.Paused {
		return false
	}
	if !g.turnOpen {
		return false
	}
	if !g.snake.SetDirection(dir) {
		return false
	}
	g.turnOpen = false
	return true
}

// Update performs at most one movement step if the cooldown has elapsed.
// It reports whether a step was taken.
func (g *Game) Update(now time.Duration) bool {
	if g.phase != types.Running {
		return false
	}
	if now-g.lastMove < g.speed {
		return false
	}
	g.lastMove = now
	g.step(now)
	return true
}

func (g *Game) step(now time.Duration) {
	g.Steps++
	g.turnOpen = true

	newHead := g.snake.NextHead()

	if g.collisionMgr.IsFoodCollision(newHead, g.food) {
		g.snake.Grow(newHead)
		g.score += g.food.Style.Weight
		g.speed = SpeedFor(g.score)

		food, ok := g.foodMgr.GenerateFood(g.snake)
		if !ok {
			g.hasFood = false
			g.endRound(types.BoardFull, now)
			return
		}
		g.roundLog.Debug("food eaten",
			"weight", g.food.Style.Weight,
			"score", g.score,
			"speed", g.speed,
			"next_food", food.Pos)
		g.food = food
		return
	}

	if collision := g.collisionMgr.CheckCollision(newHead, g.snake); collision != types.NoCollision {
		g.endRound(collision, now)
		return
	}
	g.snake.Move(newHead)
}

func (g *Game) endRound(cause types.CollisionType, now time.Duration) {
	g.phase = types.Over
	g.LastCollisionType = cause
	g.scoreMgr.AddToHistory(manager.RoundRecord{
		ID:       g.ID,
		Score:    g.score,
		Length:   g.snake.Len(),
		Duration: now - g.roundStart,
	})
	g.roundLog.Info("round over",
		"cause", cause,
		"score", g.score,
		"length", g.snake.Len(),
		"steps", g.Steps,
		"best", g.scoreMgr.GetHighScore())
}

func (g *Game) Phase() types.Phase { return g.phase }

// Started reports whether a round has ever been started.
func (g *Game) Started() bool { return g.started }

func (g *Game) Score() int { return g.score }

// Speed is the current cooldown between movement steps.
func (g *Game) Speed() time.Duration { return g.speed }

// SpeedTier is the number of completed score tiers.
func (g *Game) SpeedTier() int { return g.score / types.TierPoints }

// Snake returns the body, head first.
func (g *Game) Snake() []types.Point { return g.snake.Segments() }

func (g *Game) Head() types.Point { return g.snake.GetHead() }

func (g *Game) Direction() types.Direction { return g.snake.Direction }

func (g *Game) Food() entity.Food { return g.food }

// HasFood reports whether food is on the board.
func (g *Game) HasFood() bool { return g.hasFood }

// TurnOpen reports whether a direction change would currently be considered.
func (g *Game) TurnOpen() bool { return g.turnOpen }

func (g *Game) Stats() *manager.ScoreManager { return g.scoreMgr }
