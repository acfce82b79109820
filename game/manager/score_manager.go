package manager

import (
	"sort"
	"time"
)

// maxHistory is the number of finished rounds kept in the score history.
const maxHistory = 50

// RoundRecord is the outcome of one finished round.
type RoundRecord struct {
	ID       string
	Score    int
	Length   int
	Duration time.Duration
}

// ScoreManager keeps the score record of the current session in memory.
// Nothing is written to disk: every process starts with a clean record.
type ScoreManager struct {
	highScore    int
	gamesPlayed  int
	totalScore   int
	scoreHistory []RoundRecord
}

func NewScoreManager() *ScoreManager {
	return &ScoreManager{
		scoreHistory: make([]RoundRecord, 0, maxHistory),
	}
}

// AddToHistory records a finished round and updates the high score.
func (sm *ScoreManager) AddToHistory(rec RoundRecord) {
	if len(sm.scoreHistory) >= maxHistory {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, rec)
	sm.gamesPlayed++
	sm.totalScore += rec.Score
	if rec.Score > sm.highScore {
		sm.highScore = rec.Score
	}
}

func (sm *ScoreManager) GetHighScore() int {
	return sm.highScore
}

func (sm *ScoreManager) GetGamesPlayed() int {
	return sm.gamesPlayed
}

// GetAverageScore returns the mean score over every round of the session.
func (sm *ScoreManager) GetAverageScore() float64 {
	if sm.gamesPlayed == 0 {
		return 0
	}
	return float64(sm.totalScore) / float64(sm.gamesPlayed)
}

// GetMedianScore returns the median over the retained history.
func (sm *ScoreManager) GetMedianScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	scores := make([]int, len(sm.scoreHistory))
	for i, rec := range sm.scoreHistory {
		scores[i] = rec.Score
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

// GetScoreHistory returns a copy of the retained rounds, oldest first.
func (sm *ScoreManager) GetScoreHistory() []RoundRecord {
	out := make([]RoundRecord, len(sm.scoreHistory))
	copy(out, sm.scoreHistory)
	return out
}
