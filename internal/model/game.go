package model

import "time"

// GameID uniquely identifies a game session
type GameID string

// Game is a single-player session. Each round is played on a freshly shaken
// board; only the current round's board is kept.
type Game struct {
	ID    GameID
	Round int // 1-indexed

	// Board is the current round's board state
	Board BoardSnapshot

	// History holds summaries of the session's finished rounds
	History []RoundSummary

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoundSummary is a lightweight record of a finished round
type RoundSummary struct {
	Round      int
	Words      []string
	Score      int
	FinishedAt time.Time
}

// TotalScore returns the score of all finished rounds
func (g *Game) TotalScore() int {
	total := 0
	for _, r := range g.History {
		total += r.Score
	}
	return total
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	c := *g
	c.Board = BoardSnapshot{
		Order:    append([]CubeID(nil), g.Board.Order...),
		Faces:    append([]int(nil), g.Board.Faces...),
		Statuses: append([]CubeStatus(nil), g.Board.Statuses...),
		Path:     append([]CubeID(nil), g.Board.Path...),
		Found:    append([]string(nil), g.Board.Found...),
	}
	c.History = make([]RoundSummary, len(g.History))
	for i, r := range g.History {
		r.Words = append([]string(nil), r.Words...)
		c.History[i] = r
	}
	return &c
}
