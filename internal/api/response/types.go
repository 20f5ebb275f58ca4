package response

import (
	"time"

	"github.com/mcoot/boggle-go/internal/model"
	"github.com/mcoot/boggle-go/internal/services/game"
)

// Health is the response for the health endpoint
type Health struct {
	Status string `json:"status"`
}

// Cube represents one cube on the grid
type Cube struct {
	ID     int    `json:"id"`
	Letter string `json:"letter"`
	Status string `json:"status"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

// Board represents the grid as rows of cubes
type Board struct {
	Rows [][]Cube `json:"rows"`
}

// BoardFromModel converts model.Board to response Board
func BoardFromModel(b *model.Board) Board {
	rows := make([][]Cube, model.BoardSize)
	for i, cube := range b.Cubes() {
		row, col := i/model.BoardSize, i%model.BoardSize
		if rows[row] == nil {
			rows[row] = make([]Cube, 0, model.BoardSize)
		}
		rows[row] = append(rows[row], Cube{
			ID:     int(cube.ID()),
			Letter: cube.Letter(),
			Status: cube.Status().String(),
			Row:    row,
			Col:    col,
		})
	}
	return Board{Rows: rows}
}

// Round represents a finished round
type Round struct {
	Round      int       `json:"round"`
	Words      []string  `json:"words"`
	Score      int       `json:"score"`
	FinishedAt time.Time `json:"finished_at"`
}

// RoundFromModel converts model.RoundSummary
func RoundFromModel(r model.RoundSummary) Round {
	words := r.Words
	if words == nil {
		words = []string{}
	}
	return Round{
		Round:      r.Round,
		Words:      words,
		Score:      r.Score,
		FinishedAt: r.FinishedAt,
	}
}

// Game represents a game session and its current board
type Game struct {
	ID             string    `json:"id"`
	Round          int       `json:"round"`
	Board          Board     `json:"board"`
	WordSoFar      string    `json:"word_so_far"`
	Path           []int     `json:"path"`
	CompletedWords []string  `json:"completed_words"`
	Score          int       `json:"score"`
	TotalScore     int       `json:"total_score"`
	History        []Round   `json:"history"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// GameFromState converts a game.State
func GameFromState(s *game.State) Game {
	path := make([]int, 0)
	for _, id := range s.Board.Path() {
		path = append(path, int(id))
	}

	history := make([]Round, len(s.Game.History))
	for i, r := range s.Game.History {
		history[i] = RoundFromModel(r)
	}

	return Game{
		ID:             string(s.Game.ID),
		Round:          s.Game.Round,
		Board:          BoardFromModel(s.Board),
		WordSoFar:      s.Board.WordSoFar(),
		Path:           path,
		CompletedWords: s.Board.CompletedWords(),
		Score:          s.Score,
		TotalScore:     s.Game.TotalScore() + s.Score,
		History:        history,
		CreatedAt:      s.Game.CreatedAt,
		UpdatedAt:      s.Game.UpdatedAt,
	}
}

// Outcome reports what a selection did
type Outcome struct {
	Result string `json:"result"`
	Word   string `json:"word,omitempty"`
}

// SelectResponse is the response for a cube selection
type SelectResponse struct {
	Outcome Outcome `json:"outcome"`
	Game    Game    `json:"game"`
}

// SelectResponseFromState builds a SelectResponse
func SelectResponseFromState(s *game.State, outcome model.SelectionOutcome) SelectResponse {
	return SelectResponse{
		Outcome: Outcome{
			Result: string(outcome.Result),
			Word:   outcome.Word,
		},
		Game: GameFromState(s),
	}
}

// Missed lists the words on the board not yet found
type Missed struct {
	Words []string `json:"words"`
}

// MissedFromWords builds a Missed response
func MissedFromWords(words []string) Missed {
	if words == nil {
		words = []string{}
	}
	return Missed{Words: words}
}
