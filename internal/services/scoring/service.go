package scoring

import (
	"github.com/mcoot/boggle-go/internal/model"
)

// MinWordLength is the shortest word that scores
const MinWordLength = 3

// WordScore returns the standard score for a word. "Qu" counts as two letters.
func WordScore(word string) int {
	switch n := len([]rune(word)); {
	case n < MinWordLength:
		return 0
	case n <= 4:
		return 1
	case n == 5:
		return 2
	case n == 6:
		return 3
	case n == 7:
		return 5
	default:
		return 11
	}
}

// Service provides scoring for found words
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// ScoreWords returns the total score of the given words
func (s *Service) ScoreWords(words []string) int {
	total := 0
	for _, w := range words {
		total += WordScore(w)
	}
	return total
}

// ScoreBoard returns the total score of a board's completed words
func (s *Service) ScoreBoard(board *model.Board) int {
	return s.ScoreWords(board.CompletedWords())
}

// Interface for dependency injection
type ServiceInterface interface {
	ScoreWords(words []string) int
	ScoreBoard(board *model.Board) int
}

var _ ServiceInterface = (*Service)(nil)
