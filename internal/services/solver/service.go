package solver

import (
	"sort"
	"strings"

	"github.com/mcoot/boggle-go/internal/model"
	"github.com/mcoot/boggle-go/internal/services/scoring"
)

// Lexicon is a word list that can answer prefix queries
type Lexicon interface {
	model.Lexicon
	HasPrefix(prefix string) bool
}

// Service finds the words that can be traced on a board
type Service struct {
	lexicon Lexicon
}

// New creates a new SolverService
func New(lexicon Lexicon) *Service {
	return &Service{
		lexicon: lexicon,
	}
}

// FindWords returns every lexicon word of at least scoring.MinWordLength
// letters that can be traced on the board, sorted alphabetically. As with
// Board.ReportSelection, each step moves to a different adjacent cube and a
// cube may appear in a word more than once. The walk stays bounded because
// the lexicon is finite and every branch must remain a known prefix.
func (s *Service) FindWords(board *model.Board) []string {
	var letters [model.BoardSize][model.BoardSize]string
	for i, cube := range board.Cubes() {
		letters[i/model.BoardSize][i%model.BoardSize] = strings.ToUpper(cube.Letter())
	}

	found := make(map[string]struct{})

	var walk func(pos model.Position, prefix string)
	walk = func(pos model.Position, prefix string) {
		word := prefix + letters[pos.Row][pos.Col]
		if !s.lexicon.HasPrefix(word) {
			return
		}
		if len([]rune(word)) >= scoring.MinWordLength && s.lexicon.Contains(word) {
			found[word] = struct{}{}
		}

		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				next := model.Position{Row: pos.Row + dr, Col: pos.Col + dc}
				// Stepping onto the current cube would submit, not extend
				if next == pos || !next.IsValid() {
					continue
				}
				walk(next, word)
			}
		}
	}

	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			walk(model.Position{Row: row, Col: col}, "")
		}
	}

	words := make([]string, 0, len(found))
	for w := range found {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// MissedWords returns the words on the board the player has not found yet
func (s *Service) MissedWords(board *model.Board) []string {
	var missed []string
	for _, w := range s.FindWords(board) {
		if !board.HasFound(w) {
			missed = append(missed, w)
		}
	}
	return missed
}

// Interface for dependency injection
type ServiceInterface interface {
	FindWords(board *model.Board) []string
	MissedWords(board *model.Board) []string
}

var _ ServiceInterface = (*Service)(nil)
