package board

import (
	"log/slog"
	"sync"

	"github.com/mcoot/boggle-go/internal/model"
)

// Service builds and shakes boards with the configured die and shuffler
type Service struct {
	mu       sync.Mutex // die and shuffler may carry state
	die      model.Die
	shuffler model.Shuffler
	logger   *slog.Logger
}

// New creates a new BoardService
func New(die model.Die, shuffler model.Shuffler, logger *slog.Logger) *Service {
	return &Service{
		die:      die,
		shuffler: shuffler,
		logger:   logger,
	}
}

// NewBoard creates a board of the standard cubes and shakes it
func (s *Service) NewBoard(lexicon model.Lexicon) *model.Board {
	board := model.NewBoard(lexicon)
	s.Shake(board)
	return board
}

// Shake abandons any word in progress, then shuffles and rolls every cube.
// Completed words are kept.
func (s *Service) Shake(board *model.Board) {
	board.ClearSelection()

	s.mu.Lock()
	board.ShakeCubes(s.shuffler, s.die)
	s.mu.Unlock()
}

// Restore rebuilds a board from a stored snapshot
func (s *Service) Restore(snap model.BoardSnapshot, lexicon model.Lexicon) (*model.Board, error) {
	board, err := model.RestoreBoard(snap, lexicon)
	if err != nil {
		s.logger.Warn("rejected board snapshot", slog.String("error", err.Error()))
		return nil, err
	}
	return board, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	NewBoard(lexicon model.Lexicon) *model.Board
	Shake(board *model.Board)
	Restore(snap model.BoardSnapshot, lexicon model.Lexicon) (*model.Board, error)
}

var _ ServiceInterface = (*Service)(nil)
