package game

import (
	"context"
	"hash/fnv"
	"log/slog"
	"sync"

	"github.com/mcoot/boggle-go/internal/dependencies/clock"
	"github.com/mcoot/boggle-go/internal/dependencies/random"
	"github.com/mcoot/boggle-go/internal/model"
	"github.com/mcoot/boggle-go/internal/services/board"
	"github.com/mcoot/boggle-go/internal/services/dictionary"
	"github.com/mcoot/boggle-go/internal/services/scoring"
	"github.com/mcoot/boggle-go/internal/services/solver"
	"github.com/mcoot/boggle-go/internal/storage"
)

const (
	gameIDLength = 12
	lockStripes  = 64
)

// State is a game session together with its live board
type State struct {
	Game  *model.Game
	Board *model.Board
	// Score is the current round's score
	Score int
}

// Controller owns game sessions. Each operation loads the session's board,
// applies one event, and saves it back; events on the same game are serialised.
type Controller struct {
	storage        storage.Storage
	dictionary     dictionary.ServiceInterface
	boardService   *board.Service
	scoringService *scoring.Service
	solver         *solver.Service
	clock          clock.Clock
	random         random.Random
	logger         *slog.Logger

	locks [lockStripes]sync.Mutex
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	dictionary dictionary.ServiceInterface,
	boardService *board.Service,
	scoringService *scoring.Service,
	solver *solver.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:        storage,
		dictionary:     dictionary,
		boardService:   boardService,
		scoringService: scoringService,
		solver:         solver,
		clock:          clock,
		random:         random,
		logger:         logger,
	}
}

func (c *Controller) lock(id model.GameID) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	mu := &c.locks[h.Sum32()%lockStripes]
	mu.Lock()
	return mu.Unlock
}

// NewGame starts a session on a freshly shaken board
func (c *Controller) NewGame(ctx context.Context) (*State, error) {
	if !c.dictionary.IsLoaded() {
		return nil, model.ErrDictionaryNotLoaded
	}

	now := c.clock.Now()
	b := c.boardService.NewBoard(c.dictionary)
	game := &model.Game{
		ID:        model.GameID(c.random.String(gameIDLength, random.IDAlphabet)),
		Round:     1,
		Board:     b.Snapshot(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created", slog.String("game_id", string(game.ID)))

	return c.state(game, b), nil
}

// GetGame retrieves a session and its board
func (c *Controller) GetGame(ctx context.Context, id model.GameID) (*State, error) {
	game, b, err := c.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.state(game, b), nil
}

// Select reports the selection of a cube on the session's board
func (c *Controller) Select(ctx context.Context, id model.GameID, cubeID model.CubeID) (*State, model.SelectionOutcome, error) {
	defer c.lock(id)()

	game, b, err := c.load(ctx, id)
	if err != nil {
		return nil, model.SelectionOutcome{}, err
	}

	outcome, err := b.ReportSelection(cubeID)
	if err != nil {
		return nil, model.SelectionOutcome{}, err
	}

	if outcome.Result != model.SelectionIgnored {
		if err := c.save(ctx, game, b); err != nil {
			return nil, model.SelectionOutcome{}, err
		}
	}

	switch outcome.Result {
	case model.SelectionAccepted:
		c.logger.Info("word accepted",
			slog.String("game_id", string(id)),
			slog.String("word", outcome.Word),
		)
	case model.SelectionRejected:
		c.logger.Debug("word rejected",
			slog.String("game_id", string(id)),
			slog.String("word", outcome.Word),
		)
	}

	return c.state(game, b), outcome, nil
}

// Clear abandons the word in progress
func (c *Controller) Clear(ctx context.Context, id model.GameID) (*State, error) {
	defer c.lock(id)()

	game, b, err := c.load(ctx, id)
	if err != nil {
		return nil, err
	}

	b.ClearSelection()
	if err := c.save(ctx, game, b); err != nil {
		return nil, err
	}
	return c.state(game, b), nil
}

// NewRound finishes the current round and starts another on a new board
func (c *Controller) NewRound(ctx context.Context, id model.GameID) (*State, error) {
	defer c.lock(id)()

	game, b, err := c.load(ctx, id)
	if err != nil {
		return nil, err
	}

	summary := model.RoundSummary{
		Round:      game.Round,
		Words:      b.CompletedWords(),
		Score:      c.scoringService.ScoreBoard(b),
		FinishedAt: c.clock.Now(),
	}
	game.History = append(game.History, summary)
	game.Round++

	next := c.boardService.NewBoard(c.dictionary)
	if err := c.save(ctx, game, next); err != nil {
		return nil, err
	}

	c.logger.Info("round finished",
		slog.String("game_id", string(id)),
		slog.Int("round", summary.Round),
		slog.Int("words", len(summary.Words)),
		slog.Int("score", summary.Score),
	)

	return c.state(game, next), nil
}

// Missed returns the words on the current board the player has not found
func (c *Controller) Missed(ctx context.Context, id model.GameID) ([]string, error) {
	_, b, err := c.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.solver.MissedWords(b), nil
}

// Delete ends a session
func (c *Controller) Delete(ctx context.Context, id model.GameID) error {
	defer c.lock(id)()

	if _, err := c.storage.GetGame(ctx, id); err != nil {
		return err
	}
	if err := c.storage.DeleteGame(ctx, id); err != nil {
		return err
	}

	c.logger.Info("game deleted", slog.String("game_id", string(id)))
	return nil
}

func (c *Controller) load(ctx context.Context, id model.GameID) (*model.Game, *model.Board, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	b, err := c.boardService.Restore(game.Board, c.dictionary)
	if err != nil {
		c.logger.Error("stored board is invalid",
			slog.String("game_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, nil, err
	}
	return game, b, nil
}

func (c *Controller) save(ctx context.Context, game *model.Game, b *model.Board) error {
	game.Board = b.Snapshot()
	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

func (c *Controller) state(game *model.Game, b *model.Board) *State {
	return &State{
		Game:  game,
		Board: b,
		Score: c.scoringService.ScoreBoard(b),
	}
}

// Interface for dependency injection
type ControllerInterface interface {
	NewGame(ctx context.Context) (*State, error)
	GetGame(ctx context.Context, id model.GameID) (*State, error)
	Select(ctx context.Context, id model.GameID, cubeID model.CubeID) (*State, model.SelectionOutcome, error)
	Clear(ctx context.Context, id model.GameID) (*State, error)
	NewRound(ctx context.Context, id model.GameID) (*State, error)
	Missed(ctx context.Context, id model.GameID) ([]string, error)
	Delete(ctx context.Context, id model.GameID) error
}

var _ ControllerInterface = (*Controller)(nil)
