package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/boggle-go/internal/dependencies/mocks"
	"github.com/mcoot/boggle-go/internal/model"
)

type StoreSuite struct {
	suite.Suite
	store *Store
	clock *mocks.MockClock
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	cfg := DefaultConfig()
	cfg.Path = filepath.Join(s.T().TempDir(), "boggle.db")
	cfg.GameTTL = time.Hour

	store, err := Open(cfg)
	s.Require().NoError(err)

	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	store.clk = s.clock

	s.store = store
	s.ctx = context.Background()
}

func (s *StoreSuite) TearDownTest() {
	s.NoError(s.store.Close())
}

func newGame(id model.GameID) *model.Game {
	return &model.Game{
		ID:    id,
		Round: 1,
		Board: model.NewBoard(nil).Snapshot(),
	}
}

func (s *StoreSuite) TestOpenRequiresPath() {
	_, err := Open(Config{})
	s.Error(err)
}

// Game tests

func (s *StoreSuite) TestSaveAndGetGame() {
	game := newGame("game-1")
	game.Board.Found = []string{"PUT", "APT"}

	s.Require().NoError(s.store.SaveGame(s.ctx, game))

	retrieved, err := s.store.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(game.Board.Order, retrieved.Board.Order)
	s.Equal([]string{"PUT", "APT"}, retrieved.Board.Found)
}

func (s *StoreSuite) TestSaveGameOverwrites() {
	game := newGame("game-1")
	s.Require().NoError(s.store.SaveGame(s.ctx, game))

	game.Round = 3
	s.Require().NoError(s.store.SaveGame(s.ctx, game))

	retrieved, err := s.store.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(3, retrieved.Round)
}

func (s *StoreSuite) TestGetGameNotFound() {
	_, err := s.store.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StoreSuite) TestGameExpires() {
	s.Require().NoError(s.store.SaveGame(s.ctx, newGame("game-1")))

	s.clock.Advance(30 * time.Minute)
	_, err := s.store.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)
	_, err = s.store.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)

	purged, err := s.store.PurgeExpired(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), purged)
}

func (s *StoreSuite) TestDeleteGame() {
	s.Require().NoError(s.store.SaveGame(s.ctx, newGame("game-1")))
	s.Require().NoError(s.store.DeleteGame(s.ctx, "game-1"))

	_, err := s.store.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// Dictionary tests

func (s *StoreSuite) TestDictionaryNotLoaded() {
	_, err := s.store.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *StoreSuite) TestEmptyDictionaryIsLoaded() {
	s.Require().NoError(s.store.SaveDictionaryWords(s.ctx, nil))

	words, err := s.store.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Empty(words)
}

func (s *StoreSuite) TestSaveDictionaryReplaces() {
	s.Require().NoError(s.store.SaveDictionaryWords(s.ctx, []string{"OLD"}))
	s.Require().NoError(s.store.SaveDictionaryWords(s.ctx, []string{"PUT", "GET", "PUT"}))

	words, err := s.store.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"GET", "PUT"}, words)
}
