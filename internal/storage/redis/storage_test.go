package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/boggle-go/internal/model"
	"github.com/mcoot/boggle-go/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.GameTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func newGame(id model.GameID) *model.Game {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &model.Game{
		ID:        id,
		Round:     2,
		Board:     model.NewBoard(nil).Snapshot(),
		History:   []model.RoundSummary{{Round: 1, Words: []string{"PUT"}, Score: 1, FinishedAt: now}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	game := newGame("game-1")
	game.Board.Path = []model.CubeID{3, 2}
	game.Board.Statuses[3] = model.StatusSelected
	game.Board.Statuses[2] = model.StatusMostRecentlySelected

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(2, retrieved.Round)
	s.Equal(game.Board.Order, retrieved.Board.Order)
	s.Equal(game.Board.Statuses, retrieved.Board.Statuses)
	s.Equal([]model.CubeID{3, 2}, retrieved.Board.Path)
	s.Require().Len(retrieved.History, 1)
	s.Equal([]string{"PUT"}, retrieved.History[0].Words)
	s.True(game.CreatedAt.Equal(retrieved.CreatedAt))
	s.NoError(retrieved.Board.Validate())
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestGameHasTTL() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, newGame("game-1")))

	ttl := s.mini.TTL(s.storage.keys.game("game-1"))
	s.True(ttl > 0, "game should have TTL")
	s.True(ttl <= time.Hour, "TTL should be at most 1 hour")
}

func (s *StorageSuite) TestGameExpires() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, newGame("game-1")))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDeleteGame() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, newGame("game-1")))

	err := s.storage.DeleteGame(s.ctx, "game-1")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestGetGameRejectsCorruptData() {
	s.Require().NoError(s.mini.Set(s.storage.keys.game("game-1"), `{"v":99}`))

	_, err := s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, storage.ErrUnsupportedFormat)
}

// Dictionary tests

func (s *StorageSuite) TestDictionaryNotLoaded() {
	_, err := s.storage.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *StorageSuite) TestSaveAndGetDictionary() {
	words := []string{"PUT", "GET", "APT"}
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, words))

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"APT", "GET", "PUT"}, retrieved)
}

func (s *StorageSuite) TestSaveDictionaryReplaces() {
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, []string{"OLD"}))
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, []string{"NEW", "WORDS"}))

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"NEW", "WORDS"}, retrieved)
	s.False(s.mini.Exists(s.storage.keys.wordsStaging()))
}

func (s *StorageSuite) TestDictionaryHasNoTTL() {
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, []string{"PUT"}))

	ttl := s.mini.TTL(s.storage.keys.words())
	s.Equal(time.Duration(0), ttl)
}

func (s *StorageSuite) TestEmptyDictionaryIsLoaded() {
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, []string{"PUT"}))
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, nil))

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Empty(retrieved)
}

func (s *StorageSuite) TestKeyPrefix() {
	cfg := DefaultConfig()
	cfg.KeyPrefix = "blue"
	other := NewWithClient(redis.NewClient(&redis.Options{Addr: s.mini.Addr()}), cfg)
	defer func() { _ = other.Close() }()

	s.Require().NoError(other.SaveGame(s.ctx, newGame("game-1")))
	s.True(s.mini.Exists("blue:game:game-1"))

	_, err := s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}
