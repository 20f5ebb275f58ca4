package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/mcoot/boggle-go/internal/dependencies/clock"
	"github.com/mcoot/boggle-go/internal/model"
	"github.com/mcoot/boggle-go/internal/storage"
)

var _ storage.Storage = (*Storage)(nil)

type entry struct {
	game      *model.Game
	expiresAt time.Time // zero never expires
}

// Storage keeps games and the word list in process memory.
// Games are cloned on the way in and out so callers never share state.
type Storage struct {
	clk clock.Clock
	ttl time.Duration

	mu    sync.RWMutex
	games map[model.GameID]entry
	words []string
}

// Option configures a Storage
type Option func(*Storage)

// WithGameTTL expires games ttl after their last save, as the Redis and
// SQLite backends do
func WithGameTTL(ttl time.Duration) Option {
	return func(s *Storage) { s.ttl = ttl }
}

// WithClock replaces the wall clock used for expiry
func WithClock(clk clock.Clock) Option {
	return func(s *Storage) { s.clk = clk }
}

// New returns an empty store. Without WithGameTTL games never expire.
func New(opts ...Option) *Storage {
	s := &Storage{
		clk:   clock.New(),
		games: make(map[model.GameID]entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Storage) SaveGame(_ context.Context, game *model.Game) error {
	e := entry{game: game.Clone()}
	if s.ttl > 0 {
		e.expiresAt = s.clk.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.games[game.ID] = e
	s.mu.Unlock()
	return nil
}

func (s *Storage) GetGame(_ context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	e, ok := s.games[id]
	s.mu.RUnlock()

	if !ok || s.expired(e) {
		return nil, model.ErrGameNotFound
	}
	return e.game.Clone(), nil
}

func (s *Storage) DeleteGame(_ context.Context, id model.GameID) error {
	s.mu.Lock()
	delete(s.games, id)
	s.mu.Unlock()
	return nil
}

// GameCount returns the number of live games, dropping expired ones
func (s *Storage) GameCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.games {
		if s.expired(e) {
			delete(s.games, id)
		}
	}
	return len(s.games)
}

func (s *Storage) expired(e entry) bool {
	return !e.expiresAt.IsZero() && !s.clk.Now().Before(e.expiresAt)
}

func (s *Storage) GetDictionaryWords(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.words == nil {
		return nil, model.ErrDictionaryNotLoaded
	}
	return slices.Clone(s.words), nil
}

func (s *Storage) SaveDictionaryWords(_ context.Context, words []string) error {
	cp := slices.Clone(words)
	if cp == nil {
		cp = []string{}
	}

	s.mu.Lock()
	s.words = cp
	s.mu.Unlock()
	return nil
}
