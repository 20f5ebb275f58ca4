package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/boggle-go/internal/model"
	"github.com/mcoot/boggle-go/internal/storage"
)

var _ storage.Storage = (*Storage)(nil)

// Storage persists games as versioned JSON strings with a sliding TTL, and
// the dictionary as a sorted set
type Storage struct {
	client *redis.Client
	keys   keyspace
	ttl    time.Duration
}

// New connects to cfg.URL and checks the server answers
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient wraps an existing client
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultConfig().KeyPrefix
	}
	return &Storage{
		client: client,
		keys:   keyspace(prefix),
		ttl:    cfg.GameTTL,
	}
}

// Close closes the underlying client
func (s *Storage) Close() error {
	return s.client.Close()
}

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := storage.EncodeGame(game)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.keys.game(game.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save game %s: %w", game.ID, err)
	}
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	data, err := s.client.Get(ctx, s.keys.game(id)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, model.ErrGameNotFound
	case err != nil:
		return nil, fmt.Errorf("get game %s: %w", id, err)
	}
	return storage.DecodeGame(data)
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	if err := s.client.Del(ctx, s.keys.game(id)).Err(); err != nil {
		return fmt.Errorf("delete game %s: %w", id, err)
	}
	return nil
}

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	var (
		count *redis.StringCmd
		words *redis.StringSliceCmd
	)
	_, err := s.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		count = p.Get(ctx, s.keys.wordCount())
		words = p.ZRange(ctx, s.keys.words(), 0, -1)
		return nil
	})
	if errors.Is(count.Err(), redis.Nil) {
		return nil, model.ErrDictionaryNotLoaded
	}
	if err != nil {
		return nil, fmt.Errorf("get dictionary: %w", err)
	}
	return words.Val(), nil
}

// SaveDictionaryWords replaces the word list atomically: readers see either
// the old list or the new one
func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	members := make([]redis.Z, len(words))
	for i, w := range words {
		members[i] = redis.Z{Member: w}
	}

	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		if len(members) == 0 {
			p.Del(ctx, s.keys.words())
		} else {
			p.Del(ctx, s.keys.wordsStaging())
			p.ZAdd(ctx, s.keys.wordsStaging(), members...)
			p.Rename(ctx, s.keys.wordsStaging(), s.keys.words())
		}
		p.Set(ctx, s.keys.wordCount(), len(words), 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save dictionary: %w", err)
	}
	return nil
}
