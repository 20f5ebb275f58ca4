package storage

import (
	"context"

	"github.com/mcoot/boggle-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Game session operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// Dictionary operations
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error
}
