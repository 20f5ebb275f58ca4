package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/boggle-go/internal/dependencies/clock"
	"github.com/mcoot/boggle-go/internal/dependencies/dice"
	"github.com/mcoot/boggle-go/internal/dependencies/random"
	"github.com/mcoot/boggle-go/internal/model"
	"github.com/mcoot/boggle-go/internal/services/board"
	"github.com/mcoot/boggle-go/internal/services/dictionary"
	"github.com/mcoot/boggle-go/internal/services/game"
	"github.com/mcoot/boggle-go/internal/services/scoring"
	"github.com/mcoot/boggle-go/internal/services/solver"
	"github.com/mcoot/boggle-go/internal/storage"
	"github.com/mcoot/boggle-go/internal/storage/memory"
	redisstorage "github.com/mcoot/boggle-go/internal/storage/redis"
	sqlitestorage "github.com/mcoot/boggle-go/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// PredictableFace is the face every cube shows on a predictable board
const PredictableFace = 4

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock    clock.Clock
	Random   random.Random
	Die      model.Die
	Shuffler model.Shuffler

	// Services
	DictionaryService *dictionary.Service
	BoardService      *board.Service
	ScoringService    *scoring.Service
	SolverService     *solver.Service
	GameController    *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLiteConfig holds SQLite settings (required if StorageType is "sqlite")
	SQLiteConfig *sqlitestorage.Config
	// Predictable replaces the random dice with a reversing shuffler and a
	// die that always shows PredictableFace
	Predictable bool
	// Seed, if non-zero, makes boards and game ids reproducible
	Seed uint64
	// MemoryGameTTL expires idle games in the memory backend; zero keeps them forever
	MemoryGameTTL time.Duration
}

// New creates a new application with all dependencies wired.
// The dictionary is not loaded; callers load it from a file or storage.
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	}

	var (
		die      model.Die
		shuffler model.Shuffler
	)
	if cfg.Predictable {
		die, err = dice.NewPredictableDie(PredictableFace)
		if err != nil {
			return nil, err
		}
		shuffler = dice.ReverseShuffler{}
	} else {
		die = dice.NewSixSidedDie(rnd)
		shuffler = dice.NewRandomShuffler(rnd)
	}

	return newWithDependencies(store, clk, rnd, die, shuffler, logger), nil
}

func newStorage(cfg Config) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(memory.WithGameTTL(cfg.MemoryGameTTL)), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(*cfg.RedisConfig)
	case StorageTypeSQLite:
		if cfg.SQLiteConfig == nil {
			return nil, errors.New("SQLiteConfig required when StorageType is sqlite")
		}
		return sqlitestorage.Open(*cfg.SQLiteConfig)
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'redis' or 'sqlite'", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	die model.Die,
	shuffler model.Shuffler,
	logger *slog.Logger,
) *App {
	dictService := dictionary.New(store, logger)
	boardService := board.New(die, shuffler, logger)
	scoringService := scoring.New()
	solverService := solver.New(dictService)
	gameController := game.NewController(
		store,
		dictService,
		boardService,
		scoringService,
		solverService,
		clk,
		rnd,
		logger,
	)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		Die:               die,
		Shuffler:          shuffler,
		DictionaryService: dictService,
		BoardService:      boardService,
		ScoringService:    scoringService,
		SolverService:     solverService,
		GameController:    gameController,
	}
}

// Close releases the storage backend's connections, if it holds any
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
