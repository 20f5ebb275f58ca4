package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mcoot/boggle-go/internal/dependencies/clock"
	"github.com/mcoot/boggle-go/internal/model"
	"github.com/mcoot/boggle-go/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS games (
	id          TEXT PRIMARY KEY,
	state_json  BLOB NOT NULL,
	updated_at  INTEGER NOT NULL,
	expires_at  INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS dictionary_words (
	word TEXT PRIMARY KEY
);
CREATE TABLE IF NOT EXISTS dictionary_meta (
	id         INTEGER PRIMARY KEY CHECK (id = 1),
	loaded_at  INTEGER NOT NULL
);
`

// Config holds SQLite storage settings
type Config struct {
	// Path is the database file
	Path string

	// GameTTL is refreshed on every save; zero disables expiry
	GameTTL time.Duration
}

// DefaultConfig returns sensible defaults for SQLite configuration
func DefaultConfig() Config {
	return Config{
		Path:    "boggle.db",
		GameTTL: 24 * time.Hour,
	}
}

// Store is a SQLite-backed implementation of the storage interface.
// Games are stored as JSON documents keyed by id.
type Store struct {
	sqlDB *sql.DB
	cfg   Config
	clk   clock.Clock
}

// Open opens the database at cfg.Path, creating the schema if needed
func Open(cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(cfg.Path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{sqlDB: sqlDB, cfg: cfg, clk: clock.New()}, nil
}

// Close releases the underlying SQLite connection
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Ensure Store implements the interface
var _ storage.Storage = (*Store)(nil)

// Game operations

func (s *Store) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := storage.EncodeGame(game)
	if err != nil {
		return err
	}

	now := s.clk.Now()
	var expiresAt int64
	if s.cfg.GameTTL > 0 {
		expiresAt = now.Add(s.cfg.GameTTL).UnixMilli()
	}

	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO games (id, state_json, updated_at, expires_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			state_json = excluded.state_json,
			updated_at = excluded.updated_at,
			expires_at = excluded.expires_at`,
		string(game.ID), data, now.UnixMilli(), expiresAt,
	)
	if err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	return nil
}

func (s *Store) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT state_json FROM games
		 WHERE id = ? AND (expires_at = 0 OR expires_at > ?)`,
		string(id), s.clk.Now().UnixMilli(),
	)

	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrGameNotFound
		}
		return nil, fmt.Errorf("get game: %w", err)
	}

	return storage.DecodeGame(data)
}

func (s *Store) DeleteGame(ctx context.Context, id model.GameID) error {
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, string(id)); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	return nil
}

// PurgeExpired removes expired games and returns how many were removed
func (s *Store) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM games WHERE expires_at != 0 AND expires_at <= ?`,
		s.clk.Now().UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("purge games: %w", err)
	}
	return res.RowsAffected()
}

// Dictionary operations

func (s *Store) GetDictionaryWords(ctx context.Context) ([]string, error) {
	var loadedAt int64
	err := s.sqlDB.QueryRowContext(ctx, `SELECT loaded_at FROM dictionary_meta WHERE id = 1`).Scan(&loadedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrDictionaryNotLoaded
	}
	if err != nil {
		return nil, fmt.Errorf("get dictionary: %w", err)
	}

	rows, err := s.sqlDB.QueryContext(ctx, `SELECT word FROM dictionary_words ORDER BY word`)
	if err != nil {
		return nil, fmt.Errorf("get dictionary: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if words == nil {
		words = []string{}
	}
	return words, nil
}

func (s *Store) SaveDictionaryWords(ctx context.Context, words []string) (err error) {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM dictionary_words`); err != nil {
		return fmt.Errorf("clear dictionary: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO dictionary_words (word) VALUES (?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, w := range words {
		if _, err = stmt.ExecContext(ctx, w); err != nil {
			return fmt.Errorf("insert word %q: %w", w, err)
		}
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO dictionary_meta (id, loaded_at) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET loaded_at = excluded.loaded_at`,
		s.clk.Now().UnixMilli(),
	); err != nil {
		return fmt.Errorf("mark dictionary loaded: %w", err)
	}

	return tx.Commit()
}
