package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/mcoot/boggle-go/internal/api"
	"github.com/mcoot/boggle-go/internal/factory"
	redisstorage "github.com/mcoot/boggle-go/internal/storage/redis"
	sqlitestorage "github.com/mcoot/boggle-go/internal/storage/sqlite"
)

// Server is the server's configuration, read from BOGGLE_* environment variables
type Server struct {
	Host            string        `env:"BOGGLE_HOST"`
	Port            int           `env:"BOGGLE_PORT"             envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"BOGGLE_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	LogLevel slog.Level `env:"BOGGLE_LOG_LEVEL" envDefault:"INFO"`

	DictionaryPath string `env:"BOGGLE_DICTIONARY_PATH" envDefault:"data/words.txt"`
	StaticDir      string `env:"BOGGLE_STATIC_DIR"`

	StorageType string        `env:"BOGGLE_STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string        `env:"BOGGLE_REDIS_URL"`
	SQLitePath  string        `env:"BOGGLE_SQLITE_PATH"  envDefault:"boggle.db"`
	SessionTTL  time.Duration `env:"BOGGLE_SESSION_TTL"  envDefault:"24h"`

	// Predictable deals the same board every round
	Predictable bool `env:"BOGGLE_PREDICTABLE" envDefault:"false"`
	// Seed makes the board sequence reproducible when non-zero
	Seed uint64 `env:"BOGGLE_SEED"`
}

// Load reads envFiles (a missing file is skipped) and parses the environment
func Load(envFiles ...string) (Server, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Server{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate checks settings that depend on each other
func (c Server) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("BOGGLE_PORT %d out of range", c.Port)
	}
	switch c.StorageType {
	case factory.StorageTypeMemory, factory.StorageTypeSQLite:
	case factory.StorageTypeRedis:
		if c.RedisURL == "" {
			return errors.New("BOGGLE_REDIS_URL required when BOGGLE_STORAGE_TYPE=redis")
		}
	default:
		return fmt.Errorf("BOGGLE_STORAGE_TYPE %q must be memory, redis or sqlite", c.StorageType)
	}
	return nil
}

// Factory returns the application factory configuration
func (c Server) Factory(logger *slog.Logger) factory.Config {
	cfg := factory.Config{
		Logger:      logger,
		StorageType: c.StorageType,
		Predictable: c.Predictable,
		Seed:        c.Seed,
	}

	switch c.StorageType {
	case factory.StorageTypeMemory:
		cfg.MemoryGameTTL = c.SessionTTL
	case factory.StorageTypeRedis:
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		redisCfg.GameTTL = c.SessionTTL
		cfg.RedisConfig = &redisCfg
	case factory.StorageTypeSQLite:
		sqliteCfg := sqlitestorage.DefaultConfig()
		sqliteCfg.Path = c.SQLitePath
		sqliteCfg.GameTTL = c.SessionTTL
		cfg.SQLiteConfig = &sqliteCfg
	}

	return cfg
}

// HTTP returns the HTTP server configuration
func (c Server) HTTP() api.ServerConfig {
	cfg := api.DefaultServerConfig()
	cfg.Host = c.Host
	cfg.Port = c.Port
	cfg.ShutdownTimeout = c.ShutdownTimeout
	return cfg
}
