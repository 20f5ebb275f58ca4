package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379/0)
	URL string

	// KeyPrefix namespaces every key written
	KeyPrefix string

	PoolSize     int
	MinIdleConns int

	// DialTimeout bounds the connectivity check made by New
	DialTimeout time.Duration

	// GameTTL is refreshed on every save; zero disables expiry
	GameTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		KeyPrefix:    "boggle",
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		GameTTL:      24 * time.Hour,
	}
}
