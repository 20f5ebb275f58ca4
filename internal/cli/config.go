package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoCurrentGame is returned when a command needs a game id and none is remembered
var ErrNoCurrentGame = errors.New("no game id given and no current game; run 'boggle game new' first")

// Config holds CLI configuration
type Config struct {
	ServerURL string
	GameFile  string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("BOGGLE_SERVER", "http://localhost:8080"),
		GameFile:  getEnvOrDefault("BOGGLE_GAME_FILE", defaultGameFile()),
		Output:    "text",
		Verbose:   false,
	}
}

// ResolveGameID returns the explicit id if given, otherwise the remembered one
func (c *Config) ResolveGameID(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}

	data, err := os.ReadFile(c.GameFile)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoCurrentGame
		}
		return "", err
	}

	id := strings.TrimSpace(string(data))
	if id == "" {
		return "", ErrNoCurrentGame
	}
	return id, nil
}

// SaveGameID remembers the current game id
func (c *Config) SaveGameID(id string) error {
	dir := filepath.Dir(c.GameFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.GameFile, []byte(id), 0600)
}

// ForgetGameID removes the remembered game id if it matches
func (c *Config) ForgetGameID(id string) error {
	current, err := c.ResolveGameID(nil)
	if err != nil || current != id {
		return nil
	}
	return os.Remove(c.GameFile)
}

func defaultGameFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".boggle/game"
	}
	return filepath.Join(home, ".boggle", "game")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
