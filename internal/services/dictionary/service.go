package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/mcoot/boggle-go/internal/model"
	"github.com/mcoot/boggle-go/internal/storage"
)

// Service holds the lexicon used to validate submitted words.
// Words are stored uppercase; lookups are case-insensitive.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	words  map[string]struct{}
	sorted []string // sorted copy of words, for prefix queries
	loaded bool
}

// New creates a new DictionaryService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		words:   make(map[string]struct{}),
	}
}

// LoadFromStorage loads dictionary words previously saved to storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	s.loadWords(words)
	s.logger.Info("dictionary loaded from storage", slog.Int("word_count", s.WordCount()))
	return nil
}

// LoadFromFile loads dictionary words from a file (one word per line) and
// saves them to storage
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dictionary: %w", err)
	}
	defer func() { _ = file.Close() }()

	words, err := ReadWords(file)
	if err != nil {
		return fmt.Errorf("read dictionary %s: %w", path, err)
	}

	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}

	s.loadWords(words)
	s.logger.Info("dictionary loaded from file",
		slog.String("path", path),
		slog.Int("word_count", s.WordCount()),
	)
	return nil
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) {
	s.loadWords(words)
}

// ReadWords reads one word per line, skipping blank lines and # comments
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func (s *Service) loadWords(words []string) {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[strings.ToUpper(word)] = struct{}{}
	}
	sorted := make([]string, 0, len(set))
	for word := range set {
		sorted = append(sorted, word)
	}
	sort.Strings(sorted)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = set
	s.sorted = sorted
	s.loaded = true
}

// Contains reports whether word is in the dictionary
func (s *Service) Contains(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}
	_, ok := s.words[strings.ToUpper(word)]
	return ok
}

// HasPrefix reports whether any dictionary word starts with prefix
func (s *Service) HasPrefix(prefix string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefix = strings.ToUpper(prefix)
	i := sort.SearchStrings(s.sorted, prefix)
	return i < len(s.sorted) && strings.HasPrefix(s.sorted[i], prefix)
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of distinct words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// ServiceInterface is the dictionary as seen by its consumers
type ServiceInterface interface {
	model.Lexicon
	HasPrefix(prefix string) bool
	IsLoaded() bool
	WordCount() int
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadWords(words []string)
}

var _ ServiceInterface = (*Service)(nil)
