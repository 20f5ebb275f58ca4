package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/boggle-go/internal/model"
	"github.com/mcoot/boggle-go/internal/storage/memory"
	"github.com/mcoot/boggle-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestIsNotLoadedByDefault() {
	s.False(s.service.IsLoaded())
	s.Equal(0, s.service.WordCount())
	s.False(s.service.Contains("PUT"))
}

func (s *ServiceSuite) TestLoadWords() {
	s.service.LoadWords([]string{"put", "get", "apt"})

	s.True(s.service.IsLoaded())
	s.Equal(3, s.service.WordCount())
}

func (s *ServiceSuite) TestContainsIsCaseInsensitive() {
	s.service.LoadWords([]string{"Put", "GET"})

	s.True(s.service.Contains("PUT"))
	s.True(s.service.Contains("put"))
	s.True(s.service.Contains("get"))
	s.False(s.service.Contains("apt"))
}

func (s *ServiceSuite) TestContainsSingleLetterWords() {
	s.service.LoadWords([]string{"a", "i"})
	s.True(s.service.Contains("A"))
}

func (s *ServiceSuite) TestLoadWordsDeduplicates() {
	s.service.LoadWords([]string{"put", "PUT", "Put"})
	s.Equal(1, s.service.WordCount())
}

func (s *ServiceSuite) TestHasPrefix() {
	s.service.LoadWords([]string{"quit", "quite", "put"})

	s.True(s.service.HasPrefix("QU"))
	s.True(s.service.HasPrefix("quit"))
	s.True(s.service.HasPrefix("P"))
	s.True(s.service.HasPrefix(""))
	s.False(s.service.HasPrefix("QUIZ"))
	s.False(s.service.HasPrefix("Z"))
}

func (s *ServiceSuite) TestReadWordsSkipsBlanksAndComments() {
	words, err := ReadWords(strings.NewReader("# header\nput\n\n  get  \n#apt\n"))
	s.Require().NoError(err)
	s.Equal([]string{"put", "get"}, words)
}

func (s *ServiceSuite) TestLoadFromFilePersistsToStorage() {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	s.Require().NoError(os.WriteFile(path, []byte("put\nget\n"), 0o600))

	err := s.service.LoadFromFile(s.ctx, path)
	s.Require().NoError(err)
	s.True(s.service.Contains("PUT"))

	stored, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"put", "get"}, stored)
}

func (s *ServiceSuite) TestLoadFromFileMissing() {
	err := s.service.LoadFromFile(s.ctx, filepath.Join(s.T().TempDir(), "missing.txt"))
	s.Error(err)
	s.False(s.service.IsLoaded())
}

func (s *ServiceSuite) TestLoadFromStorage() {
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, []string{"test", "word"}))

	err := s.service.LoadFromStorage(s.ctx)
	s.Require().NoError(err)
	s.True(s.service.Contains("TEST"))
	s.Equal(2, s.service.WordCount())
}

func (s *ServiceSuite) TestLoadFromStorageWhenEmpty() {
	err := s.service.LoadFromStorage(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}
