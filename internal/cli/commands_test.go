package cli

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/boggle-go/internal/api"
	"github.com/mcoot/boggle-go/internal/api/response"
	"github.com/mcoot/boggle-go/internal/factory"
	"github.com/mcoot/boggle-go/internal/testutil"
)

type CommandsSuite struct {
	suite.Suite
	app      *factory.TestApp
	server   *httptest.Server
	gameFile string
}

func TestCommandsSuite(t *testing.T) {
	suite.Run(t, new(CommandsSuite))
}

func (s *CommandsSuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.app.LoadTestDictionary()
	s.server = httptest.NewServer(api.NewRouter(api.RouterConfig{
		Logger:         testutil.NopLogger(),
		GameController: s.app.GameController,
	}))
	s.gameFile = filepath.Join(s.T().TempDir(), "game")
}

func (s *CommandsSuite) TearDownTest() {
	s.server.Close()
}

// run executes the CLI with JSON output and returns stdout
func (s *CommandsSuite) run(args ...string) (string, error) {
	out, _, err := s.runCapturing(args...)
	return out, err
}

func (s *CommandsSuite) runCapturing(args ...string) (stdout, stderr string, err error) {
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{
		"--server", s.server.URL,
		"--game-file", s.gameFile,
		"--output", "json",
	}, args...))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func (s *CommandsSuite) newGame() response.Game {
	s.app.MockRandom.QueueString("GAME01")
	out, err := s.run("game", "new")
	s.Require().NoError(err)

	var game response.Game
	s.Require().NoError(json.Unmarshal([]byte(out), &game))
	return game
}

func (s *CommandsSuite) TestHealth() {
	out, err := s.run("health")
	s.Require().NoError(err)

	var health response.Health
	s.Require().NoError(json.Unmarshal([]byte(out), &health))
	s.Equal("ok", health.Status)
}

func (s *CommandsSuite) TestVerboseLogsRequests() {
	_, stderr, err := s.runCapturing("-v", "health")
	s.Require().NoError(err)
	s.Contains(stderr, "api request")
	s.Contains(stderr, "path=/api/v1/health")
	s.Contains(stderr, "status=200")

	_, stderr, err = s.runCapturing("health")
	s.Require().NoError(err)
	s.Empty(stderr)
}

func (s *CommandsSuite) TestNewRemembersGame() {
	game := s.newGame()
	s.Equal("GAME01", game.ID)

	data, err := os.ReadFile(s.gameFile)
	s.Require().NoError(err)
	s.Equal("GAME01", string(data))

	out, err := s.run("game", "get")
	s.Require().NoError(err)

	var fetched response.Game
	s.Require().NoError(json.Unmarshal([]byte(out), &fetched))
	s.Equal("GAME01", fetched.ID)
	s.Equal("P", fetched.Board.Rows[0][2].Letter)
}

func (s *CommandsSuite) TestSelectSubmitsWord() {
	s.newGame()

	out, err := s.run("game", "select", "13", "12", "9", "9")
	s.Require().NoError(err)

	var result response.SelectResponse
	s.Require().NoError(json.Unmarshal([]byte(out), &result))
	s.Equal("accepted", result.Outcome.Result)
	s.Equal("PUT", result.Outcome.Word)
	s.Equal([]string{"PUT"}, result.Game.CompletedWords)
	s.Equal(1, result.Game.Score)
}

func (s *CommandsSuite) TestSelectWithExplicitGame() {
	s.newGame()
	s.Require().NoError(os.Remove(s.gameFile))

	out, err := s.run("game", "select", "--game", "GAME01", "13")
	s.Require().NoError(err)

	var result response.SelectResponse
	s.Require().NoError(json.Unmarshal([]byte(out), &result))
	s.Equal("extended", result.Outcome.Result)
	s.Equal("P", result.Game.WordSoFar)
}

func (s *CommandsSuite) TestSelectInvalidCubeID() {
	s.newGame()

	_, err := s.run("game", "select", "thirteen")
	s.ErrorContains(err, "invalid cube id")
}

func (s *CommandsSuite) TestClearRoundAndMissed() {
	s.newGame()
	_, err := s.run("game", "select", "13", "12")
	s.Require().NoError(err)

	out, err := s.run("game", "clear")
	s.Require().NoError(err)
	var cleared response.Game
	s.Require().NoError(json.Unmarshal([]byte(out), &cleared))
	s.Empty(cleared.WordSoFar)

	out, err = s.run("game", "missed")
	s.Require().NoError(err)
	var missed response.Missed
	s.Require().NoError(json.Unmarshal([]byte(out), &missed))
	s.Len(missed.Words, 9)

	out, err = s.run("game", "round")
	s.Require().NoError(err)
	var next response.Game
	s.Require().NoError(json.Unmarshal([]byte(out), &next))
	s.Equal(2, next.Round)
	s.Len(next.History, 1)
}

func (s *CommandsSuite) TestDeleteForgetsGame() {
	s.newGame()

	_, err := s.run("game", "delete")
	s.Require().NoError(err)

	_, err = os.Stat(s.gameFile)
	s.True(os.IsNotExist(err))

	_, err = s.run("game", "get", "GAME01")
	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal("GAME_NOT_FOUND", apiErr.Code)
	s.Equal(404, apiErr.StatusCode)
}

func (s *CommandsSuite) TestDeleteForgetsStaleGame() {
	s.Require().NoError(os.WriteFile(s.gameFile, []byte("STALE"), 0600))

	_, err := s.run("game", "delete")
	s.Require().NoError(err)

	_, err = os.Stat(s.gameFile)
	s.True(os.IsNotExist(err))
}

func (s *CommandsSuite) TestNoCurrentGame() {
	_, err := s.run("game", "get")
	s.ErrorIs(err, ErrNoCurrentGame)
}
