package e2e_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/boggle-go/internal/api"
	"github.com/mcoot/boggle-go/internal/api/response"
	"github.com/mcoot/boggle-go/internal/factory"
	"github.com/mcoot/boggle-go/internal/testutil"
	"github.com/mcoot/boggle-go/internal/web"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	gameFile   string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "boggle-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/boggle")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		gameFile:   filepath.Join(t.TempDir(), "game"),
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--game-file", r.gameFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.Output()
	return string(output), err
}

// play runs the local terminal game from the project root with the given input
func (r *cliRunner) play(t *testing.T, input string) (string, error) {
	t.Helper()

	cmd := exec.Command(r.binaryPath, "play", "--predictable")
	cmd.Dir = findProjectRoot(t)
	cmd.Stdin = strings.NewReader(input)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// startTestServer serves the API and web routers over a predictable app
// until the test ends, returning the server URL
func startTestServer(t *testing.T) string {
	t.Helper()

	app, err := factory.New(factory.Config{Predictable: true})
	require.NoError(t, err)

	projectRoot := findProjectRoot(t)
	err = app.DictionaryService.LoadFromFile(context.Background(), filepath.Join(projectRoot, "data/words.txt"))
	require.NoError(t, err)

	logger := testutil.NopLogger()

	mux := http.NewServeMux()
	mux.Handle("/api/", api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
	}))
	mux.Handle("/", web.NewRouter(web.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
	}))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := api.NewServer(mux, api.DefaultServerConfig(), logger)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx, ln)
	}()

	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Log("server did not stop in time")
		}
	})

	serverURL := "http://" + ln.Addr().String()
	waitForServer(t, serverURL+"/api/v1/health")
	return serverURL
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	cli := newCLIRunner(t, startTestServer(t))

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp response.Health
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_FullGameFlow(t *testing.T) {
	cli := newCLIRunner(t, startTestServer(t))

	// New game is remembered in the game file
	output, err := cli.run("game", "new")
	require.NoError(t, err, "output: %s", output)

	var game response.Game
	require.NoError(t, json.Unmarshal([]byte(output), &game))
	require.NotEmpty(t, game.ID)
	assert.Equal(t, "P", game.Board.Rows[0][2].Letter)
	assert.Equal(t, 13, game.Board.Rows[0][2].ID)

	// Trace and submit PUT
	output, err = cli.run("game", "select", "13", "12", "9", "9")
	require.NoError(t, err, "output: %s", output)

	var sel response.SelectResponse
	require.NoError(t, json.Unmarshal([]byte(output), &sel))
	assert.Equal(t, "accepted", sel.Outcome.Result)
	assert.Equal(t, []string{"PUT"}, sel.Game.CompletedWords)

	// PUT is no longer missed
	output, err = cli.run("game", "missed")
	require.NoError(t, err, "output: %s", output)

	var missed response.Missed
	require.NoError(t, json.Unmarshal([]byte(output), &missed))
	assert.NotEmpty(t, missed.Words)
	assert.NotContains(t, missed.Words, "PUT")
	assert.Contains(t, missed.Words, "AIR")

	// Next round keeps the session's history
	output, err = cli.run("game", "round")
	require.NoError(t, err, "output: %s", output)

	var next response.Game
	require.NoError(t, json.Unmarshal([]byte(output), &next))
	assert.Equal(t, 2, next.Round)
	require.Len(t, next.History, 1)
	assert.Equal(t, []string{"PUT"}, next.History[0].Words)
	assert.Equal(t, 1, next.TotalScore)

	// Delete
	_, err = cli.run("game", "delete")
	require.NoError(t, err)

	_, err = cli.run("game", "get", game.ID)
	assert.Error(t, err)
}

func TestCLI_LocalPlay(t *testing.T) {
	cli := newCLIRunner(t, "http://127.0.0.1:1")

	output, err := cli.play(t, "13 12 9 9\nq\n")
	require.NoError(t, err, "output: %s", output)

	assert.Contains(t, output, "Found PUT!")
	assert.Contains(t, output, "Final score: 1 over 1 round(s)")
}
