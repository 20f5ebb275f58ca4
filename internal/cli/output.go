package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mcoot/boggle-go/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(os.Stderr, string(data))
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		o.println(string(data))
	} else {
		o.println(msg)
	}
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

func (o *Output) println(args ...any) {
	_, _ = fmt.Fprintln(o.w, args...)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Game:
		o.printGame(v)
	case response.SelectResponse:
		o.printSelect(v)
	case response.Missed:
		o.printMissed(v)
	case response.Health:
		o.printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printGame(g response.Game) {
	o.printf("Game: %s\n", g.ID)
	o.printf("Round: %d\n", g.Round)
	o.println()
	o.printBoard(g.Board)
	o.println()
	o.printf("Word: %s\n", g.WordSoFar)
	o.printf("Found (%d): %s\n", len(g.CompletedWords), strings.Join(g.CompletedWords, ", "))
	o.printf("Score: %d (total %d)\n", g.Score, g.TotalScore)

	if len(g.History) > 0 {
		o.println("\nPrevious rounds:")
		for _, r := range g.History {
			o.printf("  %d: %d points (%s)\n", r.Round, r.Score, strings.Join(r.Words, ", "))
		}
	}
}

func (o *Output) printSelect(s response.SelectResponse) {
	switch s.Outcome.Result {
	case "accepted":
		o.printf("Found %s!\n\n", s.Outcome.Word)
	case "rejected":
		o.printf("%s is not accepted\n\n", s.Outcome.Word)
	case "ignored":
		o.println("Cube is not next to the last one; ignored")
		o.println()
	}
	o.printGame(s.Game)
}

func (o *Output) printMissed(m response.Missed) {
	if len(m.Words) == 0 {
		o.println("No words missed")
		return
	}
	o.printf("Missed (%d):\n", len(m.Words))
	for _, w := range m.Words {
		o.printf("  %s\n", w)
	}
}

// printBoard draws the grid with each cube's id beside it. Selected cubes
// are bracketed and the most recent selection is marked with angle brackets.
func (o *Output) printBoard(b response.Board) {
	for _, row := range b.Rows {
		var sb strings.Builder
		for _, cube := range row {
			open, closing := " ", " "
			switch cube.Status {
			case "selected":
				open, closing = "[", "]"
			case "most recently selected":
				open, closing = "<", ">"
			}
			fmt.Fprintf(&sb, " %-4s%2d", open+cube.Letter+closing, cube.ID)
		}
		o.println(sb.String())
	}
}
