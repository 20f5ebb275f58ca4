package components

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/boggle-go/internal/model"
)

// GameView is everything the game panel shows
type GameView struct {
	ID         model.GameID
	Round      int
	Board      *model.Board
	Score      int
	TotalScore int
	History    []model.RoundSummary
	// Notice reports the last action on partial (htmx) renders
	Notice string
	// Missed is shown when ShowMissed is set
	Missed     []string
	ShowMissed bool
}

func gamePath(id model.GameID, action string) string {
	path := "/game/" + url.PathEscape(string(id))
	if action != "" {
		path += "/" + action
	}
	return templ.EscapeString(path)
}

func cubeClass(status model.CubeStatus) string {
	switch status {
	case model.StatusSelected:
		return "cube selected"
	case model.StatusMostRecentlySelected:
		return "cube most-recent"
	default:
		return "cube"
	}
}

// GamePanel renders the board, the word in progress and the round's words.
// It is the htmx swap target for every game action.
func GamePanel(v GameView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString(`<section id="game-panel">`)
		fmt.Fprintf(&sb, `<p>Round <span id="round">%d</span> · Score <span id="score">%d</span> · Total <span id="total-score">%d</span></p>`,
			v.Round, v.Score, v.TotalScore)
		if v.Notice != "" {
			sb.WriteString(`<p id="notice">` + templ.EscapeString(v.Notice) + `</p>`)
		}

		writeBoard(&sb, v)

		sb.WriteString(`<p>Word: <strong id="word-so-far">` + templ.EscapeString(v.Board.WordSoFar()) + `</strong></p>`)

		writeControls(&sb, v.ID)

		sb.WriteString(`<h2>Words found</h2>`)
		writeWordList(&sb, "completed-words", v.Board.CompletedWords())

		if v.ShowMissed {
			sb.WriteString(`<h2>Words missed</h2>`)
			writeWordList(&sb, "missed-words", v.Missed)
		} else {
			sb.WriteString(`<p><a id="show-missed" href="` + gamePath(v.ID, "") + `?missed=1">Show missed words</a></p>`)
		}

		if len(v.History) > 0 {
			sb.WriteString(`<h2>Previous rounds</h2><table id="history"><tr><th>Round</th><th>Words</th><th>Score</th></tr>`)
			for _, r := range v.History {
				fmt.Fprintf(&sb, `<tr><td>%d</td><td>%s</td><td>%d</td></tr>`,
					r.Round, templ.EscapeString(strings.Join(r.Words, ", ")), r.Score)
			}
			sb.WriteString(`</table>`)
		}

		sb.WriteString(`</section>`)
		_, err := io.WriteString(w, sb.String())
		return err
	})
}

func writeBoard(sb *strings.Builder, v GameView) {
	sb.WriteString(`<form id="game-board" method="post" action="` + gamePath(v.ID, "select") + `"`)
	sb.WriteString(` hx-post="` + gamePath(v.ID, "select") + `" hx-target="#game-panel" hx-swap="outerHTML">`)
	for _, cube := range v.Board.Cubes() {
		fmt.Fprintf(sb, `<button type="submit" name="cube_id" value="%d" class="%s" data-cube-id="%d" data-status="%s">%s</button>`,
			cube.ID(), cubeClass(cube.Status()), cube.ID(),
			templ.EscapeString(cube.Status().String()), templ.EscapeString(cube.Letter()))
	}
	sb.WriteString(`</form>`)
}

func writeControls(sb *strings.Builder, id model.GameID) {
	for _, c := range []struct{ action, label string }{
		{"clear", "Clear word"},
		{"round", "New round"},
	} {
		fmt.Fprintf(sb, `<form class="control" method="post" action="%s" hx-post="%s" hx-target="#game-panel" hx-swap="outerHTML"><button id="%s" type="submit">%s</button></form>`,
			gamePath(id, c.action), gamePath(id, c.action), c.action+"-button", c.label)
	}
}

func writeWordList(sb *strings.Builder, id string, words []string) {
	sb.WriteString(`<ul id="` + id + `">`)
	for _, w := range words {
		sb.WriteString(`<li>` + templ.EscapeString(w) + `</li>`)
	}
	sb.WriteString(`</ul>`)
}
