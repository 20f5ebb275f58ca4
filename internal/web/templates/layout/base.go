package layout

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// FlashMessage is a one-shot message shown at the top of the next page
type FlashMessage struct {
	Type    string // success, error or info
	Message string
}

// PageData holds data shared by every page
type PageData struct {
	Title string
	Flash *FlashMessage
}

const styles = `
body { font-family: sans-serif; max-width: 40rem; margin: 2rem auto; }
.flash { padding: .5rem 1rem; margin-bottom: 1rem; border-radius: 4px; }
.flash-success { background: #dfd; } .flash-error { background: #fdd; } .flash-info { background: #ddf; }
#game-board { display: grid; grid-template-columns: repeat(4, 4rem); gap: .5rem; }
.cube { width: 4rem; height: 4rem; font-size: 1.6rem; font-weight: bold; }
.cube.selected { background: #ffd27f; }
.cube.most-recent { background: #ff9f1a; }
`

// Base renders the page shell around content
func Base(data PageData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		sb.WriteString(`<title>` + templ.EscapeString(data.Title) + ` - Boggle</title>`)
		sb.WriteString(`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`)
		sb.WriteString(`<style>` + styles + `</style></head><body>`)
		sb.WriteString(`<header><h1><a href="/">Boggle</a></h1></header><main>`)
		if data.Flash != nil {
			sb.WriteString(`<div id="flash" class="flash flash-` + templ.EscapeString(data.Flash.Type) + `">`)
			sb.WriteString(templ.EscapeString(data.Flash.Message))
			sb.WriteString(`</div>`)
		}
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}

		if err := content.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}
