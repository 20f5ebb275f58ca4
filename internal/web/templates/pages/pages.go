package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/boggle-go/internal/web/templates/components"
	"github.com/mcoot/boggle-go/internal/web/templates/layout"
)

// HomeData holds data for the home page
type HomeData struct {
	layout.PageData
}

// Home renders the landing page with the new game form
func Home(data HomeData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section id="home">`+
			`<p>Find words by clicking adjacent letters. Click the last letter again to submit the word.</p>`+
			`<form id="new-game" method="post" action="/game"><button type="submit">New game</button></form>`+
			`</section>`)
		return err
	})
	return layout.Base(data.PageData, body)
}

// GameData holds data for the game page
type GameData struct {
	layout.PageData
	View components.GameView
}

// Game renders a game session
func Game(data GameData) templ.Component {
	return layout.Base(data.PageData, components.GamePanel(data.View))
}
