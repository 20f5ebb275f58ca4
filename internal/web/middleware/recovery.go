package middleware

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/mcoot/boggle-go/internal/middleware"
	"github.com/mcoot/boggle-go/internal/web/templates/layout"
)

// Recovery creates panic recovery middleware for the web interface
// Returns an HTML error page on panic
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, webPanicHandler)
}

func webPanicHandler(w http.ResponseWriter, r *http.Request, _ any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_ = layout.Base(layout.PageData{Title: "Error"}, errorBody).Render(r.Context(), w)
}

var errorBody = templ.Raw(`<h2>Internal Server Error</h2>` +
	`<p>Something went wrong. Please try again later.</p>` +
	`<p><a href="/">Return to home</a></p>`)
