package handler

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/mcoot/boggle-go/internal/web/middleware"
	"github.com/mcoot/boggle-go/internal/web/templates/layout"
	"github.com/mcoot/boggle-go/internal/web/templates/pages"
)

// HomeHandler handles the home page
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home renders the home page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := pages.HomeData{
		PageData: layout.PageData{
			Title: "Home",
			Flash: middleware.GetFlash(r.Context()),
		},
	}
	templ.Handler(pages.Home(data)).ServeHTTP(w, r)
}
