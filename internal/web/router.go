package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/boggle-go/internal/services/game"
	"github.com/mcoot/boggle-go/internal/web/handler"
	"github.com/mcoot/boggle-go/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController game.ControllerInterface
	StaticDir      string // Path to static files directory (optional)
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Apply global middleware to all routes
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	homeHandler := handler.NewHomeHandler()
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	pages := r.NewRoute().Subrouter()
	pages.Use(middleware.Flash())
	pages.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)

	pages.HandleFunc("/game", gameHandler.Create).Methods(http.MethodPost)
	pages.HandleFunc("/game/{id}", gameHandler.View).Methods(http.MethodGet)
	pages.HandleFunc("/game/{id}/select", gameHandler.Select).Methods(http.MethodPost)
	pages.HandleFunc("/game/{id}/clear", gameHandler.Clear).Methods(http.MethodPost)
	pages.HandleFunc("/game/{id}/round", gameHandler.NewRound).Methods(http.MethodPost)

	return r
}
