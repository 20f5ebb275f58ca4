package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/mcoot/boggle-go/internal/model"
	"github.com/mcoot/boggle-go/internal/services/game"
	"github.com/mcoot/boggle-go/internal/web/middleware"
	"github.com/mcoot/boggle-go/internal/web/templates/components"
	"github.com/mcoot/boggle-go/internal/web/templates/layout"
	"github.com/mcoot/boggle-go/internal/web/templates/pages"
)

// GameHandler handles game pages and actions
type GameHandler struct {
	gameController game.ControllerInterface
	logger         *slog.Logger
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(gameController game.ControllerInterface, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		logger:         logger,
	}
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

func gameURL(id model.GameID) string {
	return "/game/" + url.PathEscape(string(id))
}

func viewFromState(state *game.State) components.GameView {
	return components.GameView{
		ID:         state.Game.ID,
		Round:      state.Game.Round,
		Board:      state.Board,
		Score:      state.Score,
		TotalScore: state.Game.TotalScore() + state.Score,
		History:    state.Game.History,
	}
}

// Create starts a new game and redirects to it
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	state, err := h.gameController.NewGame(r.Context())
	if err != nil {
		h.logger.Error("failed to create game", slog.String("error", err.Error()))
		middleware.SetFlash(w, middleware.FlashError, "Could not start a game")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, gameURL(state.Game.ID), http.StatusSeeOther)
}

// View renders the game page
func (h *GameHandler) View(w http.ResponseWriter, r *http.Request) {
	state, err := h.gameController.GetGame(r.Context(), gameID(r))
	if err != nil {
		h.redirectHome(w, r, err)
		return
	}

	view := viewFromState(state)
	if r.URL.Query().Get("missed") != "" {
		missed, err := h.gameController.Missed(r.Context(), state.Game.ID)
		if err != nil {
			h.redirectHome(w, r, err)
			return
		}
		view.Missed = missed
		view.ShowMissed = true
	}

	data := pages.GameData{
		PageData: layout.PageData{
			Title: "Round " + strconv.Itoa(state.Game.Round),
			Flash: middleware.GetFlash(r.Context()),
		},
		View: view,
	}
	templ.Handler(pages.Game(data)).ServeHTTP(w, r)
}

// Select handles a click on a cube
func (h *GameHandler) Select(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)

	cubeID, err := strconv.Atoi(r.FormValue("cube_id"))
	if err != nil {
		h.respond(w, r, id, nil, middleware.FlashError, "Invalid cube")
		return
	}

	state, outcome, err := h.gameController.Select(r.Context(), id, model.CubeID(cubeID))
	if err != nil {
		if errors.Is(err, model.ErrUnknownCube) {
			h.respond(w, r, id, nil, middleware.FlashError, "Invalid cube")
			return
		}
		h.redirectHome(w, r, err)
		return
	}

	switch outcome.Result {
	case model.SelectionAccepted:
		h.respond(w, r, id, state, middleware.FlashSuccess, "Found "+outcome.Word+"!")
	case model.SelectionRejected:
		h.respond(w, r, id, state, middleware.FlashError, outcome.Word+" is not accepted")
	default:
		h.respond(w, r, id, state, "", "")
	}
}

// Clear abandons the word in progress
func (h *GameHandler) Clear(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	state, err := h.gameController.Clear(r.Context(), id)
	if err != nil {
		h.redirectHome(w, r, err)
		return
	}
	h.respond(w, r, id, state, "", "")
}

// NewRound finishes the round and deals a new board
func (h *GameHandler) NewRound(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	state, err := h.gameController.NewRound(r.Context(), id)
	if err != nil {
		h.redirectHome(w, r, err)
		return
	}
	h.respond(w, r, id, state, middleware.FlashInfo, "Round "+strconv.Itoa(state.Game.Round)+" started")
}

// respond renders the game panel for htmx requests and redirects back to
// the game page otherwise. A nil state is loaded before rendering.
func (h *GameHandler) respond(w http.ResponseWriter, r *http.Request, id model.GameID, state *game.State, flashType, message string) {
	if !isHTMX(r) {
		if message != "" {
			middleware.SetFlash(w, flashType, message)
		}
		http.Redirect(w, r, gameURL(id), http.StatusSeeOther)
		return
	}

	if state == nil {
		var err error
		state, err = h.gameController.GetGame(r.Context(), id)
		if err != nil {
			w.Header().Set("HX-Redirect", "/")
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}

	view := viewFromState(state)
	view.Notice = message
	templ.Handler(components.GamePanel(view)).ServeHTTP(w, r)
}

func (h *GameHandler) redirectHome(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, model.ErrGameNotFound) {
		middleware.SetFlash(w, middleware.FlashError, "Game not found")
	} else {
		h.logger.Error("game action failed",
			slog.String("game_id", string(gameID(r))),
			slog.String("error", err.Error()),
		)
		middleware.SetFlash(w, middleware.FlashError, "Something went wrong")
	}

	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
