package handler

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/mcoot/boggle-go/internal/api/apierr"
	"github.com/mcoot/boggle-go/internal/api/request"
	"github.com/mcoot/boggle-go/internal/api/response"
	"github.com/mcoot/boggle-go/internal/model"
	"github.com/mcoot/boggle-go/internal/services/game"
)

// GameHandler handles game session endpoints
type GameHandler struct {
	gameController game.ControllerInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController game.ControllerInterface) *GameHandler {
	return &GameHandler{
		gameController: gameController,
	}
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

func gameLocation(state *game.State) string {
	return "/api/v1/games/" + url.PathEscape(string(state.Game.ID))
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	state, err := h.gameController.NewGame(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.Created(w, gameLocation(state), response.GameFromState(state))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	state, err := h.gameController.GetGame(r.Context(), gameID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromState(state))
}

// Select handles POST /api/v1/games/{id}/select
func (h *GameHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req request.SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}
	if req.CubeID == nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("cube_id is required"))
		return
	}

	state, outcome, err := h.gameController.Select(r.Context(), gameID(r), model.CubeID(*req.CubeID))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SelectResponseFromState(state, outcome))
}

// Clear handles POST /api/v1/games/{id}/clear
func (h *GameHandler) Clear(w http.ResponseWriter, r *http.Request) {
	state, err := h.gameController.Clear(r.Context(), gameID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromState(state))
}

// NewRound handles POST /api/v1/games/{id}/rounds
func (h *GameHandler) NewRound(w http.ResponseWriter, r *http.Request) {
	state, err := h.gameController.NewRound(r.Context(), gameID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.Created(w, gameLocation(state), response.GameFromState(state))
}

// Missed handles GET /api/v1/games/{id}/missed
func (h *GameHandler) Missed(w http.ResponseWriter, r *http.Request) {
	words, err := h.gameController.Missed(r.Context(), gameID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.MissedFromWords(words))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.gameController.Delete(r.Context(), gameID(r)); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.NoContent(w)
}
