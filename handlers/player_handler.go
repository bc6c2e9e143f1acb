package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/esports-registry/services"
)

type PlayerHandler struct {
	playerService services.PlayerService
	logger        *slog.Logger
}

func NewPlayerHandler(ps services.PlayerService, logger *slog.Logger) *PlayerHandler {
	return &PlayerHandler{playerService: ps, logger: logger}
}

type playerRequest struct {
	Name     string `json:"player_name"`
	Username string `json:"username"`
	Country  string `json:"country"`
}

func (req playerRequest) input() services.PlayerInput {
	return services.PlayerInput{Name: req.Name, Username: req.Username, Country: req.Country}
}

func (h *PlayerHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	player, err := h.playerService.CreatePlayer(r.Context(), req.input())
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err, "Failed to create player.")
		return
	}
	messageResponse(w, r, h.logger, http.StatusCreated, "Player created.", jsonResponse{"player_id": player.ID})
}

func (h *PlayerHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}
	var req playerRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	if _, err := h.playerService.UpdatePlayer(r.Context(), id, req.input()); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err, "Failed to update player.")
		return
	}
	messageResponse(w, r, h.logger, http.StatusOK, "Player updated.", nil)
}

func (h *PlayerHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	if err := h.playerService.DeletePlayer(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err, "Failed to delete player.")
		return
	}
	messageResponse(w, r, h.logger, http.StatusOK, "Player deleted.", nil)
}
