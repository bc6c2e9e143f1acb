package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/esports-registry/services"
)

type TeamHandler struct {
	teamService services.TeamService
	logger      *slog.Logger
}

func NewTeamHandler(ts services.TeamService, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{teamService: ts, logger: logger}
}

type teamRequest struct {
	Name string `json:"team_name"`
}

func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req teamRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), services.TeamInput{Name: req.Name})
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err, "Failed to create team.")
		return
	}
	messageResponse(w, r, h.logger, http.StatusCreated, "Team created.", jsonResponse{"team_id": team.ID})
}

func (h *TeamHandler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}
	var req teamRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	if _, err := h.teamService.UpdateTeam(r.Context(), id, services.TeamInput{Name: req.Name}); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err, "Failed to update team.")
		return
	}
	messageResponse(w, r, h.logger, http.StatusOK, "Team updated.", nil)
}

func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	if err := h.teamService.DeleteTeam(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err, "Failed to delete team.")
		return
	}
	messageResponse(w, r, h.logger, http.StatusOK, "Team deleted.", nil)
}
