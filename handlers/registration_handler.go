package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/esports-registry/models"
	"github.com/Dosada05/esports-registry/services"
)

const (
	msgRegistrationOK     = "Registration successful!"
	msgRegistrationFailed = "An error occurred during registration. Please check the server logs."
)

type RegistrationHandler struct {
	registrationService services.RegistrationService
	logger              *slog.Logger
}

func NewRegistrationHandler(rs services.RegistrationService, logger *slog.Logger) *RegistrationHandler {
	return &RegistrationHandler{registrationService: rs, logger: logger}
}

type registrationRequest struct {
	TournamentID models.FlexInt `json:"tournamentId"`
	TeamName     string         `json:"teamName"`
	Players      []struct {
		Name     string `json:"name"`
		Username string `json:"username"`
		Country  string `json:"country"`
	} `json:"players"`
}

// Register handles POST /register.
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registrationRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	input := services.RegistrationInput{
		TournamentID: int(req.TournamentID),
		TeamName:     req.TeamName,
		Players:      make([]services.PlayerInput, 0, len(req.Players)),
	}
	for _, p := range req.Players {
		input.Players = append(input.Players, services.PlayerInput{Name: p.Name, Username: p.Username, Country: p.Country})
	}

	result, err := h.registrationService.Register(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err, msgRegistrationFailed)
		return
	}

	messageResponse(w, r, h.logger, http.StatusCreated, msgRegistrationOK, jsonResponse{
		"team_id":    result.TeamID,
		"player_ids": result.PlayerIDs,
	})
}
