package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/esports-registry/models"
	"github.com/Dosada05/esports-registry/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
	logger            *slog.Logger
}

func NewTournamentHandler(ts services.TournamentService, logger *slog.Logger) *TournamentHandler {
	return &TournamentHandler{tournamentService: ts, logger: logger}
}

type tournamentRequest struct {
	Name      string           `json:"tournament_name"`
	StartDate models.Date      `json:"start_date"`
	EndDate   models.Date      `json:"end_date"`
	PrizePool models.FlexFloat `json:"prize_pool"`
}

func (req tournamentRequest) input() services.TournamentInput {
	return services.TournamentInput{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		PrizePool: float64(req.PrizePool),
	}
}

func (h *TournamentHandler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	var req tournamentRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	tournament, err := h.tournamentService.CreateTournament(r.Context(), req.input())
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err, "Failed to create tournament.")
		return
	}
	messageResponse(w, r, h.logger, http.StatusCreated, "Tournament created.", jsonResponse{"tournament_id": tournament.ID})
}

func (h *TournamentHandler) UpdateTournament(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}
	var req tournamentRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	if _, err := h.tournamentService.UpdateTournament(r.Context(), id, req.input()); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err, "Failed to update tournament.")
		return
	}
	messageResponse(w, r, h.logger, http.StatusOK, "Tournament updated.", nil)
}

func (h *TournamentHandler) DeleteTournament(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	if err := h.tournamentService.DeleteTournament(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err, "Failed to delete tournament.")
		return
	}
	messageResponse(w, r, h.logger, http.StatusOK, "Tournament deleted.", nil)
}
