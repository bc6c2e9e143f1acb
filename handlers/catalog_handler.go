package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/esports-registry/services"
)

type CatalogHandler struct {
	catalogService services.CatalogService
	logger         *slog.Logger
}

func NewCatalogHandler(cs services.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{catalogService: cs, logger: logger}
}

func (h *CatalogHandler) Registrations(w http.ResponseWriter, r *http.Request) {
	views, err := h.catalogService.Registrations(r.Context())
	if err != nil {
		serverErrorResponse(w, r, h.logger, err, "Failed to fetch registrations.")
		return
	}
	okResponse(w, r, h.logger, views)
}

func (h *CatalogHandler) Teams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.catalogService.Teams(r.Context())
	if err != nil {
		serverErrorResponse(w, r, h.logger, err, "Failed to fetch teams.")
		return
	}
	okResponse(w, r, h.logger, teams)
}

func (h *CatalogHandler) Players(w http.ResponseWriter, r *http.Request) {
	players, err := h.catalogService.Players(r.Context())
	if err != nil {
		serverErrorResponse(w, r, h.logger, err, "Failed to fetch players.")
		return
	}
	okResponse(w, r, h.logger, players)
}

func (h *CatalogHandler) Tournaments(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.catalogService.OpenTournaments(r.Context())
	if err != nil {
		serverErrorResponse(w, r, h.logger, err, "Failed to fetch tournaments list.")
		return
	}
	okResponse(w, r, h.logger, tournaments)
}
