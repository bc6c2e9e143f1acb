package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/esports-registry/services"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
	snapshotService  services.SnapshotService
	logger           *slog.Logger
}

func NewDashboardHandler(ds services.DashboardService, ss services.SnapshotService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds, snapshotService: ss, logger: logger}
}

func (h *DashboardHandler) Homepage(w http.ResponseWriter, r *http.Request) {
	data, err := h.dashboardService.Homepage(r.Context())
	if err != nil {
		serverErrorResponse(w, r, h.logger, err, "Failed to fetch homepage data.")
		return
	}
	okResponse(w, r, h.logger, data)
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	data, err := h.dashboardService.Dashboard(r.Context())
	if err != nil {
		serverErrorResponse(w, r, h.logger, err, "Failed to fetch dashboard data.")
		return
	}
	okResponse(w, r, h.logger, data)
}

// ExportSnapshot uploads the dashboard data to object storage.
func (h *DashboardHandler) ExportSnapshot(w http.ResponseWriter, r *http.Request) {
	result, err := h.snapshotService.Export(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err, "Failed to export dashboard data.")
		return
	}
	messageResponse(w, r, h.logger, http.StatusCreated, "Dashboard snapshot exported.", jsonResponse{
		"key": result.Key,
		"url": result.Location,
	})
}
