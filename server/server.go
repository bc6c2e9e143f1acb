// Package server wires repositories, services and handlers into one router.
package server

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/Dosada05/esports-registry/handlers"
	"github.com/Dosada05/esports-registry/hub"
	"github.com/Dosada05/esports-registry/metrics"
	"github.com/Dosada05/esports-registry/repositories"
	"github.com/Dosada05/esports-registry/routes"
	"github.com/Dosada05/esports-registry/services"
	"github.com/Dosada05/esports-registry/storage"
	"github.com/go-chi/chi/v5"
)

type Options struct {
	DB     *sql.DB
	Logger *slog.Logger
	// Metrics defaults to metrics.Discard. MetricsHandler, when set, is
	// served on /metrics.
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	// Hub must be running. When nil, one is started for the lifetime of
	// the process.
	Hub *hub.Hub
	// Uploader is nil when snapshot storage is not configured.
	Uploader       storage.FileUploader
	MinPlayers     int
	AllowedOrigins []string
	Now            func() time.Time
}

type Server struct {
	Router    *chi.Mux
	Snapshots services.SnapshotService
}

func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.Discard
	}
	wsHub := opts.Hub
	if wsHub == nil {
		wsHub = hub.New(logger)
		go wsHub.Run(context.Background())
	}

	teamRepo := repositories.NewTeamRepository(opts.DB)
	playerRepo := repositories.NewPlayerRepository(opts.DB)
	tournamentRepo := repositories.NewTournamentRepository(opts.DB)
	membershipRepo := repositories.NewMembershipRepository(opts.DB)
	registrationRepo := repositories.NewRegistrationRepository(opts.DB)
	statsRepo := repositories.NewStatsRepository(opts.DB)

	deps := services.Deps{DB: opts.DB, Notifier: wsHub, Metrics: m, Logger: logger}
	registrationService := services.NewRegistrationService(teamRepo, playerRepo, membershipRepo, registrationRepo, opts.MinPlayers, deps)
	teamService := services.NewTeamService(teamRepo, membershipRepo, registrationRepo, deps)
	playerService := services.NewPlayerService(playerRepo, membershipRepo, deps)
	tournamentService := services.NewTournamentService(tournamentRepo, registrationRepo, deps)
	dashboardService := services.NewDashboardService(teamRepo, playerRepo, tournamentRepo, membershipRepo, registrationRepo, statsRepo, opts.Now)
	catalogService := services.NewCatalogService(teamRepo, playerRepo, tournamentRepo, registrationRepo, opts.Now)
	snapshotService := services.NewSnapshotService(dashboardService, opts.Uploader, m, logger, opts.Now)

	router := chi.NewRouter()
	routes.SetupRoutes(router, routes.Handlers{
		Registration: handlers.NewRegistrationHandler(registrationService, logger),
		Team:         handlers.NewTeamHandler(teamService, logger),
		Player:       handlers.NewPlayerHandler(playerService, logger),
		Tournament:   handlers.NewTournamentHandler(tournamentService, logger),
		Dashboard:    handlers.NewDashboardHandler(dashboardService, snapshotService, logger),
		Catalog:      handlers.NewCatalogHandler(catalogService, logger),
		WebSocket:    handlers.NewWebSocketHandler(wsHub, logger),
		Health:       handlers.NewHealthHandler(opts.DB, logger),
	}, routes.Options{
		Logger:         logger,
		Metrics:        m,
		MetricsHandler: opts.MetricsHandler,
		AllowedOrigins: opts.AllowedOrigins,
	})

	return &Server{Router: router, Snapshots: snapshotService}
}
