package routes

import (
	_ "embed"
	"log/slog"
	"net/http"

	"github.com/Dosada05/esports-registry/handlers"
	"github.com/Dosada05/esports-registry/metrics"
	"github.com/Dosada05/esports-registry/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed openapi.json
var openAPIDoc []byte

type Handlers struct {
	Registration *handlers.RegistrationHandler
	Team         *handlers.TeamHandler
	Player       *handlers.PlayerHandler
	Tournament   *handlers.TournamentHandler
	Dashboard    *handlers.DashboardHandler
	Catalog      *handlers.CatalogHandler
	WebSocket    *handlers.WebSocketHandler
	Health       *handlers.HealthHandler
}

type Options struct {
	Logger         *slog.Logger
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	AllowedOrigins []string
}

func SetupRoutes(router chi.Router, h Handlers, opts Options) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(opts.Logger))
	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
	}
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	router.Post("/register", h.Registration.Register)

	router.Route("/api", func(r chi.Router) {
		r.Get("/homepage-data", h.Dashboard.Homepage)
		r.Get("/registrations", h.Catalog.Registrations)
		r.Get("/teams-public", h.Catalog.Teams)
		r.Get("/players-public", h.Catalog.Players)
		r.Get("/tournaments-list", h.Catalog.Tournaments)

		r.Route("/dashboard-data", func(r chi.Router) {
			r.Get("/", h.Dashboard.Dashboard)
			r.Post("/export", h.Dashboard.ExportSnapshot)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Post("/", h.Team.CreateTeam)
			r.Put("/{id}", h.Team.UpdateTeam)
			r.Delete("/{id}", h.Team.DeleteTeam)
		})

		r.Route("/players", func(r chi.Router) {
			r.Post("/", h.Player.CreatePlayer)
			r.Put("/{id}", h.Player.UpdatePlayer)
			r.Delete("/{id}", h.Player.DeletePlayer)
		})

		r.Route("/tournaments", func(r chi.Router) {
			r.Post("/", h.Tournament.CreateTournament)
			r.Put("/{id}", h.Tournament.UpdateTournament)
			r.Delete("/{id}", h.Tournament.DeleteTournament)
		})
	})

	router.Route("/ws", func(r chi.Router) {
		r.Get("/registrations", h.WebSocket.ServeRegistrations)
		r.Get("/tournaments/{tournamentID}", h.WebSocket.ServeTournament)
	})

	router.Get("/healthz", h.Health.Health)
	if opts.MetricsHandler != nil {
		router.Method(http.MethodGet, "/metrics", opts.MetricsHandler)
	}

	router.Get("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(openAPIDoc)
	})
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}
