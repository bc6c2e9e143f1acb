package services

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/Dosada05/esports-registry/db"
	"github.com/Dosada05/esports-registry/hub"
	"github.com/Dosada05/esports-registry/metrics"
	"github.com/Dosada05/esports-registry/models"
)

// Notifier is satisfied by *hub.Hub.
type Notifier interface {
	BroadcastToRoom(roomID string, message interface{})
}

type noopNotifier struct{}

func (noopNotifier) BroadcastToRoom(string, interface{}) {}

// Event types pushed to the live feed after a unit of work commits.
const (
	EventRegistrationCreated = "registration.created"
	EventTeamDeleted         = "team.deleted"
	EventPlayerDeleted       = "player.deleted"
	EventTournamentDeleted   = "tournament.deleted"
)

// Deps holds what every writing service needs besides its repositories.
// Nil fields fall back to no-op implementations.
type Deps struct {
	DB       *sql.DB
	Notifier Notifier
	Metrics  metrics.Metrics
	Logger   *slog.Logger
}

type unitOfWork struct {
	db       *sql.DB
	notifier Notifier
	metrics  metrics.Metrics
	logger   *slog.Logger
}

func newUnitOfWork(d Deps) unitOfWork {
	u := unitOfWork{db: d.DB, notifier: d.Notifier, metrics: d.Metrics, logger: d.Logger}
	if u.notifier == nil {
		u.notifier = noopNotifier{}
	}
	if u.metrics == nil {
		u.metrics = metrics.Discard
	}
	if u.logger == nil {
		u.logger = slog.Default()
	}
	return u
}

// run executes fn in one transaction and records whether it committed.
func (u unitOfWork) run(ctx context.Context, operation string, fn func(tx *sql.Tx) error) error {
	err := db.WithTx(ctx, u.db, fn)
	u.metrics.ObserveUnitOfWork(operation, err == nil)
	return err
}

func (u unitOfWork) publish(eventType string, payload interface{}, rooms ...string) {
	rooms = append([]string{hub.RoomRegistrations}, rooms...)
	for _, room := range rooms {
		u.notifier.BroadcastToRoom(room, hub.Message{Type: eventType, Payload: payload, RoomID: room})
	}
	u.metrics.IncEventsPublished(eventType)
	u.logger.Debug("event published", slog.String("type", eventType), slog.Any("rooms", rooms))
}

func today(now func() time.Time) models.Date {
	return models.DateOf(now())
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
