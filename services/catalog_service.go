package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Dosada05/esports-registry/models"
	"github.com/Dosada05/esports-registry/repositories"
)

// CatalogService serves the public read-only lists.
type CatalogService interface {
	Registrations(ctx context.Context) ([]models.RegistrationView, error)
	Teams(ctx context.Context) ([]models.Team, error)
	Players(ctx context.Context) ([]models.Player, error)
	// OpenTournaments lists tournaments that have not ended yet, by name.
	OpenTournaments(ctx context.Context) ([]models.TournamentSummary, error)
}

type catalogService struct {
	teamRepo         repositories.TeamRepository
	playerRepo       repositories.PlayerRepository
	tournamentRepo   repositories.TournamentRepository
	registrationRepo repositories.RegistrationRepository
	now              func() time.Time
}

func NewCatalogService(
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	tournamentRepo repositories.TournamentRepository,
	registrationRepo repositories.RegistrationRepository,
	now func() time.Time,
) CatalogService {
	if now == nil {
		now = time.Now
	}
	return &catalogService{
		teamRepo:         teamRepo,
		playerRepo:       playerRepo,
		tournamentRepo:   tournamentRepo,
		registrationRepo: registrationRepo,
		now:              now,
	}
}

func (s *catalogService) Registrations(ctx context.Context) ([]models.RegistrationView, error) {
	views, err := s.registrationRepo.ListViews(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get registrations: %w", err)
	}
	return views, nil
}

func (s *catalogService) Teams(ctx context.Context) ([]models.Team, error) {
	teams, err := s.teamRepo.ListByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}
	return teams, nil
}

func (s *catalogService) Players(ctx context.Context) ([]models.Player, error) {
	players, err := s.playerRepo.ListByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}
	return players, nil
}

func (s *catalogService) OpenTournaments(ctx context.Context) ([]models.TournamentSummary, error) {
	tournaments, err := s.tournamentRepo.ListOpen(ctx, today(s.now))
	if err != nil {
		return nil, fmt.Errorf("failed to get open tournaments: %w", err)
	}
	return tournaments, nil
}
