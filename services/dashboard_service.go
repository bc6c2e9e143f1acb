package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Dosada05/esports-registry/models"
	"github.com/Dosada05/esports-registry/repositories"
	"golang.org/x/sync/errgroup"
)

// HomepageTournamentLimit caps the upcoming tournaments on the homepage.
const HomepageTournamentLimit = 6

type DashboardService interface {
	// Homepage returns the aggregate counters and the next upcoming
	// tournaments, earliest start first.
	Homepage(ctx context.Context) (*models.HomepageData, error)
	// Dashboard returns every row of every table ordered by id.
	Dashboard(ctx context.Context) (*models.DashboardData, error)
}

type dashboardService struct {
	teamRepo         repositories.TeamRepository
	playerRepo       repositories.PlayerRepository
	tournamentRepo   repositories.TournamentRepository
	membershipRepo   repositories.MembershipRepository
	registrationRepo repositories.RegistrationRepository
	statsRepo        repositories.StatsRepository
	now              func() time.Time
}

func NewDashboardService(
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	tournamentRepo repositories.TournamentRepository,
	membershipRepo repositories.MembershipRepository,
	registrationRepo repositories.RegistrationRepository,
	statsRepo repositories.StatsRepository,
	now func() time.Time,
) DashboardService {
	if now == nil {
		now = time.Now
	}
	return &dashboardService{
		teamRepo:         teamRepo,
		playerRepo:       playerRepo,
		tournamentRepo:   tournamentRepo,
		membershipRepo:   membershipRepo,
		registrationRepo: registrationRepo,
		statsRepo:        statsRepo,
		now:              now,
	}
}

func (s *dashboardService) Homepage(ctx context.Context) (*models.HomepageData, error) {
	var data models.HomepageData
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.statsRepo.Homepage(gCtx)
		if err != nil {
			return err
		}
		data.Stats = stats
		return nil
	})
	g.Go(func() error {
		tournaments, err := s.tournamentRepo.ListUpcoming(gCtx, today(s.now), HomepageTournamentLimit)
		if err != nil {
			return err
		}
		data.Tournaments = tournaments
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load homepage data: %w", err)
	}
	return &data, nil
}

func (s *dashboardService) Dashboard(ctx context.Context) (*models.DashboardData, error) {
	var data models.DashboardData
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		data.Teams, err = s.teamRepo.ListByID(gCtx)
		return err
	})
	g.Go(func() (err error) {
		data.Players, err = s.playerRepo.ListByID(gCtx)
		return err
	})
	g.Go(func() (err error) {
		data.Tournaments, err = s.tournamentRepo.ListByID(gCtx)
		return err
	})
	g.Go(func() (err error) {
		data.Memberships, err = s.membershipRepo.List(gCtx)
		return err
	})
	g.Go(func() (err error) {
		data.Registrations, err = s.registrationRepo.List(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load dashboard data: %w", err)
	}
	return &data, nil
}
