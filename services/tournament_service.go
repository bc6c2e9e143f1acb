package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/esports-registry/hub"
	"github.com/Dosada05/esports-registry/models"
	"github.com/Dosada05/esports-registry/repositories"
)

type TournamentService interface {
	CreateTournament(ctx context.Context, input TournamentInput) (*models.Tournament, error)
	UpdateTournament(ctx context.Context, id int, input TournamentInput) (*models.Tournament, error)
	// DeleteTournament removes every team registration, then the tournament.
	DeleteTournament(ctx context.Context, id int) error
}

type TournamentInput struct {
	Name      string
	StartDate models.Date
	EndDate   models.Date
	PrizePool float64
}

type tournamentService struct {
	tournamentRepo   repositories.TournamentRepository
	registrationRepo repositories.RegistrationRepository
	uow              unitOfWork
}

func NewTournamentService(
	tournamentRepo repositories.TournamentRepository,
	registrationRepo repositories.RegistrationRepository,
	deps Deps,
) TournamentService {
	return &tournamentService{
		tournamentRepo:   tournamentRepo,
		registrationRepo: registrationRepo,
		uow:              newUnitOfWork(deps),
	}
}

func validateTournament(id int, input TournamentInput) (*models.Tournament, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTournamentNameRequired
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, ErrTournamentDatesRequired
	}
	if input.EndDate.Before(input.StartDate.Time) {
		return nil, fmt.Errorf("%w: start %s, end %s", ErrTournamentInvalidDateRange, input.StartDate, input.EndDate)
	}
	if input.PrizePool < 0 {
		return nil, ErrPrizePoolNegative
	}
	return &models.Tournament{
		ID:        id,
		Name:      name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		PrizePool: input.PrizePool,
	}, nil
}

func (s *tournamentService) CreateTournament(ctx context.Context, input TournamentInput) (*models.Tournament, error) {
	tournament, err := validateTournament(0, input)
	if err != nil {
		return nil, err
	}

	err = s.uow.run(ctx, "tournament.create", func(tx *sql.Tx) error {
		return s.tournamentRepo.Create(ctx, tx, tournament)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTournamentCreateFailed, err)
	}
	return tournament, nil
}

func (s *tournamentService) UpdateTournament(ctx context.Context, id int, input TournamentInput) (*models.Tournament, error) {
	tournament, err := validateTournament(id, input)
	if err != nil {
		return nil, err
	}

	err = s.uow.run(ctx, "tournament.update", func(tx *sql.Tx) error {
		return s.tournamentRepo.Update(ctx, tx, tournament)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("%w (id: %d): %w", ErrTournamentUpdateFailed, id, err)
	}
	return tournament, nil
}

func (s *tournamentService) DeleteTournament(ctx context.Context, id int) error {
	err := s.uow.run(ctx, "tournament.delete", func(tx *sql.Tx) error {
		if err := s.registrationRepo.DeleteByTournament(ctx, tx, id); err != nil {
			return err
		}
		return s.tournamentRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return ErrTournamentNotFound
		}
		return fmt.Errorf("%w (id: %d): %w", ErrTournamentDeleteFailed, id, err)
	}

	s.uow.publish(EventTournamentDeleted, map[string]int{"tournament_id": id}, hub.TournamentRoom(id))
	return nil
}
