package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/esports-registry/models"
	"github.com/Dosada05/esports-registry/repositories"
)

type TeamService interface {
	CreateTeam(ctx context.Context, input TeamInput) (*models.Team, error)
	UpdateTeam(ctx context.Context, id int, input TeamInput) (*models.Team, error)
	// DeleteTeam removes the team's memberships and registrations before the
	// team itself.
	DeleteTeam(ctx context.Context, id int) error
}

type TeamInput struct {
	Name string
}

type teamService struct {
	teamRepo         repositories.TeamRepository
	membershipRepo   repositories.MembershipRepository
	registrationRepo repositories.RegistrationRepository
	uow              unitOfWork
}

func NewTeamService(
	teamRepo repositories.TeamRepository,
	membershipRepo repositories.MembershipRepository,
	registrationRepo repositories.RegistrationRepository,
	deps Deps,
) TeamService {
	return &teamService{
		teamRepo:         teamRepo,
		membershipRepo:   membershipRepo,
		registrationRepo: registrationRepo,
		uow:              newUnitOfWork(deps),
	}
}

func (s *teamService) CreateTeam(ctx context.Context, input TeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	team := &models.Team{Name: name}
	err := s.uow.run(ctx, "team.create", func(tx *sql.Tx) error {
		return s.teamRepo.Create(ctx, tx, team)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTeamCreateFailed, err)
	}
	return team, nil
}

func (s *teamService) UpdateTeam(ctx context.Context, id int, input TeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	team := &models.Team{ID: id, Name: name}
	err := s.uow.run(ctx, "team.update", func(tx *sql.Tx) error {
		return s.teamRepo.Update(ctx, tx, team)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("%w (id: %d): %w", ErrTeamUpdateFailed, id, err)
	}
	return team, nil
}

func (s *teamService) DeleteTeam(ctx context.Context, id int) error {
	err := s.uow.run(ctx, "team.delete", func(tx *sql.Tx) error {
		if err := s.membershipRepo.DeleteByTeam(ctx, tx, id); err != nil {
			return err
		}
		if err := s.registrationRepo.DeleteByTeam(ctx, tx, id); err != nil {
			return err
		}
		return s.teamRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("%w (id: %d): %w", ErrTeamDeleteFailed, id, err)
	}

	s.uow.publish(EventTeamDeleted, map[string]int{"team_id": id})
	return nil
}
