package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Dosada05/esports-registry/hub"
	"github.com/Dosada05/esports-registry/models"
	"github.com/Dosada05/esports-registry/repositories"
)

type RegistrationService interface {
	// Register creates the team, its players and their memberships and
	// enters the team into the tournament, all in one transaction.
	Register(ctx context.Context, input RegistrationInput) (*RegistrationResult, error)
}

type RegistrationInput struct {
	TournamentID int
	TeamName     string
	Players      []PlayerInput
}

type PlayerInput struct {
	Name     string
	Username string
	Country  string
}

type RegistrationResult struct {
	TeamID       int   `json:"team_id"`
	TournamentID int   `json:"tournament_id"`
	PlayerIDs    []int `json:"player_ids"`
}

type registrationService struct {
	teamRepo         repositories.TeamRepository
	playerRepo       repositories.PlayerRepository
	membershipRepo   repositories.MembershipRepository
	registrationRepo repositories.RegistrationRepository
	minPlayers       int
	uow              unitOfWork
}

func NewRegistrationService(
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	membershipRepo repositories.MembershipRepository,
	registrationRepo repositories.RegistrationRepository,
	minPlayers int,
	deps Deps,
) RegistrationService {
	return &registrationService{
		teamRepo:         teamRepo,
		playerRepo:       playerRepo,
		membershipRepo:   membershipRepo,
		registrationRepo: registrationRepo,
		minPlayers:       minPlayers,
		uow:              newUnitOfWork(deps),
	}
}

func (s *registrationService) Register(ctx context.Context, input RegistrationInput) (*RegistrationResult, error) {
	if blank(input.TeamName) {
		return nil, ErrTeamNameRequired
	}
	if len(input.Players) < s.minPlayers {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrRosterTooSmall, len(input.Players), s.minPlayers)
	}
	for _, p := range input.Players {
		if blank(p.Name) || blank(p.Username) || blank(p.Country) {
			return nil, ErrPlayerFieldsRequired
		}
	}

	team := &models.Team{Name: strings.TrimSpace(input.TeamName)}
	result := &RegistrationResult{
		TournamentID: input.TournamentID,
		PlayerIDs:    make([]int, 0, len(input.Players)),
	}

	err := s.uow.run(ctx, "register", func(tx *sql.Tx) error {
		if err := s.teamRepo.Create(ctx, tx, team); err != nil {
			return err
		}
		for _, in := range input.Players {
			player := &models.Player{
				Name:     strings.TrimSpace(in.Name),
				Username: strings.TrimSpace(in.Username),
				Country:  strings.TrimSpace(in.Country),
			}
			if err := s.playerRepo.Create(ctx, tx, player); err != nil {
				return err
			}
			membership := models.Membership{PlayerID: player.ID, TeamID: team.ID}
			if err := s.membershipRepo.Create(ctx, tx, membership); err != nil {
				return err
			}
			result.PlayerIDs = append(result.PlayerIDs, player.ID)
		}
		return s.registrationRepo.Create(ctx, tx, models.Registration{
			TeamID:       team.ID,
			TournamentID: input.TournamentID,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: team %q, tournament %d: %w", ErrRegistrationFailed, input.TeamName, input.TournamentID, err)
	}

	result.TeamID = team.ID
	s.uow.publish(EventRegistrationCreated, result, hub.TournamentRoom(input.TournamentID))
	return result, nil
}
