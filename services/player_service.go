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

type PlayerService interface {
	CreatePlayer(ctx context.Context, input PlayerInput) (*models.Player, error)
	UpdatePlayer(ctx context.Context, id int, input PlayerInput) (*models.Player, error)
	// DeletePlayer removes the player's memberships, then the player.
	DeletePlayer(ctx context.Context, id int) error
}

type playerService struct {
	playerRepo     repositories.PlayerRepository
	membershipRepo repositories.MembershipRepository
	uow            unitOfWork
}

func NewPlayerService(
	playerRepo repositories.PlayerRepository,
	membershipRepo repositories.MembershipRepository,
	deps Deps,
) PlayerService {
	return &playerService{
		playerRepo:     playerRepo,
		membershipRepo: membershipRepo,
		uow:            newUnitOfWork(deps),
	}
}

func playerFromInput(id int, input PlayerInput) (*models.Player, error) {
	if blank(input.Name) || blank(input.Username) || blank(input.Country) {
		return nil, ErrPlayerFieldsRequired
	}
	return &models.Player{
		ID:       id,
		Name:     strings.TrimSpace(input.Name),
		Username: strings.TrimSpace(input.Username),
		Country:  strings.TrimSpace(input.Country),
	}, nil
}

func (s *playerService) CreatePlayer(ctx context.Context, input PlayerInput) (*models.Player, error) {
	player, err := playerFromInput(0, input)
	if err != nil {
		return nil, err
	}

	err = s.uow.run(ctx, "player.create", func(tx *sql.Tx) error {
		return s.playerRepo.Create(ctx, tx, player)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPlayerCreateFailed, err)
	}
	return player, nil
}

func (s *playerService) UpdatePlayer(ctx context.Context, id int, input PlayerInput) (*models.Player, error) {
	player, err := playerFromInput(id, input)
	if err != nil {
		return nil, err
	}

	err = s.uow.run(ctx, "player.update", func(tx *sql.Tx) error {
		return s.playerRepo.Update(ctx, tx, player)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("%w (id: %d): %w", ErrPlayerUpdateFailed, id, err)
	}
	return player, nil
}

func (s *playerService) DeletePlayer(ctx context.Context, id int) error {
	err := s.uow.run(ctx, "player.delete", func(tx *sql.Tx) error {
		if err := s.membershipRepo.DeleteByPlayer(ctx, tx, id); err != nil {
			return err
		}
		return s.playerRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("%w (id: %d): %w", ErrPlayerDeleteFailed, id, err)
	}

	s.uow.publish(EventPlayerDeleted, map[string]int{"player_id": id})
	return nil
}
