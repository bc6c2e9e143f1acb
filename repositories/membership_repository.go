package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/esports-registry/models"
)

// MembershipRepository manages player_team join rows.
type MembershipRepository interface {
	Create(ctx context.Context, exec SQLExecutor, m models.Membership) error
	DeleteByTeam(ctx context.Context, exec SQLExecutor, teamID int) error
	DeleteByPlayer(ctx context.Context, exec SQLExecutor, playerID int) error
	List(ctx context.Context) ([]models.Membership, error)
}

type sqlMembershipRepository struct {
	db *sql.DB
}

func NewMembershipRepository(db *sql.DB) MembershipRepository {
	return &sqlMembershipRepository{db: db}
}

func (r *sqlMembershipRepository) Create(ctx context.Context, exec SQLExecutor, m models.Membership) error {
	query := `INSERT INTO player_team (player_id, team_id) VALUES ($1, $2)`
	if _, err := executor(r.db, exec).ExecContext(ctx, query, m.PlayerID, m.TeamID); err != nil {
		return fmt.Errorf("failed to add player %d to team %d: %w", m.PlayerID, m.TeamID, err)
	}
	return nil
}

func (r *sqlMembershipRepository) DeleteByTeam(ctx context.Context, exec SQLExecutor, teamID int) error {
	query := `DELETE FROM player_team WHERE team_id = $1`
	if _, err := executor(r.db, exec).ExecContext(ctx, query, teamID); err != nil {
		return fmt.Errorf("failed to delete memberships of team %d: %w", teamID, err)
	}
	return nil
}

func (r *sqlMembershipRepository) DeleteByPlayer(ctx context.Context, exec SQLExecutor, playerID int) error {
	query := `DELETE FROM player_team WHERE player_id = $1`
	if _, err := executor(r.db, exec).ExecContext(ctx, query, playerID); err != nil {
		return fmt.Errorf("failed to delete memberships of player %d: %w", playerID, err)
	}
	return nil
}

func (r *sqlMembershipRepository) List(ctx context.Context) ([]models.Membership, error) {
	query := `SELECT player_id, team_id FROM player_team ORDER BY team_id ASC, player_id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	memberships := make([]models.Membership, 0)
	for rows.Next() {
		var m models.Membership
		if err := rows.Scan(&m.PlayerID, &m.TeamID); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}
	return memberships, rows.Err()
}
