package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/esports-registry/models"
)

type TeamRepository interface {
	Create(ctx context.Context, exec SQLExecutor, team *models.Team) error
	Update(ctx context.Context, exec SQLExecutor, team *models.Team) error
	Delete(ctx context.Context, exec SQLExecutor, id int) error
	ListByName(ctx context.Context) ([]models.Team, error)
	ListByID(ctx context.Context) ([]models.Team, error)
}

type sqlTeamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) TeamRepository {
	return &sqlTeamRepository{db: db}
}

func (r *sqlTeamRepository) Create(ctx context.Context, exec SQLExecutor, team *models.Team) error {
	query := `INSERT INTO team (team_name) VALUES ($1) RETURNING team_id`
	err := executor(r.db, exec).QueryRowContext(ctx, query, team.Name).Scan(&team.ID)
	if err != nil {
		return fmt.Errorf("failed to create team %q: %w", team.Name, err)
	}
	return nil
}

func (r *sqlTeamRepository) Update(ctx context.Context, exec SQLExecutor, team *models.Team) error {
	query := `UPDATE team SET team_name = $1 WHERE team_id = $2`
	result, err := executor(r.db, exec).ExecContext(ctx, query, team.Name, team.ID)
	if err != nil {
		return fmt.Errorf("failed to update team %d: %w", team.ID, err)
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *sqlTeamRepository) Delete(ctx context.Context, exec SQLExecutor, id int) error {
	query := `DELETE FROM team WHERE team_id = $1`
	result, err := executor(r.db, exec).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete team %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *sqlTeamRepository) ListByName(ctx context.Context) ([]models.Team, error) {
	return r.list(ctx, `SELECT team_id, team_name FROM team ORDER BY team_name ASC, team_id ASC`)
}

func (r *sqlTeamRepository) ListByID(ctx context.Context) ([]models.Team, error) {
	return r.list(ctx, `SELECT team_id, team_name FROM team ORDER BY team_id ASC`)
}

func (r *sqlTeamRepository) list(ctx context.Context, query string) ([]models.Team, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}
