package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/esports-registry/models"
)

// RegistrationRepository manages team_tournament join rows.
type RegistrationRepository interface {
	Create(ctx context.Context, exec SQLExecutor, reg models.Registration) error
	DeleteByTeam(ctx context.Context, exec SQLExecutor, teamID int) error
	DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error
	List(ctx context.Context) ([]models.Registration, error)
	// ListViews resolves names, sorted by tournament name then team name.
	ListViews(ctx context.Context) ([]models.RegistrationView, error)
}

type sqlRegistrationRepository struct {
	db *sql.DB
}

func NewRegistrationRepository(db *sql.DB) RegistrationRepository {
	return &sqlRegistrationRepository{db: db}
}

func (r *sqlRegistrationRepository) Create(ctx context.Context, exec SQLExecutor, reg models.Registration) error {
	query := `INSERT INTO team_tournament (team_id, tournament_id) VALUES ($1, $2)`
	if _, err := executor(r.db, exec).ExecContext(ctx, query, reg.TeamID, reg.TournamentID); err != nil {
		return fmt.Errorf("failed to register team %d for tournament %d: %w", reg.TeamID, reg.TournamentID, err)
	}
	return nil
}

func (r *sqlRegistrationRepository) DeleteByTeam(ctx context.Context, exec SQLExecutor, teamID int) error {
	query := `DELETE FROM team_tournament WHERE team_id = $1`
	if _, err := executor(r.db, exec).ExecContext(ctx, query, teamID); err != nil {
		return fmt.Errorf("failed to delete registrations of team %d: %w", teamID, err)
	}
	return nil
}

func (r *sqlRegistrationRepository) DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error {
	query := `DELETE FROM team_tournament WHERE tournament_id = $1`
	if _, err := executor(r.db, exec).ExecContext(ctx, query, tournamentID); err != nil {
		return fmt.Errorf("failed to delete registrations of tournament %d: %w", tournamentID, err)
	}
	return nil
}

func (r *sqlRegistrationRepository) List(ctx context.Context) ([]models.Registration, error) {
	query := `SELECT team_id, tournament_id FROM team_tournament ORDER BY tournament_id ASC, team_id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	defer rows.Close()

	registrations := make([]models.Registration, 0)
	for rows.Next() {
		var reg models.Registration
		if err := rows.Scan(&reg.TeamID, &reg.TournamentID); err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}
		registrations = append(registrations, reg)
	}
	return registrations, rows.Err()
}

func (r *sqlRegistrationRepository) ListViews(ctx context.Context) ([]models.RegistrationView, error) {
	query := `
		SELECT t.team_name, tou.tournament_name
		FROM team t
		JOIN team_tournament tt ON t.team_id = tt.team_id
		JOIN tournament tou ON tt.tournament_id = tou.tournament_id
		ORDER BY tou.tournament_name ASC, t.team_name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list registration views: %w", err)
	}
	defer rows.Close()

	views := make([]models.RegistrationView, 0)
	for rows.Next() {
		var v models.RegistrationView
		if err := rows.Scan(&v.TeamName, &v.TournamentName); err != nil {
			return nil, fmt.Errorf("failed to scan registration view: %w", err)
		}
		views = append(views, v)
	}
	return views, rows.Err()
}
