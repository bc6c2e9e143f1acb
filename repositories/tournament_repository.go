package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/esports-registry/models"
)

type TournamentRepository interface {
	Create(ctx context.Context, exec SQLExecutor, tournament *models.Tournament) error
	Update(ctx context.Context, exec SQLExecutor, tournament *models.Tournament) error
	Delete(ctx context.Context, exec SQLExecutor, id int) error
	// ListUpcoming returns tournaments whose end date is on or after today,
	// earliest start first.
	ListUpcoming(ctx context.Context, today models.Date, limit int) ([]models.Tournament, error)
	// ListOpen returns the same set as ListUpcoming, unlimited, sorted by name.
	ListOpen(ctx context.Context, today models.Date) ([]models.TournamentSummary, error)
	ListByID(ctx context.Context) ([]models.Tournament, error)
}

type sqlTournamentRepository struct {
	db *sql.DB
}

func NewTournamentRepository(db *sql.DB) TournamentRepository {
	return &sqlTournamentRepository{db: db}
}

const selectTournamentColumns = `SELECT tournament_id, tournament_name, start_date, end_date, prize_pool FROM tournament`

func (r *sqlTournamentRepository) Create(ctx context.Context, exec SQLExecutor, t *models.Tournament) error {
	query := `
		INSERT INTO tournament (tournament_name, start_date, end_date, prize_pool)
		VALUES ($1, $2, $3, $4)
		RETURNING tournament_id`
	err := executor(r.db, exec).QueryRowContext(ctx, query,
		t.Name, t.StartDate, t.EndDate, t.PrizePool,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("failed to create tournament %q: %w", t.Name, err)
	}
	return nil
}

func (r *sqlTournamentRepository) Update(ctx context.Context, exec SQLExecutor, t *models.Tournament) error {
	query := `
		UPDATE tournament
		SET tournament_name = $1, start_date = $2, end_date = $3, prize_pool = $4
		WHERE tournament_id = $5`
	result, err := executor(r.db, exec).ExecContext(ctx, query,
		t.Name, t.StartDate, t.EndDate, t.PrizePool, t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update tournament %d: %w", t.ID, err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *sqlTournamentRepository) Delete(ctx context.Context, exec SQLExecutor, id int) error {
	query := `DELETE FROM tournament WHERE tournament_id = $1`
	result, err := executor(r.db, exec).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete tournament %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *sqlTournamentRepository) ListUpcoming(ctx context.Context, today models.Date, limit int) ([]models.Tournament, error) {
	query := selectTournamentColumns + `
		WHERE end_date >= $1
		ORDER BY start_date ASC, tournament_id ASC
		LIMIT $2`
	return r.list(ctx, query, today, limit)
}

func (r *sqlTournamentRepository) ListOpen(ctx context.Context, today models.Date) ([]models.TournamentSummary, error) {
	query := `
		SELECT tournament_id, tournament_name
		FROM tournament
		WHERE end_date >= $1
		ORDER BY tournament_name ASC, tournament_id ASC`
	rows, err := r.db.QueryContext(ctx, query, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list open tournaments: %w", err)
	}
	defer rows.Close()

	summaries := make([]models.TournamentSummary, 0)
	for rows.Next() {
		var s models.TournamentSummary
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan tournament summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *sqlTournamentRepository) ListByID(ctx context.Context) ([]models.Tournament, error) {
	return r.list(ctx, selectTournamentColumns+` ORDER BY tournament_id ASC`)
}

func (r *sqlTournamentRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.Tournament, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	defer rows.Close()

	tournaments := make([]models.Tournament, 0)
	for rows.Next() {
		var t models.Tournament
		if err := rows.Scan(&t.ID, &t.Name, &t.StartDate, &t.EndDate, &t.PrizePool); err != nil {
			return nil, fmt.Errorf("failed to scan tournament: %w", err)
		}
		tournaments = append(tournaments, t)
	}
	return tournaments, rows.Err()
}
