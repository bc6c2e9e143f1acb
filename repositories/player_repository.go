package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/esports-registry/models"
)

type PlayerRepository interface {
	Create(ctx context.Context, exec SQLExecutor, player *models.Player) error
	Update(ctx context.Context, exec SQLExecutor, player *models.Player) error
	Delete(ctx context.Context, exec SQLExecutor, id int) error
	ListByName(ctx context.Context) ([]models.Player, error)
	ListByID(ctx context.Context) ([]models.Player, error)
}

type sqlPlayerRepository struct {
	db *sql.DB
}

func NewPlayerRepository(db *sql.DB) PlayerRepository {
	return &sqlPlayerRepository{db: db}
}

func (r *sqlPlayerRepository) Create(ctx context.Context, exec SQLExecutor, p *models.Player) error {
	query := `
		INSERT INTO player (player_name, username, country)
		VALUES ($1, $2, $3)
		RETURNING player_id`
	err := executor(r.db, exec).QueryRowContext(ctx, query, p.Name, p.Username, p.Country).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to create player %q: %w", p.Username, err)
	}
	return nil
}

func (r *sqlPlayerRepository) Update(ctx context.Context, exec SQLExecutor, p *models.Player) error {
	query := `UPDATE player SET player_name = $1, username = $2, country = $3 WHERE player_id = $4`
	result, err := executor(r.db, exec).ExecContext(ctx, query, p.Name, p.Username, p.Country, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update player %d: %w", p.ID, err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *sqlPlayerRepository) Delete(ctx context.Context, exec SQLExecutor, id int) error {
	query := `DELETE FROM player WHERE player_id = $1`
	result, err := executor(r.db, exec).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete player %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *sqlPlayerRepository) ListByName(ctx context.Context) ([]models.Player, error) {
	return r.list(ctx, `
		SELECT player_id, player_name, username, country
		FROM player
		ORDER BY player_name ASC, player_id ASC`)
}

func (r *sqlPlayerRepository) ListByID(ctx context.Context) ([]models.Player, error) {
	return r.list(ctx, `
		SELECT player_id, player_name, username, country
		FROM player
		ORDER BY player_id ASC`)
}

func (r *sqlPlayerRepository) list(ctx context.Context, query string) ([]models.Player, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.Username, &p.Country); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}
