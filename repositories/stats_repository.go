package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/esports-registry/models"
)

type StatsRepository interface {
	Homepage(ctx context.Context) (models.HomepageStats, error)
}

type sqlStatsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) StatsRepository {
	return &sqlStatsRepository{db: db}
}

func (r *sqlStatsRepository) Homepage(ctx context.Context) (models.HomepageStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM team),
			(SELECT COUNT(*) FROM player),
			(SELECT COALESCE(SUM(prize_pool), 0) FROM tournament)`

	var stats models.HomepageStats
	err := r.db.QueryRowContext(ctx, query).Scan(&stats.Teams, &stats.Players, &stats.Prizes)
	if err != nil {
		return models.HomepageStats{}, fmt.Errorf("failed to load homepage stats: %w", err)
	}
	return stats, nil
}
