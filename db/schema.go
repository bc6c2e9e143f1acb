package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates the tables if they do not exist yet. It is a
// bootstrap for fresh databases, safe to call on every start.
// Foreign keys carry no ON DELETE CASCADE: dependent join rows
// are removed by the services before the owning row.
func CreateSchema(ctx context.Context, db *sql.DB, driver string) error {
	var statements []string
	switch driver {
	case DriverPostgres:
		statements = postgresSchema
	case DriverSQLite:
		statements = sqliteSchema
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS team (
		team_id   INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		team_name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS player (
		player_id   INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		player_name TEXT NOT NULL,
		username    TEXT NOT NULL UNIQUE,
		country     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tournament (
		tournament_id   INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		tournament_name TEXT NOT NULL,
		start_date      DATE NOT NULL,
		end_date        DATE NOT NULL,
		prize_pool      NUMERIC(14, 2) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS player_team (
		player_id INTEGER NOT NULL REFERENCES player (player_id),
		team_id   INTEGER NOT NULL REFERENCES team (team_id),
		PRIMARY KEY (player_id, team_id)
	)`,
	`CREATE TABLE IF NOT EXISTS team_tournament (
		team_id       INTEGER NOT NULL REFERENCES team (team_id),
		tournament_id INTEGER NOT NULL REFERENCES tournament (tournament_id),
		PRIMARY KEY (team_id, tournament_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_player_team_team_id ON player_team (team_id)`,
	`CREATE INDEX IF NOT EXISTS idx_team_tournament_tournament_id ON team_tournament (tournament_id)`,
}

// Dates are stored as YYYY-MM-DD text, which orders and compares like a date.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS team (
		team_id   INTEGER PRIMARY KEY AUTOINCREMENT,
		team_name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS player (
		player_id   INTEGER PRIMARY KEY AUTOINCREMENT,
		player_name TEXT NOT NULL,
		username    TEXT NOT NULL UNIQUE,
		country     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tournament (
		tournament_id   INTEGER PRIMARY KEY AUTOINCREMENT,
		tournament_name TEXT NOT NULL,
		start_date      TEXT NOT NULL,
		end_date        TEXT NOT NULL,
		prize_pool      REAL NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS player_team (
		player_id INTEGER NOT NULL REFERENCES player (player_id),
		team_id   INTEGER NOT NULL REFERENCES team (team_id),
		PRIMARY KEY (player_id, team_id)
	)`,
	`CREATE TABLE IF NOT EXISTS team_tournament (
		team_id       INTEGER NOT NULL REFERENCES team (team_id),
		tournament_id INTEGER NOT NULL REFERENCES tournament (tournament_id),
		PRIMARY KEY (team_id, tournament_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_player_team_team_id ON player_team (team_id)`,
	`CREATE INDEX IF NOT EXISTS idx_team_tournament_tournament_id ON team_tournament (tournament_id)`,
}
