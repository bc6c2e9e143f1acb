// Package dbtest opens throwaway sqlite databases for tests.
package dbtest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/Dosada05/esports-registry/db"
	"github.com/stretchr/testify/require"
)

// New returns a database with the full schema in a temp dir. It is closed
// when the test ends.
func New(t testing.TB) *sql.DB {
	t.Helper()

	conn, err := db.Connect(db.Options{
		Driver:         db.DriverSQLite,
		DSN:            filepath.Join(t.TempDir(), "esports.db"),
		ConnectTimeout: time.Second,
	})
	require.NoError(t, err)
	require.NoError(t, db.CreateSchema(context.Background(), conn, db.DriverSQLite))

	t.Cleanup(func() {
		_ = conn.Close()
	})
	return conn
}

// Count returns SELECT COUNT(*) for the given query.
func Count(t testing.TB, conn *sql.DB, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, conn.QueryRow(query, args...).Scan(&n))
	return n
}
