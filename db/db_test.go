package db

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("rejects unknown driver", func(t *testing.T) {
		_, err := Connect(Options{Driver: "oracle", DSN: "localhost/XE"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported database driver")
	})

	t.Run("opens sqlite with a single connection", func(t *testing.T) {
		conn, err := Connect(Options{
			Driver:         DriverSQLite,
			DSN:            filepath.Join(t.TempDir(), "connect.db"),
			ConnectTimeout: time.Second,
			MaxOpenConns:   10,
		})
		require.NoError(t, err)
		defer conn.Close()

		assert.Equal(t, 1, conn.Stats().MaxOpenConnections)

		var fk int
		require.NoError(t, conn.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
		assert.Equal(t, 1, fk)
	})
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "a.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", sqliteDSN("a.db"))
	assert.Equal(t, "a.db?mode=rwc&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", sqliteDSN("a.db?mode=rwc"))
	assert.Equal(t, "a.db?_pragma=journal_mode(WAL)", sqliteDSN("a.db?_pragma=journal_mode(WAL)"))
}

func TestCreateSchemaIsIdempotent(t *testing.T) {
	conn, err := Connect(Options{Driver: DriverSQLite, DSN: filepath.Join(t.TempDir(), "schema.db")})
	require.NoError(t, err)
	defer conn.Close()

	ctx := context.Background()
	require.NoError(t, CreateSchema(ctx, conn, DriverSQLite))
	require.NoError(t, CreateSchema(ctx, conn, DriverSQLite))
	require.Error(t, CreateSchema(ctx, conn, "mysql"))
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

var _ net.Error = timeoutErr{}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClass
	}{
		{name: "nil", err: nil, want: ClassNone},
		{name: "pq unique violation", err: &pq.Error{Code: "23505"}, want: ClassConstraint},
		{name: "pq foreign key violation wrapped", err: fmt.Errorf("insert: %w", &pq.Error{Code: "23503"}), want: ClassConstraint},
		{name: "pq connection failure", err: &pq.Error{Code: "08006"}, want: ClassConnectivity},
		{name: "pq syntax error", err: &pq.Error{Code: "42601"}, want: ClassStatement},
		{name: "bad conn", err: driver.ErrBadConn, want: ClassConnectivity},
		{name: "network", err: fmt.Errorf("dial: %w", timeoutErr{}), want: ClassConnectivity},
		{name: "plain", err: errors.New("something"), want: ClassStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestClassifySQLiteConstraint(t *testing.T) {
	conn, err := Connect(Options{Driver: DriverSQLite, DSN: filepath.Join(t.TempDir(), "classify.db")})
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, CreateSchema(context.Background(), conn, DriverSQLite))

	_, err = conn.Exec(`INSERT INTO player (player_name, username, country) VALUES ($1, $2, $3)`, "A", "dup", "SE")
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO player (player_name, username, country) VALUES ($1, $2, $3)`, "B", "dup", "NO")
	require.Error(t, err)
	assert.Equal(t, ClassConstraint, Classify(err))

	_, err = conn.Exec(`INSERT INTO player_team (player_id, team_id) VALUES ($1, $2)`, 999, 999)
	require.Error(t, err)
	assert.Equal(t, ClassConstraint, Classify(err))
}
