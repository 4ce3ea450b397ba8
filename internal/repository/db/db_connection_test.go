package db

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	got := dsn("/tmp/app.db", 250)
	assert.True(t, strings.HasPrefix(got, "file:/tmp/app.db?"), got)
	assert.Contains(t, got, "_pragma=busy_timeout(250)")
	assert.Contains(t, got, "_pragma=foreign_keys(ON)")

	withQuery := dsn("/tmp/app.db?mode=rwc", 1)
	assert.Contains(t, withQuery, "mode=rwc&_pragma=")
}

func TestInitDB_MigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "app.db")

	first, err := InitDB(ctx, path, Options{})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := InitDB(ctx, path, Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	for _, table := range []string{"users", "resources"} {
		var name string
		err := second.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestOpen_PoolLimit(t *testing.T) {
	conn, err := Open(context.Background(), filepath.Join(t.TempDir(), "pool.db"), Options{MaxOpenConns: 3})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	assert.Equal(t, 3, conn.Stats().MaxOpenConnections)
}
