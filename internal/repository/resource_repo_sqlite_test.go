package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"resource_api/internal/models"
	"resource_api/internal/repository"
	"resource_api/internal/repository/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupSQLite opens a migrated database in a temp dir with a single pooled connection,
// so a leaked connection shows up as a timeout on the next call.
func setupSQLite(t *testing.T) (*repository.ResourceSQLite, func() int) {
	t.Helper()

	conn, err := db.InitDB(context.Background(), filepath.Join(t.TempDir(), "repo.db"), db.Options{MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return repository.NewResourceSQLite(conn), func() int { return conn.Stats().InUse }
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestResourceSQLite_CreateThenFind(t *testing.T) {
	repo, _ := setupSQLite(t)
	ctx := testCtx(t)

	created, err := repo.Create(ctx, models.NewResource{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.NotEmpty(t, created.CreatedAt)
	_, err = time.Parse(models.CreatedAtLayout, created.CreatedAt)
	require.NoError(t, err)

	found, err := repo.FindOne(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestResourceSQLite_SaveKeepsIdentityAndTimestamp(t *testing.T) {
	repo, _ := setupSQLite(t)
	ctx := testCtx(t)

	created, err := repo.Create(ctx, models.NewResource{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	saved, err := repo.Save(ctx, created.ID, models.UpdateResource{Name: "Ada L.", Email: "ada@lovelace.org"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, saved.ID)
	assert.Equal(t, created.CreatedAt, saved.CreatedAt)
	assert.Equal(t, "Ada L.", saved.Name)
	assert.Equal(t, "ada@lovelace.org", saved.Email)

	found, err := repo.FindOne(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, found)
}

func TestResourceSQLite_MissingIDIsNotFound(t *testing.T) {
	repo, inUse := setupSQLite(t)
	ctx := testCtx(t)

	_, err := repo.FindOne(ctx, 999999)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.Save(ctx, 999999, models.UpdateResource{Name: "x", Email: "y"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = repo.Delete(ctx, 999999)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.Zero(t, inUse(), "connections must be released on error paths")
}

func TestResourceSQLite_DeleteThenFind(t *testing.T) {
	repo, _ := setupSQLite(t)
	ctx := testCtx(t)

	created, err := repo.Create(ctx, models.NewResource{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.FindOne(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), repository.ErrNotFound)
}

func TestResourceSQLite_IDsAreNotReused(t *testing.T) {
	repo, _ := setupSQLite(t)
	ctx := testCtx(t)

	first, err := repo.Create(ctx, models.NewResource{Name: "a", Email: "a@x"})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, first.ID))

	second, err := repo.Create(ctx, models.NewResource{Name: "b", Email: "b@x"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestResourceSQLite_FindManyOrderAndLimit(t *testing.T) {
	repo, inUse := setupSQLite(t)
	ctx := testCtx(t)

	empty, err := repo.FindMany(ctx, 10)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, models.NewResource{Name: "n", Email: "e"})
		require.NoError(t, err)
	}

	got, err := repo.FindMany(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i-1].ID, got[i].ID, "ids must be strictly descending")
	}
	assert.Equal(t, 5, got[0].ID)

	all, err := repo.FindMany(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	assert.Zero(t, inUse())
}

func TestResourceSQLite_CancelledContextReleasesConnection(t *testing.T) {
	repo, inUse := setupSQLite(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := repo.FindMany(ctx, 10)
	assert.ErrorIs(t, err, context.Canceled)

	// the single pooled connection is still available
	_, err = repo.FindMany(testCtx(t), 10)
	require.NoError(t, err)
	assert.Zero(t, inUse())
}
