package repository

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standops/stand-status-api/internal/repository/dao"
)

// Repository tests run against a real in-memory store so the dao mapping
// and the patch semantics are exercised together.
func setupStore(t *testing.T) Store {
	t.Helper()

	sqlDB, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// In-memory databases are per connection.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	store := dao.NewSQLiteStore(sqlDB)
	require.NoError(t, store.Bootstrap(context.Background()))

	return store
}

func TestStandRepository(t *testing.T) {
	store := setupStore(t)
	repo := NewStandRepository(store)
	ctx := context.Background()

	stands, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, stands, 4)

	stand, err := repo.FindByID(ctx, "edu")
	require.NoError(t, err)
	assert.Equal(t, "edu", stand.ID)
	assert.True(t, stand.IsActive)

	require.NoError(t, repo.SetActive(ctx, "edu", false, true))
	stand, err = repo.FindByID(ctx, "edu")
	require.NoError(t, err)
	assert.False(t, stand.IsActive)

	_, err = repo.FindByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrStandNotFound)
}

func TestCircuitRepository(t *testing.T) {
	store := setupStore(t)
	repo := NewCircuitRepository(store)
	ctx := context.Background()

	circuits, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, circuits, 8)

	userID := "anton"
	require.NoError(t, repo.AssignUser(ctx, "edu-circuit-1", &userID))
	task := "T-4"
	require.NoError(t, repo.SetTaskNumber(ctx, "edu-circuit-1", &task))

	circuit, err := repo.FindByID(ctx, "edu-circuit-1")
	require.NoError(t, err)
	assert.True(t, circuit.IsOccupied)
	require.NotNil(t, circuit.UserID)
	assert.Equal(t, "anton", *circuit.UserID)
	require.NotNil(t, circuit.TaskNumber)
	assert.Equal(t, "T-4", *circuit.TaskNumber)

	// Unassigning frees the circuit but leaves the task number.
	require.NoError(t, repo.AssignUser(ctx, "edu-circuit-1", nil))
	circuit, err = repo.FindByID(ctx, "edu-circuit-1")
	require.NoError(t, err)
	assert.False(t, circuit.IsOccupied)
	assert.Nil(t, circuit.UserID)
	require.NotNil(t, circuit.TaskNumber)
	assert.Equal(t, "T-4", *circuit.TaskNumber)

	// Freeing clears everything.
	require.NoError(t, repo.Occupy(ctx, "edu-circuit-1"))
	require.NoError(t, repo.Free(ctx, "edu-circuit-1"))
	circuit, err = repo.FindByID(ctx, "edu-circuit-1")
	require.NoError(t, err)
	assert.False(t, circuit.IsOccupied)
	assert.Nil(t, circuit.UserID)
	assert.Nil(t, circuit.TaskNumber)
}

func TestUserRepository(t *testing.T) {
	store := setupStore(t)
	users := NewUserRepository(store)
	circuits := NewCircuitRepository(store)
	ctx := context.Background()

	all, err := users.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	userID := all[0].ID
	require.NoError(t, circuits.AssignUser(ctx, "career-circuit-1", &userID))

	require.NoError(t, users.ReleaseCircuits(ctx, userID))
	require.NoError(t, users.Delete(ctx, userID))

	circuit, err := circuits.FindByID(ctx, "career-circuit-1")
	require.NoError(t, err)
	assert.False(t, circuit.IsOccupied)
	assert.Nil(t, circuit.UserID)

	_, err = users.FindByID(ctx, userID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
