package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standops/stand-status-api/internal/domain"
)

// mockCircuitRepository implements CircuitRepository for testing. It applies
// updates to an in-memory map with the same field semantics as the real
// stores, so sequences of operations compose.
type mockCircuitRepository struct {
	circuits map[string]domain.Circuit
}

func newMockCircuitRepository(circuits ...domain.Circuit) *mockCircuitRepository {
	m := &mockCircuitRepository{circuits: make(map[string]domain.Circuit)}
	for _, circuit := range circuits {
		m.circuits[circuit.ID] = circuit
	}
	return m
}

func (m *mockCircuitRepository) FindAll(_ context.Context) ([]domain.Circuit, error) {
	var result []domain.Circuit
	for _, circuit := range m.circuits {
		result = append(result, circuit)
	}
	return result, nil
}

func (m *mockCircuitRepository) FindByID(_ context.Context, id string) (domain.Circuit, error) {
	circuit, ok := m.circuits[id]
	if !ok {
		return domain.Circuit{}, ErrCircuitNotFound
	}
	return circuit, nil
}

func (m *mockCircuitRepository) Occupy(_ context.Context, id string) error {
	circuit := m.circuits[id]
	circuit.IsOccupied = true
	m.circuits[id] = circuit
	return nil
}

func (m *mockCircuitRepository) Free(_ context.Context, id string) error {
	circuit := m.circuits[id]
	circuit.IsOccupied = false
	circuit.UserID = nil
	circuit.TaskNumber = nil
	m.circuits[id] = circuit
	return nil
}

func (m *mockCircuitRepository) SetActive(_ context.Context, id string, active bool) error {
	circuit := m.circuits[id]
	circuit.IsActive = active
	m.circuits[id] = circuit
	return nil
}

func (m *mockCircuitRepository) AssignUser(_ context.Context, id string, userID *string) error {
	circuit := m.circuits[id]
	circuit.IsOccupied = userID != nil
	circuit.UserID = userID
	m.circuits[id] = circuit
	return nil
}

func (m *mockCircuitRepository) SetTaskNumber(_ context.Context, id string, taskNumber *string) error {
	circuit := m.circuits[id]
	circuit.TaskNumber = taskNumber
	m.circuits[id] = circuit
	return nil
}

// mockUserFinder implements UserFinder for testing.
type mockUserFinder struct {
	users map[string]domain.User
}

func newMockUserFinder(users ...domain.User) *mockUserFinder {
	m := &mockUserFinder{users: make(map[string]domain.User)}
	for _, user := range users {
		m.users[user.ID] = user
	}
	return m
}

func (m *mockUserFinder) FindByID(_ context.Context, id string) (domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return user, nil
}

func strptr(s string) *string {
	return &s
}

func TestCircuitService_ToggleOccupied(t *testing.T) {
	t.Run("freeing clears assignee and task number", func(t *testing.T) {
		repo := newMockCircuitRepository(domain.Circuit{
			ID: "edu-circuit-1", StandID: "edu", Name: "Test 1",
			IsOccupied: true, IsActive: true,
			UserID: strptr("u1"), TaskNumber: strptr("T-9"),
		})
		svc := NewCircuitService(repo, newMockUserFinder())

		err := svc.ToggleOccupied(context.Background(), "edu-circuit-1")

		require.NoError(t, err)
		circuit := repo.circuits["edu-circuit-1"]
		assert.False(t, circuit.IsOccupied)
		assert.Nil(t, circuit.UserID)
		assert.Nil(t, circuit.TaskNumber)
	})

	t.Run("occupying preserves existing fields", func(t *testing.T) {
		repo := newMockCircuitRepository(domain.Circuit{
			ID: "edu-circuit-1", StandID: "edu", Name: "Test 1",
			IsOccupied: false, IsActive: true, TaskNumber: strptr("T-3"),
		})
		svc := NewCircuitService(repo, newMockUserFinder())

		err := svc.ToggleOccupied(context.Background(), "edu-circuit-1")

		require.NoError(t, err)
		circuit := repo.circuits["edu-circuit-1"]
		assert.True(t, circuit.IsOccupied)
		assert.Nil(t, circuit.UserID)
		require.NotNil(t, circuit.TaskNumber)
		assert.Equal(t, "T-3", *circuit.TaskNumber)
	})

	t.Run("unknown circuit is a no-op", func(t *testing.T) {
		repo := newMockCircuitRepository()
		svc := NewCircuitService(repo, newMockUserFinder())

		err := svc.ToggleOccupied(context.Background(), "nope")

		require.NoError(t, err)
		assert.Empty(t, repo.circuits)
	})
}

func TestCircuitService_AssignUser(t *testing.T) {
	t.Run("assigning occupies and keeps the task number", func(t *testing.T) {
		repo := newMockCircuitRepository(domain.Circuit{
			ID: "edu-circuit-1", StandID: "edu", IsActive: true, TaskNumber: strptr("T-9"),
		})
		svc := NewCircuitService(repo, newMockUserFinder(domain.User{ID: "u1", Name: "Alice"}))

		err := svc.AssignUser(context.Background(), "edu-circuit-1", strptr("u1"))

		require.NoError(t, err)
		circuit := repo.circuits["edu-circuit-1"]
		assert.True(t, circuit.IsOccupied)
		require.NotNil(t, circuit.UserID)
		assert.Equal(t, "u1", *circuit.UserID)
		require.NotNil(t, circuit.TaskNumber)
		assert.Equal(t, "T-9", *circuit.TaskNumber)
	})

	t.Run("unassigning frees but keeps the task number", func(t *testing.T) {
		repo := newMockCircuitRepository(domain.Circuit{
			ID: "edu-circuit-1", StandID: "edu", IsActive: true,
			IsOccupied: true, UserID: strptr("u1"), TaskNumber: strptr("T-9"),
		})
		svc := NewCircuitService(repo, newMockUserFinder(domain.User{ID: "u1", Name: "Alice"}))

		err := svc.AssignUser(context.Background(), "edu-circuit-1", nil)

		require.NoError(t, err)
		circuit := repo.circuits["edu-circuit-1"]
		assert.False(t, circuit.IsOccupied)
		assert.Nil(t, circuit.UserID)
		require.NotNil(t, circuit.TaskNumber)
		assert.Equal(t, "T-9", *circuit.TaskNumber, "unassign must keep the task context, unlike toggle-off")
	})

	t.Run("unknown user is a no-op", func(t *testing.T) {
		repo := newMockCircuitRepository(domain.Circuit{ID: "edu-circuit-1", StandID: "edu", IsActive: true})
		svc := NewCircuitService(repo, newMockUserFinder())

		err := svc.AssignUser(context.Background(), "edu-circuit-1", strptr("ghost"))

		require.NoError(t, err)
		circuit := repo.circuits["edu-circuit-1"]
		assert.False(t, circuit.IsOccupied)
		assert.Nil(t, circuit.UserID)
	})

	t.Run("unknown circuit is a no-op", func(t *testing.T) {
		repo := newMockCircuitRepository()
		svc := NewCircuitService(repo, newMockUserFinder(domain.User{ID: "u1"}))

		err := svc.AssignUser(context.Background(), "nope", strptr("u1"))

		require.NoError(t, err)
		assert.Empty(t, repo.circuits)
	})
}

func TestCircuitService_UpdateTaskNumber(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		repo := newMockCircuitRepository(domain.Circuit{ID: "c1", StandID: "edu", IsActive: true})
		svc := NewCircuitService(repo, newMockUserFinder())

		err := svc.UpdateTaskNumber(context.Background(), "c1", strptr("  T-3  "))

		require.NoError(t, err)
		require.NotNil(t, repo.circuits["c1"].TaskNumber)
		assert.Equal(t, "T-3", *repo.circuits["c1"].TaskNumber)
	})

	t.Run("whitespace-only input clears the task number", func(t *testing.T) {
		repo := newMockCircuitRepository(domain.Circuit{ID: "c1", StandID: "edu", IsActive: true, TaskNumber: strptr("T-3")})
		svc := NewCircuitService(repo, newMockUserFinder())

		err := svc.UpdateTaskNumber(context.Background(), "c1", strptr("   "))

		require.NoError(t, err)
		assert.Nil(t, repo.circuits["c1"].TaskNumber)
	})

	t.Run("does not affect occupancy or assignment", func(t *testing.T) {
		repo := newMockCircuitRepository(domain.Circuit{
			ID: "c1", StandID: "edu", IsActive: true, IsOccupied: true, UserID: strptr("u1"),
		})
		svc := NewCircuitService(repo, newMockUserFinder())

		err := svc.UpdateTaskNumber(context.Background(), "c1", strptr("T-7"))

		require.NoError(t, err)
		circuit := repo.circuits["c1"]
		assert.True(t, circuit.IsOccupied)
		require.NotNil(t, circuit.UserID)
		assert.Equal(t, "u1", *circuit.UserID)
	})
}

func TestCircuitService_ToggleActive(t *testing.T) {
	repo := newMockCircuitRepository(domain.Circuit{ID: "c1", StandID: "edu", IsActive: true})
	svc := NewCircuitService(repo, newMockUserFinder())

	require.NoError(t, svc.ToggleActive(context.Background(), "c1"))
	assert.False(t, repo.circuits["c1"].IsActive)

	require.NoError(t, svc.ToggleActive(context.Background(), "c1"))
	assert.True(t, repo.circuits["c1"].IsActive)
}

// Occupancy invariants: a non-nil assignee implies occupied, and a free
// circuit never keeps its assignee. Checked across a mixed sequence of
// toggles and assignments. Task numbers are deliberately excluded: an
// unassign leaves them in place, only a toggle-off clears them.
func TestCircuitService_OccupancyInvariants(t *testing.T) {
	repo := newMockCircuitRepository(domain.Circuit{ID: "c1", StandID: "edu", IsActive: true})
	svc := NewCircuitService(repo, newMockUserFinder(domain.User{ID: "u1", Name: "Alice"}))
	ctx := context.Background()

	steps := []func() error{
		func() error { return svc.ToggleOccupied(ctx, "c1") },
		func() error { return svc.AssignUser(ctx, "c1", strptr("u1")) },
		func() error { return svc.UpdateTaskNumber(ctx, "c1", strptr("T-1")) },
		func() error { return svc.AssignUser(ctx, "c1", nil) },
		func() error { return svc.AssignUser(ctx, "c1", strptr("u1")) },
		func() error { return svc.ToggleOccupied(ctx, "c1") },
	}

	for i, step := range steps {
		require.NoError(t, step(), "step %d", i)

		circuit := repo.circuits["c1"]
		if circuit.UserID != nil {
			assert.True(t, circuit.IsOccupied, "step %d: assignee implies occupied", i)
		}
		if !circuit.IsOccupied {
			assert.Nil(t, circuit.UserID, "step %d: free circuit has no assignee", i)
		}
	}

	// The sequence ends with a toggle-off, so the full release cascade
	// applies.
	circuit := repo.circuits["c1"]
	assert.False(t, circuit.IsOccupied)
	assert.Nil(t, circuit.UserID)
	assert.Nil(t, circuit.TaskNumber)
}
