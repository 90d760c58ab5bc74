package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standops/stand-status-api/internal/domain"
)

// mockUserRepository implements UserRepository for testing.
type mockUserRepository struct {
	users        map[string]domain.User
	releasedFor  []string
	deleteOrder  []string
	createCalled int
}

func newMockUserRepository(users ...domain.User) *mockUserRepository {
	m := &mockUserRepository{users: make(map[string]domain.User)}
	for _, user := range users {
		m.users[user.ID] = user
	}
	return m
}

func (m *mockUserRepository) FindAll(_ context.Context) ([]domain.User, error) {
	var result []domain.User
	for _, user := range m.users {
		result = append(result, user)
	}
	return result, nil
}

func (m *mockUserRepository) FindByID(_ context.Context, id string) (domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserRepository) Create(_ context.Context, user domain.User) (domain.User, error) {
	m.createCalled++
	m.users[user.ID] = user
	return user, nil
}

func (m *mockUserRepository) Delete(_ context.Context, id string) error {
	m.deleteOrder = append(m.deleteOrder, "delete:"+id)
	delete(m.users, id)
	return nil
}

func (m *mockUserRepository) ReleaseCircuits(_ context.Context, userID string) error {
	m.releasedFor = append(m.releasedFor, userID)
	m.deleteOrder = append(m.deleteOrder, "release:"+userID)
	return nil
}

func TestUserService_AddUser(t *testing.T) {
	t.Run("rejects a whitespace-only name", func(t *testing.T) {
		repo := newMockUserRepository()
		svc := NewUserService(repo)

		_, err := svc.AddUser(context.Background(), "   ")

		assert.ErrorIs(t, err, ErrUserNameRequired)
		assert.Zero(t, repo.createCalled)
	})

	t.Run("stores the trimmed name under a generated id", func(t *testing.T) {
		repo := newMockUserRepository()
		svc := NewUserService(repo)

		user, err := svc.AddUser(context.Background(), "  Alice  ")

		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
		assert.True(t, strings.HasPrefix(user.ID, "user-"), "got id %q", user.ID)

		users, err := svc.ListUsers(context.Background())
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, user.ID, users[0].ID)
	})

	t.Run("generated ids are unique", func(t *testing.T) {
		repo := newMockUserRepository()
		svc := NewUserService(repo)

		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			user, err := svc.AddUser(context.Background(), "Bob")
			require.NoError(t, err)
			assert.False(t, seen[user.ID], "duplicate id %q", user.ID)
			seen[user.ID] = true
		}
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("releases circuits before removing the user", func(t *testing.T) {
		repo := newMockUserRepository(domain.User{ID: "u1", Name: "Alice"})
		svc := NewUserService(repo)

		err := svc.DeleteUser(context.Background(), "u1")

		require.NoError(t, err)
		assert.Equal(t, []string{"u1"}, repo.releasedFor)
		assert.Equal(t, []string{"release:u1", "delete:u1"}, repo.deleteOrder)
		_, err = svc.GetUser(context.Background(), "u1")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("unknown user is a no-op", func(t *testing.T) {
		repo := newMockUserRepository()
		svc := NewUserService(repo)

		err := svc.DeleteUser(context.Background(), "ghost")

		require.NoError(t, err)
	})
}
