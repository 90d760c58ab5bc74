package repository

import (
	"context"
	"fmt"

	"github.com/standops/stand-status-api/internal/domain"
	"github.com/standops/stand-status-api/internal/repository/dao"
)

type UserRepository struct {
	store Store
}

func NewUserRepository(store Store) *UserRepository {
	return &UserRepository{
		store: store,
	}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	found, err := r.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.store.ListUsers -> %w", err)
	}

	users := make([]domain.User, 0, len(found))
	for _, user := range found {
		users = append(users, userDaoToDomain(user))
	}

	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	found, err := r.store.GetUser(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.store.GetUser -> %w", err)
	}

	return userDaoToDomain(found), nil
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	err := r.store.InsertUser(ctx, dao.User{
		ID:   user.ID,
		Name: user.Name,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.store.InsertUser -> %w", err)
	}

	return user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("r.store.DeleteUser -> %w", err)
	}

	return nil
}

// ReleaseCircuits resets every circuit assigned to the user to unoccupied
// with no assignee, leaving task numbers untouched.
func (r *UserRepository) ReleaseCircuits(ctx context.Context, userID string) error {
	if err := r.store.ReleaseCircuitsByUser(ctx, userID); err != nil {
		return fmt.Errorf("r.store.ReleaseCircuitsByUser -> %w", err)
	}

	return nil
}

func userDaoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:   u.ID,
		Name: u.Name,
	}
}
