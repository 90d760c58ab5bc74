package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/standops/stand-status-api/internal/domain"
)

// ErrUserNameRequired is returned by AddUser for empty or whitespace-only
// names.
var ErrUserNameRequired = errors.New("user name is required")

type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
	Delete(ctx context.Context, id string) error
	ReleaseCircuits(ctx context.Context, userID string) error
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

// AddUser stores a new roster member under a freshly generated id. The name
// is trimmed; an empty result is rejected with ErrUserNameRequired.
func (s *UserService) AddUser(ctx context.Context, name string) (domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.User{}, ErrUserNameRequired
	}

	user, err := s.repo.Create(ctx, domain.User{
		ID:   newUserID(),
		Name: name,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return user, nil
}

// DeleteUser releases every circuit assigned to the user, then removes the
// user record. Circuits keep their task numbers; only occupancy and the
// assignee are cleared. The release is written first so a failure between
// the two writes can never leave a circuit pointing at a missing user.
// Unknown user ids are a no-op.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.repo.ReleaseCircuits(ctx, userID); err != nil {
		return fmt.Errorf("s.repo.ReleaseCircuits -> %w", err)
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

const userIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newUserID builds an id from the current timestamp plus a random base36
// suffix, e.g. "user-1717171717171-k3j9x0q2m".
func newUserID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = userIDAlphabet[rand.Intn(len(userIDAlphabet))]
	}

	return fmt.Sprintf("user-%d-%s", time.Now().UnixMilli(), suffix)
}
