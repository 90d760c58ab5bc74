package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/standops/stand-status-api/internal/domain"
	"github.com/standops/stand-status-api/internal/repository"
)

var (
	ErrStandNotFound   = repository.ErrStandNotFound
	ErrCircuitNotFound = repository.ErrCircuitNotFound
	ErrUserNotFound    = repository.ErrUserNotFound
)

type StandRepository interface {
	FindAll(ctx context.Context) ([]domain.Stand, error)
	FindByID(ctx context.Context, id string) (domain.Stand, error)
	SetActive(ctx context.Context, id string, active, clearCircuitTasks bool) error
}

type StandService struct {
	repo StandRepository
}

func NewStandService(repo StandRepository) *StandService {
	return &StandService{
		repo: repo,
	}
}

func (s *StandService) ListStands(ctx context.Context) ([]domain.Stand, error) {
	stands, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return stands, nil
}

// ToggleActive flips the stand's activation gate. Deactivating cascades a
// task-number reset onto every circuit of the stand; occupancy and
// assignees are untouched. Unknown stand ids are a no-op, matching the
// lenient behavior the UI relies on.
func (s *StandService) ToggleActive(ctx context.Context, standID string) error {
	stand, err := s.repo.FindByID(ctx, standID)
	if err != nil {
		if errors.Is(err, ErrStandNotFound) {
			zap.L().Warn("toggle requested for unknown stand", zap.String("standID", standID))
			return nil
		}

		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	active := !stand.IsActive
	if err = s.repo.SetActive(ctx, standID, active, !active); err != nil {
		return fmt.Errorf("s.repo.SetActive -> %w", err)
	}

	return nil
}
