package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/standops/stand-status-api/internal/domain"
)

type CircuitRepository interface {
	FindAll(ctx context.Context) ([]domain.Circuit, error)
	FindByID(ctx context.Context, id string) (domain.Circuit, error)
	Occupy(ctx context.Context, id string) error
	Free(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	AssignUser(ctx context.Context, id string, userID *string) error
	SetTaskNumber(ctx context.Context, id string, taskNumber *string) error
}

// UserFinder is the slice of the user repository the circuit service needs
// to uphold referential integrity on assignment.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (domain.User, error)
}

type CircuitService struct {
	repo  CircuitRepository
	users UserFinder
}

func NewCircuitService(repo CircuitRepository, users UserFinder) *CircuitService {
	return &CircuitService{
		repo:  repo,
		users: users,
	}
}

func (s *CircuitService) ListCircuits(ctx context.Context) ([]domain.Circuit, error) {
	circuits, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return circuits, nil
}

func (s *CircuitService) GetCircuit(ctx context.Context, circuitID string) (domain.Circuit, error) {
	circuit, err := s.repo.FindByID(ctx, circuitID)
	if err != nil {
		return domain.Circuit{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return circuit, nil
}

// ToggleOccupied flips the occupancy of the circuit. Freeing clears both the
// assignee and the task number; occupying preserves whatever is already set.
// Unknown circuit ids are a no-op.
func (s *CircuitService) ToggleOccupied(ctx context.Context, circuitID string) error {
	circuit, err := s.repo.FindByID(ctx, circuitID)
	if err != nil {
		if errors.Is(err, ErrCircuitNotFound) {
			zap.L().Warn("toggle requested for unknown circuit", zap.String("circuitID", circuitID))
			return nil
		}

		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if circuit.IsOccupied {
		if err = s.repo.Free(ctx, circuitID); err != nil {
			return fmt.Errorf("s.repo.Free -> %w", err)
		}
		return nil
	}

	if err = s.repo.Occupy(ctx, circuitID); err != nil {
		return fmt.Errorf("s.repo.Occupy -> %w", err)
	}

	return nil
}

// ToggleActive flips the circuit's own activation gate. Unlike the stand
// gate there is no cascade.
func (s *CircuitService) ToggleActive(ctx context.Context, circuitID string) error {
	circuit, err := s.repo.FindByID(ctx, circuitID)
	if err != nil {
		if errors.Is(err, ErrCircuitNotFound) {
			zap.L().Warn("toggle requested for unknown circuit", zap.String("circuitID", circuitID))
			return nil
		}

		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = s.repo.SetActive(ctx, circuitID, !circuit.IsActive); err != nil {
		return fmt.Errorf("s.repo.SetActive -> %w", err)
	}

	return nil
}

// AssignUser sets (or, with a nil userID, clears) the circuit's assignee and
// derives occupancy from it. Unassigning keeps the task number: a drag
// reassignment carries the task context along, while an explicit off-toggle
// does not. Unknown circuit or user ids are a no-op.
func (s *CircuitService) AssignUser(ctx context.Context, circuitID string, userID *string) error {
	_, err := s.repo.FindByID(ctx, circuitID)
	if err != nil {
		if errors.Is(err, ErrCircuitNotFound) {
			zap.L().Warn("assignment requested for unknown circuit", zap.String("circuitID", circuitID))
			return nil
		}

		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if userID != nil {
		if _, err = s.users.FindByID(ctx, *userID); err != nil {
			if errors.Is(err, ErrUserNotFound) {
				zap.L().Warn("assignment requested for unknown user", zap.String("userID", *userID))
				return nil
			}

			return fmt.Errorf("s.users.FindByID -> %w", err)
		}
	}

	if err = s.repo.AssignUser(ctx, circuitID, userID); err != nil {
		return fmt.Errorf("s.repo.AssignUser -> %w", err)
	}

	return nil
}

// UpdateTaskNumber stores the trimmed task number; whitespace-only input
// clears it. Occupancy and assignment are unaffected. Unknown circuit ids
// are a no-op.
func (s *CircuitService) UpdateTaskNumber(ctx context.Context, circuitID string, taskNumber *string) error {
	_, err := s.repo.FindByID(ctx, circuitID)
	if err != nil {
		if errors.Is(err, ErrCircuitNotFound) {
			zap.L().Warn("task number update for unknown circuit", zap.String("circuitID", circuitID))
			return nil
		}

		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = s.repo.SetTaskNumber(ctx, circuitID, normalizeTaskNumber(taskNumber)); err != nil {
		return fmt.Errorf("s.repo.SetTaskNumber -> %w", err)
	}

	return nil
}

func normalizeTaskNumber(taskNumber *string) *string {
	if taskNumber == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*taskNumber)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
