package repository

import (
	"context"
	"fmt"

	"github.com/standops/stand-status-api/internal/domain"
	"github.com/standops/stand-status-api/internal/repository/dao"
)

type CircuitRepository struct {
	store Store
}

func NewCircuitRepository(store Store) *CircuitRepository {
	return &CircuitRepository{
		store: store,
	}
}

func (r *CircuitRepository) FindAll(ctx context.Context) ([]domain.Circuit, error) {
	found, err := r.store.ListCircuits(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.store.ListCircuits -> %w", err)
	}

	circuits := make([]domain.Circuit, 0, len(found))
	for _, circuit := range found {
		circuits = append(circuits, circuitDaoToDomain(circuit))
	}

	return circuits, nil
}

func (r *CircuitRepository) FindByID(ctx context.Context, id string) (domain.Circuit, error) {
	found, err := r.store.GetCircuit(ctx, id)
	if err != nil {
		return domain.Circuit{}, fmt.Errorf("r.store.GetCircuit -> %w", err)
	}

	return circuitDaoToDomain(found), nil
}

// Occupy marks the circuit occupied without touching its assignee or task
// number.
func (r *CircuitRepository) Occupy(ctx context.Context, id string) error {
	occupied := true
	patch := dao.CircuitPatch{IsOccupied: &occupied}
	if err := r.store.UpdateCircuit(ctx, id, patch); err != nil {
		return fmt.Errorf("r.store.UpdateCircuit -> %w", err)
	}

	return nil
}

// Free releases the circuit, clearing both the assignee and the task number.
func (r *CircuitRepository) Free(ctx context.Context, id string) error {
	occupied := false
	patch := dao.CircuitPatch{
		IsOccupied:    &occupied,
		SetUserID:     true,
		SetTaskNumber: true,
	}
	if err := r.store.UpdateCircuit(ctx, id, patch); err != nil {
		return fmt.Errorf("r.store.UpdateCircuit -> %w", err)
	}

	return nil
}

func (r *CircuitRepository) SetActive(ctx context.Context, id string, active bool) error {
	patch := dao.CircuitPatch{IsActive: &active}
	if err := r.store.UpdateCircuit(ctx, id, patch); err != nil {
		return fmt.Errorf("r.store.UpdateCircuit -> %w", err)
	}

	return nil
}

// AssignUser sets the assignee and derives occupancy from it. A nil userID
// unassigns and frees the circuit while leaving the task number in place.
func (r *CircuitRepository) AssignUser(ctx context.Context, id string, userID *string) error {
	occupied := userID != nil
	patch := dao.CircuitPatch{
		IsOccupied: &occupied,
		UserID:     userID,
		SetUserID:  true,
	}
	if err := r.store.UpdateCircuit(ctx, id, patch); err != nil {
		return fmt.Errorf("r.store.UpdateCircuit -> %w", err)
	}

	return nil
}

func (r *CircuitRepository) SetTaskNumber(ctx context.Context, id string, taskNumber *string) error {
	patch := dao.CircuitPatch{
		TaskNumber:    taskNumber,
		SetTaskNumber: true,
	}
	if err := r.store.UpdateCircuit(ctx, id, patch); err != nil {
		return fmt.Errorf("r.store.UpdateCircuit -> %w", err)
	}

	return nil
}

func circuitDaoToDomain(c dao.Circuit) domain.Circuit {
	return domain.Circuit{
		ID:         c.ID,
		StandID:    c.StandID,
		Name:       c.Name,
		IsOccupied: c.IsOccupied,
		IsActive:   c.IsActive,
		UserID:     c.UserID,
		TaskNumber: c.TaskNumber,
	}
}
