package repository

import (
	"context"
	"fmt"

	"github.com/standops/stand-status-api/internal/domain"
	"github.com/standops/stand-status-api/internal/repository/dao"
)

type StandRepository struct {
	store Store
}

func NewStandRepository(store Store) *StandRepository {
	return &StandRepository{
		store: store,
	}
}

func (r *StandRepository) FindAll(ctx context.Context) ([]domain.Stand, error) {
	found, err := r.store.ListStands(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.store.ListStands -> %w", err)
	}

	stands := make([]domain.Stand, 0, len(found))
	for _, stand := range found {
		stands = append(stands, standDaoToDomain(stand))
	}

	return stands, nil
}

func (r *StandRepository) FindByID(ctx context.Context, id string) (domain.Stand, error) {
	found, err := r.store.GetStand(ctx, id)
	if err != nil {
		return domain.Stand{}, fmt.Errorf("r.store.GetStand -> %w", err)
	}

	return standDaoToDomain(found), nil
}

// SetActive updates the activation gate. When clearCircuitTasks is set, the
// task numbers of every circuit under the stand are nulled in the same
// transaction.
func (r *StandRepository) SetActive(ctx context.Context, id string, active, clearCircuitTasks bool) error {
	patch := dao.StandPatch{
		IsActive:          &active,
		ClearCircuitTasks: clearCircuitTasks,
	}
	if err := r.store.UpdateStand(ctx, id, patch); err != nil {
		return fmt.Errorf("r.store.UpdateStand -> %w", err)
	}

	return nil
}

func standDaoToDomain(s dao.Stand) domain.Stand {
	return domain.Stand{
		ID:       s.ID,
		Name:     s.Name,
		IsActive: s.IsActive,
	}
}
