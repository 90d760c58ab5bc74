package dao

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgresStore is the remote managed-store backend, accessed over the
// network through GORM. Every mutation is awaited; cascades run inside a
// single transaction so a circuit never ends up half-updated.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{
		db: db,
	}
}

// Bootstrap migrates the three tables and seeds the initial dataset when
// the store is fresh. Safe to call on every startup; an already-seeded
// store is left untouched.
func (s *PostgresStore) Bootstrap(ctx context.Context) error {
	db := s.db.WithContext(ctx)

	if err := db.AutoMigrate(&Stand{}, &Circuit{}, &User{}); err != nil {
		return err
	}

	var count int64
	if err := db.Model(&Stand{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		stands := seedStands()
		if err := tx.Create(&stands).Error; err != nil {
			return err
		}
		circuits := seedCircuits()
		if err := tx.Create(&circuits).Error; err != nil {
			return err
		}
		users := seedUsers()
		return tx.Create(&users).Error
	})
}

func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *PostgresStore) ListStands(ctx context.Context) ([]Stand, error) {
	var stands []Stand
	result := s.db.WithContext(ctx).Order("id").Find(&stands)
	if result.Error != nil {
		return nil, result.Error
	}

	return stands, nil
}

func (s *PostgresStore) ListCircuits(ctx context.Context) ([]Circuit, error) {
	var circuits []Circuit
	result := s.db.WithContext(ctx).Order("stand_id, name").Find(&circuits)
	if result.Error != nil {
		return nil, result.Error
	}

	return circuits, nil
}

func (s *PostgresStore) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	result := s.db.WithContext(ctx).Order("name").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

func (s *PostgresStore) GetStand(ctx context.Context, id string) (Stand, error) {
	var stand Stand
	result := s.db.WithContext(ctx).First(&stand, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Stand{}, ErrStandNotFound
		}

		return Stand{}, result.Error
	}

	return stand, nil
}

func (s *PostgresStore) GetCircuit(ctx context.Context, id string) (Circuit, error) {
	var circuit Circuit
	result := s.db.WithContext(ctx).First(&circuit, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Circuit{}, ErrCircuitNotFound
		}

		return Circuit{}, result.Error
	}

	return circuit, nil
}

func (s *PostgresStore) GetUser(ctx context.Context, id string) (User, error) {
	var user User
	result := s.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (s *PostgresStore) UpdateStand(ctx context.Context, id string, patch StandPatch) error {
	values := map[string]interface{}{}
	if patch.IsActive != nil {
		values["is_active"] = *patch.IsActive
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(values) > 0 {
			if err := tx.Model(&Stand{}).Where("id = ?", id).Updates(values).Error; err != nil {
				return err
			}
		}
		if patch.ClearCircuitTasks {
			err := tx.Model(&Circuit{}).
				Where("stand_id = ?", id).
				Update("task_number", nil).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *PostgresStore) UpdateCircuit(ctx context.Context, id string, patch CircuitPatch) error {
	values := map[string]interface{}{}
	if patch.IsOccupied != nil {
		values["is_occupied"] = *patch.IsOccupied
	}
	if patch.IsActive != nil {
		values["is_active"] = *patch.IsActive
	}
	if patch.SetUserID {
		values["user_id"] = patch.UserID
	}
	if patch.SetTaskNumber {
		values["task_number"] = patch.TaskNumber
	}
	if len(values) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).Model(&Circuit{}).Where("id = ?", id).Updates(values).Error
}

func (s *PostgresStore) InsertUser(ctx context.Context, user User) error {
	result := s.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrUserExists
		}

		return result.Error
	}

	return nil
}

func (s *PostgresStore) DeleteUser(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&User{}, "id = ?", id).Error
}

// ReleaseCircuitsByUser resets every circuit referencing the user to
// unoccupied with no assignee. Task numbers are intentionally left alone.
func (s *PostgresStore) ReleaseCircuitsByUser(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).Model(&Circuit{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{"is_occupied": false, "user_id": nil}).Error
}
