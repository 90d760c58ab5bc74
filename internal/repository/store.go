package repository

import (
	"context"

	"github.com/standops/stand-status-api/internal/repository/dao"
)

var (
	ErrStandNotFound   = dao.ErrStandNotFound
	ErrCircuitNotFound = dao.ErrCircuitNotFound
	ErrUserNotFound    = dao.ErrUserNotFound
	ErrUserExists      = dao.ErrUserExists
)

// Store is the persistence contract both backends satisfy. Repositories are
// written once against this interface; which implementation is plugged in
// is decided at startup.
type Store interface {
	Bootstrap(ctx context.Context) error
	Close() error

	ListStands(ctx context.Context) ([]dao.Stand, error)
	ListCircuits(ctx context.Context) ([]dao.Circuit, error)
	ListUsers(ctx context.Context) ([]dao.User, error)

	GetStand(ctx context.Context, id string) (dao.Stand, error)
	GetCircuit(ctx context.Context, id string) (dao.Circuit, error)
	GetUser(ctx context.Context, id string) (dao.User, error)

	UpdateStand(ctx context.Context, id string, patch dao.StandPatch) error
	UpdateCircuit(ctx context.Context, id string, patch dao.CircuitPatch) error

	InsertUser(ctx context.Context, user dao.User) error
	DeleteUser(ctx context.Context, id string) error
	ReleaseCircuitsByUser(ctx context.Context, userID string) error
}

var (
	_ Store = (*dao.SQLiteStore)(nil)
	_ Store = (*dao.PostgresStore)(nil)
)
