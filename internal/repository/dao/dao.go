// Package dao contains the storage records and the two interchangeable
// store implementations (embedded SQLite and remote Postgres). Both expose
// the same method set; the repository layer defines the interface it
// consumes so the rest of the code never knows which backend is configured.
package dao

import "errors"

var (
	ErrStandNotFound   = errors.New("stand not found")
	ErrCircuitNotFound = errors.New("circuit not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
)

type Stand struct {
	ID       string `gorm:"primaryKey"`
	Name     string `gorm:"not null"`
	IsActive bool   `gorm:"not null;default:true"`
}

type Circuit struct {
	ID         string `gorm:"primaryKey"`
	StandID    string `gorm:"not null;index"`
	Name       string `gorm:"not null"`
	IsOccupied bool   `gorm:"not null;default:false"`
	IsActive   bool   `gorm:"not null;default:true"`
	UserID     *string
	TaskNumber *string
}

type User struct {
	ID   string `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

// StandPatch is a partial update for a stand. Nil fields are left unchanged.
// ClearCircuitTasks additionally nulls the task numbers of every circuit
// owned by the stand, in the same transaction as the stand update.
type StandPatch struct {
	IsActive          *bool
	ClearCircuitTasks bool
}

// CircuitPatch is a partial update for a circuit. Nil pointer fields are
// left unchanged. UserID and TaskNumber are nullable columns, so they carry
// an explicit Set flag: the column is written (possibly to NULL) only when
// the flag is true.
type CircuitPatch struct {
	IsOccupied    *bool
	IsActive      *bool
	UserID        *string
	SetUserID     bool
	TaskNumber    *string
	SetTaskNumber bool
}
