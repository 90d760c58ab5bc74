package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// schemaSQL creates the three tables on a fresh store. Bootstrap runs it on
// every startup; CREATE TABLE IF NOT EXISTS keeps it idempotent.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS stands (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	is_active INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS circuits (
	id TEXT PRIMARY KEY,
	stand_id TEXT NOT NULL,
	name TEXT NOT NULL,
	is_occupied INTEGER NOT NULL DEFAULT 0,
	is_active INTEGER NOT NULL DEFAULT 1,
	user_id TEXT,
	task_number TEXT,
	FOREIGN KEY (stand_id) REFERENCES stands(id)
);

CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL
);
`

// SQLiteStore is the embedded local backend over a single database file.
// The driver commits synchronously, so every mutation is durable before the
// call returns; there is no write-behind buffering.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{
		db: db,
	}
}

// Bootstrap ensures the schema exists and seeds the initial dataset when
// the store is fresh. Re-running it never duplicates seed rows.
func (s *SQLiteStore) Bootstrap(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM stands").Scan(&count); err != nil {
		return fmt.Errorf("failed to count stands: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stand := range seedStands() {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO stands (id, name, is_active) VALUES (?, ?, ?)",
			stand.ID, stand.Name, stand.IsActive)
		if err != nil {
			return fmt.Errorf("failed to seed stand %s: %w", stand.ID, err)
		}
	}
	for _, circuit := range seedCircuits() {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO circuits (id, stand_id, name, is_occupied, is_active, user_id) VALUES (?, ?, ?, ?, ?, ?)",
			circuit.ID, circuit.StandID, circuit.Name, circuit.IsOccupied, circuit.IsActive, circuit.UserID)
		if err != nil {
			return fmt.Errorf("failed to seed circuit %s: %w", circuit.ID, err)
		}
	}
	for _, user := range seedUsers() {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO users (id, name) VALUES (?, ?)",
			user.ID, user.Name)
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", user.ID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ListStands(ctx context.Context) ([]Stand, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, is_active FROM stands ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stands []Stand
	for rows.Next() {
		var stand Stand
		if err = rows.Scan(&stand.ID, &stand.Name, &stand.IsActive); err != nil {
			return nil, err
		}
		stands = append(stands, stand)
	}

	return stands, rows.Err()
}

func (s *SQLiteStore) ListCircuits(ctx context.Context) ([]Circuit, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, stand_id, name, is_occupied, is_active, user_id, task_number FROM circuits ORDER BY stand_id, name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var circuits []Circuit
	for rows.Next() {
		circuit, err := scanCircuit(rows)
		if err != nil {
			return nil, err
		}
		circuits = append(circuits, circuit)
	}

	return circuits, rows.Err()
}

func (s *SQLiteStore) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM users ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var user User
		if err = rows.Scan(&user.ID, &user.Name); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (s *SQLiteStore) GetStand(ctx context.Context, id string) (Stand, error) {
	var stand Stand
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, is_active FROM stands WHERE id = ?", id).
		Scan(&stand.ID, &stand.Name, &stand.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return Stand{}, ErrStandNotFound
	}
	if err != nil {
		return Stand{}, err
	}

	return stand, nil
}

func (s *SQLiteStore) GetCircuit(ctx context.Context, id string) (Circuit, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, stand_id, name, is_occupied, is_active, user_id, task_number FROM circuits WHERE id = ?", id)

	circuit, err := scanCircuit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Circuit{}, ErrCircuitNotFound
	}
	if err != nil {
		return Circuit{}, err
	}

	return circuit, nil
}

func (s *SQLiteStore) GetUser(ctx context.Context, id string) (User, error) {
	var user User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name FROM users WHERE id = ?", id).
		Scan(&user.ID, &user.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, err
	}

	return user, nil
}

func (s *SQLiteStore) UpdateStand(ctx context.Context, id string, patch StandPatch) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if patch.IsActive != nil {
		_, err = tx.ExecContext(ctx, "UPDATE stands SET is_active = ? WHERE id = ?", *patch.IsActive, id)
		if err != nil {
			return err
		}
	}
	if patch.ClearCircuitTasks {
		_, err = tx.ExecContext(ctx, "UPDATE circuits SET task_number = NULL WHERE stand_id = ?", id)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) UpdateCircuit(ctx context.Context, id string, patch CircuitPatch) error {
	var (
		assignments []string
		args        []interface{}
	)
	if patch.IsOccupied != nil {
		assignments = append(assignments, "is_occupied = ?")
		args = append(args, *patch.IsOccupied)
	}
	if patch.IsActive != nil {
		assignments = append(assignments, "is_active = ?")
		args = append(args, *patch.IsActive)
	}
	if patch.SetUserID {
		assignments = append(assignments, "user_id = ?")
		args = append(args, patch.UserID)
	}
	if patch.SetTaskNumber {
		assignments = append(assignments, "task_number = ?")
		args = append(args, patch.TaskNumber)
	}
	if len(assignments) == 0 {
		return nil
	}

	query := "UPDATE circuits SET " + strings.Join(assignments, ", ") + " WHERE id = ?"
	args = append(args, id)

	_, err := s.db.ExecContext(ctx, query, args...)
	return err
}

func (s *SQLiteStore) InsertUser(ctx context.Context, user User) error {
	_, err := s.db.ExecContext(ctx, "INSERT INTO users (id, name) VALUES (?, ?)", user.ID, user.Name)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return ErrUserExists
		}

		return err
	}

	return nil
}

func (s *SQLiteStore) DeleteUser(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	return err
}

// ReleaseCircuitsByUser resets every circuit referencing the user to
// unoccupied with no assignee. Task numbers are intentionally left alone.
func (s *SQLiteStore) ReleaseCircuitsByUser(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE circuits SET is_occupied = 0, user_id = NULL WHERE user_id = ?", userID)
	return err
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCircuit(row scanner) (Circuit, error) {
	var (
		circuit    Circuit
		userID     sql.NullString
		taskNumber sql.NullString
	)
	err := row.Scan(&circuit.ID, &circuit.StandID, &circuit.Name,
		&circuit.IsOccupied, &circuit.IsActive, &userID, &taskNumber)
	if err != nil {
		return Circuit{}, err
	}

	if userID.Valid {
		circuit.UserID = &userID.String
	}
	if taskNumber.Valid {
		circuit.TaskNumber = &taskNumber.String
	}

	return circuit, nil
}
