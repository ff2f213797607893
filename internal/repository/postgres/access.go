package postgres

import (
	"database/sql"
)

// AccessRepo implements repository.AccessRepository
type AccessRepo struct {
	db *sql.DB
}

// NewAccessRepo creates a new access repository
func NewAccessRepo(db *sql.DB) *AccessRepo {
	return &AccessRepo{db: db}
}

// IsAuthorized checks if user is authorized
func (r *AccessRepo) IsAuthorized(userID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE user_id = $1)`
	err := r.db.QueryRow(query, userID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Authorize records the user as authorized
func (r *AccessRepo) Authorize(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized_at)
		VALUES ($1, NOW())
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// IsBanned checks if user is banned
func (r *AccessRepo) IsBanned(userID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM banned_users WHERE user_id = $1)`
	err := r.db.QueryRow(query, userID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Ban permanently blocks the user. There is no corresponding unban:
// rows are never removed from banned_users.
func (r *AccessRepo) Ban(userID int64, reason string) error {
	query := `
		INSERT INTO banned_users (user_id, banned_at, reason)
		VALUES ($1, NOW(), $2)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID, reason)
	return err
}

// AuthAttempts returns the number of failed password attempts
func (r *AccessRepo) AuthAttempts(userID int64) (int, error) {
	var attempts int
	query := `SELECT attempts FROM auth_attempts WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&attempts)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return attempts, nil
}

// IncrementAuthAttempts bumps the failed-attempt counter and returns
// the new value
func (r *AccessRepo) IncrementAuthAttempts(userID int64) (int, error) {
	var attempts int
	query := `
		INSERT INTO auth_attempts (user_id, attempts)
		VALUES ($1, 1)
		ON CONFLICT (user_id) DO UPDATE SET attempts = auth_attempts.attempts + 1
		RETURNING attempts
	`
	err := r.db.QueryRow(query, userID).Scan(&attempts)
	if err != nil {
		return 0, err
	}
	return attempts, nil
}

// ResetAuthAttempts clears the failed-attempt counter
func (r *AccessRepo) ResetAuthAttempts(userID int64) error {
	query := `DELETE FROM auth_attempts WHERE user_id = $1`
	_, err := r.db.Exec(query, userID)
	return err
}
