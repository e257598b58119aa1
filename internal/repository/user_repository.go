package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cryptoassets/portal/internal/apperrors"
	"github.com/cryptoassets/portal/internal/model"
)

// UserRepository provides data access methods for the user_account table.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository with the provided database connection.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByEmail retrieves a user by email address.
func (r *UserRepository) GetByEmail(email string) (model.User, error) {
	query := `
          SELECT id, email, name, created_at, last_login_at
          FROM user_account
          WHERE email = ?
      `
	var u model.User

	err := r.db.QueryRow(query, email).Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.CreatedAt,
		&u.LastLoginAt,
	)
	if err == sql.ErrNoRows {
		return model.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	return u, nil
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(id string) (model.User, error) {
	query := `
          SELECT id, email, name, created_at, last_login_at
          FROM user_account
          WHERE id = ?
      `
	var u model.User

	err := r.db.QueryRow(query, id).Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.CreatedAt,
		&u.LastLoginAt,
	)
	if err == sql.ErrNoRows {
		return model.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	return u, nil
}

// InsertUser creates a new account row.
func (r *UserRepository) InsertUser(ctx context.Context, u *model.User) error {
	query := `
          INSERT INTO user_account (id, email, name, created_at, last_login_at)
          VALUES (?, ?, ?, ?, ?)
      `

	_, err := r.db.ExecContext(ctx, query, u.ID, u.Email, u.Name, u.CreatedAt, u.LastLoginAt)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// UpdateLastLogin records a successful login time.
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE user_account SET last_login_at = ? WHERE id = ?`, at, id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}
