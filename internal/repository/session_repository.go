package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cryptoassets/portal/internal/apperrors"
	"github.com/cryptoassets/portal/internal/model"
)

// SessionRepository provides data access methods for the session table.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SessionRepository with the provided database connection.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// InsertSession creates a session row for a freshly issued token.
func (r *SessionRepository) InsertSession(ctx context.Context, s *model.Session) error {
	query := `
          INSERT INTO session (id, user_id, token, created_at, expires_at)
          VALUES (?, ?, ?, ?, ?)
      `

	_, err := r.db.ExecContext(ctx, query, s.ID, s.UserID, s.Token, s.CreatedAt, s.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	return nil
}

// GetByToken retrieves a session by its token.
func (r *SessionRepository) GetByToken(token string) (model.Session, error) {
	query := `
          SELECT id, user_id, token, created_at, expires_at
          FROM session
          WHERE token = ?
      `
	var s model.Session

	err := r.db.QueryRow(query, token).Scan(
		&s.ID,
		&s.UserID,
		&s.Token,
		&s.CreatedAt,
		&s.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return model.Session{}, apperrors.ErrSessionNotFound
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to query session: %w", err)
	}

	return s, nil
}

// DeleteByToken revokes a session.
func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM session WHERE token = ?`, token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check session delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSessionNotFound
	}

	return nil
}

// DeleteExpired removes sessions whose expiry has passed. Run periodically by
// the scheduler so revoked-by-time rows do not accumulate.
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM session WHERE expires_at < ?`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check expired session delete result: %w", err)
	}

	return affected, nil
}
