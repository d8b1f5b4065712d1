package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/NOBU6477/tomotrip-platform/internal/model"
)

// SessionRepo persists session tokens (single 'token_hash' column; the raw
// token never reaches the database).
type SessionRepo struct{ db *sql.DB }

// CreateSession inserts a session row and returns it.
func (r *SessionRepo) CreateSession(ctx context.Context, userID, tokenHash, userType string, expiresAt time.Time) (model.Session, error) {
	s := model.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		TokenHash: tokenHash,
		UserType:  userType,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO sessions (id, user_id, token_hash, user_type, expires_at) VALUES (?,?,?,?,?)",
		s.ID, s.UserID, s.TokenHash, s.UserType, s.ExpiresAt)
	if err != nil {
		return model.Session{}, err
	}
	return s, nil
}

// GetSessionByHash returns the non-revoked session for a token hash.
// Expiry is not checked here: the auth flow needs to observe an expired
// session once so it can clear it and report logged-out.
func (r *SessionRepo) GetSessionByHash(ctx context.Context, tokenHash string) (model.Session, error) {
	var (
		s         model.Session
		revokedAt sql.NullTime
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT id,user_id,token_hash,user_type,expires_at,revoked_at,created_at FROM sessions WHERE token_hash=? LIMIT 1",
		tokenHash).Scan(&s.ID, &s.UserID, &s.TokenHash, &s.UserType, &s.ExpiresAt, &revokedAt, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Session{}, ErrNotFound
	}
	if err != nil {
		return model.Session{}, err
	}
	if revokedAt.Valid {
		return model.Session{}, ErrNotFound
	}
	return s, nil
}

// RevokeSession marks one session as revoked.
func (r *SessionRepo) RevokeSession(ctx context.Context, tokenHash string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE sessions SET revoked_at=NOW() WHERE token_hash=? AND revoked_at IS NULL",
		tokenHash)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// RevokeAllSessions revokes every active session of a user.
func (r *SessionRepo) RevokeAllSessions(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE sessions SET revoked_at=NOW() WHERE user_id=? AND revoked_at IS NULL",
		userID)
	return err
}
