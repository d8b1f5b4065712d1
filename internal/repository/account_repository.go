package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/NOBU6477/tomotrip-platform/internal/model"
	"github.com/NOBU6477/tomotrip-platform/internal/utils"
)

// AccountRepo persists login credentials in the 'users' table.
type AccountRepo struct{ db *sql.DB }

// CreateAccount inserts a new account with a bcrypt-hashed password and
// returns the stored record.  Duplicate emails surface as ErrEmailExists
// (MySQL error 1062 on the unique index).
func (r *AccountRepo) CreateAccount(ctx context.Context, email, password, userType string, cost int) (model.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return model.Account{}, err
	}
	id := uuid.NewString()
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO users (id, email, password_hash, user_type) VALUES (?,?,?,?)",
		id, email, hash, userType)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.Account{}, ErrEmailExists
		}
		return model.Account{}, err
	}
	return r.getBy(ctx, "id", id)
}

// GetAccountByEmail fetches an account by normalized email.
func (r *AccountRepo) GetAccountByEmail(ctx context.Context, email string) (model.Account, error) {
	return r.getBy(ctx, "email", strings.ToLower(strings.TrimSpace(email)))
}

func (r *AccountRepo) getBy(ctx context.Context, col, val string) (model.Account, error) {
	var a model.Account
	err := r.db.QueryRowContext(ctx,
		"SELECT id,email,password_hash,user_type,is_active,created_at,updated_at FROM users WHERE "+col+"=? LIMIT 1",
		val).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.UserType, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Account{}, ErrNotFound
	}
	return a, err
}
