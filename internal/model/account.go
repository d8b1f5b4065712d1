package model

import "time"

// User types distinguished by the auth flow.  A store owner manages a single
// store dashboard, while an operations sponsor account has no store of its
// own and lands on the operations dashboard.
const (
	UserTypeSponsor    = "sponsor"
	UserTypeStoreOwner = "store_owner"
)

// Account represents a login credential record in the users table.  Each
// field corresponds to a column.  Password hashes are bcrypt.
//
// Fields:
//
//	ID           – primary key UUID.
//	Email        – unique, lower-cased email address.
//	PasswordHash – bcrypt hashed password.
//	UserType     – "sponsor" or "store_owner".
//	IsActive     – whether the account may log in.
//	CreatedAt    – timestamp of creation.
//	UpdatedAt    – timestamp of last update.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	UserType     string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session models a row in the sessions table.  The plain token is never
// stored; only its SHA-256 hash.  A session is live while RevokedAt is nil
// and ExpiresAt is in the future.
type Session struct {
	ID        string
	UserID    string
	TokenHash string
	UserType  string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// Expired reports whether the session lifetime has passed at the given
// instant.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
