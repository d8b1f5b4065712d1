package utils // package utils provides helpers for token creation and hashing

import (
	"crypto/rand"   // secure random generation for session tokens
	"crypto/sha256" // SHA-256 hashing of session tokens at rest
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessToken is a signed short-lived JWT carried in the Authorization
// header when calling protected endpoints.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// SessionToken is the long-lived opaque token a browser keeps in local
// storage between visits.  Raw is returned to the client once; only the
// SHA-256 hash of it is persisted.
type SessionToken struct {
	Raw string
	Exp time.Time
}

// NewAccessToken builds and signs an HS256 JWT for a sponsor account.  The
// claims are the standard minimum: subject (the account id), the user type,
// expiration and issued-at.
func NewAccessToken(secret, userID, userType string, ttlMin int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":       userID,
		"user_type": userType,
		"exp":       exp.Unix(),
		"iat":       time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// NewSessionToken returns a cryptographically random token expiring after
// the given lifetime.  The login flow uses 24 hours by default and 30 days
// with remember-me.
func NewSessionToken(lifetime time.Duration) (SessionToken, error) {
	raw, err := randomHex(32) // 32 bytes -> 64 hex chars
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{
		Raw: raw,
		Exp: time.Now().UTC().Add(lifetime),
	}, nil
}

// HashSessionRaw returns the SHA-256 hash of a raw session token as a hex
// string.  Storing only the hash keeps a leaked database from yielding
// usable sessions.
func HashSessionRaw(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// randomHex returns a hex-encoded string of n random bytes.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
