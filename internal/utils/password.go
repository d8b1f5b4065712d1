package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt hash of a sponsor password at the given
// cost.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares a stored bcrypt hash against a plain
// password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
