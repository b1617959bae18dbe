package utils // package utils provides password hashing and token issuing helpers

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt hash of an employee password using the
// configured cost. The plain password is never stored.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares a stored bcrypt hash against a login
// attempt. It returns false for any mismatch or malformed hash.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
