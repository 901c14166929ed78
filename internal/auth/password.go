package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BcryptHasher adapts the package functions to the hashing interface the
// auth flow consumes.
type BcryptHasher struct{}

func (BcryptHasher) Hash(password string) (string, error) {
	return HashPassword(password)
}

func (BcryptHasher) Check(hash, password string) bool {
	return CheckPassword(hash, password)
}
