package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dkraev/inkpress/internal/common"
)

// HashPassword returns a bcrypt hash of the given password.
func HashPassword(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	return hash, nil
}

// CheckPassword compares a password against its stored hash; a mismatch is
// reported as common.ErrUnauthorized.
func CheckPassword(hash []byte, password string) error {
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return common.ErrUnauthorized
	}
	return nil
}
