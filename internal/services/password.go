package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
)

var errUnsupportedHash = errors.New("unsupported password hash")

func hashPassword(password string) (string, error) {
	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

// comparePassword checks a password against an argon2id or bcrypt hash.
// bcrypt hashes are accepted so that accounts carried over with their
// existing hashes keep working.
func comparePassword(password, hash string) (bool, error) {
	switch {
	case strings.HasPrefix(hash, "$argon2id$"):
		return argon2id.ComparePasswordAndHash(password, hash)
	case isBcryptHash(hash):
		err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, errUnsupportedHash
	}
}

func isBcryptHash(hash string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(hash, prefix) {
			return true
		}
	}
	return false
}

func validateHash(hash string) error {
	switch {
	case strings.HasPrefix(hash, "$argon2id$"):
		_, _, _, err := argon2id.DecodeHash(hash)
		return err
	case isBcryptHash(hash):
		_, err := bcrypt.Cost([]byte(hash))
		return err
	default:
		return errUnsupportedHash
	}
}
