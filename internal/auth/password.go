// Package auth composes the credential store and the in-memory session
// registry behind a role-checked service gating dictionary mutation.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"unicode"

	"github.com/xelthorlang/xelthor/internal/common"
)

// saltBytes is the random salt size; the stored salt is its hex encoding.
const saltBytes = 16

// GenerateSalt returns a fresh random hex-encoded salt.
func GenerateSalt() (string, error) {
	return common.MakeRandHexString(saltBytes)
}

// HashPassword computes the hex digest of SHA-256(salt || password).
//
// This is a deliberate single-round construction kept for compatibility
// with the existing account stores. A production system would use a
// memory-hard KDF instead.
func HashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}

// CheckPassword reports whether the password matches the stored hash under
// the stored salt, in constant time.
func CheckPassword(storedHash, password, salt string) bool {
	candidate := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(candidate)) == 1
}

// ValidatePasswordStrength enforces the password rule: at least 8
// characters with an uppercase letter, a lowercase letter, and a digit.
// The returned error names the first violated rule.
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters: %w", common.ErrValidation)
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper {
		return fmt.Errorf("password must contain an uppercase letter: %w", common.ErrValidation)
	}
	if !lower {
		return fmt.Errorf("password must contain a lowercase letter: %w", common.ErrValidation)
	}
	if !digit {
		return fmt.Errorf("password must contain a digit: %w", common.ErrValidation)
	}
	return nil
}
