// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	domainerrors "tattooer/internal/domain/errors"
	"tattooer/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// forbiddenWords are substrings a password may never contain, matched
// case-insensitively against the whole password.
var forbiddenWords = []string{"password", "admin", "tattooer", "qwerty", "123456"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher() service.PasswordHasher {
	return NewBcryptHasherWithCost(bcrypt.DefaultCost)
}

// NewBcryptHasherWithCost creates a hasher with an explicit bcrypt cost.
// Lower costs are useful in tests; production uses NewBcryptHasher.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// Passwords that fail the strength policy are rejected before hashing.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength enforces the password policy: at least 8
// characters, mixed case, a number, a special character and none of the
// forbidden words. Checks run in a fixed order so the reported reason is
// deterministic.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < 8 {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must be at least 8 characters long")
	}
	if !h.hasLowercase(password) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one lowercase letter")
	}
	if !h.hasUppercase(password) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one uppercase letter")
	}
	if !h.hasNumbers(password) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one number")
	}
	if !h.hasSpecialChars(password) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one special character")
	}
	if h.containsForbiddenWords(password, forbiddenWords) {
		return domainerrors.ErrPasswordForbiddenWords.WrapMessage("password contains forbidden words")
	}

	return nil
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLower)
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.ContainsFunc(s, unicode.IsUpper)
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func (h *bcryptHasher) containsForbiddenWords(password string, words []string) bool {
	lowered := strings.ToLower(password)
	for _, word := range words {
		if strings.Contains(lowered, word) {
			return true
		}
	}

	return false
}
