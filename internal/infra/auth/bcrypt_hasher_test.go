package auth

import (
	"strings"
	"testing"

	domainerrors "tattooer/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testCost keeps hashing cheap in tests; the policy checks are cost-independent.
const testCost = bcrypt.MinCost

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	password := "Ink&Needle2025"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("Ink&Needle2024", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "not-a-bcrypt-hash"))
}

func TestBcryptHasher_HashRejectsWeakPasswords(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	weak := []string{
		"123",            // too short
		"password",       // forbidden word
		"SHOUTING123!",   // no lowercase
		"whisper123!",    // no uppercase
		"NoDigitsHere!",  // no numbers
		"MissingSpec1al", // no special characters
	}

	for _, password := range weak {
		hash, err := hasher.Hash(password)
		assert.Error(t, err, "expected rejection for %q", password)
		assert.Empty(t, hash)
	}
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	for _, password := range []string{
		"Ink&Needle2025",
		"MyStudio@Key1",
		"Complex#Secret9",
		"Pässphräse123!", // unicode letters satisfy the case checks
	} {
		assert.NoError(t, hasher.ValidatePasswordStrength(password),
			"expected %q to pass the policy", password)
	}

	// One case per rule, in the order the checks run.
	cases := []struct {
		password string
		reason   string
	}{
		{"123", "must be at least 8 characters long"},
		{"!@#$%^&*()", "must contain at least one lowercase letter"},
		{"SHOUTING123!", "must contain at least one lowercase letter"},
		{"whisper123!", "must contain at least one uppercase letter"},
		{"NoDigitsHere!", "must contain at least one number"},
		{"MissingSpec1al", "must contain at least one special character"},
		{"MyPassword123!", "contains forbidden words"},
		{"StudioAdmin99!", "contains forbidden words"},
	}

	for _, tc := range cases {
		err := hasher.ValidatePasswordStrength(tc.password)
		require.Error(t, err, "expected rejection for %q", tc.password)
		assert.Contains(t, err.Error(), tc.reason)
	}
}

func TestBcryptHasher_ValidatePasswordStrength_ErrorKinds(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	// Forbidden-word matches are case-insensitive substring matches, even
	// deep inside an otherwise strong password.
	long := "VeryLongPassword123!" + strings.Repeat("x", 1000)
	err := hasher.ValidatePasswordStrength(long)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordForbiddenWords))

	err = hasher.ValidatePasswordStrength("short1!")
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestBcryptHasher_CustomCost(t *testing.T) {
	customCost := 6
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("Ink&Needle2025")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_CharacterClassHelpers(t *testing.T) {
	hasher := &bcryptHasher{cost: testCost}

	assert.True(t, hasher.hasUppercase("Needle"))
	assert.False(t, hasher.hasUppercase("needle"))

	assert.True(t, hasher.hasLowercase("Needle"))
	assert.False(t, hasher.hasLowercase("NEEDLE"))

	assert.True(t, hasher.hasNumbers("Needle7"))
	assert.False(t, hasher.hasNumbers("Needle"))

	assert.True(t, hasher.hasSpecialChars("Needle!"))
	assert.False(t, hasher.hasSpecialChars("Needle7"))

	words := []string{"password", "admin"}
	assert.True(t, hasher.containsForbiddenWords("MyPassword123", words))
	assert.True(t, hasher.containsForbiddenWords("StudioADMINkey", words))
	assert.False(t, hasher.containsForbiddenWords("Ink&Needle2025", words))
}
