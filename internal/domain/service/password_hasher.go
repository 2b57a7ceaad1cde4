package service

// PasswordHasher abstracts password hashing so the application layer never
// touches a concrete algorithm.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength reports whether a plaintext password meets
	// the strength policy. Hash also enforces it, so callers that want a
	// distinct validation step (registration) can run it up front.
	ValidatePasswordStrength(password string) error
}
