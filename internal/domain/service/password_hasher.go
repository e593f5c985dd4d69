// Package service defines domain-level service interfaces whose
// implementations live in the infrastructure layer.
package service

// PasswordHasher abstracts password hashing and verification so the
// application layer never touches a concrete hashing library.
type PasswordHasher interface {
	// Hash produces a one-way hash of the plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength enforces the configured password policy
	// and returns a domain error describing the first violated rule.
	ValidatePasswordStrength(password string) error
}
