// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"github.com/kendymann/leftover-love/config"
	domainerrors "github.com/kendymann/leftover-love/internal/domain/errors"
	"github.com/kendymann/leftover-love/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultMinPasswordLength = 8
	// bcrypt silently truncates input beyond 72 bytes, so cap it there.
	defaultMaxPasswordLength = 72
)

// forbiddenPasswordWords are trivially guessable fragments rejected regardless
// of the configured policy.
var forbiddenPasswordWords = []string{"password", "12345678", "qwerty"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	policy := config.PasswordStrengthConfig{
		MinLength: defaultMinPasswordLength,
		MaxLength: defaultMaxPasswordLength,
	}
	if cfg != nil && cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}
	if policy.MinLength <= 0 {
		policy.MinLength = defaultMinPasswordLength
	}
	if policy.MaxLength <= 0 || policy.MaxLength > defaultMaxPasswordLength {
		policy.MaxLength = defaultMaxPasswordLength
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength enforces the configured password policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.policy.MinLength {
		return errors.Wrapf(domainerrors.ErrPasswordStrength, "password must be at least %d characters", h.policy.MinLength)
	}
	if len(password) > h.policy.MaxLength {
		return errors.Wrapf(domainerrors.ErrPasswordStrength, "password must be at most %d characters", h.policy.MaxLength)
	}

	lower := strings.ToLower(password)
	for _, word := range forbiddenPasswordWords {
		if strings.Contains(lower, word) {
			return errors.Wrapf(domainerrors.ErrPasswordForbiddenWords, "password contains %q", word)
		}
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if h.policy.RequireUppercase && !hasUpper {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "password must contain an uppercase letter")
	}
	if h.policy.RequireLowercase && !hasLower {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "password must contain a lowercase letter")
	}
	if h.policy.RequireNumbers && !hasNumber {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "password must contain a digit")
	}
	if h.policy.RequireSpecial && !hasSpecial {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "password must contain a special character")
	}

	return nil
}
