package auth

import (
	"testing"

	"github.com/kendymann/leftover-love/config"
	domainerrors "github.com/kendymann/leftover-love/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasherConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4}, // MinCost keeps the tests fast.
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        64,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
		},
	}

	return cfg
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig())

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Password123!", hash)

	assert.True(t, hasher.Check("Password123!", hash))
	assert.False(t, hasher.Check("WrongPassword1", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig())

	first, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	second, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig())

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "valid", password: "Sup3rSecret", wantErr: nil},
		{name: "too short", password: "Ab1", wantErr: domainerrors.ErrPasswordStrength},
		{name: "no uppercase", password: "lowercase123", wantErr: domainerrors.ErrPasswordStrength},
		{name: "no digit", password: "NoDigitsHere", wantErr: domainerrors.ErrPasswordStrength},
		{name: "forbidden word", password: "MyPassword123", wantErr: domainerrors.ErrPasswordForbiddenWords},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestBcryptHasher_DefaultsWithoutPolicy(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	// Only the length bounds apply when no policy is configured.
	assert.NoError(t, hasher.ValidatePasswordStrength("plainbutlongenough"))
	assert.Error(t, hasher.ValidatePasswordStrength("short"))
}
