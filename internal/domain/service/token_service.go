package service

import (
	"time"

	"github.com/kendymann/leftover-love/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType identifies what a token grants. Only access tokens exist;
// clients discard the token to log out.
const TokenTypeAccess = "access"

// Claims are the JWT claims carried by an access token.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies access tokens.
type TokenService interface {
	// GenerateAccessToken signs a short-lived access token for the user.
	GenerateAccessToken(user *entity.User, ttl time.Duration) (string, error)

	// ValidateToken parses and verifies a token string, returning its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
