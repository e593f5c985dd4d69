package auth

import (
	"time"

	"github.com/kendymann/leftover-love/config"
	"github.com/kendymann/leftover-love/internal/domain/entity"
	"github.com/kendymann/leftover-love/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// defaultServiceTTL applies when a caller passes a non-positive TTL.
const defaultServiceTTL = 15 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{accessSecret: cfg.SecretKey.Access}, nil
}

// GenerateAccessToken signs a short-lived HS256 access token for the user.
func (s *jwtService) GenerateAccessToken(user *entity.User, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultServiceTTL
	}

	now := time.Now()
	claims := &service.Claims{
		Email: user.Email,
		Role:  user.Role.String(),
		Type:  service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken parses and verifies a token string, returning its claims.
// Verification fails on a bad signature, expiry, a wrong token type or a
// missing subject.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	if claims.Type != service.TokenTypeAccess {
		return nil, errors.New("token is not an access token")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "token subject is not a valid user id")
	}
	claims.UserID = userID

	return claims, nil
}
