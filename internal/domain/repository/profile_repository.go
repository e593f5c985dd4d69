package repository

import (
	"context"
	"errors"

	"github.com/kendymann/leftover-love/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no profile exists for the given key.
var ErrProfileNotFound = errors.New("profile not found")

// RestaurantRepository defines persistence operations for restaurant profiles.
type RestaurantRepository interface {
	// FindByUserID retrieves the restaurant profile owned by the given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.RestaurantProfile, error)

	// FindByID retrieves a restaurant profile by its own ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RestaurantProfile, error)

	// Create persists a new restaurant profile.
	Create(ctx context.Context, profile *entity.RestaurantProfile) error

	// Update modifies an existing restaurant profile.
	Update(ctx context.Context, profile *entity.RestaurantProfile) error
}

// CharityRepository defines persistence operations for charity profiles.
type CharityRepository interface {
	// FindByUserID retrieves the charity profile owned by the given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.CharityProfile, error)

	// FindByID retrieves a charity profile by its own ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CharityProfile, error)

	// Create persists a new charity profile.
	Create(ctx context.Context, profile *entity.CharityProfile) error

	// Update modifies an existing charity profile.
	Update(ctx context.Context, profile *entity.CharityProfile) error
}
