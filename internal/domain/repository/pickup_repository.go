package repository

import (
	"context"
	"errors"

	"github.com/kendymann/leftover-love/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPickupNotFound is returned when a pickup id does not resolve.
var ErrPickupNotFound = errors.New("pickup not found")

// PickupRepository defines persistence operations for pickup records.
type PickupRepository interface {
	// FindByID retrieves a single pickup by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Pickup, error)

	// FindByRestaurantID retrieves all pickups against a restaurant's listings.
	FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Pickup, error)

	// FindByCharityID retrieves all pickups requested by a charity.
	FindByCharityID(ctx context.Context, charityID uuid.UUID) ([]*entity.Pickup, error)

	// FindByFoodItemID retrieves all pickups recorded against a food item.
	FindByFoodItemID(ctx context.Context, foodItemID uuid.UUID) ([]*entity.Pickup, error)

	// FindCompleted retrieves completed pickups, optionally scoped to a
	// restaurant or charity profile. Nil scope IDs mean "all".
	FindCompleted(ctx context.Context, restaurantID, charityID *uuid.UUID) ([]*entity.Pickup, error)

	// Create persists a new pickup record.
	Create(ctx context.Context, pickup *entity.Pickup) error

	// Update modifies an existing pickup record.
	Update(ctx context.Context, pickup *entity.Pickup) error
}
