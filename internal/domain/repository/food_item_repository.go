package repository

import (
	"context"
	"errors"

	"github.com/kendymann/leftover-love/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFoodItemNotFound is returned when a food item id does not resolve.
var ErrFoodItemNotFound = errors.New("food item not found")

// ErrFoodItemNotAvailable is returned when a reservation loses to a
// concurrent claim or targets an item that is already off the market.
var ErrFoodItemNotAvailable = errors.New("food item not available")

// FoodItemRepository defines persistence operations for food listings.
type FoodItemRepository interface {
	// FindByID retrieves a single food item by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodItem, error)

	// FindByStatus retrieves all food items in the given status, newest first.
	FindByStatus(ctx context.Context, status entity.FoodStatus) ([]*entity.FoodItem, error)

	// FindByRestaurantID retrieves all food items owned by a restaurant profile.
	FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*entity.FoodItem, error)

	// CountByRestaurantID counts all listings a restaurant has ever created.
	CountByRestaurantID(ctx context.Context, restaurantID uuid.UUID) (int64, error)

	// Create persists a new food item.
	Create(ctx context.Context, item *entity.FoodItem) error

	// Update modifies an existing food item.
	Update(ctx context.Context, item *entity.FoodItem) error

	// Reserve flips an available item to reserved in a single guarded
	// write. Exactly one of two concurrent reservations succeeds; the
	// loser gets ErrFoodItemNotAvailable.
	Reserve(ctx context.Context, id uuid.UUID) error

	// Delete removes a food item.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByRestaurantID removes every listing owned by a restaurant
	// profile. Removing zero rows is not an error.
	DeleteByRestaurantID(ctx context.Context, restaurantID uuid.UUID) error
}
