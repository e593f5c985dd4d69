package usecase

import (
	"context"
	"time"

	"github.com/kendymann/leftover-love/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateListingInput defines the data required to publish a food listing.
type CreateListingInput struct {
	Name        string
	Quantity    float64
	Unit        string
	ExpiryDate  time.Time
	Description string
}

// UpdateListingInput defines a partial listing patch. Nil fields are untouched.
type UpdateListingInput struct {
	Name        *string
	Quantity    *float64
	Unit        *string
	ExpiryDate  *time.Time
	Description *string
}

// Patch converts the input into a domain-level food item patch.
func (in *UpdateListingInput) Patch() *entity.FoodItemPatch {
	return &entity.FoodItemPatch{
		Name:        in.Name,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		ExpiryDate:  in.ExpiryDate,
		Description: in.Description,
	}
}

// ListingUsecase defines the interface for food listing business operations.
type ListingUsecase interface {
	// ListAvailable returns all listings currently open for pickup. Public.
	ListAvailable(ctx context.Context) ([]*entity.FoodItem, error)

	// ListMine returns all listings owned by the caller's restaurant profile.
	ListMine(ctx context.Context, userID uuid.UUID) ([]*entity.FoodItem, error)

	// Create publishes a new listing for the caller's restaurant profile.
	Create(ctx context.Context, userID uuid.UUID, input *CreateListingInput) (*entity.FoodItem, error)

	// Update applies a partial patch to a listing the caller owns.
	Update(ctx context.Context, userID uuid.UUID, listingID uuid.UUID, input *UpdateListingInput) (*entity.FoodItem, error)

	// Delete removes a listing the caller owns. Fails when a scheduled pickup
	// still references it.
	Delete(ctx context.Context, userID uuid.UUID, listingID uuid.UUID) error
}
