package usecase

import (
	"context"
	"time"

	"github.com/kendymann/leftover-love/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SchedulePickupInput defines the data required to schedule a pickup.
type SchedulePickupInput struct {
	PickupTime time.Time
}

// UpdatePickupInput advances a pickup's status and/or records its outcome.
// Nil fields are untouched.
type UpdatePickupInput struct {
	Status *entity.PickupStatus
	Rating *float64
	Impact *entity.PickupImpact
}

// PickupUsecase defines the interface for pickup business operations.
type PickupUsecase interface {
	// Schedule reserves an available listing for the caller's charity profile
	// and creates a scheduled pickup against it.
	Schedule(ctx context.Context, userID uuid.UUID, listingID uuid.UUID, input *SchedulePickupInput) (*entity.Pickup, error)

	// Update applies a status transition per the pickup state machine and/or
	// attaches rating and impact data to a completed pickup.
	Update(ctx context.Context, userID uuid.UUID, pickupID uuid.UUID, input *UpdatePickupInput) (*entity.Pickup, error)

	// ListForRestaurant returns pickups against the caller's listings.
	ListForRestaurant(ctx context.Context, userID uuid.UUID) ([]*entity.Pickup, error)

	// ListForCharity returns pickups requested by the caller's charity.
	ListForCharity(ctx context.Context, userID uuid.UUID) ([]*entity.Pickup, error)
}
