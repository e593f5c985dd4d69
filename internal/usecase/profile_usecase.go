package usecase

import (
	"context"

	"github.com/kendymann/leftover-love/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateProfileInput defines the data required to create a role profile.
type CreateProfileInput struct {
	Name        string
	Address     string
	Phone       string
	Email       string
	Description string
}

// UpdateProfileInput defines a partial profile patch. Nil fields are untouched.
type UpdateProfileInput struct {
	Name        *string
	Address     *string
	Phone       *string
	Email       *string
	Description *string
}

// Patch converts the input into a domain-level profile patch.
func (in *UpdateProfileInput) Patch() *entity.ProfilePatch {
	return &entity.ProfilePatch{
		Name:        in.Name,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
		Description: in.Description,
	}
}

// ProfileUsecase defines the interface for role profile business operations.
type ProfileUsecase interface {
	CreateRestaurantProfile(ctx context.Context, userID uuid.UUID, input *CreateProfileInput) (*entity.RestaurantProfile, error)
	GetRestaurantProfile(ctx context.Context, userID uuid.UUID) (*entity.RestaurantProfile, error)
	UpdateRestaurantProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.RestaurantProfile, error)

	CreateCharityProfile(ctx context.Context, userID uuid.UUID, input *CreateProfileInput) (*entity.CharityProfile, error)
	GetCharityProfile(ctx context.Context, userID uuid.UUID) (*entity.CharityProfile, error)
	UpdateCharityProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.CharityProfile, error)
}
