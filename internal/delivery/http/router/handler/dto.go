// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"github.com/kendymann/leftover-love/internal/domain/entity"

	"github.com/google/uuid"
)

// userResponse is the public shape of a user account. The password hash never
// leaves the server.
type userResponse struct {
	ID                uuid.UUID               `json:"id"`
	Email             string                  `json:"email"`
	Username          string                  `json:"username"`
	Role              string                  `json:"role"`
	IsActive          bool                    `json:"is_active"`
	RestaurantProfile *profileResponse        `json:"restaurant_profile,omitempty"`
	CharityProfile    *charityProfileResponse `json:"charity_profile,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

// profileResponse is the public shape of a restaurant profile.
type profileResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// charityProfileResponse is the public shape of a charity profile.
type charityProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// listingResponse is the public shape of a food listing.
type listingResponse struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Name         string    `json:"name"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	ExpiryDate   time.Time `json:"expiry_date"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// pickupResponse is the public shape of a pickup record.
type pickupResponse struct {
	ID           uuid.UUID            `json:"id"`
	FoodItemID   uuid.UUID            `json:"food_item_id"`
	RestaurantID uuid.UUID            `json:"restaurant_id"`
	CharityID    uuid.UUID            `json:"charity_id"`
	Status       string               `json:"status"`
	PickupTime   time.Time            `json:"pickup_time"`
	Rating       *float64             `json:"rating"`
	Impact       *entity.PickupImpact `json:"impact"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

func toUserResponse(user *entity.User) *userResponse {
	resp := &userResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Role:      user.Role.String(),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.RestaurantProfile != nil {
		resp.RestaurantProfile = toProfileResponse(user.RestaurantProfile)
	}
	if user.CharityProfile != nil {
		resp.CharityProfile = toCharityProfileResponse(user.CharityProfile)
	}

	return resp
}

func toProfileResponse(profile *entity.RestaurantProfile) *profileResponse {
	return &profileResponse{
		ID:          profile.ID,
		UserID:      profile.UserID,
		Name:        profile.Name,
		Address:     profile.Address,
		Phone:       profile.Phone,
		Email:       profile.Email,
		Description: profile.Description,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}
}

func toCharityProfileResponse(profile *entity.CharityProfile) *charityProfileResponse {
	return &charityProfileResponse{
		ID:          profile.ID,
		UserID:      profile.UserID,
		Name:        profile.Name,
		Address:     profile.Address,
		Phone:       profile.Phone,
		Email:       profile.Email,
		Description: profile.Description,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}
}

func toListingResponse(item *entity.FoodItem) *listingResponse {
	return &listingResponse{
		ID:           item.ID,
		RestaurantID: item.RestaurantID,
		Name:         item.Name,
		Quantity:     item.Quantity,
		Unit:         item.Unit,
		ExpiryDate:   item.ExpiryDate,
		Description:  item.Description,
		Status:       string(item.Status),
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

func toListingResponseList(items []*entity.FoodItem) []*listingResponse {
	resp := make([]*listingResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toListingResponse(item))
	}

	return resp
}

func toPickupResponse(pickup *entity.Pickup) *pickupResponse {
	return &pickupResponse{
		ID:           pickup.ID,
		FoodItemID:   pickup.FoodItemID,
		RestaurantID: pickup.RestaurantID,
		CharityID:    pickup.CharityID,
		Status:       string(pickup.Status),
		PickupTime:   pickup.PickupTime,
		Rating:       pickup.Rating,
		Impact:       pickup.Impact,
		CreatedAt:    pickup.CreatedAt,
		UpdatedAt:    pickup.UpdatedAt,
	}
}

func toPickupResponseList(pickups []*entity.Pickup) []*pickupResponse {
	resp := make([]*pickupResponse, 0, len(pickups))
	for _, pickup := range pickups {
		resp = append(resp, toPickupResponse(pickup))
	}

	return resp
}
