package entity

import (
	"time"

	"github.com/google/uuid"
)

// FoodStatus represents the availability of a food listing.
type FoodStatus string

const (
	// FoodStatusAvailable means the listing is open for pickup requests.
	FoodStatusAvailable FoodStatus = "available"
	// FoodStatusReserved means a pickup has claimed the listing. Completed
	// pickups keep their item reserved; cancellation releases it.
	FoodStatusReserved FoodStatus = "reserved"
)

// IsValid checks if the FoodStatus is a valid value.
func (s FoodStatus) IsValid() bool {
	return s == FoodStatusAvailable || s == FoodStatusReserved
}

// FoodItem is a surplus food listing published by a restaurant profile.
type FoodItem struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID // Foreign key to the owning RestaurantProfile.
	Name         string
	Quantity     float64
	Unit         string // Free-form unit label, e.g. "kg" or "portions".
	ExpiryDate   time.Time
	Description  string
	Status       FoodStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FoodItemPatch carries a partial update for a food listing. Nil fields are
// left unchanged; status is never patched directly, it follows the pickup
// lifecycle.
type FoodItemPatch struct {
	Name        *string
	Quantity    *float64
	Unit        *string
	ExpiryDate  *time.Time
	Description *string
}

// Apply copies the non-nil patch fields onto the item.
func (p *FoodItemPatch) Apply(item *FoodItem) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.Unit != nil {
		item.Unit = *p.Unit
	}
	if p.ExpiryDate != nil {
		item.ExpiryDate = *p.ExpiryDate
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
}
