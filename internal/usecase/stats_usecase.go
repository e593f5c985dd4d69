package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// GlobalStats aggregates platform-wide impact across completed pickups.
type GlobalStats struct {
	TotalPickups  int      `json:"total_pickups"`
	PeopleHelped  int      `json:"people_helped"`
	FoodSavedKg   float64  `json:"food_saved_kg"`
	AverageRating *float64 `json:"average_rating"`
}

// RestaurantStats aggregates a restaurant's contribution. When no completed
// pickup carries impact data, the sums fall back to a per-pickup estimate and
// Estimated is set.
type RestaurantStats struct {
	TotalListings int     `json:"total_listings"`
	TotalPickups  int     `json:"total_pickups"`
	PeopleHelped  int     `json:"people_helped"`
	FoodSavedKg   float64 `json:"food_saved_kg"`
	Estimated     bool    `json:"estimated"`
}

// CharityStats aggregates a charity's received impact.
type CharityStats struct {
	TotalPickups  int      `json:"total_pickups"`
	PeopleHelped  int      `json:"people_helped"`
	FoodSavedKg   float64  `json:"food_saved_kg"`
	AverageRating *float64 `json:"average_rating"`
}

// StatsUsecase computes impact statistics on demand from completed pickups.
type StatsUsecase interface {
	Global(ctx context.Context) (*GlobalStats, error)
	ForRestaurant(ctx context.Context, userID uuid.UUID) (*RestaurantStats, error)
	ForCharity(ctx context.Context, userID uuid.UUID) (*CharityStats, error)
}
