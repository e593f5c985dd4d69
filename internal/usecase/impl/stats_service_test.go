package impl

import (
	"context"
	"testing"

	"github.com/kendymann/leftover-love/internal/domain/entity"
	domainerrors "github.com/kendymann/leftover-love/internal/domain/errors"
	"github.com/kendymann/leftover-love/internal/domain/repository"
	"github.com/kendymann/leftover-love/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statsServiceFixtures struct {
	service usecase.StatsUsecase
	repos   *repoFixtures
}

func createTestStatsService(t *testing.T) statsServiceFixtures {
	repos := newRepoFixtures(t)

	service := NewStatsService(StatsServiceParams{
		PickupRepo:     repos.pickupRepo,
		FoodItemRepo:   repos.foodItemRepo,
		RestaurantRepo: repos.restaurantRepo,
		CharityRepo:    repos.charityRepo,
		Logger:         newDiscardLogger(),
	})

	return statsServiceFixtures{service: service, repos: repos}
}

func ratingPtr(r float64) *float64 { return &r }

// twoPickupSample is the canonical aggregation example: one pickup helped 6
// people with 3.5 kg rated 4.0, the other carries no impact and no rating.
func twoPickupSample() []*entity.Pickup {
	return []*entity.Pickup{
		{
			ID:     uuid.New(),
			Status: entity.PickupStatusCompleted,
			Rating: ratingPtr(4.0),
			Impact: &entity.PickupImpact{PeopleHelped: 6, FoodSavedKg: 3.5},
		},
		{
			ID:     uuid.New(),
			Status: entity.PickupStatusCompleted,
		},
	}
}

func TestStatsService_Global_ZeroPickups(t *testing.T) {
	fxt := createTestStatsService(t)
	ctx := context.Background()

	fxt.repos.pickupRepo.On("FindCompleted", ctx, (*uuid.UUID)(nil), (*uuid.UUID)(nil)).
		Return([]*entity.Pickup{}, nil)

	stats, err := fxt.service.Global(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalPickups)
	assert.Equal(t, 0, stats.PeopleHelped)
	assert.Equal(t, 0.0, stats.FoodSavedKg)
	assert.Nil(t, stats.AverageRating)
}

func TestStatsService_Global_TwoPickupSample(t *testing.T) {
	fxt := createTestStatsService(t)
	ctx := context.Background()

	fxt.repos.pickupRepo.On("FindCompleted", ctx, (*uuid.UUID)(nil), (*uuid.UUID)(nil)).
		Return(twoPickupSample(), nil)

	stats, err := fxt.service.Global(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalPickups)
	assert.Equal(t, 6, stats.PeopleHelped)
	assert.Equal(t, 3.5, stats.FoodSavedKg)
	require.NotNil(t, stats.AverageRating)
	assert.Equal(t, 4.0, *stats.AverageRating)
}

func TestStatsService_Global_AveragesDistinctRatings(t *testing.T) {
	fxt := createTestStatsService(t)
	ctx := context.Background()

	// Ratings 5 and 3 must land on their arithmetic mean, not on either value.
	completed := []*entity.Pickup{
		{ID: uuid.New(), Status: entity.PickupStatusCompleted, Rating: ratingPtr(5.0)},
		{ID: uuid.New(), Status: entity.PickupStatusCompleted, Rating: ratingPtr(3.0)},
	}

	fxt.repos.pickupRepo.On("FindCompleted", ctx, (*uuid.UUID)(nil), (*uuid.UUID)(nil)).
		Return(completed, nil)

	stats, err := fxt.service.Global(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalPickups)
	require.NotNil(t, stats.AverageRating)
	assert.Equal(t, 4.0, *stats.AverageRating)
}

func TestStatsService_ForRestaurant_RecordedImpact(t *testing.T) {
	fxt := createTestStatsService(t)
	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()

	fxt.repos.restaurantRepo.On("FindByUserID", ctx, userID).
		Return(&entity.RestaurantProfile{ID: profileID, UserID: userID}, nil)
	fxt.repos.foodItemRepo.On("CountByRestaurantID", ctx, profileID).Return(int64(7), nil)
	fxt.repos.pickupRepo.On("FindCompleted", ctx, &profileID, (*uuid.UUID)(nil)).
		Return(twoPickupSample(), nil)

	stats, err := fxt.service.ForRestaurant(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 7, stats.TotalListings)
	assert.Equal(t, 2, stats.TotalPickups)
	assert.Equal(t, 6, stats.PeopleHelped)
	assert.Equal(t, 3.5, stats.FoodSavedKg)
	assert.False(t, stats.Estimated)
}

func TestStatsService_ForRestaurant_EstimateFallback(t *testing.T) {
	fxt := createTestStatsService(t)
	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()

	// Two completed pickups, neither carrying impact data.
	completed := []*entity.Pickup{
		{ID: uuid.New(), Status: entity.PickupStatusCompleted},
		{ID: uuid.New(), Status: entity.PickupStatusCompleted},
	}

	fxt.repos.restaurantRepo.On("FindByUserID", ctx, userID).
		Return(&entity.RestaurantProfile{ID: profileID, UserID: userID}, nil)
	fxt.repos.foodItemRepo.On("CountByRestaurantID", ctx, profileID).Return(int64(3), nil)
	fxt.repos.pickupRepo.On("FindCompleted", ctx, &profileID, (*uuid.UUID)(nil)).
		Return(completed, nil)

	stats, err := fxt.service.ForRestaurant(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalPickups)
	assert.Equal(t, 5.0, stats.FoodSavedKg) // 2 * 2.5 kg
	assert.Equal(t, 8, stats.PeopleHelped)  // 2 * 4 people
	assert.True(t, stats.Estimated)
}

func TestStatsService_ForRestaurant_ProfileNotFound(t *testing.T) {
	fxt := createTestStatsService(t)
	ctx := context.Background()
	userID := uuid.New()

	fxt.repos.restaurantRepo.On("FindByUserID", ctx, userID).Return(nil, repository.ErrProfileNotFound)

	_, err := fxt.service.ForRestaurant(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestStatsService_ForCharity_TwoPickupSample(t *testing.T) {
	fxt := createTestStatsService(t)
	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()

	fxt.repos.charityRepo.On("FindByUserID", ctx, userID).
		Return(&entity.CharityProfile{ID: profileID, UserID: userID}, nil)
	fxt.repos.pickupRepo.On("FindCompleted", ctx, (*uuid.UUID)(nil), &profileID).
		Return(twoPickupSample(), nil)

	stats, err := fxt.service.ForCharity(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalPickups)
	assert.Equal(t, 6, stats.PeopleHelped)
	assert.Equal(t, 3.5, stats.FoodSavedKg)
	require.NotNil(t, stats.AverageRating)
	assert.Equal(t, 4.0, *stats.AverageRating)
}

func TestStatsService_ForCharity_NoRatings(t *testing.T) {
	fxt := createTestStatsService(t)
	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()

	completed := []*entity.Pickup{
		{ID: uuid.New(), Status: entity.PickupStatusCompleted, Impact: &entity.PickupImpact{PeopleHelped: 3, FoodSavedKg: 1.5}},
	}

	fxt.repos.charityRepo.On("FindByUserID", ctx, userID).
		Return(&entity.CharityProfile{ID: profileID, UserID: userID}, nil)
	fxt.repos.pickupRepo.On("FindCompleted", ctx, (*uuid.UUID)(nil), &profileID).
		Return(completed, nil)

	stats, err := fxt.service.ForCharity(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalPickups)
	assert.Nil(t, stats.AverageRating)
}
