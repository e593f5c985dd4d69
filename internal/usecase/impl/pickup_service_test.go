package impl

import (
	"context"
	"testing"
	"time"

	"github.com/kendymann/leftover-love/internal/domain/entity"
	domainerrors "github.com/kendymann/leftover-love/internal/domain/errors"
	"github.com/kendymann/leftover-love/internal/domain/repository"
	"github.com/kendymann/leftover-love/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pickupServiceFixtures struct {
	service usecase.PickupUsecase
	repos   *repoFixtures
}

func createTestPickupService(t *testing.T) pickupServiceFixtures {
	repos := newRepoFixtures(t)

	service := NewPickupService(PickupServiceParams{
		TxManager:      newStubTxManager(repos),
		PickupRepo:     repos.pickupRepo,
		RestaurantRepo: repos.restaurantRepo,
		CharityRepo:    repos.charityRepo,
		Logger:         newDiscardLogger(),
	})

	return pickupServiceFixtures{service: service, repos: repos}
}

// restaurantActor wires a user whose restaurant profile owns the pickup.
func restaurantActor(pickup *entity.Pickup) *entity.User {
	return &entity.User{
		ID:   uuid.New(),
		Role: entity.RoleRestaurant,
		RestaurantProfile: &entity.RestaurantProfile{
			ID: pickup.RestaurantID,
		},
	}
}

// charityActor wires a user whose charity profile requested the pickup.
func charityActor(pickup *entity.Pickup) *entity.User {
	return &entity.User{
		ID:   uuid.New(),
		Role: entity.RoleCharity,
		CharityProfile: &entity.CharityProfile{
			ID: pickup.CharityID,
		},
	}
}

func TestPickupService_Schedule_Success(t *testing.T) {
	fxt := createTestPickupService(t)
	ctx := context.Background()
	userID := uuid.New()
	charityID := uuid.New()
	restaurantID := uuid.New()

	item := &entity.FoodItem{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Name:         "Bread",
		Status:       entity.FoodStatusAvailable,
	}

	fxt.repos.charityRepo.On("FindByUserID", ctx, userID).
		Return(&entity.CharityProfile{ID: charityID, UserID: userID}, nil)
	fxt.repos.foodItemRepo.On("FindByID", ctx, item.ID).Return(item, nil)
	fxt.repos.foodItemRepo.On("Reserve", ctx, item.ID).Return(nil)
	fxt.repos.pickupRepo.On("Create", ctx, mock.AnythingOfType("*entity.Pickup")).
		Run(func(args mock.Arguments) {
			pickup := args.Get(1).(*entity.Pickup)
			pickup.ID = uuid.New()
		}).
		Return(nil)

	pickupTime := time.Now().Add(2 * time.Hour)
	pickup, err := fxt.service.Schedule(ctx, userID, item.ID, &usecase.SchedulePickupInput{PickupTime: pickupTime})

	require.NoError(t, err)
	assert.Equal(t, entity.PickupStatusScheduled, pickup.Status)
	assert.Equal(t, charityID, pickup.CharityID)
	assert.Equal(t, restaurantID, pickup.RestaurantID)
	// Scheduling must take the item off the market atomically.
	assert.Equal(t, entity.FoodStatusReserved, item.Status)
}

func TestPickupService_Schedule_NotAvailable(t *testing.T) {
	fxt := createTestPickupService(t)
	ctx := context.Background()
	userID := uuid.New()

	item := &entity.FoodItem{ID: uuid.New(), Status: entity.FoodStatusReserved}

	fxt.repos.charityRepo.On("FindByUserID", ctx, userID).
		Return(&entity.CharityProfile{ID: uuid.New(), UserID: userID}, nil)
	fxt.repos.foodItemRepo.On("FindByID", ctx, item.ID).Return(item, nil)
	fxt.repos.foodItemRepo.On("Reserve", ctx, item.ID).Return(repository.ErrFoodItemNotAvailable)

	_, err := fxt.service.Schedule(ctx, userID, item.ID, &usecase.SchedulePickupInput{PickupTime: time.Now()})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFoodItemNotAvailable))
}

func TestPickupService_Schedule_LostRaceToConcurrentClaim(t *testing.T) {
	fxt := createTestPickupService(t)
	ctx := context.Background()
	userID := uuid.New()

	// The read still sees the item as available, but another charity's
	// reservation lands first. The guarded write decides the winner, so
	// the stale read must not produce a second pickup.
	item := &entity.FoodItem{ID: uuid.New(), RestaurantID: uuid.New(), Status: entity.FoodStatusAvailable}

	fxt.repos.charityRepo.On("FindByUserID", ctx, userID).
		Return(&entity.CharityProfile{ID: uuid.New(), UserID: userID}, nil)
	fxt.repos.foodItemRepo.On("FindByID", ctx, item.ID).Return(item, nil)
	fxt.repos.foodItemRepo.On("Reserve", ctx, item.ID).Return(repository.ErrFoodItemNotAvailable)

	_, err := fxt.service.Schedule(ctx, userID, item.ID, &usecase.SchedulePickupInput{PickupTime: time.Now()})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFoodItemNotAvailable))
	fxt.repos.pickupRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPickupService_Schedule_ProfileRequired(t *testing.T) {
	fxt := createTestPickupService(t)
	ctx := context.Background()
	userID := uuid.New()

	fxt.repos.charityRepo.On("FindByUserID", ctx, userID).Return(nil, repository.ErrProfileNotFound)

	_, err := fxt.service.Schedule(ctx, userID, uuid.New(), &usecase.SchedulePickupInput{PickupTime: time.Now()})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileRequired))
}

func TestPickupService_Update_CompleteByRestaurant(t *testing.T) {
	fxt := createTestPickupService(t)
	ctx := context.Background()

	pickup := &entity.Pickup{
		ID:           uuid.New(),
		FoodItemID:   uuid.New(),
		RestaurantID: uuid.New(),
		CharityID:    uuid.New(),
		Status:       entity.PickupStatusScheduled,
	}
	actor := restaurantActor(pickup)

	fxt.repos.pickupRepo.On("FindByID", ctx, pickup.ID).Return(pickup, nil)
	fxt.repos.userRepo.On("FindByID", ctx, actor.ID).Return(actor, nil)
	fxt.repos.pickupRepo.On("Update", ctx, pickup).Return(nil)

	target := entity.PickupStatusCompleted
	updated, err := fxt.service.Update(ctx, actor.ID, pickup.ID, &usecase.UpdatePickupInput{Status: &target})

	require.NoError(t, err)
	assert.Equal(t, entity.PickupStatusCompleted, updated.Status)
}

func TestPickupService_Update_CancelByCharityReleasesItem(t *testing.T) {
	fxt := createTestPickupService(t)
	ctx := context.Background()

	item := &entity.FoodItem{ID: uuid.New(), Status: entity.FoodStatusReserved}
	pickup := &entity.Pickup{
		ID:           uuid.New(),
		FoodItemID:   item.ID,
		RestaurantID: uuid.New(),
		CharityID:    uuid.New(),
		Status:       entity.PickupStatusScheduled,
	}
	actor := charityActor(pickup)

	fxt.repos.pickupRepo.On("FindByID", ctx, pickup.ID).Return(pickup, nil)
	fxt.repos.userRepo.On("FindByID", ctx, actor.ID).Return(actor, nil)
	fxt.repos.foodItemRepo.On("FindByID", ctx, item.ID).Return(item, nil)
	fxt.repos.foodItemRepo.On("Update", ctx, item).Return(nil)
	fxt.repos.pickupRepo.On("Update", ctx, pickup).Return(nil)

	target := entity.PickupStatusCancelled
	updated, err := fxt.service.Update(ctx, actor.ID, pickup.ID, &usecase.UpdatePickupInput{Status: &target})

	require.NoError(t, err)
	assert.Equal(t, entity.PickupStatusCancelled, updated.Status)
	// Cancellation puts the item back on the market.
	assert.Equal(t, entity.FoodStatusAvailable, item.Status)
}

func TestPickupService_Update_CompleteByCharityForbidden(t *testing.T) {
	fxt := createTestPickupService(t)
	ctx := context.Background()

	pickup := &entity.Pickup{
		ID:           uuid.New(),
		FoodItemID:   uuid.New(),
		RestaurantID: uuid.New(),
		CharityID:    uuid.New(),
		Status:       entity.PickupStatusScheduled,
	}
	actor := charityActor(pickup)

	fxt.repos.pickupRepo.On("FindByID", ctx, pickup.ID).Return(pickup, nil)
	fxt.repos.userRepo.On("FindByID", ctx, actor.ID).Return(actor, nil)

	target := entity.PickupStatusCompleted
	_, err := fxt.service.Update(ctx, actor.ID, pickup.ID, &usecase.UpdatePickupInput{Status: &target})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPickupService_Update_TerminalStateInvalidTransition(t *testing.T) {
	fxt := createTestPickupService(t)
	ctx := context.Background()

	pickup := &entity.Pickup{
		ID:           uuid.New(),
		FoodItemID:   uuid.New(),
		RestaurantID: uuid.New(),
		CharityID:    uuid.New(),
		Status:       entity.PickupStatusCancelled,
	}
	actor := restaurantActor(pickup)

	fxt.repos.pickupRepo.On("FindByID", ctx, pickup.ID).Return(pickup, nil)
	fxt.repos.userRepo.On("FindByID", ctx, actor.ID).Return(actor, nil)

	target := entity.PickupStatusCompleted
	_, err := fxt.service.Update(ctx, actor.ID, pickup.ID, &usecase.UpdatePickupInput{Status: &target})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestPickupService_Update_NonParticipantForbidden(t *testing.T) {
	fxt := createTestPickupService(t)
	ctx := context.Background()

	pickup := &entity.Pickup{
		ID:           uuid.New(),
		FoodItemID:   uuid.New(),
		RestaurantID: uuid.New(),
		CharityID:    uuid.New(),
		Status:       entity.PickupStatusScheduled,
	}

	// A charity user whose profile has nothing to do with this pickup.
	stranger := &entity.User{
		ID:             uuid.New(),
		Role:           entity.RoleCharity,
		CharityProfile: &entity.CharityProfile{ID: uuid.New()},
	}

	fxt.repos.pickupRepo.On("FindByID", ctx, pickup.ID).Return(pickup, nil)
	fxt.repos.userRepo.On("FindByID", ctx, stranger.ID).Return(stranger, nil)

	target := entity.PickupStatusCancelled
	_, err := fxt.service.Update(ctx, stranger.ID, pickup.ID, &usecase.UpdatePickupInput{Status: &target})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPickupService_Update_OutcomeByCharity(t *testing.T) {
	fxt := createTestPickupService(t)
	ctx := context.Background()

	pickup := &entity.Pickup{
		ID:           uuid.New(),
		FoodItemID:   uuid.New(),
		RestaurantID: uuid.New(),
		CharityID:    uuid.New(),
		Status:       entity.PickupStatusCompleted,
	}
	actor := charityActor(pickup)

	fxt.repos.pickupRepo.On("FindByID", ctx, pickup.ID).Return(pickup, nil)
	fxt.repos.userRepo.On("FindByID", ctx, actor.ID).Return(actor, nil)
	fxt.repos.pickupRepo.On("Update", ctx, pickup).Return(nil)

	rating := 4.5
	updated, err := fxt.service.Update(ctx, actor.ID, pickup.ID, &usecase.UpdatePickupInput{
		Rating: &rating,
		Impact: &entity.PickupImpact{PeopleHelped: 12, FoodSavedKg: 6.5},
	})

	require.NoError(t, err)
	require.NotNil(t, updated.Rating)
	assert.Equal(t, 4.5, *updated.Rating)
	require.NotNil(t, updated.Impact)
	assert.Equal(t, 12, updated.Impact.PeopleHelped)
}

func TestPickupService_Update_OutcomeOnScheduledRejected(t *testing.T) {
	fxt := createTestPickupService(t)
	ctx := context.Background()

	pickup := &entity.Pickup{
		ID:           uuid.New(),
		FoodItemID:   uuid.New(),
		RestaurantID: uuid.New(),
		CharityID:    uuid.New(),
		Status:       entity.PickupStatusScheduled,
	}
	actor := charityActor(pickup)

	fxt.repos.pickupRepo.On("FindByID", ctx, pickup.ID).Return(pickup, nil)
	fxt.repos.userRepo.On("FindByID", ctx, actor.ID).Return(actor, nil)

	rating := 5.0
	_, err := fxt.service.Update(ctx, actor.ID, pickup.ID, &usecase.UpdatePickupInput{Rating: &rating})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPickupNotCompleted))
}

func TestPickupService_Update_OutcomeByRestaurantForbidden(t *testing.T) {
	fxt := createTestPickupService(t)
	ctx := context.Background()

	pickup := &entity.Pickup{
		ID:           uuid.New(),
		FoodItemID:   uuid.New(),
		RestaurantID: uuid.New(),
		CharityID:    uuid.New(),
		Status:       entity.PickupStatusCompleted,
	}
	actor := restaurantActor(pickup)

	fxt.repos.pickupRepo.On("FindByID", ctx, pickup.ID).Return(pickup, nil)
	fxt.repos.userRepo.On("FindByID", ctx, actor.ID).Return(actor, nil)

	rating := 5.0
	_, err := fxt.service.Update(ctx, actor.ID, pickup.ID, &usecase.UpdatePickupInput{Rating: &rating})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPickupService_Update_RatingOutOfRange(t *testing.T) {
	fxt := createTestPickupService(t)
	ctx := context.Background()

	pickup := &entity.Pickup{
		ID:           uuid.New(),
		FoodItemID:   uuid.New(),
		RestaurantID: uuid.New(),
		CharityID:    uuid.New(),
		Status:       entity.PickupStatusCompleted,
	}
	actor := charityActor(pickup)

	fxt.repos.pickupRepo.On("FindByID", ctx, pickup.ID).Return(pickup, nil)
	fxt.repos.userRepo.On("FindByID", ctx, actor.ID).Return(actor, nil)

	rating := 6.0
	_, err := fxt.service.Update(ctx, actor.ID, pickup.ID, &usecase.UpdatePickupInput{Rating: &rating})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPickupService_ListForCharity(t *testing.T) {
	fxt := createTestPickupService(t)
	ctx := context.Background()
	userID := uuid.New()
	charityID := uuid.New()

	fxt.repos.charityRepo.On("FindByUserID", ctx, userID).
		Return(&entity.CharityProfile{ID: charityID, UserID: userID}, nil)
	fxt.repos.pickupRepo.On("FindByCharityID", ctx, charityID).
		Return([]*entity.Pickup{{ID: uuid.New(), CharityID: charityID}}, nil)

	pickups, err := fxt.service.ListForCharity(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, pickups, 1)
}
