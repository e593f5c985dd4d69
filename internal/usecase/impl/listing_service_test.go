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

type listingServiceFixtures struct {
	service usecase.ListingUsecase
	repos   *repoFixtures
}

func createTestListingService(t *testing.T) listingServiceFixtures {
	repos := newRepoFixtures(t)

	service := NewListingService(ListingServiceParams{
		TxManager:      newStubTxManager(repos),
		FoodItemRepo:   repos.foodItemRepo,
		RestaurantRepo: repos.restaurantRepo,
		Logger:         newDiscardLogger(),
	})

	return listingServiceFixtures{service: service, repos: repos}
}

func TestListingService_ListAvailable(t *testing.T) {
	fxt := createTestListingService(t)
	ctx := context.Background()

	items := []*entity.FoodItem{
		{ID: uuid.New(), Name: "Bread", Status: entity.FoodStatusAvailable},
		{ID: uuid.New(), Name: "Soup", Status: entity.FoodStatusAvailable},
	}

	fxt.repos.foodItemRepo.On("FindByStatus", ctx, entity.FoodStatusAvailable).Return(items, nil)

	got, err := fxt.service.ListAvailable(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListingService_Create_Success(t *testing.T) {
	fxt := createTestListingService(t)
	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()

	fxt.repos.restaurantRepo.On("FindByUserID", ctx, userID).
		Return(&entity.RestaurantProfile{ID: profileID, UserID: userID}, nil)
	fxt.repos.foodItemRepo.On("Create", ctx, mock.AnythingOfType("*entity.FoodItem")).
		Run(func(args mock.Arguments) {
			item := args.Get(1).(*entity.FoodItem)
			item.ID = uuid.New()
		}).
		Return(nil)

	item, err := fxt.service.Create(ctx, userID, &usecase.CreateListingInput{
		Name:       "Day-old pastries",
		Quantity:   3,
		Unit:       "kg",
		ExpiryDate: time.Now().Add(24 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, profileID, item.RestaurantID)
	assert.Equal(t, entity.FoodStatusAvailable, item.Status)
}

func TestListingService_Create_ProfileRequired(t *testing.T) {
	fxt := createTestListingService(t)
	ctx := context.Background()
	userID := uuid.New()

	fxt.repos.restaurantRepo.On("FindByUserID", ctx, userID).Return(nil, repository.ErrProfileNotFound)

	_, err := fxt.service.Create(ctx, userID, &usecase.CreateListingInput{Name: "Bread"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileRequired))
}

func TestListingService_Update_NonOwnerForbidden(t *testing.T) {
	fxt := createTestListingService(t)
	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fxt.repos.restaurantRepo.On("FindByUserID", ctx, userID).
		Return(&entity.RestaurantProfile{ID: uuid.New(), UserID: userID}, nil)
	fxt.repos.foodItemRepo.On("FindByID", ctx, itemID).
		Return(&entity.FoodItem{ID: itemID, RestaurantID: uuid.New()}, nil)

	name := "Hijacked"
	_, err := fxt.service.Update(ctx, userID, itemID, &usecase.UpdateListingInput{Name: &name})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestListingService_Update_PartialPatch(t *testing.T) {
	fxt := createTestListingService(t)
	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()

	item := &entity.FoodItem{
		ID:           uuid.New(),
		RestaurantID: profileID,
		Name:         "Soup",
		Quantity:     5,
		Unit:         "l",
		Status:       entity.FoodStatusAvailable,
	}

	fxt.repos.restaurantRepo.On("FindByUserID", ctx, userID).
		Return(&entity.RestaurantProfile{ID: profileID, UserID: userID}, nil)
	fxt.repos.foodItemRepo.On("FindByID", ctx, item.ID).Return(item, nil)
	fxt.repos.foodItemRepo.On("Update", ctx, item).Return(nil)

	newQuantity := 2.5
	updated, err := fxt.service.Update(ctx, userID, item.ID, &usecase.UpdateListingInput{Quantity: &newQuantity})

	require.NoError(t, err)
	assert.Equal(t, 2.5, updated.Quantity)
	// Omitted fields must survive the patch untouched.
	assert.Equal(t, "Soup", updated.Name)
	assert.Equal(t, "l", updated.Unit)
}

func TestListingService_Update_NotFound(t *testing.T) {
	fxt := createTestListingService(t)
	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fxt.repos.restaurantRepo.On("FindByUserID", ctx, userID).
		Return(&entity.RestaurantProfile{ID: uuid.New(), UserID: userID}, nil)
	fxt.repos.foodItemRepo.On("FindByID", ctx, itemID).Return(nil, repository.ErrFoodItemNotFound)

	name := "Ghost"
	_, err := fxt.service.Update(ctx, userID, itemID, &usecase.UpdateListingInput{Name: &name})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFoodItemNotFound))
}

func TestListingService_Delete_OpenPickupConflict(t *testing.T) {
	fxt := createTestListingService(t)
	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()
	itemID := uuid.New()

	fxt.repos.restaurantRepo.On("FindByUserID", ctx, userID).
		Return(&entity.RestaurantProfile{ID: profileID, UserID: userID}, nil)
	fxt.repos.foodItemRepo.On("FindByID", ctx, itemID).
		Return(&entity.FoodItem{ID: itemID, RestaurantID: profileID, Status: entity.FoodStatusReserved}, nil)
	fxt.repos.pickupRepo.On("FindByFoodItemID", ctx, itemID).
		Return([]*entity.Pickup{{ID: uuid.New(), FoodItemID: itemID, Status: entity.PickupStatusScheduled}}, nil)

	err := fxt.service.Delete(ctx, userID, itemID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOpenPickupExists))
}

func TestListingService_Delete_Success(t *testing.T) {
	fxt := createTestListingService(t)
	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()
	itemID := uuid.New()

	fxt.repos.restaurantRepo.On("FindByUserID", ctx, userID).
		Return(&entity.RestaurantProfile{ID: profileID, UserID: userID}, nil)
	fxt.repos.foodItemRepo.On("FindByID", ctx, itemID).
		Return(&entity.FoodItem{ID: itemID, RestaurantID: profileID, Status: entity.FoodStatusAvailable}, nil)
	fxt.repos.pickupRepo.On("FindByFoodItemID", ctx, itemID).
		Return([]*entity.Pickup{{ID: uuid.New(), FoodItemID: itemID, Status: entity.PickupStatusCancelled}}, nil)
	fxt.repos.foodItemRepo.On("Delete", ctx, itemID).Return(nil)

	require.NoError(t, fxt.service.Delete(ctx, userID, itemID))
}
