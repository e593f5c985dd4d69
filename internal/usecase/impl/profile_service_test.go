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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service usecase.ProfileUsecase
	repos   *repoFixtures
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	repos := newRepoFixtures(t)

	service := NewProfileService(ProfileServiceParams{
		TxManager:      newStubTxManager(repos),
		RestaurantRepo: repos.restaurantRepo,
		CharityRepo:    repos.charityRepo,
		Logger:         newDiscardLogger(),
	})

	return profileServiceFixtures{service: service, repos: repos}
}

func TestProfileService_CreateRestaurantProfile_Success(t *testing.T) {
	fxt := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fxt.repos.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleRestaurant}, nil)
	fxt.repos.restaurantRepo.On("FindByUserID", ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fxt.repos.restaurantRepo.On("Create", ctx, mock.AnythingOfType("*entity.RestaurantProfile")).
		Run(func(args mock.Arguments) {
			profile := args.Get(1).(*entity.RestaurantProfile)
			profile.ID = uuid.New()
		}).
		Return(nil)

	profile, err := fxt.service.CreateRestaurantProfile(ctx, userID, &usecase.CreateProfileInput{
		Name:    "Corner Bistro",
		Address: "12 Main St",
		Phone:   "555-0101",
		Email:   "contact@bistro.example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, "Corner Bistro", profile.Name)
	assert.NotEqual(t, uuid.Nil, profile.ID)
}

func TestProfileService_CreateRestaurantProfile_WrongRole(t *testing.T) {
	fxt := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fxt.repos.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleCharity}, nil)

	_, err := fxt.service.CreateRestaurantProfile(ctx, userID, &usecase.CreateProfileInput{Name: "Nope"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestProfileService_CreateRestaurantProfile_AlreadyExists(t *testing.T) {
	fxt := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fxt.repos.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleRestaurant}, nil)
	fxt.repos.restaurantRepo.On("FindByUserID", ctx, userID).
		Return(&entity.RestaurantProfile{ID: uuid.New(), UserID: userID}, nil)

	_, err := fxt.service.CreateRestaurantProfile(ctx, userID, &usecase.CreateProfileInput{Name: "Again"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileExists))
}

func TestProfileService_GetRestaurantProfile_NotFound(t *testing.T) {
	fxt := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fxt.repos.restaurantRepo.On("FindByUserID", ctx, userID).Return(nil, repository.ErrProfileNotFound)

	_, err := fxt.service.GetRestaurantProfile(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_UpdateRestaurantProfile_PartialPatch(t *testing.T) {
	fxt := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	profile := &entity.RestaurantProfile{
		ID:      uuid.New(),
		UserID:  userID,
		Name:    "Corner Bistro",
		Address: "12 Main St",
		Phone:   "555-0101",
	}

	newPhone := "555-0202"

	fxt.repos.restaurantRepo.On("FindByUserID", ctx, userID).Return(profile, nil)
	fxt.repos.restaurantRepo.On("Update", ctx, profile).Return(nil)

	updated, err := fxt.service.UpdateRestaurantProfile(ctx, userID, &usecase.UpdateProfileInput{Phone: &newPhone})

	require.NoError(t, err)
	assert.Equal(t, newPhone, updated.Phone)
	// Omitted fields must survive the patch untouched.
	assert.Equal(t, "Corner Bistro", updated.Name)
	assert.Equal(t, "12 Main St", updated.Address)
}

func TestProfileService_CreateCharityProfile_Success(t *testing.T) {
	fxt := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fxt.repos.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleCharity}, nil)
	fxt.repos.charityRepo.On("FindByUserID", ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fxt.repos.charityRepo.On("Create", ctx, mock.AnythingOfType("*entity.CharityProfile")).
		Run(func(args mock.Arguments) {
			profile := args.Get(1).(*entity.CharityProfile)
			profile.ID = uuid.New()
		}).
		Return(nil)

	profile, err := fxt.service.CreateCharityProfile(ctx, userID, &usecase.CreateProfileInput{
		Name:    "Open Hands Shelter",
		Address: "9 River Rd",
	})

	require.NoError(t, err)
	assert.Equal(t, "Open Hands Shelter", profile.Name)
	assert.Equal(t, userID, profile.UserID)
}

func TestProfileService_UpdateCharityProfile_NotFound(t *testing.T) {
	fxt := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	name := "Renamed"

	fxt.repos.charityRepo.On("FindByUserID", ctx, userID).Return(nil, repository.ErrProfileNotFound)

	_, err := fxt.service.UpdateCharityProfile(ctx, userID, &usecase.UpdateProfileInput{Name: &name})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}
