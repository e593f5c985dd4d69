package impl

import (
	"context"
	"testing"
	"time"

	"github.com/kendymann/leftover-love/internal/domain/entity"
	domainerrors "github.com/kendymann/leftover-love/internal/domain/errors"
	"github.com/kendymann/leftover-love/internal/domain/repository"
	mockSvc "github.com/kendymann/leftover-love/internal/mocks/service"
	"github.com/kendymann/leftover-love/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	repos        *repoFixtures
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	repos := newRepoFixtures(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    newStubTxManager(repos),
		UserRepo:     repos.userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		repos:        repos,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Signup_Success(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.SignupInput{
		Email:    "bistro@example.com",
		Username: "corner-bistro",
		Password: "Password123!",
		Role:     entity.RoleRestaurant,
	}

	fxt.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
	fxt.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	fxt.repos.userRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fxt.repos.userRepo.On("FindByUsername", ctx, input.Username).Return(nil, repository.ErrUserNotFound)
	fxt.repos.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fxt.service.Signup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.Equal(t, entity.RoleRestaurant, output.User.Role)
	assert.True(t, output.User.IsActive)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_Signup_EmailTaken(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.SignupInput{
		Email:    "taken@example.com",
		Username: "newcomer",
		Password: "Password123!",
		Role:     entity.RoleCharity,
	}

	fxt.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
	fxt.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fxt.repos.userRepo.On("FindByEmail", ctx, input.Email).Return(&entity.User{ID: uuid.New()}, nil)

	output, err := fxt.service.Signup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestUserService_Signup_UsernameTaken(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.SignupInput{
		Email:    "fresh@example.com",
		Username: "taken-handle",
		Password: "Password123!",
		Role:     entity.RoleCharity,
	}

	fxt.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
	fxt.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fxt.repos.userRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fxt.repos.userRepo.On("FindByUsername", ctx, input.Username).Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fxt.service.Signup(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestUserService_Signup_InvalidRole(t *testing.T) {
	fxt := createTestUserService(t)

	input := &usecase.SignupInput{
		Email:    "who@example.com",
		Username: "who",
		Password: "Password123!",
		Role:     entity.Role("admin"),
	}

	_, err := fxt.service.Signup(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Signup_WeakPassword(t *testing.T) {
	fxt := createTestUserService(t)

	input := &usecase.SignupInput{
		Email:    "weak@example.com",
		Username: "weak",
		Password: "short",
		Role:     entity.RoleRestaurant,
	}

	fxt.hasher.On("ValidatePasswordStrength", input.Password).
		Return(errors.Wrap(domainerrors.ErrPasswordStrength, "too short"))

	_, err := fxt.service.Signup(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestUserService_Login_Success(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "bistro@example.com",
		Username:     "corner-bistro",
		PasswordHash: "hashed_password",
		Role:         entity.RoleRestaurant,
		IsActive:     true,
	}

	fxt.repos.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fxt.hasher.On("Check", "Password123!", user.PasswordHash).Return(true)
	fxt.tokenService.On("GenerateAccessToken", user, 30*time.Minute).Return("signed.jwt.token", nil)

	output, err := fxt.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "bistro@example.com",
		PasswordHash: "hashed_password",
		IsActive:     true,
	}

	fxt.repos.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fxt.hasher.On("Check", "wrong", user.PasswordHash).Return(false)

	_, err := fxt.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()

	fxt.repos.userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fxt.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_InactiveAccount(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "gone@example.com",
		PasswordHash: "hashed_password",
		IsActive:     false,
	}

	fxt.repos.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fxt.hasher.On("Check", "Password123!", user.PasswordHash).Return(true)

	_, err := fxt.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_GetMe_SubjectGone(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fxt.repos.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fxt.service.GetMe(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestUserService_UpdateAccount_PartialPatch(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:       uuid.New(),
		Email:    "old@example.com",
		Username: "old-handle",
		IsActive: true,
	}

	newUsername := "new-handle"

	fxt.repos.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	fxt.repos.userRepo.On("FindByUsername", ctx, newUsername).Return(nil, repository.ErrUserNotFound)
	fxt.repos.userRepo.On("Update", ctx, user).Return(nil)

	updated, err := fxt.service.UpdateAccount(ctx, user.ID, &usecase.UpdateAccountInput{Username: &newUsername})

	require.NoError(t, err)
	assert.Equal(t, newUsername, updated.Username)
	// The omitted email must survive the patch untouched.
	assert.Equal(t, "old@example.com", updated.Email)
}

func TestUserService_UpdateAccount_EmailTaken(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "old@example.com", Username: "handle"}
	takenEmail := "taken@example.com"

	fxt.repos.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	fxt.repos.userRepo.On("FindByEmail", ctx, takenEmail).Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fxt.service.UpdateAccount(ctx, user.ID, &usecase.UpdateAccountInput{Email: &takenEmail})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestUserService_ChangePassword_WrongCurrent(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), PasswordHash: "hashed_password"}

	fxt.repos.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	fxt.hasher.On("Check", "wrong", user.PasswordHash).Return(false)

	err := fxt.service.ChangePassword(ctx, user.ID, &usecase.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "NewPassword123!",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_ChangePassword_Success(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), PasswordHash: "hashed_password"}

	fxt.repos.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	fxt.hasher.On("Check", "Current123!", "hashed_password").Return(true)
	fxt.hasher.On("ValidatePasswordStrength", "NewPassword123!").Return(nil)
	fxt.hasher.On("Hash", "NewPassword123!").Return("new_hash", nil)
	fxt.repos.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	err := fxt.service.ChangePassword(ctx, user.ID, &usecase.ChangePasswordInput{
		CurrentPassword: "Current123!",
		NewPassword:     "NewPassword123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "new_hash", user.PasswordHash)
}

func TestUserService_DeleteAccount_Success(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fxt.repos.userRepo.On("FindByID", ctx, userID).Return(&entity.User{ID: userID}, nil)
	fxt.repos.userRepo.On("Delete", ctx, userID).Return(nil)

	require.NoError(t, fxt.service.DeleteAccount(ctx, userID))
}

func TestUserService_DeleteAccount_RestaurantRemovesListings(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()
	profileID := uuid.New()

	user := &entity.User{
		ID:                uuid.New(),
		Role:              entity.RoleRestaurant,
		RestaurantProfile: &entity.RestaurantProfile{ID: profileID},
	}

	scheduled := &entity.Pickup{
		ID:           uuid.New(),
		FoodItemID:   uuid.New(),
		RestaurantID: profileID,
		CharityID:    uuid.New(),
		Status:       entity.PickupStatusScheduled,
	}
	completed := &entity.Pickup{
		ID:           uuid.New(),
		RestaurantID: profileID,
		Status:       entity.PickupStatusCompleted,
	}

	fxt.repos.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	fxt.repos.pickupRepo.On("FindByRestaurantID", ctx, profileID).
		Return([]*entity.Pickup{scheduled, completed}, nil)
	fxt.repos.pickupRepo.On("Update", ctx, scheduled).Return(nil)
	// The listings must go in the same transaction, or orphaned available
	// items would stay bookable against the dead profile.
	fxt.repos.foodItemRepo.On("DeleteByRestaurantID", ctx, profileID).Return(nil)
	fxt.repos.userRepo.On("Delete", ctx, user.ID).Return(nil)

	require.NoError(t, fxt.service.DeleteAccount(ctx, user.ID))
	assert.Equal(t, entity.PickupStatusCancelled, scheduled.Status)
	// Finished history is left alone.
	assert.Equal(t, entity.PickupStatusCompleted, completed.Status)
}

func TestUserService_DeleteAccount_CharityReleasesReservedItems(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()
	profileID := uuid.New()

	user := &entity.User{
		ID:             uuid.New(),
		Role:           entity.RoleCharity,
		CharityProfile: &entity.CharityProfile{ID: profileID},
	}

	item := &entity.FoodItem{ID: uuid.New(), Status: entity.FoodStatusReserved}
	scheduled := &entity.Pickup{
		ID:           uuid.New(),
		FoodItemID:   item.ID,
		RestaurantID: uuid.New(),
		CharityID:    profileID,
		Status:       entity.PickupStatusScheduled,
	}

	fxt.repos.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	fxt.repos.pickupRepo.On("FindByCharityID", ctx, profileID).
		Return([]*entity.Pickup{scheduled}, nil)
	fxt.repos.pickupRepo.On("Update", ctx, scheduled).Return(nil)
	fxt.repos.foodItemRepo.On("FindByID", ctx, item.ID).Return(item, nil)
	fxt.repos.foodItemRepo.On("Update", ctx, item).Return(nil)
	fxt.repos.userRepo.On("Delete", ctx, user.ID).Return(nil)

	require.NoError(t, fxt.service.DeleteAccount(ctx, user.ID))
	assert.Equal(t, entity.PickupStatusCancelled, scheduled.Status)
	// Nobody is coming to collect the item, so it goes back on the market.
	assert.Equal(t, entity.FoodStatusAvailable, item.Status)
}

func TestUserService_DeleteAccount_NotFound(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fxt.repos.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	err := fxt.service.DeleteAccount(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
