// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/kendymann/leftover-love/config"
	deliverycontext "github.com/kendymann/leftover-love/internal/delivery/context"
	"github.com/kendymann/leftover-love/internal/domain/entity"
	domainerrors "github.com/kendymann/leftover-love/internal/domain/errors"
	"github.com/kendymann/leftover-love/internal/domain/repository"
	"github.com/kendymann/leftover-love/internal/domain/service"
	"github.com/kendymann/leftover-love/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultAccessTokenTTL applies when no TTL is configured.
const defaultAccessTokenTTL = 30 * time.Minute

// tokenTypeBearer is the token_type value returned by login.
const tokenTypeBearer = "bearer"

// userService implements the UserUsecase interface.
type userService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	accessTokenTTL time.Duration
	logger         *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	accessTokenTTL := defaultAccessTokenTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.AccessTokenTTL > 0 {
		accessTokenTTL = params.Config.Auth.AccessTokenTTL
	}

	return &userService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		accessTokenTTL: accessTokenTTL,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new account with a fixed role.
func (srv *userService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.Any("role", input.Role), slog.String("email", input.Email))

	if !input.Role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "role must be restaurant or charity")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during signup", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := srv.checkIdentityAvailable(ctx, userRepo, input.Email, input.Username); err != nil {
			return err
		}

		newUser := &entity.User{
			Email:        input.Email,
			Username:     input.Username,
			PasswordHash: hashedPassword,
			Role:         input.Role,
			IsActive:     true,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during signup")
		}

		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute signup transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("role", input.Role), slog.Any("userID", registeredUser.ID))

	return &usecase.SignupOutput{User: registeredUser}, nil
}

// checkIdentityAvailable enforces email and username uniqueness before insert.
// The database unique constraints remain the last line of defense.
func (srv *userService) checkIdentityAvailable(ctx context.Context, userRepo repository.UserRepository, email, username string) error {
	if _, err := userRepo.FindByEmail(ctx, email); err == nil {
		return errors.Wrap(domainerrors.ErrEmailTaken, "email already registered")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check email availability")
	}

	if _, err := userRepo.FindByUsername(ctx, username); err == nil {
		return errors.Wrap(domainerrors.ErrUsernameTaken, "username already taken")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check username availability")
	}

	return nil
}

// Login verifies credentials and issues an access token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	loggedInUser, err := srv.loadLoginUser(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, loggedInUser.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !loggedInUser.IsActive {
		srv.log(ctx).Warn("Login rejected for inactive account", slog.Any("userID", loggedInUser.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "account is deactivated")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(loggedInUser, srv.accessTokenTTL)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.Any("userID", loggedInUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
		User:        loggedInUser,
	}, nil
}

// loadLoginUser reads the user from the primary in a short transaction to
// avoid stale reads on replicas right after signup.
func (srv *userService) loadLoginUser(ctx context.Context, email string) (*entity.User, error) {
	var loggedInUser *entity.User

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		var findErr error
		loggedInUser, findErr = userRepo.FindByEmail(ctx, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findErr, "failed to find user by email")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	return loggedInUser, nil
}

// GetMe resolves the current user from a verified token subject.
func (srv *userService) GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// The token subject no longer exists, e.g. account deleted after issuance.
			return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// UpdateAccount applies a partial patch to the account's email and username.
func (srv *userService) UpdateAccount(ctx context.Context, userID uuid.UUID, input *usecase.UpdateAccountInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating account", slog.Any("userID", userID))

	var updatedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "account not found")
			}

			return errors.Wrap(err, "failed to find user by id")
		}

		if input.Email != nil && *input.Email != user.Email {
			if _, err := userRepo.FindByEmail(ctx, *input.Email); err == nil {
				return errors.Wrap(domainerrors.ErrEmailTaken, "email already registered")
			} else if !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to check email availability")
			}
			user.Email = *input.Email
		}

		if input.Username != nil && *input.Username != user.Username {
			if _, err := userRepo.FindByUsername(ctx, *input.Username); err == nil {
				return errors.Wrap(domainerrors.ErrUsernameTaken, "username already taken")
			} else if !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to check username availability")
			}
			user.Username = *input.Username
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user account")
		}

		updatedUser = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute account update transaction", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute account update transaction")
	}

	return updatedUser, nil
}

// ChangePassword verifies the current password and stores a new hash.
func (srv *userService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Changing password", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "account not found")
		}

		return errors.Wrap(err, "failed to find user by id")
	}

	// bcrypt verification and hashing stay outside the transaction.
	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Password change rejected", slog.Any("userID", userID))

		return errors.Wrap(domainerrors.ErrInvalidCredentials, "current password is incorrect")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return errors.Wrap(err, "new password does not meet security requirements")
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to reload user for password change")
		}
		user.PasswordHash = newHash

		return errors.Wrap(userRepo.Update(ctx, user), "failed to store new password hash")
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute password change transaction", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password change transaction")
	}

	srv.log(ctx).Debug("Password changed", slog.Any("userID", userID))

	return nil
}

// DeleteAccount removes the account together with its role profile. The
// account's marketplace footprint goes in the same transaction: open pickups
// are cancelled and a restaurant's listings are removed, so nothing stays
// visible or bookable against a profile that no longer exists.
func (srv *userService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Deleting account", slog.Any("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "account not found")
			}

			return errors.Wrap(err, "failed to find user by id")
		}

		if err := srv.releaseAccountHoldings(ctx, repoFactory, user); err != nil {
			return err
		}

		return errors.Wrap(userRepo.Delete(ctx, userID), "failed to delete user")
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute account deletion transaction", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute account deletion transaction")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("userID", userID))

	return nil
}

// releaseAccountHoldings unwinds what the account holds on the market before
// its row is deleted.
func (srv *userService) releaseAccountHoldings(ctx context.Context, repoFactory repository.RepositoryFactory, user *entity.User) error {
	switch {
	case user.RestaurantProfile != nil:
		return srv.retireRestaurantHoldings(ctx, repoFactory, user.RestaurantProfile.ID)
	case user.CharityProfile != nil:
		return srv.retireCharityHoldings(ctx, repoFactory, user.CharityProfile.ID)
	}

	return nil
}

// retireRestaurantHoldings cancels the restaurant's scheduled pickups and
// deletes its listings. Completed and cancelled pickups stay as history.
func (srv *userService) retireRestaurantHoldings(ctx context.Context, repoFactory repository.RepositoryFactory, profileID uuid.UUID) error {
	pickupRepo := repoFactory.PickupRepo()

	pickups, err := pickupRepo.FindByRestaurantID(ctx, profileID)
	if err != nil {
		return errors.Wrap(err, "failed to list restaurant pickups for deletion")
	}

	for _, pickup := range pickups {
		if pickup.Status != entity.PickupStatusScheduled {
			continue
		}

		pickup.Status = entity.PickupStatusCancelled
		if err := pickupRepo.Update(ctx, pickup); err != nil {
			return errors.Wrap(err, "failed to cancel pickup of deleted restaurant")
		}
	}

	if err := repoFactory.FoodItemRepo().DeleteByRestaurantID(ctx, profileID); err != nil {
		return errors.Wrap(err, "failed to delete listings of deleted restaurant")
	}

	return nil
}

// retireCharityHoldings cancels the charity's scheduled pickups and puts the
// reserved items back on the market, since no one is coming to collect them.
func (srv *userService) retireCharityHoldings(ctx context.Context, repoFactory repository.RepositoryFactory, profileID uuid.UUID) error {
	pickupRepo := repoFactory.PickupRepo()
	foodItemRepo := repoFactory.FoodItemRepo()

	pickups, err := pickupRepo.FindByCharityID(ctx, profileID)
	if err != nil {
		return errors.Wrap(err, "failed to list charity pickups for deletion")
	}

	for _, pickup := range pickups {
		if pickup.Status != entity.PickupStatusScheduled {
			continue
		}

		pickup.Status = entity.PickupStatusCancelled
		if err := pickupRepo.Update(ctx, pickup); err != nil {
			return errors.Wrap(err, "failed to cancel pickup of deleted charity")
		}

		item, err := foodItemRepo.FindByID(ctx, pickup.FoodItemID)
		if err != nil {
			if errors.Is(err, repository.ErrFoodItemNotFound) {
				continue
			}

			return errors.Wrap(err, "failed to find reserved item for release")
		}

		item.Status = entity.FoodStatusAvailable
		if err := foodItemRepo.Update(ctx, item); err != nil {
			return errors.Wrap(err, "failed to release reserved item of deleted charity")
		}
	}

	return nil
}
