package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/kendymann/leftover-love/internal/delivery/context"
	"github.com/kendymann/leftover-love/internal/domain/entity"
	domainerrors "github.com/kendymann/leftover-love/internal/domain/errors"
	"github.com/kendymann/leftover-love/internal/domain/repository"
	"github.com/kendymann/leftover-love/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager      repository.TransactionManager
	restaurantRepo repository.RestaurantRepository
	charityRepo    repository.CharityRepository
	logger         *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	RestaurantRepo repository.RestaurantRepository
	CharityRepo    repository.CharityRepository
	Logger         *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:      params.TxManager,
		restaurantRepo: params.RestaurantRepo,
		charityRepo:    params.CharityRepo,
		logger:         params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireRole loads the user inside the transaction and checks its role
// matches the profile kind being touched.
func requireRole(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, role entity.Role) (*entity.User, error) {
	user, err := repoFactory.UserRepo().FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	if user.Role != role {
		return nil, errors.Wrapf(domainerrors.ErrForbidden, "operation requires the %s role", role)
	}

	return user, nil
}

// CreateRestaurantProfile creates the 1:1 restaurant profile for the account.
func (srv *profileService) CreateRestaurantProfile(ctx context.Context, userID uuid.UUID, input *usecase.CreateProfileInput) (*entity.RestaurantProfile, error) {
	srv.log(ctx).Info("Creating restaurant profile", slog.Any("userID", userID))

	var created *entity.RestaurantProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireRole(ctx, repoFactory, userID, entity.RoleRestaurant); err != nil {
			return err
		}

		restaurantRepo := repoFactory.RestaurantRepo()
		if _, err := restaurantRepo.FindByUserID(ctx, userID); err == nil {
			return errors.Wrap(domainerrors.ErrProfileExists, "restaurant profile already exists")
		} else if !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to check existing restaurant profile")
		}

		profile := &entity.RestaurantProfile{
			UserID:      userID,
			Name:        input.Name,
			Address:     input.Address,
			Phone:       input.Phone,
			Email:       input.Email,
			Description: input.Description,
		}

		if err := restaurantRepo.Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create restaurant profile")
		}

		created = profile

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute restaurant profile creation", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute restaurant profile creation")
	}

	return created, nil
}

// GetRestaurantProfile fetches the caller's restaurant profile.
func (srv *profileService) GetRestaurantProfile(ctx context.Context, userID uuid.UUID) (*entity.RestaurantProfile, error) {
	profile, err := srv.restaurantRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "restaurant profile not found")
		}

		return nil, errors.Wrap(err, "failed to find restaurant profile")
	}

	return profile, nil
}

// UpdateRestaurantProfile applies a partial patch to the caller's restaurant profile.
func (srv *profileService) UpdateRestaurantProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.RestaurantProfile, error) {
	srv.log(ctx).Info("Updating restaurant profile", slog.Any("userID", userID))

	var updated *entity.RestaurantProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		restaurantRepo := repoFactory.RestaurantRepo()

		profile, err := restaurantRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "restaurant profile not found")
			}

			return errors.Wrap(err, "failed to find restaurant profile")
		}

		input.Patch().ApplyToRestaurant(profile)

		if err := restaurantRepo.Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update restaurant profile")
		}

		updated = profile

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute restaurant profile update", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute restaurant profile update")
	}

	return updated, nil
}

// CreateCharityProfile creates the 1:1 charity profile for the account.
func (srv *profileService) CreateCharityProfile(ctx context.Context, userID uuid.UUID, input *usecase.CreateProfileInput) (*entity.CharityProfile, error) {
	srv.log(ctx).Info("Creating charity profile", slog.Any("userID", userID))

	var created *entity.CharityProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireRole(ctx, repoFactory, userID, entity.RoleCharity); err != nil {
			return err
		}

		charityRepo := repoFactory.CharityRepo()
		if _, err := charityRepo.FindByUserID(ctx, userID); err == nil {
			return errors.Wrap(domainerrors.ErrProfileExists, "charity profile already exists")
		} else if !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to check existing charity profile")
		}

		profile := &entity.CharityProfile{
			UserID:      userID,
			Name:        input.Name,
			Address:     input.Address,
			Phone:       input.Phone,
			Email:       input.Email,
			Description: input.Description,
		}

		if err := charityRepo.Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create charity profile")
		}

		created = profile

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute charity profile creation", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute charity profile creation")
	}

	return created, nil
}

// GetCharityProfile fetches the caller's charity profile.
func (srv *profileService) GetCharityProfile(ctx context.Context, userID uuid.UUID) (*entity.CharityProfile, error) {
	profile, err := srv.charityRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "charity profile not found")
		}

		return nil, errors.Wrap(err, "failed to find charity profile")
	}

	return profile, nil
}

// UpdateCharityProfile applies a partial patch to the caller's charity profile.
func (srv *profileService) UpdateCharityProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.CharityProfile, error) {
	srv.log(ctx).Info("Updating charity profile", slog.Any("userID", userID))

	var updated *entity.CharityProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		charityRepo := repoFactory.CharityRepo()

		profile, err := charityRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "charity profile not found")
			}

			return errors.Wrap(err, "failed to find charity profile")
		}

		input.Patch().ApplyToCharity(profile)

		if err := charityRepo.Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update charity profile")
		}

		updated = profile

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute charity profile update", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute charity profile update")
	}

	return updated, nil
}
