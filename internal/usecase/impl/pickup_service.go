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

const (
	minPickupRating = 1.0
	maxPickupRating = 5.0
)

// pickupService implements the PickupUsecase interface.
type pickupService struct {
	txManager      repository.TransactionManager
	pickupRepo     repository.PickupRepository
	restaurantRepo repository.RestaurantRepository
	charityRepo    repository.CharityRepository
	logger         *slog.Logger
}

// PickupServiceParams holds dependencies for pickupService, injected by Fx.
type PickupServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	PickupRepo     repository.PickupRepository
	RestaurantRepo repository.RestaurantRepository
	CharityRepo    repository.CharityRepository
	Logger         *slog.Logger
}

// NewPickupService is the constructor for pickupService.
func NewPickupService(params PickupServiceParams) usecase.PickupUsecase {
	return &pickupService{
		txManager:      params.TxManager,
		pickupRepo:     params.PickupRepo,
		restaurantRepo: params.RestaurantRepo,
		charityRepo:    params.CharityRepo,
		logger:         params.Logger,
	}
}

func (srv *pickupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Schedule reserves an available listing and creates a scheduled pickup.
// The reservation is a single status-guarded write, so when two charities
// race for the same item only one of them gets it.
func (srv *pickupService) Schedule(ctx context.Context, userID uuid.UUID, listingID uuid.UUID, input *usecase.SchedulePickupInput) (*entity.Pickup, error) {
	srv.log(ctx).Info("Scheduling pickup", slog.Any("userID", userID), slog.Any("itemID", listingID))

	var created *entity.Pickup
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := repoFactory.CharityRepo().FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileRequired, "charity profile required")
			}

			return errors.Wrap(err, "failed to find charity profile")
		}

		foodItemRepo := repoFactory.FoodItemRepo()
		item, err := foodItemRepo.FindByID(ctx, listingID)
		if err != nil {
			if errors.Is(err, repository.ErrFoodItemNotFound) {
				return errors.Wrap(domainerrors.ErrFoodItemNotFound, "food item not found")
			}

			return errors.Wrap(err, "failed to find food item")
		}

		if err := foodItemRepo.Reserve(ctx, item.ID); err != nil {
			switch {
			case errors.Is(err, repository.ErrFoodItemNotAvailable):
				return errors.Wrap(domainerrors.ErrFoodItemNotAvailable, "food item is already reserved")
			case errors.Is(err, repository.ErrFoodItemNotFound):
				return errors.Wrap(domainerrors.ErrFoodItemNotFound, "food item not found")
			}

			return errors.Wrap(err, "failed to reserve food item")
		}
		item.Status = entity.FoodStatusReserved

		pickup := &entity.Pickup{
			FoodItemID:   item.ID,
			RestaurantID: item.RestaurantID,
			CharityID:    profile.ID,
			Status:       entity.PickupStatusScheduled,
			PickupTime:   input.PickupTime,
		}

		if err := repoFactory.PickupRepo().Create(ctx, pickup); err != nil {
			return errors.Wrap(err, "failed to create pickup")
		}

		created = pickup

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute pickup scheduling", slog.Any("itemID", listingID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute pickup scheduling")
	}

	srv.log(ctx).Debug("Pickup scheduled", slog.Any("pickupID", created.ID))

	return created, nil
}

// Update advances the pickup status per the state machine and/or records the
// outcome (rating and impact) of a completed pickup.
func (srv *pickupService) Update(ctx context.Context, userID uuid.UUID, pickupID uuid.UUID, input *usecase.UpdatePickupInput) (*entity.Pickup, error) {
	srv.log(ctx).Info("Updating pickup", slog.Any("userID", userID), slog.Any("pickupID", pickupID))

	var updated *entity.Pickup
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pickup, actorRole, err := srv.loadParticipantPickup(ctx, repoFactory, userID, pickupID)
		if err != nil {
			return err
		}

		if input.Status != nil && *input.Status != pickup.Status {
			if err := srv.applyTransition(ctx, repoFactory, pickup, *input.Status, actorRole); err != nil {
				return err
			}
		}

		if input.Rating != nil || input.Impact != nil {
			if err := srv.applyOutcome(pickup, actorRole, input); err != nil {
				return err
			}
		}

		if err := repoFactory.PickupRepo().Update(ctx, pickup); err != nil {
			return errors.Wrap(err, "failed to update pickup")
		}

		updated = pickup

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute pickup update", slog.Any("pickupID", pickupID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute pickup update")
	}

	return updated, nil
}

// loadParticipantPickup fetches the pickup and resolves the caller's role in
// it. Callers that are neither the pickup's restaurant nor its charity are
// rejected.
func (srv *pickupService) loadParticipantPickup(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, pickupID uuid.UUID) (*entity.Pickup, entity.Role, error) {
	pickup, err := repoFactory.PickupRepo().FindByID(ctx, pickupID)
	if err != nil {
		if errors.Is(err, repository.ErrPickupNotFound) {
			return nil, "", errors.Wrap(domainerrors.ErrPickupNotFound, "pickup not found")
		}

		return nil, "", errors.Wrap(err, "failed to find pickup")
	}

	user, err := repoFactory.UserRepo().FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", errors.Wrap(domainerrors.ErrUserNotFound, "account not found")
		}

		return nil, "", errors.Wrap(err, "failed to find user by id")
	}

	switch user.Role {
	case entity.RoleRestaurant:
		if user.RestaurantProfile != nil && user.RestaurantProfile.ID == pickup.RestaurantID {
			return pickup, entity.RoleRestaurant, nil
		}
	case entity.RoleCharity:
		if user.CharityProfile != nil && user.CharityProfile.ID == pickup.CharityID {
			return pickup, entity.RoleCharity, nil
		}
	}

	return nil, "", errors.Wrap(domainerrors.ErrForbidden, "caller is not a participant of this pickup")
}

// applyTransition moves the pickup to the target status and keeps the food
// item's availability in sync. Cancellation releases the item; completion
// keeps it reserved.
func (srv *pickupService) applyTransition(ctx context.Context, repoFactory repository.RepositoryFactory, pickup *entity.Pickup, target entity.PickupStatus, actorRole entity.Role) error {
	if !target.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown pickup status %q", target)
	}

	if !entity.TransitionAllowedForAnyActor(pickup.Status, target) {
		return errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot move pickup from %s to %s", pickup.Status, target)
	}

	if !entity.CanTransition(pickup.Status, target, actorRole) {
		return errors.Wrapf(domainerrors.ErrForbidden, "the %s role cannot move pickup from %s to %s", actorRole, pickup.Status, target)
	}

	pickup.Status = target

	if target == entity.PickupStatusCancelled {
		foodItemRepo := repoFactory.FoodItemRepo()

		item, err := foodItemRepo.FindByID(ctx, pickup.FoodItemID)
		if err != nil {
			return errors.Wrap(err, "failed to find food item for release")
		}

		item.Status = entity.FoodStatusAvailable
		if err := foodItemRepo.Update(ctx, item); err != nil {
			return errors.Wrap(err, "failed to release food item")
		}
	}

	return nil
}

// applyOutcome attaches rating and impact data. Only the charity may record
// an outcome, and only once the pickup is completed.
func (srv *pickupService) applyOutcome(pickup *entity.Pickup, actorRole entity.Role, input *usecase.UpdatePickupInput) error {
	if actorRole != entity.RoleCharity {
		return errors.Wrap(domainerrors.ErrForbidden, "only the charity can record a pickup outcome")
	}

	if pickup.Status != entity.PickupStatusCompleted {
		return errors.Wrap(domainerrors.ErrPickupNotCompleted, "pickup outcome requires a completed pickup")
	}

	if input.Rating != nil {
		if *input.Rating < minPickupRating || *input.Rating > maxPickupRating {
			return errors.Wrapf(domainerrors.ErrValidationFailed, "rating must be between %.0f and %.0f", minPickupRating, maxPickupRating)
		}
		pickup.Rating = input.Rating
	}

	if input.Impact != nil {
		if input.Impact.PeopleHelped < 0 || input.Impact.FoodSavedKg < 0 {
			return errors.Wrap(domainerrors.ErrValidationFailed, "impact values cannot be negative")
		}
		pickup.Impact = input.Impact
	}

	return nil
}

// ListForRestaurant returns pickups against the caller's listings.
func (srv *pickupService) ListForRestaurant(ctx context.Context, userID uuid.UUID) ([]*entity.Pickup, error) {
	profile, err := srv.restaurantRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileRequired, "restaurant profile required")
		}

		return nil, errors.Wrap(err, "failed to find restaurant profile")
	}

	pickups, err := srv.pickupRepo.FindByRestaurantID(ctx, profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurant pickups")
	}

	return pickups, nil
}

// ListForCharity returns pickups requested by the caller's charity.
func (srv *pickupService) ListForCharity(ctx context.Context, userID uuid.UUID) ([]*entity.Pickup, error) {
	profile, err := srv.charityRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileRequired, "charity profile required")
		}

		return nil, errors.Wrap(err, "failed to find charity profile")
	}

	pickups, err := srv.pickupRepo.FindByCharityID(ctx, profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list charity pickups")
	}

	return pickups, nil
}
