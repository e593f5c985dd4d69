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

// listingService implements the ListingUsecase interface.
type listingService struct {
	txManager      repository.TransactionManager
	foodItemRepo   repository.FoodItemRepository
	restaurantRepo repository.RestaurantRepository
	logger         *slog.Logger
}

// ListingServiceParams holds dependencies for listingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	FoodItemRepo   repository.FoodItemRepository
	RestaurantRepo repository.RestaurantRepository
	Logger         *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	return &listingService{
		txManager:      params.TxManager,
		foodItemRepo:   params.FoodItemRepo,
		restaurantRepo: params.RestaurantRepo,
		logger:         params.Logger,
	}
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAvailable returns every listing still open for pickup. Public.
func (srv *listingService) ListAvailable(ctx context.Context) ([]*entity.FoodItem, error) {
	items, err := srv.foodItemRepo.FindByStatus(ctx, entity.FoodStatusAvailable)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list available food items")
	}

	return items, nil
}

// ListMine returns the listings owned by the caller's restaurant profile.
func (srv *listingService) ListMine(ctx context.Context, userID uuid.UUID) ([]*entity.FoodItem, error) {
	profile, err := srv.requireRestaurantProfile(ctx, srv.restaurantRepo, userID)
	if err != nil {
		return nil, err
	}

	items, err := srv.foodItemRepo.FindByRestaurantID(ctx, profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurant food items")
	}

	return items, nil
}

// Create publishes a new available listing under the caller's restaurant profile.
func (srv *listingService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateListingInput) (*entity.FoodItem, error) {
	srv.log(ctx).Info("Creating food listing", slog.Any("userID", userID), slog.String("name", input.Name))

	var created *entity.FoodItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := srv.requireRestaurantProfile(ctx, repoFactory.RestaurantRepo(), userID)
		if err != nil {
			return err
		}

		item := &entity.FoodItem{
			RestaurantID: profile.ID,
			Name:         input.Name,
			Quantity:     input.Quantity,
			Unit:         input.Unit,
			ExpiryDate:   input.ExpiryDate,
			Description:  input.Description,
			Status:       entity.FoodStatusAvailable,
		}

		if err := repoFactory.FoodItemRepo().Create(ctx, item); err != nil {
			return errors.Wrap(err, "failed to create food item")
		}

		created = item

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute listing creation", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute listing creation")
	}

	srv.log(ctx).Debug("Food listing created", slog.Any("itemID", created.ID))

	return created, nil
}

// Update applies a partial patch to a listing the caller owns.
func (srv *listingService) Update(ctx context.Context, userID uuid.UUID, listingID uuid.UUID, input *usecase.UpdateListingInput) (*entity.FoodItem, error) {
	srv.log(ctx).Info("Updating food listing", slog.Any("userID", userID), slog.Any("itemID", listingID))

	var updated *entity.FoodItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		item, err := srv.loadOwnedItem(ctx, repoFactory, userID, listingID)
		if err != nil {
			return err
		}

		input.Patch().Apply(item)

		if err := repoFactory.FoodItemRepo().Update(ctx, item); err != nil {
			return errors.Wrap(err, "failed to update food item")
		}

		updated = item

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute listing update", slog.Any("itemID", listingID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute listing update")
	}

	return updated, nil
}

// Delete removes a listing the caller owns unless a scheduled pickup still
// references it.
func (srv *listingService) Delete(ctx context.Context, userID uuid.UUID, listingID uuid.UUID) error {
	srv.log(ctx).Info("Deleting food listing", slog.Any("userID", userID), slog.Any("itemID", listingID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		item, err := srv.loadOwnedItem(ctx, repoFactory, userID, listingID)
		if err != nil {
			return err
		}

		pickups, err := repoFactory.PickupRepo().FindByFoodItemID(ctx, item.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check pickups for food item")
		}
		for _, pickup := range pickups {
			if pickup.Status == entity.PickupStatusScheduled {
				return errors.Wrap(domainerrors.ErrOpenPickupExists, "food item has a scheduled pickup")
			}
		}

		return errors.Wrap(repoFactory.FoodItemRepo().Delete(ctx, item.ID), "failed to delete food item")
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute listing deletion", slog.Any("itemID", listingID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute listing deletion")
	}

	srv.log(ctx).Debug("Food listing deleted", slog.Any("itemID", listingID))

	return nil
}

// requireRestaurantProfile resolves the caller's restaurant profile. A missing
// profile blocks all listing operations.
func (srv *listingService) requireRestaurantProfile(ctx context.Context, restaurantRepo repository.RestaurantRepository, userID uuid.UUID) (*entity.RestaurantProfile, error) {
	profile, err := restaurantRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileRequired, "restaurant profile required")
		}

		return nil, errors.Wrap(err, "failed to find restaurant profile")
	}

	return profile, nil
}

// loadOwnedItem fetches a listing and verifies the caller's restaurant owns it.
func (srv *listingService) loadOwnedItem(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, listingID uuid.UUID) (*entity.FoodItem, error) {
	profile, err := srv.requireRestaurantProfile(ctx, repoFactory.RestaurantRepo(), userID)
	if err != nil {
		return nil, err
	}

	item, err := repoFactory.FoodItemRepo().FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrFoodItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrFoodItemNotFound, "food item not found")
		}

		return nil, errors.Wrap(err, "failed to find food item")
	}

	if item.RestaurantID != profile.ID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "food item belongs to another restaurant")
	}

	return item, nil
}
