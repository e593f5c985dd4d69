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

// Estimation factors applied when a restaurant's completed pickups carry no
// recorded impact data.
const (
	estimatedKgPerPickup     = 2.5
	estimatedPeoplePerPickup = 4
)

// statsService implements the StatsUsecase interface. All numbers are
// computed on demand from completed pickups, never maintained incrementally.
type statsService struct {
	pickupRepo     repository.PickupRepository
	foodItemRepo   repository.FoodItemRepository
	restaurantRepo repository.RestaurantRepository
	charityRepo    repository.CharityRepository
	logger         *slog.Logger
}

// StatsServiceParams holds dependencies for statsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	PickupRepo     repository.PickupRepository
	FoodItemRepo   repository.FoodItemRepository
	RestaurantRepo repository.RestaurantRepository
	CharityRepo    repository.CharityRepository
	Logger         *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		pickupRepo:     params.PickupRepo,
		foodItemRepo:   params.FoodItemRepo,
		restaurantRepo: params.RestaurantRepo,
		charityRepo:    params.CharityRepo,
		logger:         params.Logger,
	}
}

func (srv *statsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// impactTotals aggregates completed pickups. Pickups without impact data
// contribute zero; the average covers rated pickups only and stays nil when
// none carry a rating.
func impactTotals(pickups []*entity.Pickup) (peopleHelped int, foodSavedKg float64, averageRating *float64) {
	var ratingSum float64
	var ratingCount int

	for _, pickup := range pickups {
		if pickup.Impact != nil {
			peopleHelped += pickup.Impact.PeopleHelped
			foodSavedKg += pickup.Impact.FoodSavedKg
		}
		if pickup.Rating != nil {
			ratingSum += *pickup.Rating
			ratingCount++
		}
	}

	if ratingCount > 0 {
		avg := ratingSum / float64(ratingCount)
		averageRating = &avg
	}

	return peopleHelped, foodSavedKg, averageRating
}

// Global aggregates impact across all completed pickups on the platform.
func (srv *statsService) Global(ctx context.Context) (*usecase.GlobalStats, error) {
	completed, err := srv.pickupRepo.FindCompleted(ctx, nil, nil)
	if err != nil {
		srv.log(ctx).Error("Failed to load completed pickups for global stats", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load completed pickups")
	}

	peopleHelped, foodSavedKg, averageRating := impactTotals(completed)

	return &usecase.GlobalStats{
		TotalPickups:  len(completed),
		PeopleHelped:  peopleHelped,
		FoodSavedKg:   foodSavedKg,
		AverageRating: averageRating,
	}, nil
}

// ForRestaurant aggregates a restaurant's contribution. When none of its
// completed pickups carry impact data, the sums fall back to a per-pickup
// estimate and the result is flagged as estimated.
func (srv *statsService) ForRestaurant(ctx context.Context, userID uuid.UUID) (*usecase.RestaurantStats, error) {
	profile, err := srv.restaurantRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "restaurant profile not found")
		}

		return nil, errors.Wrap(err, "failed to find restaurant profile")
	}

	totalListings, err := srv.foodItemRepo.CountByRestaurantID(ctx, profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count restaurant listings")
	}

	completed, err := srv.pickupRepo.FindCompleted(ctx, &profile.ID, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load completed pickups")
	}

	peopleHelped, foodSavedKg, _ := impactTotals(completed)

	estimated := false
	if !anyImpactRecorded(completed) {
		foodSavedKg = float64(len(completed)) * estimatedKgPerPickup
		peopleHelped = len(completed) * estimatedPeoplePerPickup
		estimated = true
	}

	return &usecase.RestaurantStats{
		TotalListings: int(totalListings),
		TotalPickups:  len(completed),
		PeopleHelped:  peopleHelped,
		FoodSavedKg:   foodSavedKg,
		Estimated:     estimated,
	}, nil
}

// ForCharity aggregates the impact a charity has received.
func (srv *statsService) ForCharity(ctx context.Context, userID uuid.UUID) (*usecase.CharityStats, error) {
	profile, err := srv.charityRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "charity profile not found")
		}

		return nil, errors.Wrap(err, "failed to find charity profile")
	}

	completed, err := srv.pickupRepo.FindCompleted(ctx, nil, &profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load completed pickups")
	}

	peopleHelped, foodSavedKg, averageRating := impactTotals(completed)

	return &usecase.CharityStats{
		TotalPickups:  len(completed),
		PeopleHelped:  peopleHelped,
		FoodSavedKg:   foodSavedKg,
		AverageRating: averageRating,
	}, nil
}

func anyImpactRecorded(pickups []*entity.Pickup) bool {
	for _, pickup := range pickups {
		if pickup.Impact != nil {
			return true
		}
	}

	return false
}
