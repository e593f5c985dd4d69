package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/kendymann/leftover-love/config"
	"github.com/kendymann/leftover-love/internal/domain/repository"
	mockRepo "github.com/kendymann/leftover-love/internal/mocks/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:     12,
			AccessTokenTTL: 30 * time.Minute,
		},
	}

	return cfg
}

// repoFixtures bundles the repository mocks handed out by the stub factory.
type repoFixtures struct {
	userRepo       *mockRepo.MockUserRepository
	restaurantRepo *mockRepo.MockRestaurantRepository
	charityRepo    *mockRepo.MockCharityRepository
	foodItemRepo   *mockRepo.MockFoodItemRepository
	pickupRepo     *mockRepo.MockPickupRepository
}

func newRepoFixtures(t *testing.T) *repoFixtures {
	return &repoFixtures{
		userRepo:       mockRepo.NewMockUserRepository(t),
		restaurantRepo: mockRepo.NewMockRestaurantRepository(t),
		charityRepo:    mockRepo.NewMockCharityRepository(t),
		foodItemRepo:   mockRepo.NewMockFoodItemRepository(t),
		pickupRepo:     mockRepo.NewMockPickupRepository(t),
	}
}

// stubRepoFactory hands the shared mocks to transactional code.
type stubRepoFactory struct {
	repos *repoFixtures
}

func (f stubRepoFactory) UserRepo() repository.UserRepository             { return f.repos.userRepo }
func (f stubRepoFactory) RestaurantRepo() repository.RestaurantRepository { return f.repos.restaurantRepo }
func (f stubRepoFactory) CharityRepo() repository.CharityRepository       { return f.repos.charityRepo }
func (f stubRepoFactory) FoodItemRepo() repository.FoodItemRepository     { return f.repos.foodItemRepo }
func (f stubRepoFactory) PickupRepo() repository.PickupRepository         { return f.repos.pickupRepo }

// stubTxManager runs the transactional closure directly against the stub
// factory, propagating its error like a rolled-back transaction would.
type stubTxManager struct {
	factory repository.RepositoryFactory
}

func (s stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s.factory)
}

func newStubTxManager(repos *repoFixtures) stubTxManager {
	return stubTxManager{factory: stubRepoFactory{repos: repos}}
}
