package repository

import (
	"context"
	"testing"

	"github.com/kendymann/leftover-love/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a testify mock for repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock wired to the test lifecycle.
func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return m.Called(ctx, fn).Error(0)
}

// MockRepositoryFactory is a testify mock for repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a mock wired to the test lifecycle.
func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	return m.Called().Get(0).(repository.UserRepository)
}

func (m *MockRepositoryFactory) RestaurantRepo() repository.RestaurantRepository {
	return m.Called().Get(0).(repository.RestaurantRepository)
}

func (m *MockRepositoryFactory) CharityRepo() repository.CharityRepository {
	return m.Called().Get(0).(repository.CharityRepository)
}

func (m *MockRepositoryFactory) FoodItemRepo() repository.FoodItemRepository {
	return m.Called().Get(0).(repository.FoodItemRepository)
}

func (m *MockRepositoryFactory) PickupRepo() repository.PickupRepository {
	return m.Called().Get(0).(repository.PickupRepository)
}
