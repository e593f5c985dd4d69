package repository

import (
	"context"
	"testing"

	"github.com/kendymann/leftover-love/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFoodItemRepository is a testify mock for repository.FoodItemRepository.
type MockFoodItemRepository struct {
	mock.Mock
}

// NewMockFoodItemRepository creates a mock wired to the test lifecycle.
func NewMockFoodItemRepository(t *testing.T) *MockFoodItemRepository {
	m := &MockFoodItemRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFoodItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodItem, error) {
	args := m.Called(ctx, id)
	if item, ok := args.Get(0).(*entity.FoodItem); ok {
		return item, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockFoodItemRepository) FindByStatus(ctx context.Context, status entity.FoodStatus) ([]*entity.FoodItem, error) {
	args := m.Called(ctx, status)
	if items, ok := args.Get(0).([]*entity.FoodItem); ok {
		return items, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockFoodItemRepository) FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*entity.FoodItem, error) {
	args := m.Called(ctx, restaurantID)
	if items, ok := args.Get(0).([]*entity.FoodItem); ok {
		return items, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockFoodItemRepository) CountByRestaurantID(ctx context.Context, restaurantID uuid.UUID) (int64, error) {
	args := m.Called(ctx, restaurantID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFoodItemRepository) Create(ctx context.Context, item *entity.FoodItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockFoodItemRepository) Update(ctx context.Context, item *entity.FoodItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockFoodItemRepository) Reserve(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockFoodItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockFoodItemRepository) DeleteByRestaurantID(ctx context.Context, restaurantID uuid.UUID) error {
	return m.Called(ctx, restaurantID).Error(0)
}
