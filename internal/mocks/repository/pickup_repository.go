package repository

import (
	"context"
	"testing"

	"github.com/kendymann/leftover-love/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPickupRepository is a testify mock for repository.PickupRepository.
type MockPickupRepository struct {
	mock.Mock
}

// NewMockPickupRepository creates a mock wired to the test lifecycle.
func NewMockPickupRepository(t *testing.T) *MockPickupRepository {
	m := &MockPickupRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPickupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pickup, error) {
	args := m.Called(ctx, id)
	if pickup, ok := args.Get(0).(*entity.Pickup); ok {
		return pickup, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPickupRepository) FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Pickup, error) {
	args := m.Called(ctx, restaurantID)
	if pickups, ok := args.Get(0).([]*entity.Pickup); ok {
		return pickups, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPickupRepository) FindByCharityID(ctx context.Context, charityID uuid.UUID) ([]*entity.Pickup, error) {
	args := m.Called(ctx, charityID)
	if pickups, ok := args.Get(0).([]*entity.Pickup); ok {
		return pickups, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPickupRepository) FindByFoodItemID(ctx context.Context, foodItemID uuid.UUID) ([]*entity.Pickup, error) {
	args := m.Called(ctx, foodItemID)
	if pickups, ok := args.Get(0).([]*entity.Pickup); ok {
		return pickups, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPickupRepository) FindCompleted(ctx context.Context, restaurantID, charityID *uuid.UUID) ([]*entity.Pickup, error) {
	args := m.Called(ctx, restaurantID, charityID)
	if pickups, ok := args.Get(0).([]*entity.Pickup); ok {
		return pickups, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPickupRepository) Create(ctx context.Context, pickup *entity.Pickup) error {
	return m.Called(ctx, pickup).Error(0)
}

func (m *MockPickupRepository) Update(ctx context.Context, pickup *entity.Pickup) error {
	return m.Called(ctx, pickup).Error(0)
}
