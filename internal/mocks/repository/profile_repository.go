package repository

import (
	"context"
	"testing"

	"github.com/kendymann/leftover-love/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRestaurantRepository is a testify mock for repository.RestaurantRepository.
type MockRestaurantRepository struct {
	mock.Mock
}

// NewMockRestaurantRepository creates a mock wired to the test lifecycle.
func NewMockRestaurantRepository(t *testing.T) *MockRestaurantRepository {
	m := &MockRestaurantRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRestaurantRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.RestaurantProfile, error) {
	args := m.Called(ctx, userID)
	if profile, ok := args.Get(0).(*entity.RestaurantProfile); ok {
		return profile, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockRestaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RestaurantProfile, error) {
	args := m.Called(ctx, id)
	if profile, ok := args.Get(0).(*entity.RestaurantProfile); ok {
		return profile, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockRestaurantRepository) Create(ctx context.Context, profile *entity.RestaurantProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockRestaurantRepository) Update(ctx context.Context, profile *entity.RestaurantProfile) error {
	return m.Called(ctx, profile).Error(0)
}

// MockCharityRepository is a testify mock for repository.CharityRepository.
type MockCharityRepository struct {
	mock.Mock
}

// NewMockCharityRepository creates a mock wired to the test lifecycle.
func NewMockCharityRepository(t *testing.T) *MockCharityRepository {
	m := &MockCharityRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCharityRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.CharityProfile, error) {
	args := m.Called(ctx, userID)
	if profile, ok := args.Get(0).(*entity.CharityProfile); ok {
		return profile, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCharityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CharityProfile, error) {
	args := m.Called(ctx, id)
	if profile, ok := args.Get(0).(*entity.CharityProfile); ok {
		return profile, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCharityRepository) Create(ctx context.Context, profile *entity.CharityProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockCharityRepository) Update(ctx context.Context, profile *entity.CharityProfile) error {
	return m.Called(ctx, profile).Error(0)
}
