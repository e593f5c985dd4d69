package postgres

import (
	"context"

	"github.com/kendymann/leftover-love/internal/domain/entity"
	domainerrors "github.com/kendymann/leftover-love/internal/domain/errors"
	"github.com/kendymann/leftover-love/internal/domain/repository"
	"github.com/kendymann/leftover-love/internal/errors"
	"github.com/kendymann/leftover-love/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a RestaurantRepository bound to the given GORM handle.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.RestaurantProfile, error) {
	var profileModel model.RestaurantProfileModel
	err := r.db.WithContext(ctx).First(&profileModel, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find restaurant profile by user id")
	}

	return toRestaurantProfileDomain(&profileModel), nil
}

func (r *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RestaurantProfile, error) {
	var profileModel model.RestaurantProfileModel
	err := r.db.WithContext(ctx).First(&profileModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find restaurant profile by id")
	}

	return toRestaurantProfileDomain(&profileModel), nil
}

func (r *restaurantRepository) Create(ctx context.Context, profile *entity.RestaurantProfile) error {
	profileModel := fromRestaurantProfileDomain(profile)
	if err := r.db.WithContext(ctx).Create(profileModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant profile")
	}

	profile.ID = profileModel.ID
	profile.CreatedAt = profileModel.CreatedAt
	profile.UpdatedAt = profileModel.UpdatedAt

	return nil
}

func (r *restaurantRepository) Update(ctx context.Context, profile *entity.RestaurantProfile) error {
	result := r.db.WithContext(ctx).Model(&model.RestaurantProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"name":        profile.Name,
			"address":     profile.Address,
			"phone":       profile.Phone,
			"email":       profile.Email,
			"description": profile.Description,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update restaurant profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

type charityRepository struct {
	db *gorm.DB
}

// NewCharityRepository creates a CharityRepository bound to the given GORM handle.
func NewCharityRepository(db *gorm.DB) repository.CharityRepository {
	return &charityRepository{db: db}
}

func (r *charityRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.CharityProfile, error) {
	var profileModel model.CharityProfileModel
	err := r.db.WithContext(ctx).First(&profileModel, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find charity profile by user id")
	}

	return toCharityProfileDomain(&profileModel), nil
}

func (r *charityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CharityProfile, error) {
	var profileModel model.CharityProfileModel
	err := r.db.WithContext(ctx).First(&profileModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find charity profile by id")
	}

	return toCharityProfileDomain(&profileModel), nil
}

func (r *charityRepository) Create(ctx context.Context, profile *entity.CharityProfile) error {
	profileModel := fromCharityProfileDomain(profile)
	if err := r.db.WithContext(ctx).Create(profileModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create charity profile")
	}

	profile.ID = profileModel.ID
	profile.CreatedAt = profileModel.CreatedAt
	profile.UpdatedAt = profileModel.UpdatedAt

	return nil
}

func (r *charityRepository) Update(ctx context.Context, profile *entity.CharityProfile) error {
	result := r.db.WithContext(ctx).Model(&model.CharityProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"name":        profile.Name,
			"address":     profile.Address,
			"phone":       profile.Phone,
			"email":       profile.Email,
			"description": profile.Description,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update charity profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func toRestaurantProfileDomain(m *model.RestaurantProfileModel) *entity.RestaurantProfile {
	return &entity.RestaurantProfile{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Address:     m.Address,
		Phone:       m.Phone,
		Email:       m.Email,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromRestaurantProfileDomain(p *entity.RestaurantProfile) *model.RestaurantProfileModel {
	return &model.RestaurantProfileModel{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Address:     p.Address,
		Phone:       p.Phone,
		Email:       p.Email,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toCharityProfileDomain(m *model.CharityProfileModel) *entity.CharityProfile {
	return &entity.CharityProfile{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		Address:      m.Address,
		Phone:        m.Phone,
		Email:        m.Email,
		Description:  m.Description,
		TotalPickups: m.TotalPickups,
		PeopleHelped: m.PeopleHelped,
		FoodSavedKg:  m.FoodSavedKg,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromCharityProfileDomain(p *entity.CharityProfile) *model.CharityProfileModel {
	return &model.CharityProfileModel{
		ID:           p.ID,
		UserID:       p.UserID,
		Name:         p.Name,
		Address:      p.Address,
		Phone:        p.Phone,
		Email:        p.Email,
		Description:  p.Description,
		TotalPickups: p.TotalPickups,
		PeopleHelped: p.PeopleHelped,
		FoodSavedKg:  p.FoodSavedKg,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
