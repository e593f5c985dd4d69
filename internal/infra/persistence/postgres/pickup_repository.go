package postgres

import (
	"context"
	"encoding/json"

	"github.com/kendymann/leftover-love/internal/domain/entity"
	domainerrors "github.com/kendymann/leftover-love/internal/domain/errors"
	"github.com/kendymann/leftover-love/internal/domain/repository"
	"github.com/kendymann/leftover-love/internal/errors"
	"github.com/kendymann/leftover-love/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type pickupRepository struct {
	db *gorm.DB
}

// NewPickupRepository creates a PickupRepository bound to the given GORM handle.
func NewPickupRepository(db *gorm.DB) repository.PickupRepository {
	return &pickupRepository{db: db}
}

func (r *pickupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pickup, error) {
	var pickupModel model.PickupModel
	err := r.db.WithContext(ctx).First(&pickupModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPickupNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find pickup by id")
	}

	return toPickupDomain(&pickupModel)
}

func (r *pickupRepository) FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Pickup, error) {
	var pickupModels []model.PickupModel
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("pickup_time DESC").
		Find(&pickupModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find pickups by restaurant id")
	}

	return toPickupDomainList(pickupModels)
}

func (r *pickupRepository) FindByCharityID(ctx context.Context, charityID uuid.UUID) ([]*entity.Pickup, error) {
	var pickupModels []model.PickupModel
	err := r.db.WithContext(ctx).
		Where("charity_id = ?", charityID).
		Order("pickup_time DESC").
		Find(&pickupModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find pickups by charity id")
	}

	return toPickupDomainList(pickupModels)
}

func (r *pickupRepository) FindByFoodItemID(ctx context.Context, foodItemID uuid.UUID) ([]*entity.Pickup, error) {
	var pickupModels []model.PickupModel
	err := r.db.WithContext(ctx).
		Where("food_item_id = ?", foodItemID).
		Order("pickup_time DESC").
		Find(&pickupModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find pickups by food item id")
	}

	return toPickupDomainList(pickupModels)
}

func (r *pickupRepository) FindCompleted(ctx context.Context, restaurantID, charityID *uuid.UUID) ([]*entity.Pickup, error) {
	query := r.db.WithContext(ctx).
		Where("status = ?", string(entity.PickupStatusCompleted))
	if restaurantID != nil {
		query = query.Where("restaurant_id = ?", *restaurantID)
	}
	if charityID != nil {
		query = query.Where("charity_id = ?", *charityID)
	}

	var pickupModels []model.PickupModel
	if err := query.Order("pickup_time DESC").Find(&pickupModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find completed pickups")
	}

	return toPickupDomainList(pickupModels)
}

func (r *pickupRepository) Create(ctx context.Context, pickup *entity.Pickup) error {
	pickupModel, err := fromPickupDomain(pickup)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(pickupModel).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrFoodItemNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pickup")
	}

	pickup.ID = pickupModel.ID
	pickup.CreatedAt = pickupModel.CreatedAt
	pickup.UpdatedAt = pickupModel.UpdatedAt

	return nil
}

func (r *pickupRepository) Update(ctx context.Context, pickup *entity.Pickup) error {
	impact, err := marshalImpact(pickup.Impact)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&model.PickupModel{}).
		Where("id = ?", pickup.ID).
		Updates(map[string]any{
			"status":      string(pickup.Status),
			"pickup_time": pickup.PickupTime,
			"rating":      pickup.Rating,
			"impact":      impact,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update pickup")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPickupNotFound
	}

	return nil
}

func toPickupDomain(m *model.PickupModel) (*entity.Pickup, error) {
	pickup := &entity.Pickup{
		ID:           m.ID,
		FoodItemID:   m.FoodItemID,
		RestaurantID: m.RestaurantID,
		CharityID:    m.CharityID,
		Status:       entity.PickupStatus(m.Status),
		PickupTime:   m.PickupTime,
		Rating:       m.Rating,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if len(m.Impact) > 0 {
		var impact entity.PickupImpact
		if err := json.Unmarshal(m.Impact, &impact); err != nil {
			return nil, errors.Wrap(err, "failed to decode pickup impact")
		}
		pickup.Impact = &impact
	}

	return pickup, nil
}

func toPickupDomainList(models []model.PickupModel) ([]*entity.Pickup, error) {
	pickups := make([]*entity.Pickup, 0, len(models))
	for i := range models {
		pickup, err := toPickupDomain(&models[i])
		if err != nil {
			return nil, err
		}
		pickups = append(pickups, pickup)
	}

	return pickups, nil
}

func fromPickupDomain(pickup *entity.Pickup) (*model.PickupModel, error) {
	impact, err := marshalImpact(pickup.Impact)
	if err != nil {
		return nil, err
	}

	return &model.PickupModel{
		ID:           pickup.ID,
		FoodItemID:   pickup.FoodItemID,
		RestaurantID: pickup.RestaurantID,
		CharityID:    pickup.CharityID,
		Status:       string(pickup.Status),
		PickupTime:   pickup.PickupTime,
		Rating:       pickup.Rating,
		Impact:       impact,
		CreatedAt:    pickup.CreatedAt,
		UpdatedAt:    pickup.UpdatedAt,
	}, nil
}

func marshalImpact(impact *entity.PickupImpact) (datatypes.JSON, error) {
	if impact == nil {
		return nil, nil
	}

	raw, err := json.Marshal(impact)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode pickup impact")
	}

	return datatypes.JSON(raw), nil
}
