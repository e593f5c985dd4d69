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

type foodItemRepository struct {
	db *gorm.DB
}

// NewFoodItemRepository creates a FoodItemRepository bound to the given GORM handle.
func NewFoodItemRepository(db *gorm.DB) repository.FoodItemRepository {
	return &foodItemRepository{db: db}
}

func (r *foodItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodItem, error) {
	var itemModel model.FoodItemModel
	err := r.db.WithContext(ctx).First(&itemModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodItemNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find food item by id")
	}

	return toFoodItemDomain(&itemModel), nil
}

func (r *foodItemRepository) FindByStatus(ctx context.Context, status entity.FoodStatus) ([]*entity.FoodItem, error) {
	var itemModels []model.FoodItemModel
	err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at DESC").
		Find(&itemModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find food items by status")
	}

	return toFoodItemDomainList(itemModels), nil
}

func (r *foodItemRepository) FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*entity.FoodItem, error) {
	var itemModels []model.FoodItemModel
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&itemModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find food items by restaurant id")
	}

	return toFoodItemDomainList(itemModels), nil
}

func (r *foodItemRepository) CountByRestaurantID(ctx context.Context, restaurantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.FoodItemModel{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count food items by restaurant id")
	}

	return count, nil
}

func (r *foodItemRepository) Create(ctx context.Context, item *entity.FoodItem) error {
	itemModel := fromFoodItemDomain(item)
	if err := r.db.WithContext(ctx).Create(itemModel).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create food item")
	}

	item.ID = itemModel.ID
	item.CreatedAt = itemModel.CreatedAt
	item.UpdatedAt = itemModel.UpdatedAt

	return nil
}

func (r *foodItemRepository) Update(ctx context.Context, item *entity.FoodItem) error {
	result := r.db.WithContext(ctx).Model(&model.FoodItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"name":        item.Name,
			"quantity":    item.Quantity,
			"unit":        item.Unit,
			"expiry_date": item.ExpiryDate,
			"description": item.Description,
			"status":      string(item.Status),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update food item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFoodItemNotFound
	}

	return nil
}

// Reserve relies on the status predicate rather than a prior read. At READ
// COMMITTED two transactions can both see the item as available, but only
// one of the guarded updates matches a row; the other observes zero rows
// affected and reports the item as taken.
func (r *foodItemRepository) Reserve(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.FoodItemModel{}).
		Where("id = ? AND status = ?", id, string(entity.FoodStatusAvailable)).
		Update("status", string(entity.FoodStatusReserved))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to reserve food item")
	}
	if result.RowsAffected == 0 {
		var count int64
		err := r.db.WithContext(ctx).Model(&model.FoodItemModel{}).
			Where("id = ?", id).
			Count(&count).Error
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to check food item existence")
		}
		if count == 0 {
			return repository.ErrFoodItemNotFound
		}

		return repository.ErrFoodItemNotAvailable
	}

	return nil
}

func (r *foodItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.FoodItemModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete food item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFoodItemNotFound
	}

	return nil
}

func (r *foodItemRepository) DeleteByRestaurantID(ctx context.Context, restaurantID uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&model.FoodItemModel{}, "restaurant_id = ?", restaurantID).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete food items by restaurant id")
	}

	return nil
}

func toFoodItemDomain(m *model.FoodItemModel) *entity.FoodItem {
	return &entity.FoodItem{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Quantity:     m.Quantity,
		Unit:         m.Unit,
		ExpiryDate:   m.ExpiryDate,
		Description:  m.Description,
		Status:       entity.FoodStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toFoodItemDomainList(models []model.FoodItemModel) []*entity.FoodItem {
	items := make([]*entity.FoodItem, 0, len(models))
	for i := range models {
		items = append(items, toFoodItemDomain(&models[i]))
	}

	return items
}

func fromFoodItemDomain(item *entity.FoodItem) *model.FoodItemModel {
	return &model.FoodItemModel{
		ID:           item.ID,
		RestaurantID: item.RestaurantID,
		Name:         item.Name,
		Quantity:     item.Quantity,
		Unit:         item.Unit,
		ExpiryDate:   item.ExpiryDate,
		Description:  item.Description,
		Status:       string(item.Status),
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}
