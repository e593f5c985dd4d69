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

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a UserRepository bound to the given GORM handle,
// which may be a plain connection or an open transaction.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.WithContext(ctx).
		Preload("RestaurantProfile").
		Preload("CharityProfile").
		First(&userModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return toUserDomain(&userModel), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.WithContext(ctx).
		Preload("RestaurantProfile").
		Preload("CharityProfile").
		First(&userModel, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return toUserDomain(&userModel), nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.WithContext(ctx).
		Preload("RestaurantProfile").
		Preload("CharityProfile").
		First(&userModel, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by username")
	}

	return toUserDomain(&userModel), nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := fromUserDomain(user)
	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return mapUserUniqueViolation(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Write back the database-generated values.
	user.ID = userModel.ID
	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt

	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	userModel := fromUserDomain(user)
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"email":         userModel.Email,
			"username":      userModel.Username,
			"password_hash": userModel.PasswordHash,
			"is_active":     userModel.IsActive,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return mapUserUniqueViolation(result.Error)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Role profiles go with the user via ON DELETE CASCADE.
	result := r.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// mapUserUniqueViolation narrows a unique constraint error down to the column
// that caused it, falling back to a generic conflict.
func mapUserUniqueViolation(err error) error {
	errMsg := err.Error()
	switch {
	case containsAny(errMsg, "email", "users_email"):
		return domainerrors.ErrEmailTaken
	case containsAny(errMsg, "username", "users_username"):
		return domainerrors.ErrUsernameTaken
	default:
		return domainerrors.ErrConflict
	}
}

func toUserDomain(m *model.UserModel) *entity.User {
	user := &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.RestaurantProfile != nil {
		user.RestaurantProfile = toRestaurantProfileDomain(m.RestaurantProfile)
	}
	if m.CharityProfile != nil {
		user.CharityProfile = toCharityProfileDomain(m.CharityProfile)
	}

	return user
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
