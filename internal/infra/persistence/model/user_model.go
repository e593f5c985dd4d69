// Package model holds the GORM persistence models mirroring the database
// schema. Domain entities never leak GORM tags; mapping happens in the
// postgres package.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	RestaurantProfile *RestaurantProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CharityProfile    *CharityProfileModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RestaurantProfileModel mirrors the 'restaurant_profiles' table.
type RestaurantProfileModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;unique;not null"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Address     string    `gorm:"type:varchar(255)"`
	Phone       string    `gorm:"type:varchar(30)"`
	Email       string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantProfileModel) TableName() string {
	return "restaurant_profiles"
}

// CharityProfileModel mirrors the 'charity_profiles' table. The rolling stats
// columns are display-only; authoritative numbers come from completed pickups.
type CharityProfileModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;unique;not null"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Address     string    `gorm:"type:varchar(255)"`
	Phone       string    `gorm:"type:varchar(30)"`
	Email       string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:text"`

	TotalPickups int     `gorm:"not null;default:0"`
	PeopleHelped int     `gorm:"not null;default:0"`
	FoodSavedKg  float64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CharityProfileModel) TableName() string {
	return "charity_profiles"
}
