package model

import (
	"time"

	"github.com/google/uuid"
)

// FoodItemModel mirrors the 'food_items' table.
type FoodItemModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name         string    `gorm:"type:varchar(150);not null"`
	Quantity     float64   `gorm:"not null"`
	Unit         string    `gorm:"type:varchar(30);not null"`
	ExpiryDate   time.Time `gorm:"not null"`
	Description  string    `gorm:"type:text"`
	Status       string    `gorm:"type:varchar(20);index;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodItemModel) TableName() string {
	return "food_items"
}
