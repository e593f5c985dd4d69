package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PickupModel mirrors the 'pickups' table. Impact is stored as a JSON blob
// since it is written once and never queried by field.
type PickupModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FoodItemID   uuid.UUID `gorm:"type:uuid;index;not null"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index;not null"`
	CharityID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Status       string    `gorm:"type:varchar(20);index;not null"`
	PickupTime   time.Time `gorm:"not null"`
	Rating       *float64
	Impact       datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PickupModel) TableName() string {
	return "pickups"
}
