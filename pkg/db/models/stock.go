package models

import (
	"time"

	"github.com/google/uuid"
)

// Stock records how many units of a product a store holds. The product/store
// pair is the primary key.
type Stock struct {
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;primaryKey"`
	StoreID   uuid.UUID `gorm:"column:store_id;type:uuid;primaryKey"`
	Store     *Store    `gorm:"foreignKey:StoreID"`
	Quantity  int       `gorm:"column:quantity;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
