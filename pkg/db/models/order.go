package models

import (
	"time"

	"github.com/google/uuid"
)

// Order status labels are free-form; reports match them literally.
const OrderStatusPending = "Pending"

// Order is a customer purchase holding zero or more line items.
type Order struct {
	ID         uuid.UUID   `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerID uuid.UUID   `gorm:"column:customer_id;type:uuid;not null"`
	Customer   *Customer   `gorm:"foreignKey:CustomerID"`
	Status     string      `gorm:"column:status;not null"`
	OrderDate  time.Time   `gorm:"column:order_date;not null"`
	Items      []OrderItem `gorm:"foreignKey:OrderID"`
	CreatedAt  time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}
