package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is an account that places orders.
type Customer struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	FirstName string    `gorm:"column:first_name;not null"`
	LastName  string    `gorm:"column:last_name;not null"`
	Email     string    `gorm:"column:email;not null;uniqueIndex"`
	Orders    []Order   `gorm:"foreignKey:CustomerID"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// FullName joins the customer's first and last name for display.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
