package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Status transitions happen only via
// conditional updates, so the column never skips the pending state.
type OrderModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code       string    `gorm:"type:varchar(12);not null;uniqueIndex"`
	BuyerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity   int       `gorm:"not null;check:quantity >= 1"`
	TotalPrice float64   `gorm:"type:numeric(12,2);not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time `gorm:"index"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
