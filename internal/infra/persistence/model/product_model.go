package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. The code column carries the short
// listing code and is unique across all stores.
type ProductModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(150);not null"`
	Price          float64   `gorm:"type:numeric(12,2);not null"`
	OriginalPrice  *float64  `gorm:"type:numeric(12,2)"`
	Quantity       int       `gorm:"not null;default:0;check:quantity >= 0"`
	AvailableFrom  *time.Time
	AvailableUntil time.Time `gorm:"not null;index"`
	IsActive       bool      `gorm:"not null;default:true;index"`
	Code           string    `gorm:"type:varchar(12);not null;uniqueIndex"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time `gorm:"index"`

	Store *StoreModel `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
