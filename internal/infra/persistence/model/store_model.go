// Package model contains the GORM table mappings for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel mirrors the 'stores' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type StoreModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SellerID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name           string    `gorm:"type:varchar(150);not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	Latitude       *float64  `gorm:"type:double precision"`
	Longitude      *float64  `gorm:"type:double precision"`
	OpensAtMinute  int       `gorm:"not null;default:0"`
	ClosesAtMinute int       `gorm:"not null;default:1439"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time `gorm:"index"`

	Products []*ProductModel `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
