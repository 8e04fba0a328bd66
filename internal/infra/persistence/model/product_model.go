package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table, owned by the product directory.
// This service only ever reads from it.
type ProductModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Images         []string  `gorm:"serializer:json;type:jsonb"`
	MinPurchaseQty int       `gorm:"not null"`
	MaxPurchaseQty int       `gorm:"not null"`
	TermDays       int       `gorm:"not null"`
	SellerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
