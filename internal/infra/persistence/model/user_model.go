package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the slice of the 'users' table this service reads:
// identity, registered coordinates for the nearby query, and the FCM push
// token. Account management writes to this table from another service.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Latitude  float64   `gorm:"type:decimal(10,8)"`
	Longitude float64   `gorm:"type:decimal(11,8)"`
	PushToken string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
