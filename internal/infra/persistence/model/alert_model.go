package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertModel mirrors the 'alerts' table, the per-user notification inbox.
type AlertModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	GroupID   uuid.UUID  `gorm:"type:uuid;not null"`
	GroupName string     `gorm:"type:varchar(255);not null"`
	State     int        `gorm:"not null"`
	Image     string     `gorm:"type:text"`
	Content   string     `gorm:"type:text;not null"`
	ReadAt    *time.Time `gorm:"index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlertModel) TableName() string {
	return "alerts"
}
