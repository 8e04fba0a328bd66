package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' table. Rows are never deleted; the
// ledger is the audit trail of a group.
type PaymentModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	GroupID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	DueDate   *time.Time `gorm:"index"`
	Used      bool       `gorm:"not null;default:false"`
	Voucher   int        `gorm:"not null;default:0"`
	Method    string     `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
