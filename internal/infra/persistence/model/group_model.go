// Package model contains the GORM persistence models mirroring the
// PostgreSQL schema. They are kept separate from the domain entities so the
// domain layer never carries ORM tags.
package model

import (
	"time"

	"github.com/google/uuid"
)

// GroupModel mirrors the 'groups' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). The version column backs the optimistic lock on the
// group aggregate.
type GroupModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	GroupType         string    `gorm:"type:varchar(20);not null;index"`
	Name              string    `gorm:"type:varchar(255);not null"`
	ProductID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Location          string    `gorm:"type:text;not null"`
	Latitude          float64   `gorm:"type:decimal(10,8);not null"`
	Longitude         float64   `gorm:"type:decimal(11,8);not null"`
	Deadline          time.Time `gorm:"not null;index"`
	State             int       `gorm:"not null;default:0;index"`
	RemainedPersonnel int       `gorm:"not null"`
	Version           int64     `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Participants []ParticipantModel `gorm:"foreignKey:GroupID"`
}

// TableName explicitly sets the table name for GORM.
func (GroupModel) TableName() string {
	return "groups"
}

// ParticipantModel mirrors the 'participants' table. The (group_id, user_id)
// unique index enforces one membership per user per group at the database
// level.
type ParticipantModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	GroupID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_participants_group_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_participants_group_user"`
	JoinedAt  time.Time `gorm:"not null;index"`
	Quantity  int       `gorm:"not null"`
	PaymentID uuid.UUID `gorm:"type:uuid;not null"`
	Complete  bool      `gorm:"not null;default:false"`
	Manager   bool      `gorm:"not null;default:false"`
	Review    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ParticipantModel) TableName() string {
	return "participants"
}
