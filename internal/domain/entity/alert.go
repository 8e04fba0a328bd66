package entity

import (
	"time"

	"github.com/google/uuid"
)

// Alert is a persisted record of a lifecycle notification delivered to a
// participant. It doubles as the user's notification inbox.
type Alert struct {
	ID        uuid.UUID  // The Global Unique Identifier (GUID) for the alert.
	UserID    uuid.UUID  // The recipient.
	GroupID   uuid.UUID  // The group the alert is about.
	GroupName string     // Snapshot of the group name at send time.
	State     GroupState // The state the group entered.
	Image     string     // Product image shown with the alert, may be empty.
	Content   string     // Alert body text.
	ReadAt    *time.Time // Nil until the user opens the alert.
	CreatedAt time.Time  // Timestamp of when the alert was recorded.
}
