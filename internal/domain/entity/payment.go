package entity

import (
	"time"

	"github.com/google/uuid"
)

// Payment is one ledger entry per participant per group. Entries are never
// deleted, only mutated; they form the audit trail for a group.
type Payment struct {
	ID        uuid.UUID  // The Global Unique Identifier (GUID) for the ledger entry.
	UserID    uuid.UUID  // The paying participant.
	GroupID   uuid.UUID  // The group this payment belongs to.
	DueDate   *time.Time // Populated once the group reaches the minimum threshold: now + product term days.
	Used      bool       // Whether the payment has been consumed.
	Voucher   int        // Remaining redeemable uses, >= 0. Decrements only via fulfillment events.
	Method    string     // Payment method label chosen at join time.
	CreatedAt time.Time  // Timestamp of when the entry was created.
	UpdatedAt time.Time  // Timestamp of the last modification.
}
