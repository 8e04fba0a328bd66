// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GroupType distinguishes neighbourhood pickups from nationwide groups.
type GroupType string

const (
	// GroupTypeLocal groups are discoverable through the nearby query.
	GroupTypeLocal GroupType = "local"
	// GroupTypeNormal groups are discoverable system-wide.
	GroupTypeNormal GroupType = "normal"
)

// Group is one instance of a group-buy pool against a specific product.
// A group is never physically deleted; cancellation and completion are
// expressed through State.
type Group struct {
	ID                uuid.UUID      // The Global Unique Identifier (GUID) for the group. Immutable.
	GroupType         GroupType      // "local" or "normal".
	Name              string         // Display name chosen by the manager.
	ProductID         uuid.UUID      // Foreign key to the product being bought. Immutable.
	Location          string         // Free-form pickup address.
	Latitude          float64        // Geocoded latitude of Location.
	Longitude         float64        // Geocoded longitude of Location.
	Deadline          time.Time      // Recruiting deadline; passing it while still recruiting expires the group.
	State             GroupState     // Current lifecycle state.
	RemainedPersonnel int            // Remaining purchasable quantity before the minimum threshold is met.
	Participants      []*Participant // Ordered by join time; index 0 is the manager.
	Version           int64          // Optimistic-lock version guarding participant/capacity mutation.
	CreatedAt         time.Time      // Timestamp of group creation.
	UpdatedAt         time.Time      // Timestamp of the last modification.
}

// Participant is a user's membership record within a group, carrying
// quantity and payment linkage.
type Participant struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the participant record.
	GroupID   uuid.UUID // The group this membership belongs to.
	UserID    uuid.UUID // The participating user. Unique within a group.
	JoinedAt  time.Time // Timestamp of when the user joined.
	Quantity  int       // Purchased quantity, >= 1.
	PaymentID uuid.UUID // The payment ledger entry created at join time.
	Complete  bool      // True once the participant's vouchers are fully redeemed.
	Manager   bool      // True for the creator only; their withdrawal cancels the group.
	Review    bool      // Whether this participant has left a review.
}

// FindParticipant returns the membership record for userID, or nil.
func (g *Group) FindParticipant(userID uuid.UUID) *Participant {
	for _, p := range g.Participants {
		if p.UserID == userID {
			return p
		}
	}

	return nil
}

// CommittedQuantity sums the quantities of all participants.
func (g *Group) CommittedQuantity() int {
	total := 0
	for _, p := range g.Participants {
		total += p.Quantity
	}

	return total
}
