// Package usecase defines the application-facing interfaces of the group
// lifecycle engine and its supporting services.
package usecase

import (
	"context"
	"time"

	"moa/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateGroupInput carries the fields needed to open a new group buy.
type CreateGroupInput struct {
	GroupType     entity.GroupType
	Name          string
	Location      string
	ProductID     uuid.UUID
	Deadline      time.Time
	Quantity      int
	PaymentMethod string
}

// GroupPatch is an optional-field patch for UpdateGroup. Nil fields are left
// untouched.
type GroupPatch struct {
	Name      *string
	GroupType *entity.GroupType
	Location  *string
	Deadline  *time.Time
	ProductID *uuid.UUID
	State     *entity.GroupState
}

// GroupUsecase is the group lifecycle engine: it owns group creation,
// participant admission and removal, quantity edits, state transitions and
// deadline-driven expiry.
type GroupUsecase interface {
	// CreateGroup opens a new group buy with the creator as its manager
	// participant and arms the deadline timer.
	CreateGroup(ctx context.Context, userID uuid.UUID, input *CreateGroupInput) (*entity.Group, error)

	// JoinGroup admits a new participant and creates their payment ledger
	// entry. Reaching exactly zero remaining capacity flips the group to the
	// threshold-met state and stamps every payment's due date.
	JoinGroup(ctx context.Context, userID, groupID uuid.UUID, quantity int, paymentMethod string) (*entity.Group, error)

	// SetQuantity changes an existing participant's quantity, applying the
	// same zero-capacity transition rule as JoinGroup.
	SetQuantity(ctx context.Context, userID, groupID uuid.UUID, quantity int) (*entity.Group, error)

	// LeaveGroup removes a participant and restores their quantity. A manager
	// leaving cancels the whole group unconditionally.
	LeaveGroup(ctx context.Context, userID, groupID uuid.UUID) (*entity.Group, error)

	// UpdateGroup patches mutable group fields. A state change is validated
	// against the transition table and broadcast to all participants; a
	// location change is re-geocoded best-effort.
	UpdateGroup(ctx context.Context, groupID uuid.UUID, patch *GroupPatch) (*entity.Group, error)

	// CheckState returns the group's current state, or the fatal group-closed
	// error when the group no longer accepts participant mutation.
	CheckState(ctx context.Context, groupID uuid.UUID) (entity.GroupState, error)

	// ExpireGroup applies the deadline trigger: a group still recruiting is
	// moved to the expired state. Idempotent; returns whether the transition
	// was applied.
	ExpireGroup(ctx context.Context, groupID uuid.UUID) (bool, error)

	// MarkReviewed flags that the participant left a review for the group.
	MarkReviewed(ctx context.Context, userID, groupID uuid.UUID) error

	// GenerateInviteQR renders a QR code encoding a join invite for the group.
	GenerateInviteQR(ctx context.Context, groupID uuid.UUID) ([]byte, error)
}
