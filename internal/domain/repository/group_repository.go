// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"moa/internal/domain/entity"
	"moa/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for group persistence.
var (
	// ErrGroupNotFound is returned when a group is not found.
	ErrGroupNotFound = errors.New("group not found")
	// ErrVersionConflict is returned when a conditional write lost the race
	// against a concurrent mutation of the same group.
	ErrVersionConflict = errors.New("group version conflict")
	// ErrParticipantNotFound is returned when a participant record is not found.
	ErrParticipantNotFound = errors.New("participant not found")
	// ErrDuplicateParticipant is returned when a user already has a membership
	// record in the group.
	ErrDuplicateParticipant = errors.New("participant already exists")
)

// GroupRepository defines the interface for group-related database operations.
//
// The participant list is exposed as part of the Group aggregate: reads
// return the group with participants in join order, and SaveGroup applies
// every aggregate change as one conditional write so concurrent joins can
// never both observe stale remaining capacity.
type GroupRepository interface {
	// CreateGroup persists a new group together with its initial participant.
	CreateGroup(ctx context.Context, group *entity.Group) error

	// FindGroupByID retrieves a group with its participants in join order.
	FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)

	// SaveGroup persists state, capacity, scalar-field and participant-list
	// changes made to the aggregate as a single write guarded by
	// group.Version. On success the in-memory version is advanced; when
	// another writer committed first it returns ErrVersionConflict and the
	// caller is expected to re-read and retry.
	SaveGroup(ctx context.Context, group *entity.Group) error

	// CompareAndSwapState transitions the group from one state to another
	// only if it is still in the from state. Returns whether the swap was
	// applied; a false result with nil error means the group had already
	// moved on, which callers treat as a no-op.
	CompareAndSwapState(ctx context.Context, id uuid.UUID, from, to entity.GroupState) (bool, error)

	// FindRecruitingGroups retrieves every group still in the recruiting
	// state. Used to replay deadline timers after a restart.
	FindRecruitingGroups(ctx context.Context) ([]*entity.Group, error)

	// FindGroupsClosingWithin retrieves groups whose deadline falls between
	// now and now+window, any state, ascending by deadline.
	FindGroupsClosingWithin(ctx context.Context, now time.Time, window time.Duration) ([]*entity.Group, error)

	// FindOpenGroupsByRemaining retrieves recruiting groups ascending by
	// remaining capacity.
	FindOpenGroupsByRemaining(ctx context.Context, limit int) ([]*entity.Group, error)

	// CountNearbyOpenGroups counts recruiting "local" groups within
	// radiusMeters of the given point.
	CountNearbyOpenGroups(ctx context.Context, lat, lon, radiusMeters float64) (int64, error)

	// FindNearbyOpenGroups performs a PostGIS geographic query for recruiting
	// "local" groups within radiusMeters of the given point, newest first,
	// with offset pagination over the matching set.
	FindNearbyOpenGroups(ctx context.Context, lat, lon, radiusMeters float64, limit, offset int) ([]*entity.Group, error)

	// FindRecentOpenGroups retrieves the newest recruiting groups of the
	// given type system-wide. Used as the fallback when no local group is in
	// range.
	FindRecentOpenGroups(ctx context.Context, groupType entity.GroupType, limit int) ([]*entity.Group, error)

	// SetParticipantComplete marks a participant's order as fulfilled. Called
	// by the payment ledger when a voucher count reaches zero.
	SetParticipantComplete(ctx context.Context, groupID, userID uuid.UUID) error

	// SetParticipantReviewed flags that the participant left a review.
	SetParticipantReviewed(ctx context.Context, groupID, userID uuid.UUID) error
}
