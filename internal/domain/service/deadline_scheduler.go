package service

import (
	"time"

	"github.com/google/uuid"
)

// DeadlineScheduler arms one-shot expiry timers keyed by group ID. The
// arena of pending timers is an in-process optimization only: expiry
// correctness is guaranteed by the durable sweep over persisted deadlines,
// and the expiry handler itself is idempotent, so lost or duplicated timer
// fires are safe.
type DeadlineScheduler interface {
	// Schedule arms (or re-arms) the expiry timer for a group.
	Schedule(groupID uuid.UUID, deadline time.Time)

	// Cancel drops a pending timer. Purely an optimization; an un-cancelled
	// timer is a no-op thanks to the state re-check at fire time.
	Cancel(groupID uuid.UUID)
}
