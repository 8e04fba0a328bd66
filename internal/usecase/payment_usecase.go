package usecase

import (
	"context"
	"time"

	"moa/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentPatch is an optional-field patch for SetPayment. Nil fields are
// left untouched.
type PaymentPatch struct {
	DueDate *time.Time
	Used    *bool
	Voucher *int
}

// PaymentUsecase manages the per-participant voucher ledger. Entries are
// created by the lifecycle engine at join time and only ever mutated here.
type PaymentUsecase interface {
	// GetPayment retrieves a ledger entry.
	GetPayment(ctx context.Context, paymentID uuid.UUID) (*entity.Payment, error)

	// ListGroupPayments retrieves the full ledger of a group.
	ListGroupPayments(ctx context.Context, groupID uuid.UUID) ([]*entity.Payment, error)

	// SetPayment applies independently-optional updates to a ledger entry.
	// Driving the voucher count to zero marks the owning participant's order
	// complete.
	SetPayment(ctx context.Context, paymentID uuid.UUID, patch *PaymentPatch) (*entity.Payment, error)

	// RedeemVoucher consumes one voucher use, the external fulfillment event.
	// The last redemption flips the entry to used and completes the
	// participant.
	RedeemVoucher(ctx context.Context, paymentID uuid.UUID) (*entity.Payment, error)
}
