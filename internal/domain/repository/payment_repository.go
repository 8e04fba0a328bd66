package repository

import (
	"context"
	"time"

	"moa/internal/domain/entity"
	"moa/internal/errors"

	"github.com/google/uuid"
)

// ErrPaymentNotFound is returned when a payment ledger entry is not found.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository defines the interface for payment-ledger database
// operations. Ledger entries are never deleted, only mutated.
type PaymentRepository interface {
	// CreatePayment persists a new ledger entry.
	CreatePayment(ctx context.Context, payment *entity.Payment) error

	// FindPaymentByID retrieves a ledger entry by its unique ID.
	FindPaymentByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindPaymentByGroupAndUser retrieves the ledger entry for one
	// participant of one group.
	FindPaymentByGroupAndUser(ctx context.Context, groupID, userID uuid.UUID) (*entity.Payment, error)

	// FindPaymentsByGroup retrieves all ledger entries of a group.
	FindPaymentsByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.Payment, error)

	// UpdatePayment persists changes to an existing ledger entry.
	UpdatePayment(ctx context.Context, payment *entity.Payment) error

	// SetDueDateForGroup stamps the due date on every ledger entry of a
	// group. Called when the group reaches its minimum threshold.
	SetDueDateForGroup(ctx context.Context, groupID uuid.UUID, dueDate time.Time) error
}
