package repository

import (
	"context"

	"moa/internal/domain/entity"
	"moa/internal/errors"

	"github.com/google/uuid"
)

// ErrAlertNotFound is returned when an alert is not found.
var ErrAlertNotFound = errors.New("alert not found")

// AlertRepository defines the interface for the persisted notification inbox.
type AlertRepository interface {
	// CreateAlert persists a new alert record.
	CreateAlert(ctx context.Context, alert *entity.Alert) error

	// FindAlertsByUser retrieves a user's alerts, newest first.
	FindAlertsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Alert, error)

	// MarkAlertRead stamps the read time on an alert owned by the user.
	MarkAlertRead(ctx context.Context, alertID, userID uuid.UUID) error
}
