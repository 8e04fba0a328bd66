package usecase

import (
	"context"

	"moa/internal/domain/entity"
	"moa/internal/domain/service"

	"github.com/google/uuid"
)

// AlertUsecase is the notification sink: it turns lifecycle events into
// persisted alerts and best-effort push notifications, and serves the user's
// notification inbox.
type AlertUsecase interface {
	// ProcessStateEvent records an alert for every recipient of the event and
	// pushes to their registered devices. Push failures are logged, never
	// returned.
	ProcessStateEvent(ctx context.Context, event *service.GroupStateEvent) error

	// ListAlerts retrieves a user's alerts, newest first.
	ListAlerts(ctx context.Context, userID uuid.UUID) ([]*entity.Alert, error)

	// MarkRead stamps the read time on an alert owned by the user.
	MarkRead(ctx context.Context, alertID, userID uuid.UUID) error
}
