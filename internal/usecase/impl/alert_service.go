package impl

import (
	"context"
	"log/slog"
	"time"

	"moa/internal/domain/entity"
	domainerrors "moa/internal/domain/errors"
	"moa/internal/domain/repository"
	"moa/internal/domain/service"
	"moa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const alertInboxLimit = 50

type alertService struct {
	alertRepo repository.AlertRepository
	userRepo  repository.UserRepository
	pushSvc   service.NotificationService // nil when push delivery is disabled
	logger    *slog.Logger
}

// NewAlertService creates the notification sink service consumed by the
// worker and the inbox endpoints.
func NewAlertService(alertRepo repository.AlertRepository, userRepo repository.UserRepository, pushSvc service.NotificationService, logger *slog.Logger) usecase.AlertUsecase {
	return &alertService{
		alertRepo: alertRepo,
		userRepo:  userRepo,
		pushSvc:   pushSvc,
		logger:    logger,
	}
}

// ProcessStateEvent records an alert for every recipient and pushes to their
// registered devices. Push failures are logged, never returned: delivery is
// best-effort by contract.
func (s *alertService) ProcessStateEvent(ctx context.Context, event *service.GroupStateEvent) error {
	groupID, err := uuid.Parse(event.GroupID)
	if err != nil {
		return errors.Wrap(err, "invalid group ID in event")
	}

	var tokens []string
	for _, recipient := range event.RecipientIDs {
		userID, err := uuid.Parse(recipient)
		if err != nil {
			s.logger.Warn("skipping malformed recipient ID",
				slog.String("recipient", recipient),
				slog.String("groupID", event.GroupID),
			)

			continue
		}

		alert := &entity.Alert{
			ID:        uuid.New(),
			UserID:    userID,
			GroupID:   groupID,
			GroupName: event.GroupName,
			State:     event.State,
			Image:     event.Image,
			Content:   event.Content,
			CreatedAt: time.Now(),
		}
		if err := s.alertRepo.CreateAlert(ctx, alert); err != nil {
			// Persistence failures are transient; surface them as retryable
			// so the broker redelivers instead of dropping the alert.
			return domainerrors.Retryable(errors.Wrap(err, "failed to create alert"))
		}

		user, err := s.userRepo.FindUserByID(ctx, userID)
		if err != nil {
			s.logger.Warn("failed to resolve alert recipient",
				slog.String("userID", userID.String()),
				slog.Any("error", err),
			)

			continue
		}
		if user.PushToken != "" {
			tokens = append(tokens, user.PushToken)
		}
	}

	if s.pushSvc == nil || len(tokens) == 0 {
		return nil
	}

	success, failure, invalid, err := s.pushSvc.SendBatchNotification(ctx, tokens, event.GroupName, event.Content, map[string]string{
		"group_id": event.GroupID,
		"state":    event.State.String(),
	})
	if err != nil {
		s.logger.Warn("push delivery failed",
			slog.String("groupID", event.GroupID),
			slog.Any("error", err),
		)

		return nil
	}
	s.logger.Info("pushed group state alerts",
		slog.String("groupID", event.GroupID),
		slog.Int("success", success),
		slog.Int("failure", failure),
		slog.Int("invalidTokens", len(invalid)),
	)

	return nil
}

// ListAlerts retrieves a user's alerts, newest first.
func (s *alertService) ListAlerts(ctx context.Context, userID uuid.UUID) ([]*entity.Alert, error) {
	alerts, err := s.alertRepo.FindAlertsByUser(ctx, userID, alertInboxLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find alerts by user")
	}

	return alerts, nil
}

// MarkRead stamps the read time on an alert owned by the user.
func (s *alertService) MarkRead(ctx context.Context, alertID, userID uuid.UUID) error {
	if err := s.alertRepo.MarkAlertRead(ctx, alertID, userID); err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return domainerrors.ErrAlertNotFound
		}

		return errors.Wrap(err, "failed to mark alert read")
	}

	return nil
}
