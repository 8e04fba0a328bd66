package impl

import (
	"context"
	"log/slog"
	"time"

	"moa/internal/domain/entity"
	domainerrors "moa/internal/domain/errors"
	"moa/internal/domain/repository"
	"moa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	groupRepo   repository.GroupRepository
	logger      *slog.Logger
}

// NewPaymentService creates the payment ledger service.
func NewPaymentService(paymentRepo repository.PaymentRepository, groupRepo repository.GroupRepository, logger *slog.Logger) usecase.PaymentUsecase {
	return &paymentService{
		paymentRepo: paymentRepo,
		groupRepo:   groupRepo,
		logger:      logger,
	}
}

// GetPayment retrieves a ledger entry.
func (s *paymentService) GetPayment(ctx context.Context, paymentID uuid.UUID) (*entity.Payment, error) {
	return s.findPayment(ctx, paymentID)
}

// ListGroupPayments retrieves the full ledger of a group.
func (s *paymentService) ListGroupPayments(ctx context.Context, groupID uuid.UUID) ([]*entity.Payment, error) {
	payments, err := s.paymentRepo.FindPaymentsByGroup(ctx, groupID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payments by group")
	}

	return payments, nil
}

// SetPayment applies independently-optional updates to a ledger entry.
// Driving the voucher count to zero completes the owning participant.
func (s *paymentService) SetPayment(ctx context.Context, paymentID uuid.UUID, patch *usecase.PaymentPatch) (*entity.Payment, error) {
	payment, err := s.findPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if patch.DueDate != nil {
		payment.DueDate = patch.DueDate
	}
	if patch.Used != nil {
		payment.Used = *patch.Used
	}

	depleted := false
	if patch.Voucher != nil {
		if *patch.Voucher < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("voucher count cannot be negative")
		}
		depleted = *patch.Voucher == 0 && payment.Voucher > 0
		payment.Voucher = *patch.Voucher
	}
	payment.UpdatedAt = time.Now()

	if err := s.paymentRepo.UpdatePayment(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to update payment")
	}

	if depleted {
		s.completeParticipant(ctx, payment)
	}

	return payment, nil
}

// RedeemVoucher consumes one voucher use. The last redemption flips the
// entry to used and completes the participant.
func (s *paymentService) RedeemVoucher(ctx context.Context, paymentID uuid.UUID) (*entity.Payment, error) {
	payment, err := s.findPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.Voucher <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no voucher uses remaining")
	}

	payment.Voucher--
	if payment.Voucher == 0 {
		payment.Used = true
	}
	payment.UpdatedAt = time.Now()

	if err := s.paymentRepo.UpdatePayment(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to update payment")
	}

	if payment.Voucher == 0 {
		s.completeParticipant(ctx, payment)
	}

	return payment, nil
}

// completeParticipant calls back into the lifecycle engine's store to flip
// the participant's complete flag. The ledger entry already committed, so a
// failure here is logged for repair rather than propagated.
func (s *paymentService) completeParticipant(ctx context.Context, payment *entity.Payment) {
	if err := s.groupRepo.SetParticipantComplete(ctx, payment.GroupID, payment.UserID); err != nil {
		s.logger.Error("failed to complete participant after voucher depletion",
			slog.String("groupID", payment.GroupID.String()),
			slog.String("userID", payment.UserID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *paymentService) findPayment(ctx context.Context, paymentID uuid.UUID) (*entity.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by ID")
	}

	return payment, nil
}
