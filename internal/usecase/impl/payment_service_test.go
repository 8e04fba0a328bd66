package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"moa/internal/domain/entity"
	domainerrors "moa/internal/domain/errors"
	"moa/internal/domain/repository"
	mockRepo "moa/internal/mocks/repository"
	"moa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPaymentServiceForTest(t *testing.T) (usecase.PaymentUsecase, *mockRepo.MockPaymentRepository, *mockRepo.MockGroupRepository) {
	mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)
	mockGroupRepo := mockRepo.NewMockGroupRepository(t)
	service := NewPaymentService(mockPaymentRepo, mockGroupRepo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return service, mockPaymentRepo, mockGroupRepo
}

func ledgerEntry(voucher int) *entity.Payment {
	return &entity.Payment{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		GroupID:   uuid.New(),
		Voucher:   voucher,
		Method:    "credit_card",
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
	}
}

func TestPaymentService_GetPayment(t *testing.T) {
	service, mockPaymentRepo, _ := newPaymentServiceForTest(t)

	ctx := context.Background()
	payment := ledgerEntry(3)

	mockPaymentRepo.EXPECT().FindPaymentByID(ctx, payment.ID).Return(payment, nil)

	result, err := service.GetPayment(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, payment, result)
}

func TestPaymentService_GetPayment_NotFound(t *testing.T) {
	service, mockPaymentRepo, _ := newPaymentServiceForTest(t)

	ctx := context.Background()
	paymentID := uuid.New()

	mockPaymentRepo.EXPECT().FindPaymentByID(ctx, paymentID).Return(nil, repository.ErrPaymentNotFound)

	_, err := service.GetPayment(ctx, paymentID)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)
}

func TestPaymentService_SetPayment_PartialPatch(t *testing.T) {
	service, mockPaymentRepo, _ := newPaymentServiceForTest(t)

	ctx := context.Background()
	payment := ledgerEntry(3)
	dueDate := time.Now().Add(72 * time.Hour)

	mockPaymentRepo.EXPECT().FindPaymentByID(ctx, payment.ID).Return(payment, nil)
	mockPaymentRepo.EXPECT().UpdatePayment(ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)

	result, err := service.SetPayment(ctx, payment.ID, &usecase.PaymentPatch{DueDate: &dueDate})
	require.NoError(t, err)
	require.NotNil(t, result.DueDate)
	assert.Equal(t, dueDate, *result.DueDate)
	assert.Equal(t, 3, result.Voucher, "untouched fields keep their values")
	assert.False(t, result.Used)
}

func TestPaymentService_SetPayment_VoucherDepletionCompletesParticipant(t *testing.T) {
	service, mockPaymentRepo, mockGroupRepo := newPaymentServiceForTest(t)

	ctx := context.Background()
	payment := ledgerEntry(3)

	mockPaymentRepo.EXPECT().FindPaymentByID(ctx, payment.ID).Return(payment, nil)
	mockPaymentRepo.EXPECT().UpdatePayment(ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)
	mockGroupRepo.EXPECT().SetParticipantComplete(ctx, payment.GroupID, payment.UserID).Return(nil)

	zero := 0
	result, err := service.SetPayment(ctx, payment.ID, &usecase.PaymentPatch{Voucher: &zero})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Voucher)
}

func TestPaymentService_SetPayment_NegativeVoucherRejected(t *testing.T) {
	service, mockPaymentRepo, _ := newPaymentServiceForTest(t)

	ctx := context.Background()
	payment := ledgerEntry(3)

	mockPaymentRepo.EXPECT().FindPaymentByID(ctx, payment.ID).Return(payment, nil)

	negative := -1
	_, err := service.SetPayment(ctx, payment.ID, &usecase.PaymentPatch{Voucher: &negative})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentService_SetPayment_CompletionFailureDoesNotFail(t *testing.T) {
	service, mockPaymentRepo, mockGroupRepo := newPaymentServiceForTest(t)

	ctx := context.Background()
	payment := ledgerEntry(1)

	mockPaymentRepo.EXPECT().FindPaymentByID(ctx, payment.ID).Return(payment, nil)
	mockPaymentRepo.EXPECT().UpdatePayment(ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)
	mockGroupRepo.EXPECT().
		SetParticipantComplete(ctx, payment.GroupID, payment.UserID).
		Return(errors.New("participant store unavailable"))

	zero := 0
	_, err := service.SetPayment(ctx, payment.ID, &usecase.PaymentPatch{Voucher: &zero})
	require.NoError(t, err, "the ledger entry already committed; completion is repaired out of band")
}

func TestPaymentService_RedeemVoucher_ConsumesOneUse(t *testing.T) {
	service, mockPaymentRepo, _ := newPaymentServiceForTest(t)

	ctx := context.Background()
	payment := ledgerEntry(3)

	mockPaymentRepo.EXPECT().FindPaymentByID(ctx, payment.ID).Return(payment, nil)
	mockPaymentRepo.EXPECT().UpdatePayment(ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)

	result, err := service.RedeemVoucher(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Voucher)
	assert.False(t, result.Used)
}

func TestPaymentService_RedeemVoucher_LastUseMarksUsed(t *testing.T) {
	service, mockPaymentRepo, mockGroupRepo := newPaymentServiceForTest(t)

	ctx := context.Background()
	payment := ledgerEntry(1)

	mockPaymentRepo.EXPECT().FindPaymentByID(ctx, payment.ID).Return(payment, nil)
	mockPaymentRepo.EXPECT().UpdatePayment(ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)
	mockGroupRepo.EXPECT().SetParticipantComplete(ctx, payment.GroupID, payment.UserID).Return(nil)

	result, err := service.RedeemVoucher(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Voucher)
	assert.True(t, result.Used)
}

func TestPaymentService_RedeemVoucher_NoUsesRemaining(t *testing.T) {
	service, mockPaymentRepo, _ := newPaymentServiceForTest(t)

	ctx := context.Background()
	payment := ledgerEntry(0)

	mockPaymentRepo.EXPECT().FindPaymentByID(ctx, payment.ID).Return(payment, nil)

	_, err := service.RedeemVoucher(ctx, payment.ID)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentService_ListGroupPayments(t *testing.T) {
	service, mockPaymentRepo, _ := newPaymentServiceForTest(t)

	ctx := context.Background()
	groupID := uuid.New()
	expected := []*entity.Payment{ledgerEntry(2), ledgerEntry(1)}

	mockPaymentRepo.EXPECT().FindPaymentsByGroup(ctx, groupID).Return(expected, nil)

	payments, err := service.ListGroupPayments(ctx, groupID)
	require.NoError(t, err)
	assert.Equal(t, expected, payments)
}
