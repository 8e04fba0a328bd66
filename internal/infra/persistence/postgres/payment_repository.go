package postgres

import (
	"context"
	"time"

	"moa/internal/domain/entity"
	"moa/internal/domain/repository"
	"moa/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the domain.PaymentRepository interface using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// CreatePayment persists a new ledger entry.
func (repo *paymentRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		return errors.Wrap(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// FindPaymentByID retrieves a ledger entry by its unique ID.
func (repo *paymentRepository) FindPaymentByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&paymentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by id")
	}

	return toPaymentDomain(&paymentM), nil
}

// FindPaymentByGroupAndUser retrieves the ledger entry for one participant of one group.
func (repo *paymentRepository) FindPaymentByGroupAndUser(ctx context.Context, groupID, userID uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	err := repo.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&paymentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by group and user")
	}

	return toPaymentDomain(&paymentM), nil
}

// FindPaymentsByGroup retrieves all ledger entries of a group, oldest first.
func (repo *paymentRepository) FindPaymentsByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel

	err := repo.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Find(&paymentModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payments by group")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

// UpdatePayment persists changes to an existing ledger entry.
func (repo *paymentRepository) UpdatePayment(ctx context.Context, payment *entity.Payment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ?", payment.ID).
		Updates(map[string]any{
			"due_date": payment.DueDate,
			"used":     payment.Used,
			"voucher":  payment.Voucher,
			"method":   payment.Method,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update payment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// SetDueDateForGroup stamps the due date on every ledger entry of a group.
func (repo *paymentRepository) SetDueDateForGroup(ctx context.Context, groupID uuid.UUID, dueDate time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("group_id = ?", groupID).
		Update("due_date", dueDate).Error
	if err != nil {
		return errors.Wrap(err, "failed to set due date for group payments")
	}

	return nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:        data.ID,
		UserID:    data.UserID,
		GroupID:   data.GroupID,
		DueDate:   data.DueDate,
		Used:      data.Used,
		Voucher:   data.Voucher,
		Method:    data.Method,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPaymentDomain converts a domain Payment entity to a GORM PaymentModel.
func fromPaymentDomain(payment *entity.Payment) *model.PaymentModel {
	if payment == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:      payment.ID,
		UserID:  payment.UserID,
		GroupID: payment.GroupID,
		DueDate: payment.DueDate,
		Used:    payment.Used,
		Voucher: payment.Voucher,
		Method:  payment.Method,
	}
}
