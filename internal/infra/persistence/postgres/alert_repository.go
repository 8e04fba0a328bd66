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

// alertRepository implements the domain.AlertRepository interface using GORM.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{db: db}
}

// CreateAlert persists a new alert record.
func (repo *alertRepository) CreateAlert(ctx context.Context, alert *entity.Alert) error {
	alertM := fromAlertDomain(alert)

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		return errors.Wrap(err, "failed to create alert")
	}

	alert.ID = alertM.ID
	alert.CreatedAt = alertM.CreatedAt

	return nil
}

// FindAlertsByUser retrieves a user's alerts, newest first.
func (repo *alertRepository) FindAlertsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Alert, error) {
	var alertModels []*model.AlertModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alerts by user")
	}

	alerts := make([]*entity.Alert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts, nil
}

// MarkAlertRead stamps the read time on an alert owned by the user. Already
// read alerts keep their original timestamp.
func (repo *alertRepository) MarkAlertRead(ctx context.Context, alertID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("id = ? AND user_id = ? AND read_at IS NULL", alertID, userID).
		Update("read_at", time.Now())
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark alert read")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.AlertModel{}).
			Where("id = ? AND user_id = ?", alertID, userID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check alert existence")
		}
		if count == 0 {
			return repository.ErrAlertNotFound
		}
	}

	return nil
}

// --- Mapper Functions ---

// toAlertDomain converts a GORM AlertModel to a domain Alert entity.
func toAlertDomain(data *model.AlertModel) *entity.Alert {
	if data == nil {
		return nil
	}

	return &entity.Alert{
		ID:        data.ID,
		UserID:    data.UserID,
		GroupID:   data.GroupID,
		GroupName: data.GroupName,
		State:     entity.GroupState(data.State),
		Image:     data.Image,
		Content:   data.Content,
		ReadAt:    data.ReadAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromAlertDomain converts a domain Alert entity to a GORM AlertModel.
func fromAlertDomain(alert *entity.Alert) *model.AlertModel {
	if alert == nil {
		return nil
	}

	return &model.AlertModel{
		ID:        alert.ID,
		UserID:    alert.UserID,
		GroupID:   alert.GroupID,
		GroupName: alert.GroupName,
		State:     int(alert.State),
		Image:     alert.Image,
		Content:   alert.Content,
		ReadAt:    alert.ReadAt,
	}
}
