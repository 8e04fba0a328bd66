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
	"gorm.io/gorm/clause"
)

// groupRepository implements the domain.GroupRepository interface using GORM.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository is the constructor for groupRepository.
func NewGroupRepository(db *gorm.DB) repository.GroupRepository {
	return &groupRepository{db: db}
}

// CreateGroup persists a new group aggregate, including its initial
// participant rows, in one insert with associations.
func (repo *groupRepository) CreateGroup(ctx context.Context, group *entity.Group) error {
	groupM := fromGroupDomain(group)

	if err := repo.db.WithContext(ctx).Create(groupM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateParticipant
		}
		if isForeignKeyConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "invalid group record")
		}

		return errors.Wrap(err, "failed to create group")
	}

	// Copy back generated IDs and timestamps.
	group.ID = groupM.ID
	group.Version = groupM.Version
	group.CreatedAt = groupM.CreatedAt
	group.UpdatedAt = groupM.UpdatedAt
	for i, participantM := range groupM.Participants {
		group.Participants[i].ID = participantM.ID
		group.Participants[i].GroupID = groupM.ID
	}

	return nil
}

// FindGroupByID retrieves a group with its participants in join order.
func (repo *groupRepository) FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	var groupM model.GroupModel

	err := repo.db.WithContext(ctx).
		Preload("Participants", participantJoinOrder).
		Where("id = ?", id).
		First(&groupM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find group by id")
	}

	return toGroupDomain(&groupM), nil
}

// SaveGroup persists the aggregate as one conditional write. The UPDATE on
// the groups row is guarded by the version the caller read; zero affected
// rows means another writer committed in between and the caller must re-read
// and retry. Participant rows are reconciled inside the same transaction, so
// a lost race can never leave a half-applied membership change.
func (repo *groupRepository) SaveGroup(ctx context.Context, group *entity.Group) error {
	now := time.Now()

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.GroupModel{}).
			Where("id = ? AND version = ?", group.ID, group.Version).
			Updates(map[string]any{
				"group_type":         string(group.GroupType),
				"name":               group.Name,
				"location":           group.Location,
				"latitude":           group.Latitude,
				"longitude":          group.Longitude,
				"deadline":           group.Deadline,
				"state":              int(group.State),
				"remained_personnel": group.RemainedPersonnel,
				"version":            group.Version + 1,
				"updated_at":         now,
			})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to save group")
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&model.GroupModel{}).Where("id = ?", group.ID).Count(&count).Error; err != nil {
				return errors.Wrap(err, "failed to check group existence")
			}
			if count == 0 {
				return repository.ErrGroupNotFound
			}

			return repository.ErrVersionConflict
		}

		return syncParticipants(tx, group)
	})
	if err != nil {
		return err
	}

	group.Version++
	group.UpdatedAt = now

	return nil
}

// syncParticipants reconciles the participant rows with the aggregate's
// in-memory list: memberships removed from the list are deleted, the rest
// are upserted on (group_id, user_id).
func syncParticipants(tx *gorm.DB, group *entity.Group) error {
	userIDs := make([]uuid.UUID, 0, len(group.Participants))
	for _, participant := range group.Participants {
		userIDs = append(userIDs, participant.UserID)
	}

	pruneQuery := tx.Where("group_id = ?", group.ID)
	if len(userIDs) > 0 {
		pruneQuery = pruneQuery.Where("user_id NOT IN ?", userIDs)
	}
	if err := pruneQuery.Delete(&model.ParticipantModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to prune participants")
	}

	for _, participant := range group.Participants {
		participantM := fromParticipantDomain(group.ID, participant)

		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "group_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "payment_id", "complete", "review", "updated_at"}),
		}).Create(participantM).Error
		if err != nil {
			return errors.Wrap(err, "failed to upsert participant")
		}

		participant.ID = participantM.ID
	}

	return nil
}

// CompareAndSwapState transitions the group only if it is still in the
// expected state. Used by the deadline sweep so a concurrent join that meets
// the threshold first silently wins.
func (repo *groupRepository) CompareAndSwapState(ctx context.Context, id uuid.UUID, from, to entity.GroupState) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.GroupModel{}).
		Where("id = ? AND state = ?", id, int(from)).
		Updates(map[string]any{
			"state":      int(to),
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to swap group state")
	}

	if result.RowsAffected > 0 {
		return true, nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.GroupModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check group existence")
	}
	if count == 0 {
		return false, repository.ErrGroupNotFound
	}

	return false, nil
}

// FindRecruitingGroups retrieves every group still recruiting. Participants
// are not loaded; the caller only needs IDs and deadlines to rebuild timers.
func (repo *groupRepository) FindRecruitingGroups(ctx context.Context) ([]*entity.Group, error) {
	var groupModels []*model.GroupModel

	err := repo.db.WithContext(ctx).
		Where("state = ?", int(entity.StateRecruiting)).
		Order("deadline ASC").
		Find(&groupModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recruiting groups")
	}

	return toGroupDomainList(groupModels), nil
}

// FindGroupsClosingWithin retrieves groups whose deadline falls inside the
// window, soonest first.
func (repo *groupRepository) FindGroupsClosingWithin(ctx context.Context, now time.Time, window time.Duration) ([]*entity.Group, error) {
	var groupModels []*model.GroupModel

	err := repo.db.WithContext(ctx).
		Preload("Participants", participantJoinOrder).
		Where("deadline BETWEEN ? AND ?", now, now.Add(window)).
		Order("deadline ASC").
		Find(&groupModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find groups closing within window")
	}

	return toGroupDomainList(groupModels), nil
}

// FindOpenGroupsByRemaining retrieves recruiting groups closest to their
// threshold first.
func (repo *groupRepository) FindOpenGroupsByRemaining(ctx context.Context, limit int) ([]*entity.Group, error) {
	var groupModels []*model.GroupModel

	query := repo.db.WithContext(ctx).
		Preload("Participants", participantJoinOrder).
		Where("state = ?", int(entity.StateRecruiting)).
		Order("remained_personnel ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&groupModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find open groups by remaining capacity")
	}

	return toGroupDomainList(groupModels), nil
}

// CountNearbyOpenGroups counts recruiting local groups within radiusMeters
// of the given point.
func (repo *groupRepository) CountNearbyOpenGroups(ctx context.Context, lat, lon, radiusMeters float64) (int64, error) {
	var count int64

	// Use PostGIS ST_DWithin for efficient geographic queries
	query := `
		SELECT COUNT(*)
		FROM groups g
		WHERE g.state = ?
		  AND g.group_type = ?
		  AND ST_DWithin(
		    ST_SetSRID(ST_MakePoint(g.longitude, g.latitude), 4326)::geography,
		    ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
		    ?
		  )
	`

	err := repo.db.WithContext(ctx).
		Raw(query, int(entity.StateRecruiting), string(entity.GroupTypeLocal), lon, lat, radiusMeters).
		Scan(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count nearby open groups")
	}

	return count, nil
}

// FindNearbyOpenGroups performs a PostGIS geographic query for recruiting
// local groups within radiusMeters of the given point, newest first.
func (repo *groupRepository) FindNearbyOpenGroups(ctx context.Context, lat, lon, radiusMeters float64, limit, offset int) ([]*entity.Group, error) {
	var groupModels []*model.GroupModel

	query := `
		SELECT g.*
		FROM groups g
		WHERE g.state = ?
		  AND g.group_type = ?
		  AND ST_DWithin(
		    ST_SetSRID(ST_MakePoint(g.longitude, g.latitude), 4326)::geography,
		    ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
		    ?
		  )
		ORDER BY g.created_at DESC
		LIMIT ? OFFSET ?
	`

	err := repo.db.WithContext(ctx).
		Raw(query, int(entity.StateRecruiting), string(entity.GroupTypeLocal), lon, lat, radiusMeters, limit, offset).
		Scan(&groupModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby open groups")
	}

	if err := repo.attachParticipants(ctx, groupModels); err != nil {
		return nil, err
	}

	return toGroupDomainList(groupModels), nil
}

// FindRecentOpenGroups retrieves the newest recruiting groups of the given
// type system-wide.
func (repo *groupRepository) FindRecentOpenGroups(ctx context.Context, groupType entity.GroupType, limit int) ([]*entity.Group, error) {
	var groupModels []*model.GroupModel

	query := repo.db.WithContext(ctx).
		Preload("Participants", participantJoinOrder).
		Where("state = ? AND group_type = ?", int(entity.StateRecruiting), string(groupType)).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&groupModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent open groups")
	}

	return toGroupDomainList(groupModels), nil
}

// SetParticipantComplete marks a participant's order as fulfilled.
func (repo *groupRepository) SetParticipantComplete(ctx context.Context, groupID, userID uuid.UUID) error {
	return repo.setParticipantFlag(ctx, groupID, userID, "complete")
}

// SetParticipantReviewed flags that the participant left a review.
func (repo *groupRepository) SetParticipantReviewed(ctx context.Context, groupID, userID uuid.UUID) error {
	return repo.setParticipantFlag(ctx, groupID, userID, "review")
}

func (repo *groupRepository) setParticipantFlag(ctx context.Context, groupID, userID uuid.UUID, column string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ParticipantModel{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Update(column, true)

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to set participant %s", column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrParticipantNotFound
	}

	return nil
}

// attachParticipants loads participant rows for groups fetched through raw
// SQL, where Preload is not available.
func (repo *groupRepository) attachParticipants(ctx context.Context, groupModels []*model.GroupModel) error {
	if len(groupModels) == 0 {
		return nil
	}

	groupIDs := make([]uuid.UUID, 0, len(groupModels))
	for _, groupM := range groupModels {
		groupIDs = append(groupIDs, groupM.ID)
	}

	var participantModels []model.ParticipantModel
	err := repo.db.WithContext(ctx).
		Where("group_id IN ?", groupIDs).
		Order("joined_at ASC").
		Find(&participantModels).Error
	if err != nil {
		return errors.Wrap(err, "failed to load participants")
	}

	byGroup := make(map[uuid.UUID][]model.ParticipantModel, len(groupModels))
	for _, participantM := range participantModels {
		byGroup[participantM.GroupID] = append(byGroup[participantM.GroupID], participantM)
	}
	for _, groupM := range groupModels {
		groupM.Participants = byGroup[groupM.ID]
	}

	return nil
}

// participantJoinOrder preloads participants in join order so index 0 is
// always the manager.
func participantJoinOrder(db *gorm.DB) *gorm.DB {
	return db.Order("joined_at ASC")
}

// --- Mapper Functions ---

// toGroupDomain converts a GORM GroupModel to a domain Group entity.
func toGroupDomain(data *model.GroupModel) *entity.Group {
	if data == nil {
		return nil
	}

	participants := make([]*entity.Participant, 0, len(data.Participants))
	for i := range data.Participants {
		participants = append(participants, toParticipantDomain(&data.Participants[i]))
	}

	return &entity.Group{
		ID:                data.ID,
		GroupType:         entity.GroupType(data.GroupType),
		Name:              data.Name,
		ProductID:         data.ProductID,
		Location:          data.Location,
		Latitude:          data.Latitude,
		Longitude:         data.Longitude,
		Deadline:          data.Deadline,
		State:             entity.GroupState(data.State),
		RemainedPersonnel: data.RemainedPersonnel,
		Participants:      participants,
		Version:           data.Version,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func toGroupDomainList(data []*model.GroupModel) []*entity.Group {
	groups := make([]*entity.Group, 0, len(data))
	for _, groupM := range data {
		groups = append(groups, toGroupDomain(groupM))
	}

	return groups
}

// toParticipantDomain converts a GORM ParticipantModel to a domain Participant entity.
func toParticipantDomain(data *model.ParticipantModel) *entity.Participant {
	if data == nil {
		return nil
	}

	return &entity.Participant{
		ID:        data.ID,
		GroupID:   data.GroupID,
		UserID:    data.UserID,
		JoinedAt:  data.JoinedAt,
		Quantity:  data.Quantity,
		PaymentID: data.PaymentID,
		Complete:  data.Complete,
		Manager:   data.Manager,
		Review:    data.Review,
	}
}

// fromGroupDomain converts a domain Group entity to a GORM GroupModel.
func fromGroupDomain(group *entity.Group) *model.GroupModel {
	if group == nil {
		return nil
	}

	participants := make([]model.ParticipantModel, 0, len(group.Participants))
	for _, participant := range group.Participants {
		participants = append(participants, *fromParticipantDomain(group.ID, participant))
	}

	return &model.GroupModel{
		ID:                group.ID,
		GroupType:         string(group.GroupType),
		Name:              group.Name,
		ProductID:         group.ProductID,
		Location:          group.Location,
		Latitude:          group.Latitude,
		Longitude:         group.Longitude,
		Deadline:          group.Deadline,
		State:             int(group.State),
		RemainedPersonnel: group.RemainedPersonnel,
		Version:           group.Version,
		Participants:      participants,
	}
}

// fromParticipantDomain converts a domain Participant entity to a GORM ParticipantModel.
func fromParticipantDomain(groupID uuid.UUID, participant *entity.Participant) *model.ParticipantModel {
	if participant == nil {
		return nil
	}

	return &model.ParticipantModel{
		ID:        participant.ID,
		GroupID:   groupID,
		UserID:    participant.UserID,
		JoinedAt:  participant.JoinedAt,
		Quantity:  participant.Quantity,
		PaymentID: participant.PaymentID,
		Complete:  participant.Complete,
		Manager:   participant.Manager,
		Review:    participant.Review,
	}
}
