// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"log/slog"
	"time"

	"moa/config"
	"moa/internal/domain/entity"
	domainerrors "moa/internal/domain/errors"
	"moa/internal/domain/repository"
	"moa/internal/domain/service"
	"moa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type groupService struct {
	groupRepo   repository.GroupRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	txManager   repository.TransactionManager
	geocoder    service.Geocoder
	publisher   service.EventPublisher
	scheduler   service.DeadlineScheduler
	qrcodeSvc   service.QRCodeService
	logger      *slog.Logger
	config      *config.Config
}

// GroupServiceParams holds dependencies for the group lifecycle engine,
// injected by Fx.
type GroupServiceParams struct {
	fx.In

	GroupRepo   repository.GroupRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	TxManager   repository.TransactionManager
	Geocoder    service.Geocoder
	Publisher   service.EventPublisher
	Scheduler   service.DeadlineScheduler
	QRCodeSvc   service.QRCodeService
	Logger      *slog.Logger
	Config      *config.Config
}

// NewGroupService creates the group lifecycle engine instance.
func NewGroupService(params GroupServiceParams) usecase.GroupUsecase {
	// If GroupBuy is not configured, provide a default configuration
	if params.Config.GroupBuy == nil {
		params.Config.GroupBuy = &config.GroupBuyConfig{
			NearbyRadiusKm: 50,
			FallbackLimit:  20,
			ClosingWindow:  24 * time.Hour,
			MaxJoinRetries: 3,
			SweepInterval:  time.Minute,
			PageSize:       10,
		}
	}

	return &groupService{
		groupRepo:   params.GroupRepo,
		productRepo: params.ProductRepo,
		userRepo:    params.UserRepo,
		txManager:   params.TxManager,
		geocoder:    params.Geocoder,
		publisher:   params.Publisher,
		scheduler:   params.Scheduler,
		qrcodeSvc:   params.QRCodeSvc,
		logger:      params.Logger,
		config:      params.Config,
	}
}

// CreateGroup opens a new group buy with the creator as manager participant.
func (s *groupService) CreateGroup(ctx context.Context, userID uuid.UUID, input *usecase.CreateGroupInput) (*entity.Group, error) {
	product, err := s.findProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	if input.Quantity > product.MinPurchaseQty {
		return nil, domainerrors.ErrCapacityExceeded
	}

	coord, err := s.geocoder.AddressToCoordinate(ctx, input.Location)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("failed to geocode group location")
	}

	now := time.Now()
	remained := product.MinPurchaseQty - input.Quantity
	state := entity.StateRecruiting
	if remained == 0 {
		state = entity.StateThresholdMet
	}

	paymentID := uuid.New()
	group := &entity.Group{
		ID:                uuid.New(),
		GroupType:         input.GroupType,
		Name:              input.Name,
		ProductID:         product.ID,
		Location:          input.Location,
		Latitude:          coord.Latitude,
		Longitude:         coord.Longitude,
		Deadline:          input.Deadline,
		State:             state,
		RemainedPersonnel: remained,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	group.Participants = []*entity.Participant{{
		ID:        uuid.New(),
		GroupID:   group.ID,
		UserID:    userID,
		JoinedAt:  now,
		Quantity:  input.Quantity,
		PaymentID: paymentID,
		Manager:   true,
	}}

	payment := &entity.Payment{
		ID:        paymentID,
		UserID:    userID,
		GroupID:   group.ID,
		Voucher:   input.Quantity,
		Method:    input.PaymentMethod,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if state == entity.StateThresholdMet {
		due := now.AddDate(0, 0, product.TermDays)
		payment.DueDate = &due
	}

	if err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewGroupRepository().CreateGroup(ctx, group); err != nil {
			return errors.Wrap(err, "failed to create group")
		}
		if err := f.NewPaymentRepository().CreatePayment(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to create payment")
		}

		return nil
	}); err != nil {
		return nil, err
	}

	if state == entity.StateRecruiting {
		s.scheduler.Schedule(group.ID, group.Deadline)
	} else {
		s.notifyStateChange(ctx, group, firstImage(product))
	}

	return group, nil
}

// JoinGroup admits a new participant. The aggregate mutation is applied as a
// single version-guarded write and retried on conflict, so concurrent joins
// can never overshoot capacity.
func (s *groupService) JoinGroup(ctx context.Context, userID, groupID uuid.UUID, quantity int, paymentMethod string) (*entity.Group, error) {
	for attempt := 0; attempt < s.config.GroupBuy.MaxJoinRetries; attempt++ {
		group, err := s.findGroup(ctx, groupID)
		if err != nil {
			return nil, err
		}
		if err := mutationGuard(group); err != nil {
			return nil, err
		}
		if group.FindParticipant(userID) != nil {
			return nil, domainerrors.ErrAlreadyJoined
		}
		if quantity > group.RemainedPersonnel {
			return nil, domainerrors.ErrCapacityExceeded
		}

		now := time.Now()
		paymentID := uuid.New()
		group.Participants = append(group.Participants, &entity.Participant{
			ID:        uuid.New(),
			GroupID:   group.ID,
			UserID:    userID,
			JoinedAt:  now,
			Quantity:  quantity,
			PaymentID: paymentID,
		})
		group.RemainedPersonnel -= quantity

		thresholdMet := group.RemainedPersonnel == 0 &&
			group.State.CanTransition(entity.TriggerCapacityReached, entity.StateThresholdMet)
		if thresholdMet {
			group.State = entity.StateThresholdMet
		}

		payment := &entity.Payment{
			ID:        paymentID,
			UserID:    userID,
			GroupID:   group.ID,
			Voucher:   quantity,
			Method:    paymentMethod,
			CreatedAt: now,
			UpdatedAt: now,
		}

		var product *entity.Product
		if thresholdMet {
			if product, err = s.findProduct(ctx, group.ProductID); err != nil {
				return nil, err
			}
		}

		err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
			if err := f.NewGroupRepository().SaveGroup(ctx, group); err != nil {
				return err
			}
			if err := f.NewPaymentRepository().CreatePayment(ctx, payment); err != nil {
				return errors.Wrap(err, "failed to create payment")
			}
			if thresholdMet {
				due := now.AddDate(0, 0, product.TermDays)
				if err := f.NewPaymentRepository().SetDueDateForGroup(ctx, group.ID, due); err != nil {
					return errors.Wrap(err, "failed to set due dates")
				}
			}

			return nil
		})
		if errors.Is(err, repository.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}

		if thresholdMet {
			s.notifyStateChange(ctx, group, firstImage(product))
		}

		return group, nil
	}

	return nil, domainerrors.ErrConflictRetryExhausted
}

// SetQuantity changes a participant's committed quantity.
//
// Lowering the total after the threshold was already met does not reopen
// recruiting: once a group committed to the threshold-met state, a later
// reduction keeps it there.
func (s *groupService) SetQuantity(ctx context.Context, userID, groupID uuid.UUID, quantity int) (*entity.Group, error) {
	for attempt := 0; attempt < s.config.GroupBuy.MaxJoinRetries; attempt++ {
		group, err := s.findGroup(ctx, groupID)
		if err != nil {
			return nil, err
		}
		if err := mutationGuard(group); err != nil {
			return nil, err
		}
		participant := group.FindParticipant(userID)
		if participant == nil {
			return nil, domainerrors.ErrNotParticipant
		}

		newRemained := group.RemainedPersonnel + participant.Quantity - quantity
		if newRemained < 0 {
			return nil, domainerrors.ErrCapacityExceeded
		}

		participant.Quantity = quantity
		group.RemainedPersonnel = newRemained

		thresholdMet := newRemained == 0 &&
			group.State.CanTransition(entity.TriggerCapacityReached, entity.StateThresholdMet)
		if thresholdMet {
			group.State = entity.StateThresholdMet
		}

		var product *entity.Product
		if thresholdMet {
			if product, err = s.findProduct(ctx, group.ProductID); err != nil {
				return nil, err
			}
		}

		err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
			if err := f.NewGroupRepository().SaveGroup(ctx, group); err != nil {
				return err
			}
			if thresholdMet {
				due := time.Now().AddDate(0, 0, product.TermDays)
				if err := f.NewPaymentRepository().SetDueDateForGroup(ctx, group.ID, due); err != nil {
					return errors.Wrap(err, "failed to set due dates")
				}
			}

			return nil
		})
		if errors.Is(err, repository.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}

		if thresholdMet {
			s.notifyStateChange(ctx, group, firstImage(product))
		}

		return group, nil
	}

	return nil, domainerrors.ErrConflictRetryExhausted
}

// LeaveGroup removes a participant and restores their quantity. Manager
// withdrawal is unconditionally fatal to the group.
func (s *groupService) LeaveGroup(ctx context.Context, userID, groupID uuid.UUID) (*entity.Group, error) {
	for attempt := 0; attempt < s.config.GroupBuy.MaxJoinRetries; attempt++ {
		group, err := s.findGroup(ctx, groupID)
		if err != nil {
			return nil, err
		}
		if err := mutationGuard(group); err != nil {
			return nil, err
		}
		participant := group.FindParticipant(userID)
		if participant == nil {
			return nil, domainerrors.ErrNotParticipant
		}

		remaining := make([]*entity.Participant, 0, len(group.Participants)-1)
		for _, p := range group.Participants {
			if p.UserID != userID {
				remaining = append(remaining, p)
			}
		}
		group.Participants = remaining
		group.RemainedPersonnel += participant.Quantity

		managerLeft := participant.Manager
		if managerLeft {
			group.State = entity.StateManagerLeft
		}

		err = s.groupRepo.SaveGroup(ctx, group)
		if errors.Is(err, repository.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}

		if managerLeft {
			s.scheduler.Cancel(group.ID)
			s.notifyStateChange(ctx, group, "")
		}

		return group, nil
	}

	return nil, domainerrors.ErrConflictRetryExhausted
}

// UpdateGroup patches mutable group fields. State changes are checked
// against the transition table; anything the table does not allow is
// rejected.
func (s *groupService) UpdateGroup(ctx context.Context, groupID uuid.UUID, patch *usecase.GroupPatch) (*entity.Group, error) {
	for attempt := 0; attempt < s.config.GroupBuy.MaxJoinRetries; attempt++ {
		group, err := s.findGroup(ctx, groupID)
		if err != nil {
			return nil, err
		}

		stateChanged := false
		if patch.State != nil {
			target := *patch.State
			if !target.Valid() {
				return nil, domainerrors.ErrValidationFailed.WithDetails("unknown state code")
			}
			trigger := entity.TriggerAdminSet
			if target == entity.StateDeleted {
				trigger = entity.TriggerSellerDeleted
			}
			if !group.State.CanTransition(trigger, target) {
				return nil, domainerrors.ErrInvalidTransition
			}
			group.State = target
			stateChanged = true
		}

		if patch.Name != nil {
			group.Name = *patch.Name
		}
		if patch.GroupType != nil {
			group.GroupType = *patch.GroupType
		}
		if patch.ProductID != nil {
			group.ProductID = *patch.ProductID
		}
		if patch.Deadline != nil {
			group.Deadline = *patch.Deadline
		}
		if patch.Location != nil {
			group.Location = *patch.Location
			// Best effort: a geocoder outage must not block the patch, the
			// previous coordinates stay in place.
			if coord, err := s.geocoder.AddressToCoordinate(ctx, *patch.Location); err != nil {
				s.logger.Warn("failed to re-geocode group location",
					slog.String("groupID", group.ID.String()),
					slog.Any("error", err),
				)
			} else {
				group.Latitude = coord.Latitude
				group.Longitude = coord.Longitude
			}
		}

		err = s.groupRepo.SaveGroup(ctx, group)
		if errors.Is(err, repository.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}

		if patch.Deadline != nil && group.State == entity.StateRecruiting {
			s.scheduler.Schedule(group.ID, group.Deadline)
		}
		if stateChanged {
			if group.State != entity.StateRecruiting {
				s.scheduler.Cancel(group.ID)
			}
			s.notifyStateChange(ctx, group, "")
		}

		return group, nil
	}

	return nil, domainerrors.ErrConflictRetryExhausted
}

// CheckState returns the group's current state. Closed groups yield the
// fatal group-closed error so mutating endpoints abort up front.
func (s *groupService) CheckState(ctx context.Context, groupID uuid.UUID) (entity.GroupState, error) {
	group, err := s.findGroup(ctx, groupID)
	if err != nil {
		return 0, err
	}
	if err := mutationGuard(group); err != nil {
		return group.State, err
	}

	return group.State, nil
}

// ExpireGroup applies the deadline trigger. The compare-and-swap re-checks
// that the group is still recruiting at fire time, which makes replayed or
// duplicated timer fires a no-op.
func (s *groupService) ExpireGroup(ctx context.Context, groupID uuid.UUID) (bool, error) {
	swapped, err := s.groupRepo.CompareAndSwapState(ctx, groupID, entity.StateRecruiting, entity.StateExpired)
	if err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return false, domainerrors.ErrGroupNotFound
		}

		return false, errors.Wrap(err, "failed to expire group")
	}
	if !swapped {
		return false, nil
	}

	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		s.logger.Warn("expired group but failed to reload it for notification",
			slog.String("groupID", groupID.String()),
			slog.Any("error", err),
		)

		return true, nil
	}
	s.notifyStateChange(ctx, group, "")

	return true, nil
}

// MarkReviewed flags that the participant left a review for the group.
func (s *groupService) MarkReviewed(ctx context.Context, userID, groupID uuid.UUID) error {
	group, err := s.findGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if group.FindParticipant(userID) == nil {
		return domainerrors.ErrNotParticipant
	}

	if err := s.groupRepo.SetParticipantReviewed(ctx, groupID, userID); err != nil {
		return errors.Wrap(err, "failed to mark participant reviewed")
	}

	return nil
}

// GenerateInviteQR renders a QR code encoding a join invite for the group.
func (s *groupService) GenerateInviteQR(ctx context.Context, groupID uuid.UUID) ([]byte, error) {
	if _, err := s.findGroup(ctx, groupID); err != nil {
		return nil, err
	}

	qr, err := s.qrcodeSvc.GenerateInviteQR(groupID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invite QR code")
	}

	return qr, nil
}

// findGroup loads a group, translating the repository sentinel.
func (s *groupService) findGroup(ctx context.Context, groupID uuid.UUID) (*entity.Group, error) {
	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return nil, domainerrors.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find group by ID")
	}

	return group, nil
}

// findProduct loads a product, translating the repository sentinel.
func (s *groupService) findProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return product, nil
}

// mutationGuard rejects participant mutation on groups that no longer
// accept it: every failure state and the completed state.
func mutationGuard(group *entity.Group) error {
	if group.State < 0 || group.State == entity.StateShipped {
		return domainerrors.ErrGroupClosed
	}

	return nil
}

// notifyStateChange publishes a lifecycle event to every participant.
// Publishing is best-effort: the state mutation already committed and is
// never rolled back here.
func (s *groupService) notifyStateChange(ctx context.Context, group *entity.Group, image string) {
	content, ok := group.State.Message()
	if !ok {
		return
	}

	recipients := make([]string, 0, len(group.Participants))
	for _, p := range group.Participants {
		recipients = append(recipients, p.UserID.String())
	}

	event := &service.GroupStateEvent{
		GroupID:      group.ID.String(),
		GroupName:    group.Name,
		State:        group.State,
		Content:      content,
		Image:        image,
		RecipientIDs: recipients,
	}
	if err := s.publisher.PublishGroupStateEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish group state event",
			slog.String("groupID", group.ID.String()),
			slog.Int("state", int(group.State)),
			slog.Any("error", err),
		)
	}
}

func firstImage(product *entity.Product) string {
	if product == nil || len(product.Images) == 0 {
		return ""
	}

	return product.Images[0]
}
