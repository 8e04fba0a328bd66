package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"moa/config"
	"moa/internal/domain/entity"
	domainerrors "moa/internal/domain/errors"
	"moa/internal/domain/repository"
	"moa/internal/domain/service"
	mockRepo "moa/internal/mocks/repository"
	mockSvc "moa/internal/mocks/service"
	"moa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type groupServiceMocks struct {
	groupRepo   *mockRepo.MockGroupRepository
	productRepo *mockRepo.MockProductRepository
	userRepo    *mockRepo.MockUserRepository
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	paymentRepo *mockRepo.MockPaymentRepository
	geocoder    *mockSvc.MockGeocoder
	publisher   *mockSvc.MockEventPublisher
	scheduler   *mockSvc.MockDeadlineScheduler
	qrcodeSvc   *mockSvc.MockQRCodeService
}

func newGroupServiceForTest(t *testing.T) (usecase.GroupUsecase, *groupServiceMocks) {
	m := &groupServiceMocks{
		groupRepo:   mockRepo.NewMockGroupRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		paymentRepo: mockRepo.NewMockPaymentRepository(t),
		geocoder:    mockSvc.NewMockGeocoder(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		scheduler:   mockSvc.NewMockDeadlineScheduler(t),
		qrcodeSvc:   mockSvc.NewMockQRCodeService(t),
	}

	svc := NewGroupService(GroupServiceParams{
		GroupRepo:   m.groupRepo,
		ProductRepo: m.productRepo,
		UserRepo:    m.userRepo,
		TxManager:   m.txManager,
		Geocoder:    m.geocoder,
		Publisher:   m.publisher,
		Scheduler:   m.scheduler,
		QRCodeSvc:   m.qrcodeSvc,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config:      &config.Config{},
	})

	return svc, m
}

// expectTransaction wires one Execute call to run its body against the
// factory mock, as the real GORM transaction manager would.
func (m *groupServiceMocks) expectTransaction(ctx context.Context) {
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		}).Once()
}

func TestGroupService_CreateGroup_Recruiting(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{
		ID:             uuid.New(),
		Name:           "organic rice 5kg",
		MinPurchaseQty: 10,
		MaxPurchaseQty: 30,
		TermDays:       7,
	}
	deadline := time.Now().Add(48 * time.Hour)

	m.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	m.userRepo.EXPECT().FindUserByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	m.geocoder.EXPECT().
		AddressToCoordinate(ctx, "No.7, Sec. 5, Xinyi Rd., Taipei").
		Return(service.Coordinate{Latitude: 25.033, Longitude: 121.5654}, nil)

	m.expectTransaction(ctx)
	m.factory.EXPECT().NewGroupRepository().Return(m.groupRepo)
	m.factory.EXPECT().NewPaymentRepository().Return(m.paymentRepo)
	m.groupRepo.EXPECT().CreateGroup(ctx, mock.AnythingOfType("*entity.Group")).Return(nil)
	m.paymentRepo.EXPECT().CreatePayment(ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)

	m.scheduler.EXPECT().Schedule(mock.AnythingOfType("uuid.UUID"), deadline).Return()

	group, err := svc.CreateGroup(ctx, userID, &usecase.CreateGroupInput{
		GroupType:     entity.GroupTypeLocal,
		Name:          "rice run",
		Location:      "No.7, Sec. 5, Xinyi Rd., Taipei",
		ProductID:     product.ID,
		Deadline:      deadline,
		Quantity:      3,
		PaymentMethod: "credit_card",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StateRecruiting, group.State)
	assert.Equal(t, 7, group.RemainedPersonnel)
	assert.Equal(t, 25.033, group.Latitude)
	require.Len(t, group.Participants, 1)
	assert.True(t, group.Participants[0].Manager)
	assert.Equal(t, 3, group.Participants[0].Quantity)
}

func TestGroupService_CreateGroup_ThresholdMetImmediately(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{
		ID:             uuid.New(),
		Images:         []string{"https://cdn.example.com/rice.jpg"},
		MinPurchaseQty: 5,
		TermDays:       3,
	}

	m.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	m.userRepo.EXPECT().FindUserByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	m.geocoder.EXPECT().
		AddressToCoordinate(ctx, "somewhere").
		Return(service.Coordinate{Latitude: 24.1, Longitude: 120.6}, nil)

	m.expectTransaction(ctx)
	m.factory.EXPECT().NewGroupRepository().Return(m.groupRepo)
	m.factory.EXPECT().NewPaymentRepository().Return(m.paymentRepo)
	m.groupRepo.EXPECT().CreateGroup(ctx, mock.AnythingOfType("*entity.Group")).Return(nil)

	var createdPayment *entity.Payment
	m.paymentRepo.EXPECT().
		CreatePayment(ctx, mock.AnythingOfType("*entity.Payment")).
		Run(func(_ context.Context, payment *entity.Payment) {
			createdPayment = payment
		}).
		Return(nil)

	var published *service.GroupStateEvent
	m.publisher.EXPECT().
		PublishGroupStateEvent(ctx, mock.AnythingOfType("*service.GroupStateEvent")).
		Run(func(_ context.Context, event *service.GroupStateEvent) {
			published = event
		}).
		Return(nil)

	group, err := svc.CreateGroup(ctx, userID, &usecase.CreateGroupInput{
		GroupType:     entity.GroupTypeNormal,
		Name:          "instant group",
		Location:      "somewhere",
		ProductID:     product.ID,
		Deadline:      time.Now().Add(24 * time.Hour),
		Quantity:      5,
		PaymentMethod: "transfer",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StateThresholdMet, group.State)
	assert.Equal(t, 0, group.RemainedPersonnel)

	require.NotNil(t, createdPayment)
	require.NotNil(t, createdPayment.DueDate, "due date must be stamped when the threshold is met at creation")

	require.NotNil(t, published)
	assert.Equal(t, entity.StateThresholdMet, published.State)
	assert.Equal(t, "https://cdn.example.com/rice.jpg", published.Image)
	assert.Equal(t, []string{userID.String()}, published.RecipientIDs)
}

func TestGroupService_CreateGroup_QuantityExceedsThreshold(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), MinPurchaseQty: 5}

	m.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	m.userRepo.EXPECT().FindUserByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

	_, err := svc.CreateGroup(ctx, userID, &usecase.CreateGroupInput{
		Name:      "too greedy",
		Location:  "anywhere",
		ProductID: product.ID,
		Deadline:  time.Now().Add(time.Hour),
		Quantity:  6,
	})
	assert.ErrorIs(t, err, domainerrors.ErrCapacityExceeded)
}

func TestGroupService_CreateGroup_GeocodeFailure(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), MinPurchaseQty: 5}

	m.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	m.userRepo.EXPECT().FindUserByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	m.geocoder.EXPECT().
		AddressToCoordinate(ctx, "nowhere at all").
		Return(service.Coordinate{}, errors.New("provider unreachable"))

	_, err := svc.CreateGroup(ctx, userID, &usecase.CreateGroupInput{
		Name:      "lost group",
		Location:  "nowhere at all",
		ProductID: product.ID,
		Deadline:  time.Now().Add(time.Hour),
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func recruitingGroup(managerID uuid.UUID, remained int) *entity.Group {
	groupID := uuid.New()

	return &entity.Group{
		ID:                groupID,
		GroupType:         entity.GroupTypeLocal,
		Name:              "test group",
		ProductID:         uuid.New(),
		Deadline:          time.Now().Add(24 * time.Hour),
		State:             entity.StateRecruiting,
		RemainedPersonnel: remained,
		Version:           1,
		Participants: []*entity.Participant{{
			ID:       uuid.New(),
			GroupID:  groupID,
			UserID:   managerID,
			JoinedAt: time.Now().Add(-time.Hour),
			Quantity: 2,
			Manager:  true,
		}},
	}
}

func TestGroupService_JoinGroup_Success(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	managerID := uuid.New()
	userID := uuid.New()
	group := recruitingGroup(managerID, 5)

	m.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)

	m.expectTransaction(ctx)
	m.factory.EXPECT().NewGroupRepository().Return(m.groupRepo)
	m.factory.EXPECT().NewPaymentRepository().Return(m.paymentRepo)
	m.groupRepo.EXPECT().SaveGroup(ctx, mock.AnythingOfType("*entity.Group")).Return(nil)
	m.paymentRepo.EXPECT().CreatePayment(ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)

	result, err := svc.JoinGroup(ctx, userID, group.ID, 2, "credit_card")
	require.NoError(t, err)
	assert.Equal(t, entity.StateRecruiting, result.State)
	assert.Equal(t, 3, result.RemainedPersonnel)
	require.Len(t, result.Participants, 2)
	assert.Equal(t, userID, result.Participants[1].UserID)
	assert.False(t, result.Participants[1].Manager)
}

func TestGroupService_JoinGroup_ReachesThreshold(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	managerID := uuid.New()
	userID := uuid.New()
	group := recruitingGroup(managerID, 2)
	product := &entity.Product{
		ID:       group.ProductID,
		Images:   []string{"https://cdn.example.com/item.jpg"},
		TermDays: 7,
	}

	m.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
	m.productRepo.EXPECT().FindProductByID(ctx, group.ProductID).Return(product, nil)

	m.expectTransaction(ctx)
	m.factory.EXPECT().NewGroupRepository().Return(m.groupRepo)
	m.factory.EXPECT().NewPaymentRepository().Return(m.paymentRepo)
	m.groupRepo.EXPECT().SaveGroup(ctx, mock.AnythingOfType("*entity.Group")).Return(nil)
	m.paymentRepo.EXPECT().CreatePayment(ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)
	m.paymentRepo.EXPECT().
		SetDueDateForGroup(ctx, group.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	var published *service.GroupStateEvent
	m.publisher.EXPECT().
		PublishGroupStateEvent(ctx, mock.AnythingOfType("*service.GroupStateEvent")).
		Run(func(_ context.Context, event *service.GroupStateEvent) {
			published = event
		}).
		Return(nil)

	result, err := svc.JoinGroup(ctx, userID, group.ID, 2, "transfer")
	require.NoError(t, err)
	assert.Equal(t, entity.StateThresholdMet, result.State)
	assert.Equal(t, 0, result.RemainedPersonnel)

	require.NotNil(t, published)
	assert.Equal(t, entity.StateThresholdMet, published.State)
	assert.Len(t, published.RecipientIDs, 2)
}

func TestGroupService_JoinGroup_AlreadyJoined(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	managerID := uuid.New()
	group := recruitingGroup(managerID, 5)

	m.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)

	_, err := svc.JoinGroup(ctx, managerID, group.ID, 1, "credit_card")
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyJoined)
}

func TestGroupService_JoinGroup_CapacityExceeded(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	group := recruitingGroup(uuid.New(), 2)

	m.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)

	_, err := svc.JoinGroup(ctx, uuid.New(), group.ID, 3, "credit_card")
	assert.ErrorIs(t, err, domainerrors.ErrCapacityExceeded)
}

func TestGroupService_JoinGroup_ClosedGroup(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	group := recruitingGroup(uuid.New(), 5)
	group.State = entity.StateExpired

	m.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)

	_, err := svc.JoinGroup(ctx, uuid.New(), group.ID, 1, "credit_card")
	assert.ErrorIs(t, err, domainerrors.ErrGroupClosed)
}

func TestGroupService_JoinGroup_RetriesOnVersionConflict(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	managerID := uuid.New()
	userID := uuid.New()
	template := recruitingGroup(managerID, 5)

	// A fresh aggregate per read: the first attempt's in-memory mutation must
	// not leak into the retry.
	m.groupRepo.EXPECT().
		FindGroupByID(ctx, template.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Group, error) {
			fresh := *template
			fresh.Participants = []*entity.Participant{template.Participants[0]}

			return &fresh, nil
		}).Times(2)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrVersionConflict).Once()
	m.expectTransaction(ctx)
	m.factory.EXPECT().NewGroupRepository().Return(m.groupRepo)
	m.factory.EXPECT().NewPaymentRepository().Return(m.paymentRepo)
	m.groupRepo.EXPECT().SaveGroup(ctx, mock.AnythingOfType("*entity.Group")).Return(nil)
	m.paymentRepo.EXPECT().CreatePayment(ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)

	result, err := svc.JoinGroup(ctx, userID, template.ID, 1, "credit_card")
	require.NoError(t, err)
	assert.Equal(t, 4, result.RemainedPersonnel)
}

func TestGroupService_JoinGroup_RetryExhaustion(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	managerID := uuid.New()
	template := recruitingGroup(managerID, 5)

	m.groupRepo.EXPECT().
		FindGroupByID(ctx, template.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Group, error) {
			fresh := *template
			fresh.Participants = []*entity.Participant{template.Participants[0]}

			return &fresh, nil
		}).Times(3)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrVersionConflict).Times(3)

	_, err := svc.JoinGroup(ctx, uuid.New(), template.ID, 1, "credit_card")
	assert.ErrorIs(t, err, domainerrors.ErrConflictRetryExhausted)
}

func TestGroupService_SetQuantity_AdjustsRemaining(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	managerID := uuid.New()
	group := recruitingGroup(managerID, 5)

	m.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)

	m.expectTransaction(ctx)
	m.factory.EXPECT().NewGroupRepository().Return(m.groupRepo)
	m.groupRepo.EXPECT().SaveGroup(ctx, mock.AnythingOfType("*entity.Group")).Return(nil)

	result, err := svc.SetQuantity(ctx, managerID, group.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, result.RemainedPersonnel)
	assert.Equal(t, 4, result.Participants[0].Quantity)
	assert.Equal(t, entity.StateRecruiting, result.State)
}

func TestGroupService_SetQuantity_NotParticipant(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	group := recruitingGroup(uuid.New(), 5)

	m.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)

	_, err := svc.SetQuantity(ctx, uuid.New(), group.ID, 3)
	assert.ErrorIs(t, err, domainerrors.ErrNotParticipant)
}

func TestGroupService_SetQuantity_LoweringAfterThresholdKeepsState(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	managerID := uuid.New()
	group := recruitingGroup(managerID, 0)
	group.State = entity.StateThresholdMet

	m.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)

	m.expectTransaction(ctx)
	m.factory.EXPECT().NewGroupRepository().Return(m.groupRepo)
	m.groupRepo.EXPECT().SaveGroup(ctx, mock.AnythingOfType("*entity.Group")).Return(nil)

	// Freed capacity reopens a slot but there is no state edge back to
	// recruiting once the threshold has been met.
	result, err := svc.SetQuantity(ctx, managerID, group.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.StateThresholdMet, result.State)
	assert.Equal(t, 1, result.RemainedPersonnel)
	assert.Equal(t, 1, result.Participants[0].Quantity)
}

func TestGroupService_SetQuantity_ReachesThresholdStampsDueDates(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	managerID := uuid.New()
	group := recruitingGroup(managerID, 1)
	product := &entity.Product{
		ID:       group.ProductID,
		Images:   []string{"https://cdn.example.com/item.jpg"},
		TermDays: 7,
	}

	m.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
	m.productRepo.EXPECT().FindProductByID(ctx, group.ProductID).Return(product, nil)

	m.expectTransaction(ctx)
	m.factory.EXPECT().NewGroupRepository().Return(m.groupRepo)
	m.factory.EXPECT().NewPaymentRepository().Return(m.paymentRepo)
	m.groupRepo.EXPECT().SaveGroup(ctx, mock.AnythingOfType("*entity.Group")).Return(nil)
	m.paymentRepo.EXPECT().
		SetDueDateForGroup(ctx, group.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	var published *service.GroupStateEvent
	m.publisher.EXPECT().
		PublishGroupStateEvent(ctx, mock.AnythingOfType("*service.GroupStateEvent")).
		Run(func(_ context.Context, event *service.GroupStateEvent) {
			published = event
		}).
		Return(nil)

	result, err := svc.SetQuantity(ctx, managerID, group.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, entity.StateThresholdMet, result.State)
	assert.Equal(t, 0, result.RemainedPersonnel)

	require.NotNil(t, published)
	assert.Equal(t, entity.StateThresholdMet, published.State)
}

func TestGroupService_SetQuantity_ExceedsCapacity(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	managerID := uuid.New()
	group := recruitingGroup(managerID, 2)

	m.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)

	_, err := svc.SetQuantity(ctx, managerID, group.ID, 6)
	assert.ErrorIs(t, err, domainerrors.ErrCapacityExceeded)
}

func TestGroupService_LeaveGroup_RestoresCapacity(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	managerID := uuid.New()
	memberID := uuid.New()
	group := recruitingGroup(managerID, 5)
	group.Participants = append(group.Participants, &entity.Participant{
		ID:       uuid.New(),
		GroupID:  group.ID,
		UserID:   memberID,
		JoinedAt: time.Now(),
		Quantity: 3,
	})

	m.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
	m.groupRepo.EXPECT().SaveGroup(ctx, mock.AnythingOfType("*entity.Group")).Return(nil)

	result, err := svc.LeaveGroup(ctx, memberID, group.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, result.RemainedPersonnel)
	assert.Equal(t, entity.StateRecruiting, result.State)
	require.Len(t, result.Participants, 1)
	assert.Equal(t, managerID, result.Participants[0].UserID)
}

func TestGroupService_LeaveGroup_ManagerCancelsGroup(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	managerID := uuid.New()
	group := recruitingGroup(managerID, 5)

	m.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
	m.groupRepo.EXPECT().SaveGroup(ctx, mock.AnythingOfType("*entity.Group")).Return(nil)
	m.scheduler.EXPECT().Cancel(group.ID).Return()

	var published *service.GroupStateEvent
	m.publisher.EXPECT().
		PublishGroupStateEvent(ctx, mock.AnythingOfType("*service.GroupStateEvent")).
		Run(func(_ context.Context, event *service.GroupStateEvent) {
			published = event
		}).
		Return(nil)

	result, err := svc.LeaveGroup(ctx, managerID, group.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StateManagerLeft, result.State)

	require.NotNil(t, published)
	assert.Equal(t, entity.StateManagerLeft, published.State)
}

func TestGroupService_UpdateGroup_StateAdvance(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	group := recruitingGroup(uuid.New(), 0)
	group.State = entity.StateThresholdMet

	m.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
	m.groupRepo.EXPECT().SaveGroup(ctx, mock.AnythingOfType("*entity.Group")).Return(nil)
	m.scheduler.EXPECT().Cancel(group.ID).Return()
	m.publisher.EXPECT().
		PublishGroupStateEvent(ctx, mock.AnythingOfType("*service.GroupStateEvent")).
		Return(nil)

	target := entity.StatePreparing
	result, err := svc.UpdateGroup(ctx, group.ID, &usecase.GroupPatch{State: &target})
	require.NoError(t, err)
	assert.Equal(t, entity.StatePreparing, result.State)
}

func TestGroupService_UpdateGroup_InvalidTransition(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	group := recruitingGroup(uuid.New(), 5)

	m.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)

	target := entity.StateShipped
	_, err := svc.UpdateGroup(ctx, group.ID, &usecase.GroupPatch{State: &target})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestGroupService_UpdateGroup_SellerDelete(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	group := recruitingGroup(uuid.New(), 5)

	m.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
	m.groupRepo.EXPECT().SaveGroup(ctx, mock.AnythingOfType("*entity.Group")).Return(nil)
	m.scheduler.EXPECT().Cancel(group.ID).Return()
	m.publisher.EXPECT().
		PublishGroupStateEvent(ctx, mock.AnythingOfType("*service.GroupStateEvent")).
		Return(nil)

	target := entity.StateDeleted
	result, err := svc.UpdateGroup(ctx, group.ID, &usecase.GroupPatch{State: &target})
	require.NoError(t, err)
	assert.Equal(t, entity.StateDeleted, result.State)
}

func TestGroupService_UpdateGroup_GeocodeFailureKeepsCoordinates(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	group := recruitingGroup(uuid.New(), 5)
	group.Latitude = 25.0
	group.Longitude = 121.5

	m.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
	m.geocoder.EXPECT().
		AddressToCoordinate(ctx, "new pickup point").
		Return(service.Coordinate{}, errors.New("provider down"))
	m.groupRepo.EXPECT().SaveGroup(ctx, mock.AnythingOfType("*entity.Group")).Return(nil)

	location := "new pickup point"
	result, err := svc.UpdateGroup(ctx, group.ID, &usecase.GroupPatch{Location: &location})
	require.NoError(t, err)
	assert.Equal(t, "new pickup point", result.Location)
	assert.Equal(t, 25.0, result.Latitude)
	assert.Equal(t, 121.5, result.Longitude)
}

func TestGroupService_CheckState_Open(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	group := recruitingGroup(uuid.New(), 5)

	m.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)

	state, err := svc.CheckState(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StateRecruiting, state)
}

func TestGroupService_CheckState_Closed(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	group := recruitingGroup(uuid.New(), 5)
	group.State = entity.StateManagerLeft

	m.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)

	state, err := svc.CheckState(ctx, group.ID)
	assert.ErrorIs(t, err, domainerrors.ErrGroupClosed)
	assert.Equal(t, entity.StateManagerLeft, state)
}

func TestGroupService_ExpireGroup_Applied(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	group := recruitingGroup(uuid.New(), 5)
	group.State = entity.StateExpired

	m.groupRepo.EXPECT().
		CompareAndSwapState(ctx, group.ID, entity.StateRecruiting, entity.StateExpired).
		Return(true, nil)
	m.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
	m.publisher.EXPECT().
		PublishGroupStateEvent(ctx, mock.AnythingOfType("*service.GroupStateEvent")).
		Return(nil)

	expired, err := svc.ExpireGroup(ctx, group.ID)
	require.NoError(t, err)
	assert.True(t, expired)
}

func TestGroupService_ExpireGroup_AlreadyMovedOn(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	groupID := uuid.New()

	m.groupRepo.EXPECT().
		CompareAndSwapState(ctx, groupID, entity.StateRecruiting, entity.StateExpired).
		Return(false, nil)

	expired, err := svc.ExpireGroup(ctx, groupID)
	require.NoError(t, err)
	assert.False(t, expired, "a second fire for the same deadline must be a no-op")
}

func TestGroupService_MarkReviewed(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	managerID := uuid.New()
	group := recruitingGroup(managerID, 5)

	m.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
	m.groupRepo.EXPECT().SetParticipantReviewed(ctx, group.ID, managerID).Return(nil)

	err := svc.MarkReviewed(ctx, managerID, group.ID)
	require.NoError(t, err)
}

func TestGroupService_GenerateInviteQR(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	group := recruitingGroup(uuid.New(), 5)

	m.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
	m.qrcodeSvc.EXPECT().GenerateInviteQR(group.ID).Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := svc.GenerateInviteQR(ctx, group.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestGroupService_GenerateInviteQR_GroupNotFound(t *testing.T) {
	svc, m := newGroupServiceForTest(t)

	ctx := context.Background()
	groupID := uuid.New()

	m.groupRepo.EXPECT().FindGroupByID(ctx, groupID).Return(nil, repository.ErrGroupNotFound)

	_, err := svc.GenerateInviteQR(ctx, groupID)
	assert.ErrorIs(t, err, domainerrors.ErrGroupNotFound)
}
