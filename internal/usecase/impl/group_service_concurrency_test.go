package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"moa/config"
	"moa/internal/domain/entity"
	domainerrors "moa/internal/domain/errors"
	"moa/internal/domain/repository"
	mockRepo "moa/internal/mocks/repository"
	mockSvc "moa/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// casGroupStore is an in-memory GroupRepository that enforces the same
// version guard as the Postgres implementation: a save against a stale
// version fails, forcing the caller through the read-retry loop.
type casGroupStore struct {
	mockRepo.MockGroupRepository // panics on anything not overridden below

	mu    sync.Mutex
	group *entity.Group
}

func newCASGroupStore(group *entity.Group) *casGroupStore {
	return &casGroupStore{group: cloneGroup(group)}
}

func (s *casGroupStore) FindGroupByID(_ context.Context, id uuid.UUID) (*entity.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != s.group.ID {
		return nil, repository.ErrGroupNotFound
	}

	return cloneGroup(s.group), nil
}

func (s *casGroupStore) SaveGroup(_ context.Context, group *entity.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if group.ID != s.group.ID {
		return repository.ErrGroupNotFound
	}
	if group.Version != s.group.Version {
		return repository.ErrVersionConflict
	}

	group.Version++
	s.group = cloneGroup(group)

	return nil
}

func (s *casGroupStore) snapshot() *entity.Group {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneGroup(s.group)
}

func cloneGroup(group *entity.Group) *entity.Group {
	clone := *group
	clone.Participants = make([]*entity.Participant, len(group.Participants))
	for i, p := range group.Participants {
		participant := *p
		clone.Participants[i] = &participant
	}

	return &clone
}

// fakeTxManager runs the body against a fixed factory without any real
// transaction. Conflict detection happens inside casGroupStore.
type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type fakeFactory struct {
	groupRepo   repository.GroupRepository
	paymentRepo repository.PaymentRepository
}

func (f *fakeFactory) NewGroupRepository() repository.GroupRepository     { return f.groupRepo }
func (f *fakeFactory) NewPaymentRepository() repository.PaymentRepository { return f.paymentRepo }
func (f *fakeFactory) NewAlertRepository() repository.AlertRepository     { return nil }

// noopPaymentRepo accepts every ledger write; the concurrency property under
// test lives entirely in the group aggregate.
type noopPaymentRepo struct{}

func (noopPaymentRepo) CreatePayment(context.Context, *entity.Payment) error { return nil }
func (noopPaymentRepo) FindPaymentByID(context.Context, uuid.UUID) (*entity.Payment, error) {
	return nil, repository.ErrPaymentNotFound
}
func (noopPaymentRepo) FindPaymentByGroupAndUser(context.Context, uuid.UUID, uuid.UUID) (*entity.Payment, error) {
	return nil, repository.ErrPaymentNotFound
}
func (noopPaymentRepo) FindPaymentsByGroup(context.Context, uuid.UUID) ([]*entity.Payment, error) {
	return nil, nil
}
func (noopPaymentRepo) UpdatePayment(context.Context, *entity.Payment) error { return nil }
func (noopPaymentRepo) SetDueDateForGroup(context.Context, uuid.UUID, time.Time) error {
	return nil
}

// TestGroupService_JoinGroup_ConcurrentJoinsNeverOvershoot hammers one group
// with more concurrent joins than it has capacity and verifies the version
// guard admits exactly as many as fit.
func TestGroupService_JoinGroup_ConcurrentJoinsNeverOvershoot(t *testing.T) {
	const capacity = 5
	const contenders = 12

	managerID := uuid.New()
	groupID := uuid.New()
	store := newCASGroupStore(&entity.Group{
		ID:                groupID,
		GroupType:         entity.GroupTypeLocal,
		Name:              "contended group",
		ProductID:         uuid.New(),
		Deadline:          time.Now().Add(24 * time.Hour),
		State:             entity.StateRecruiting,
		RemainedPersonnel: capacity,
		Participants: []*entity.Participant{{
			ID:       uuid.New(),
			GroupID:  groupID,
			UserID:   managerID,
			Quantity: 3,
			Manager:  true,
		}},
	})

	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockProductRepo.EXPECT().
		FindProductByID(mock.Anything, mock.Anything).
		Return(&entity.Product{ID: uuid.New(), TermDays: 7}, nil).
		Maybe()

	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockPublisher.EXPECT().
		PublishGroupStateEvent(mock.Anything, mock.Anything).
		Return(nil).
		Maybe()

	svc := NewGroupService(GroupServiceParams{
		GroupRepo:   store,
		ProductRepo: mockProductRepo,
		UserRepo:    mockRepo.NewMockUserRepository(t),
		TxManager:   &fakeTxManager{factory: &fakeFactory{groupRepo: store, paymentRepo: noopPaymentRepo{}}},
		Geocoder:    mockSvc.NewMockGeocoder(t),
		Publisher:   mockPublisher,
		Scheduler:   mockSvc.NewMockDeadlineScheduler(t),
		QRCodeSvc:   mockSvc.NewMockQRCodeService(t),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config: &config.Config{
			GroupBuy: &config.GroupBuyConfig{
				NearbyRadiusKm: 50,
				FallbackLimit:  20,
				ClosingWindow:  24 * time.Hour,
				MaxJoinRetries: contenders * 2,
				PageSize:       10,
			},
		},
	})

	ctx := context.Background()
	results := make(chan error, contenders)

	var wg sync.WaitGroup
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := svc.JoinGroup(ctx, uuid.New(), groupID, 1, "credit_card")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	admitted := 0
	for err := range results {
		if err == nil {
			admitted++

			continue
		}
		if !errors.Is(err, domainerrors.ErrCapacityExceeded) && !errors.Is(err, domainerrors.ErrGroupClosed) {
			t.Fatalf("unexpected join error: %v", err)
		}
	}

	require.Equal(t, capacity, admitted, "exactly capacity joins must be admitted")

	final := store.snapshot()
	assert.Equal(t, 0, final.RemainedPersonnel)
	assert.Equal(t, entity.StateThresholdMet, final.State)
	assert.Len(t, final.Participants, 1+capacity)
	assert.Equal(t, 3+capacity, final.CommittedQuantity())
}
