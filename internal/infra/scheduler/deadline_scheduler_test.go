package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"moa/config"
	"moa/internal/domain/entity"
	mockRepo "moa/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSchedulerForTest(t *testing.T, groupRepo *mockRepo.MockGroupRepository, sweepInterval time.Duration) (*DeadlineScheduler, *fxtest.Lifecycle) {
	lc := fxtest.NewLifecycle(t)
	scheduler := New(Params{
		Lifecycle: lc,
		Config: &config.Config{
			GroupBuy: &config.GroupBuyConfig{SweepInterval: sweepInterval},
		},
		Logger:    testLogger(),
		GroupRepo: groupRepo,
	})

	return scheduler, lc
}

func TestDeadlineScheduler_TimerFiresExpirer(t *testing.T) {
	groupRepo := mockRepo.NewMockGroupRepository(t)
	groupRepo.EXPECT().FindRecruitingGroups(mock.Anything).Return(nil, nil)

	scheduler, lc := newSchedulerForTest(t, groupRepo, time.Hour)

	fired := make(chan uuid.UUID, 1)
	scheduler.BindExpirer(func(_ context.Context, groupID uuid.UUID) (bool, error) {
		fired <- groupID

		return true, nil
	})

	lc.RequireStart()
	defer lc.RequireStop()

	groupID := uuid.New()
	scheduler.Schedule(groupID, time.Now().Add(30*time.Millisecond))
	assert.Equal(t, 1, scheduler.PendingTimers())

	select {
	case got := <-fired:
		assert.Equal(t, groupID, got)
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}

	// The fired timer removes itself from the arena.
	require.Eventually(t, func() bool {
		return scheduler.PendingTimers() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestDeadlineScheduler_PastDeadlineFiresImmediately(t *testing.T) {
	groupRepo := mockRepo.NewMockGroupRepository(t)
	groupRepo.EXPECT().FindRecruitingGroups(mock.Anything).Return(nil, nil)

	scheduler, lc := newSchedulerForTest(t, groupRepo, time.Hour)

	fired := make(chan uuid.UUID, 1)
	scheduler.BindExpirer(func(_ context.Context, groupID uuid.UUID) (bool, error) {
		fired <- groupID

		return true, nil
	})

	lc.RequireStart()
	defer lc.RequireStop()

	scheduler.Schedule(uuid.New(), time.Now().Add(-time.Minute))

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("past deadline did not fire immediately")
	}
}

func TestDeadlineScheduler_CancelDropsTimer(t *testing.T) {
	groupRepo := mockRepo.NewMockGroupRepository(t)
	groupRepo.EXPECT().FindRecruitingGroups(mock.Anything).Return(nil, nil)

	scheduler, lc := newSchedulerForTest(t, groupRepo, time.Hour)
	scheduler.BindExpirer(func(context.Context, uuid.UUID) (bool, error) {
		t.Error("cancelled timer must not fire")

		return false, nil
	})

	lc.RequireStart()
	defer lc.RequireStop()

	groupID := uuid.New()
	scheduler.Schedule(groupID, time.Now().Add(time.Hour))
	require.Equal(t, 1, scheduler.PendingTimers())

	scheduler.Cancel(groupID)
	assert.Equal(t, 0, scheduler.PendingTimers())
}

func TestDeadlineScheduler_RescheduleReplacesTimer(t *testing.T) {
	groupRepo := mockRepo.NewMockGroupRepository(t)
	groupRepo.EXPECT().FindRecruitingGroups(mock.Anything).Return(nil, nil)

	scheduler, lc := newSchedulerForTest(t, groupRepo, time.Hour)
	scheduler.BindExpirer(func(context.Context, uuid.UUID) (bool, error) { return true, nil })

	lc.RequireStart()
	defer lc.RequireStop()

	groupID := uuid.New()
	scheduler.Schedule(groupID, time.Now().Add(time.Hour))
	scheduler.Schedule(groupID, time.Now().Add(2*time.Hour))

	assert.Equal(t, 1, scheduler.PendingTimers(), "re-arming must replace, not stack")
}

func TestDeadlineScheduler_ReplayArmsPersistedDeadlines(t *testing.T) {
	recruiting := []*entity.Group{
		{ID: uuid.New(), Deadline: time.Now().Add(time.Hour)},
		{ID: uuid.New(), Deadline: time.Now().Add(2 * time.Hour)},
	}

	groupRepo := mockRepo.NewMockGroupRepository(t)
	groupRepo.EXPECT().FindRecruitingGroups(mock.Anything).Return(recruiting, nil)

	scheduler, lc := newSchedulerForTest(t, groupRepo, time.Hour)
	scheduler.BindExpirer(func(context.Context, uuid.UUID) (bool, error) { return true, nil })

	lc.RequireStart()
	defer lc.RequireStop()

	assert.Equal(t, 2, scheduler.PendingTimers())
}

func TestDeadlineScheduler_SweepCatchesMissedDeadline(t *testing.T) {
	overdueID := uuid.New()

	var mu sync.Mutex
	deadline := time.Now().Add(time.Hour)

	groupRepo := mockRepo.NewMockGroupRepository(t)
	// Replay sees a future deadline; by the time the sweep runs the test has
	// cancelled the timer and moved the deadline into the past.
	groupRepo.EXPECT().
		FindRecruitingGroups(mock.Anything).
		RunAndReturn(func(context.Context) ([]*entity.Group, error) {
			mu.Lock()
			defer mu.Unlock()

			return []*entity.Group{{ID: overdueID, Deadline: deadline}}, nil
		})

	scheduler, lc := newSchedulerForTest(t, groupRepo, 20*time.Millisecond)

	fired := make(chan uuid.UUID, 64)
	scheduler.BindExpirer(func(_ context.Context, groupID uuid.UUID) (bool, error) {
		fired <- groupID

		return true, nil
	})

	lc.RequireStart()
	defer lc.RequireStop()

	// Simulate a lost timer: drop it, then backdate the deadline.
	scheduler.Cancel(overdueID)
	mu.Lock()
	deadline = time.Now().Add(-time.Minute)
	mu.Unlock()

	select {
	case got := <-fired:
		assert.Equal(t, overdueID, got)
	case <-time.After(2 * time.Second):
		t.Fatal("sweep did not fire the missed deadline")
	}
}

func TestDeadlineScheduler_UnboundExpirerIsDropped(t *testing.T) {
	groupRepo := mockRepo.NewMockGroupRepository(t)
	groupRepo.EXPECT().FindRecruitingGroups(mock.Anything).Return(nil, nil)

	scheduler, lc := newSchedulerForTest(t, groupRepo, time.Hour)

	lc.RequireStart()
	defer lc.RequireStop()

	// Fires with no callback bound; must log and move on, not panic.
	scheduler.Schedule(uuid.New(), time.Now().Add(-time.Second))

	require.Eventually(t, func() bool {
		return scheduler.PendingTimers() == 0
	}, time.Second, 10*time.Millisecond)
}
