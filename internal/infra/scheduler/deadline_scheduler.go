// Package scheduler arms in-process expiry timers for recruiting groups and
// backs them with a durable sweep over persisted deadlines, so expiry
// survives restarts and lost timers.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"moa/config"
	"moa/internal/domain/repository"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultSweepInterval = time.Minute

// ExpireFunc attempts to expire one group. The bool result reports whether
// the expiry was applied; false with nil error means the group had already
// left the recruiting state.
type ExpireFunc func(ctx context.Context, groupID uuid.UUID) (bool, error)

// DeadlineScheduler implements service.DeadlineScheduler. Timers are an
// optimization for punctual expiry; the sweep is the correctness backstop
// that replays deadlines lost to restarts. Both paths funnel into the same
// idempotent expire function, so double fires are harmless.
type DeadlineScheduler struct {
	mu       sync.Mutex
	timers   map[uuid.UUID]*time.Timer
	expireFn ExpireFunc

	groupRepo     repository.GroupRepository
	logger        *slog.Logger
	sweepInterval time.Duration

	runCtx    context.Context
	cancelRun context.CancelFunc
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	GroupRepo repository.GroupRepository
}

// New creates the scheduler and registers its lifecycle hooks. The expire
// callback is bound separately via BindExpirer to avoid a construction cycle
// with the use case layer.
func New(params Params) *DeadlineScheduler {
	sweepInterval := defaultSweepInterval
	if params.Config.GroupBuy != nil && params.Config.GroupBuy.SweepInterval > 0 {
		sweepInterval = params.Config.GroupBuy.SweepInterval
	}

	runCtx, cancelRun := context.WithCancel(context.Background())

	scheduler := &DeadlineScheduler{
		timers:        make(map[uuid.UUID]*time.Timer),
		groupRepo:     params.GroupRepo,
		logger:        params.Logger,
		sweepInterval: sweepInterval,
		runCtx:        runCtx,
		cancelRun:     cancelRun,
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := scheduler.replay(ctx); err != nil {
				return err
			}

			go scheduler.sweepLoop()

			return nil
		},
		OnStop: func(_ context.Context) error {
			scheduler.stop()

			return nil
		},
	})

	return scheduler
}

// BindExpirer installs the expiry callback. Must be called before the
// application starts; timers firing without a bound callback are dropped
// with a warning.
func (s *DeadlineScheduler) BindExpirer(fn ExpireFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireFn = fn
}

// Schedule arms (or re-arms) the expiry timer for a group. A deadline
// already in the past fires immediately.
func (s *DeadlineScheduler) Schedule(groupID uuid.UUID, deadline time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.timers[groupID]; ok {
		existing.Stop()
	}

	delay := time.Until(deadline)
	if delay < 0 {
		delay = 0
	}

	s.timers[groupID] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, groupID)
		s.mu.Unlock()

		s.fire(groupID)
	})
}

// Cancel drops a pending timer. An un-cancelled timer is still safe: the
// expire function re-checks the group state before acting.
func (s *DeadlineScheduler) Cancel(groupID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[groupID]; ok {
		timer.Stop()
		delete(s.timers, groupID)
	}
}

// PendingTimers reports the number of armed timers.
func (s *DeadlineScheduler) PendingTimers() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.timers)
}

// replay rebuilds timers for every group still recruiting. Deadlines that
// passed while the process was down fire on the spot.
func (s *DeadlineScheduler) replay(ctx context.Context) error {
	groups, err := s.groupRepo.FindRecruitingGroups(ctx)
	if err != nil {
		return err
	}

	for _, group := range groups {
		s.Schedule(group.ID, group.Deadline)
	}

	s.logger.Info("Deadline timers replayed",
		slog.Int("count", len(groups)),
	)

	return nil
}

// sweepLoop periodically reconciles persisted deadlines with armed timers.
func (s *DeadlineScheduler) sweepLoop() {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.runCtx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *DeadlineScheduler) sweep() {
	groups, err := s.groupRepo.FindRecruitingGroups(s.runCtx)
	if err != nil {
		s.logger.Warn("Deadline sweep query failed",
			slog.String("error", err.Error()),
		)

		return
	}

	now := time.Now()
	for _, group := range groups {
		if !group.Deadline.After(now) {
			s.fire(group.ID)

			continue
		}

		s.mu.Lock()
		_, armed := s.timers[group.ID]
		s.mu.Unlock()
		if !armed {
			s.Schedule(group.ID, group.Deadline)
		}
	}
}

func (s *DeadlineScheduler) fire(groupID uuid.UUID) {
	s.mu.Lock()
	fn := s.expireFn
	s.mu.Unlock()

	if fn == nil {
		s.logger.Warn("Deadline timer fired without a bound expirer",
			slog.String("group_id", groupID.String()),
		)

		return
	}

	expired, err := fn(s.runCtx, groupID)
	if err != nil {
		s.logger.Warn("Group expiry failed, sweep will retry",
			slog.String("group_id", groupID.String()),
			slog.String("error", err.Error()),
		)

		return
	}

	if expired {
		s.logger.Info("Group expired on deadline",
			slog.String("group_id", groupID.String()),
		)
	}
}

func (s *DeadlineScheduler) stop() {
	s.cancelRun()

	s.mu.Lock()
	defer s.mu.Unlock()

	for groupID, timer := range s.timers {
		timer.Stop()
		delete(s.timers, groupID)
	}
}
