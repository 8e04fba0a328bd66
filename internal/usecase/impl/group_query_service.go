package impl

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"moa/config"
	"moa/internal/domain/entity"
	domainerrors "moa/internal/domain/errors"
	"moa/internal/domain/repository"
	"moa/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

type groupQueryService struct {
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
	config    *config.Config
}

// NewGroupQueryService creates the read-only group query service.
func NewGroupQueryService(groupRepo repository.GroupRepository, userRepo repository.UserRepository, cfg *config.Config) usecase.GroupQueryUsecase {
	if cfg.GroupBuy == nil {
		cfg.GroupBuy = &config.GroupBuyConfig{
			NearbyRadiusKm: 50,
			FallbackLimit:  20,
			ClosingWindow:  24 * time.Hour,
			MaxJoinRetries: 3,
			SweepInterval:  time.Minute,
			PageSize:       10,
		}
	}

	return &groupQueryService{
		groupRepo: groupRepo,
		userRepo:  userRepo,
		config:    cfg,
	}
}

// ClosingSoon lists groups whose deadline falls within the configured window,
// ascending by deadline. State is irrelevant here: users also want to see
// groups that already closed while they watch the countdown.
func (s *groupQueryService) ClosingSoon(ctx context.Context) ([]*entity.Group, error) {
	groups, err := s.groupRepo.FindGroupsClosingWithin(ctx, time.Now(), s.config.GroupBuy.ClosingWindow)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find groups closing soon")
	}

	return groups, nil
}

// ByRemaining lists recruiting groups ascending by remaining capacity.
func (s *groupQueryService) ByRemaining(ctx context.Context) ([]*entity.Group, error) {
	groups, err := s.groupRepo.FindOpenGroupsByRemaining(ctx, s.config.GroupBuy.PageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find open groups by remaining capacity")
	}

	return groups, nil
}

// Nearby lists open "local" groups within the configured radius of the
// user's registered coordinates, newest first. Pagination uses a
// deterministic random offset derived from the user and page so repeated
// requests see a stable window while different users see different slices.
func (s *groupQueryService) Nearby(ctx context.Context, userID uuid.UUID, page int) ([]*usecase.NearbyGroup, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	radiusMeters := s.config.GroupBuy.NearbyRadiusKm * 1000
	count, err := s.groupRepo.CountNearbyOpenGroups(ctx, user.Latitude, user.Longitude, radiusMeters)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count nearby open groups")
	}

	if count == 0 {
		groups, err := s.groupRepo.FindRecentOpenGroups(ctx, entity.GroupTypeNormal, s.config.GroupBuy.FallbackLimit)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find fallback open groups")
		}

		return s.withDistances(user, groups), nil
	}

	pageSize := s.config.GroupBuy.PageSize
	offset := deterministicOffset(userID, page, count, pageSize)

	groups, err := s.groupRepo.FindNearbyOpenGroups(ctx, user.Latitude, user.Longitude, radiusMeters, pageSize, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby open groups")
	}

	return s.withDistances(user, groups), nil
}

// withDistances annotates groups with the haversine distance from the user.
func (s *groupQueryService) withDistances(user *entity.User, groups []*entity.Group) []*usecase.NearbyGroup {
	origin := orb.Point{user.Longitude, user.Latitude}

	result := make([]*usecase.NearbyGroup, 0, len(groups))
	for _, g := range groups {
		result = append(result, &usecase.NearbyGroup{
			Group:          g,
			DistanceMeters: geo.DistanceHaversine(origin, orb.Point{g.Longitude, g.Latitude}),
		})
	}

	return result
}

// deterministicOffset hashes the user and page into an offset over the
// matching set. Stable for a given user+page, spread across users.
func deterministicOffset(userID uuid.UUID, page int, count int64, pageSize int) int {
	maxOffset := count - int64(pageSize)
	if maxOffset <= 0 {
		return 0
	}

	h := fnv.New64a()
	h.Write([]byte(userID.String()))
	h.Write([]byte(":"))
	h.Write([]byte(strconv.Itoa(page)))

	return int(h.Sum64() % uint64(maxOffset+1)) //nolint:gosec // bounded by maxOffset
}
