package impl

import (
	"context"
	"testing"
	"time"

	"moa/config"
	"moa/internal/domain/entity"
	domainerrors "moa/internal/domain/errors"
	"moa/internal/domain/repository"
	mockRepo "moa/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func queryTestConfig() *config.Config {
	return &config.Config{
		GroupBuy: &config.GroupBuyConfig{
			NearbyRadiusKm: 50,
			FallbackLimit:  20,
			ClosingWindow:  24 * time.Hour,
			MaxJoinRetries: 3,
			PageSize:       10,
		},
	}
}

func TestGroupQueryService_ClosingSoon(t *testing.T) {
	mockGroupRepo := mockRepo.NewMockGroupRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewGroupQueryService(mockGroupRepo, mockUserRepo, queryTestConfig())

	ctx := context.Background()
	expected := []*entity.Group{
		{ID: uuid.New(), Deadline: time.Now().Add(2 * time.Hour)},
		{ID: uuid.New(), Deadline: time.Now().Add(10 * time.Hour)},
	}

	mockGroupRepo.EXPECT().
		FindGroupsClosingWithin(ctx, mock.AnythingOfType("time.Time"), 24*time.Hour).
		Return(expected, nil)

	groups, err := service.ClosingSoon(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, groups)
}

func TestGroupQueryService_ByRemaining(t *testing.T) {
	mockGroupRepo := mockRepo.NewMockGroupRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewGroupQueryService(mockGroupRepo, mockUserRepo, queryTestConfig())

	ctx := context.Background()
	expected := []*entity.Group{
		{ID: uuid.New(), RemainedPersonnel: 1},
		{ID: uuid.New(), RemainedPersonnel: 4},
	}

	mockGroupRepo.EXPECT().FindOpenGroupsByRemaining(ctx, 10).Return(expected, nil)

	groups, err := service.ByRemaining(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, groups)
}

func TestGroupQueryService_Nearby_PaginatedWindow(t *testing.T) {
	mockGroupRepo := mockRepo.NewMockGroupRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewGroupQueryService(mockGroupRepo, mockUserRepo, queryTestConfig())

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Latitude: 25.034, Longitude: 121.5645}

	nearGroup := &entity.Group{
		ID:        uuid.New(),
		GroupType: entity.GroupTypeLocal,
		Latitude:  25.034,
		Longitude: 121.5645,
	}

	const count = int64(30)
	expectedOffset := deterministicOffset(userID, 2, count, 10)

	mockUserRepo.EXPECT().FindUserByID(ctx, userID).Return(user, nil)
	mockGroupRepo.EXPECT().
		CountNearbyOpenGroups(ctx, 25.034, 121.5645, 50000.0).
		Return(count, nil)
	mockGroupRepo.EXPECT().
		FindNearbyOpenGroups(ctx, 25.034, 121.5645, 50000.0, 10, expectedOffset).
		Return([]*entity.Group{nearGroup}, nil)

	result, err := service.Nearby(ctx, userID, 2)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, nearGroup, result[0].Group)
	assert.InDelta(t, 0.0, result[0].DistanceMeters, 0.5)
}

func TestGroupQueryService_Nearby_FallbackToRecentNormalGroups(t *testing.T) {
	mockGroupRepo := mockRepo.NewMockGroupRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewGroupQueryService(mockGroupRepo, mockUserRepo, queryTestConfig())

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Latitude: 25.034, Longitude: 121.5645}

	// Roughly 111km north of the user.
	farGroup := &entity.Group{
		ID:        uuid.New(),
		GroupType: entity.GroupTypeNormal,
		Latitude:  26.034,
		Longitude: 121.5645,
	}

	mockUserRepo.EXPECT().FindUserByID(ctx, userID).Return(user, nil)
	mockGroupRepo.EXPECT().
		CountNearbyOpenGroups(ctx, 25.034, 121.5645, 50000.0).
		Return(int64(0), nil)
	mockGroupRepo.EXPECT().
		FindRecentOpenGroups(ctx, entity.GroupTypeNormal, 20).
		Return([]*entity.Group{farGroup}, nil)

	result, err := service.Nearby(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, farGroup, result[0].Group)
	assert.InDelta(t, 111000.0, result[0].DistanceMeters, 2000.0)
}

func TestGroupQueryService_Nearby_UserNotFound(t *testing.T) {
	mockGroupRepo := mockRepo.NewMockGroupRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewGroupQueryService(mockGroupRepo, mockUserRepo, queryTestConfig())

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().FindUserByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := service.Nearby(ctx, userID, 0)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestDeterministicOffset_StablePerUserAndPage(t *testing.T) {
	userID := uuid.New()

	first := deterministicOffset(userID, 3, 100, 10)
	second := deterministicOffset(userID, 3, 100, 10)
	assert.Equal(t, first, second)

	assert.GreaterOrEqual(t, first, 0)
	assert.LessOrEqual(t, first, 90)
}

func TestDeterministicOffset_SmallMatchingSet(t *testing.T) {
	userID := uuid.New()

	// Fewer matches than one page: everything fits, no offset.
	assert.Equal(t, 0, deterministicOffset(userID, 0, 7, 10))
	assert.Equal(t, 0, deterministicOffset(userID, 5, 10, 10))
}
