package usecase

import (
	"context"

	"moa/internal/domain/entity"

	"github.com/google/uuid"
)

// NearbyGroup bundles a group with its haversine distance from the
// requesting user's registered coordinates.
type NearbyGroup struct {
	Group          *entity.Group `json:"group"`
	DistanceMeters float64       `json:"distance_meters"`
}

// GroupQueryUsecase exposes the derived, read-only group queries. None of
// these mutate state.
type GroupQueryUsecase interface {
	// ClosingSoon lists groups whose deadline falls within the configured
	// window (default 24h), ascending by deadline, any state.
	ClosingSoon(ctx context.Context) ([]*entity.Group, error)

	// ByRemaining lists recruiting groups ascending by remaining capacity.
	ByRemaining(ctx context.Context) ([]*entity.Group, error)

	// Nearby lists open "local" groups within the configured radius of the
	// user's registered coordinates, newest first, paginated with a
	// deterministic random offset. With no local group in range it falls
	// back to the most recent open "normal" groups system-wide.
	Nearby(ctx context.Context, userID uuid.UUID, page int) ([]*NearbyGroup, error)
}
