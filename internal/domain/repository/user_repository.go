package repository

import (
	"context"

	"moa/internal/domain/entity"
	"moa/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the read-only gateway to the user directory.
type UserRepository interface {
	// FindUserByID retrieves a user by their unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
