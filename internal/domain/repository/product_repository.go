package repository

import (
	"context"

	"moa/internal/domain/entity"
	"moa/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository is the read-only gateway to the product directory. The
// lifecycle engine never mutates products.
type ProductRepository interface {
	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}
