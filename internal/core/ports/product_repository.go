package ports

import (
	"context"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products. The core
// only writes the on-hand quantity; master data updates happen elsewhere.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate retrieves the given products with their rows locked for
	// the remainder of the transaction. Rows are locked in ascending id
	// order so two orders racing on overlapping products cannot deadlock.
	GetForUpdate(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// UpdateOnHand persists the product's on-hand quantity, the only field
	// the warehouse core mutates.
	UpdateOnHand(ctx context.Context, aggregate *product.Product) error
}
