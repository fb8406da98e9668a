package ports

import (
	"context"

	"stockflow/internal/core/domain/model/facility"
	"stockflow/internal/core/domain/model/kernel"
)

// FacilityRepository defines the persistence contract for facilities.
type FacilityRepository interface {
	// Add persists a new facility.
	Add(ctx context.Context, aggregate *facility.Facility) error

	// ExistsActive reports whether a facility exists and accepts orders.
	ExistsActive(ctx context.Context, id kernel.UUID) (bool, error)
}
