package facilityrepo

import (
	"context"

	"stockflow/internal/core/domain/model/facility"
	"stockflow/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormFacilityRepository implements ports.FacilityRepository using GORM.
type GormFacilityRepository struct {
	db *gorm.DB
}

// NewGormFacilityRepository creates a new GORM facility repository.
func NewGormFacilityRepository(db *gorm.DB) *GormFacilityRepository {
	return &GormFacilityRepository{db: db}
}

// Add saves a new facility to the database.
func (r *GormFacilityRepository) Add(ctx context.Context, aggregate *facility.Facility) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ExistsActive reports whether an active facility with the given id exists.
func (r *GormFacilityRepository) ExistsActive(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&FacilityDTO{}).
		Where("id = ? AND is_active", id.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
