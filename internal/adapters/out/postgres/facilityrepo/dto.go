// Package facilityrepo persists facilities. The core only checks existence
// and active state; facility maintenance happens elsewhere.
package facilityrepo

import (
	"time"

	"stockflow/internal/core/domain/model/facility"
	"stockflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// FacilityDTO is the database shape of a facility.
type FacilityDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Address   string
	IsActive  bool
	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "facilities".
func (FacilityDTO) TableName() string {
	return "facilities"
}

func fromDomain(aggregate *facility.Facility) FacilityDTO {
	return FacilityDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Address:   aggregate.Address(),
		IsActive:  aggregate.IsActive(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto FacilityDTO) (*facility.Facility, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return facility.RestoreFacility(id, dto.Name, dto.Address, dto.IsActive, dto.CreatedAt)
}
