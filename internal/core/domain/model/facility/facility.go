// Package facility contains the Facility entity, the delivery destination an
// order is created for. The core only cares about existence and the active
// flag; everything else is master data maintained elsewhere.
package facility

import (
	"errors"
	"time"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/pkg/errs"
)

// ErrFacilityIsNotConstructed is returned when a Facility instance was not
// created through NewFacility or RestoreFacility.
var ErrFacilityIsNotConstructed = errors.New("Facility must be created via NewFacility constructor")

// Facility is a delivery/warehouse destination associated with orders.
type Facility struct {
	id        kernel.UUID
	name      string
	address   string
	isActive  bool
	createdAt time.Time

	isConstructed bool
}

// NewFacility creates an active facility.
func NewFacility(id kernel.UUID, name, address string, createdAt time.Time) (*Facility, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("facility name")
	}

	return &Facility{
		id:            id,
		name:          name,
		address:       address,
		isActive:      true,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreFacility reconstructs a facility from persistence.
func RestoreFacility(id kernel.UUID, name, address string, isActive bool, createdAt time.Time) (*Facility, error) {
	f, err := NewFacility(id, name, address, createdAt)
	if err != nil {
		return nil, err
	}
	f.isActive = isActive
	return f, nil
}

// Validate ensures the Facility instance was properly constructed.
func (f *Facility) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFacilityIsNotConstructed
	}
	return nil
}

// ID returns the facility's unique identifier.
func (f *Facility) ID() kernel.UUID { return f.id }

// Name returns the facility name.
func (f *Facility) Name() string { return f.name }

// Address returns the facility address.
func (f *Facility) Address() string { return f.address }

// IsActive reports whether orders may target this facility.
func (f *Facility) IsActive() bool { return f.isActive }

// CreatedAt returns the creation timestamp.
func (f *Facility) CreatedAt() time.Time { return f.createdAt }

// Deactivate hides the facility from new orders.
func (f *Facility) Deactivate() {
	f.isActive = false
}
