// Package employee contains the Employee entity and the position-to-role
// mapping. An employee optionally owns a weak reference to an external
// identity record; the identity never references the employee back, which
// keeps removal an explicit two-step operation inside one transaction.
package employee

import (
	"errors"
	"time"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/pkg/errs"
)

// ErrEmployeeIsNotConstructed is returned when an Employee instance was not
// created through NewEmployee or RestoreEmployee.
var ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee constructor")

// Employee is a warehouse worker referenced by processing records and
// payroll rows.
type Employee struct {
	id         kernel.UUID
	fullName   string
	position   Position
	isActive   bool
	identityID *kernel.UUID
	createdAt  time.Time

	isConstructed bool
}

// NewEmployee creates an active employee.
func NewEmployee(id kernel.UUID, fullName string, position Position, createdAt time.Time) (*Employee, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if fullName == "" {
		return nil, errs.NewValueIsRequiredError("employee full name")
	}
	if err := position.Validate(); err != nil {
		return nil, err
	}

	return &Employee{
		id:            id,
		fullName:      fullName,
		position:      position,
		isActive:      true,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreEmployee reconstructs an employee from persistence.
func RestoreEmployee(
	id kernel.UUID,
	fullName string,
	position Position,
	isActive bool,
	identityID *kernel.UUID,
	createdAt time.Time,
) (*Employee, error) {
	e, err := NewEmployee(id, fullName, position, createdAt)
	if err != nil {
		return nil, err
	}
	e.isActive = isActive
	e.identityID = identityID
	return e, nil
}

// Validate ensures the Employee instance was properly constructed.
func (e *Employee) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEmployeeIsNotConstructed
	}
	return nil
}

// ID returns the employee's unique identifier.
func (e *Employee) ID() kernel.UUID { return e.id }

// FullName returns the display name.
func (e *Employee) FullName() string { return e.fullName }

// Position returns the job title.
func (e *Employee) Position() Position { return e.position }

// IsActive reports whether the employee can be assigned work.
func (e *Employee) IsActive() bool { return e.isActive }

// IdentityID returns the weak reference to the external identity record,
// nil when none is linked.
func (e *Employee) IdentityID() *kernel.UUID { return e.identityID }

// CreatedAt returns the creation timestamp.
func (e *Employee) CreatedAt() time.Time { return e.createdAt }

// LinkIdentity attaches an external identity reference.
func (e *Employee) LinkIdentity(identityID kernel.UUID) error {
	if err := identityID.Validate(); err != nil {
		return err
	}
	e.identityID = &identityID
	return nil
}

// UnlinkIdentity removes the external identity reference. Removal of the
// employee record itself happens separately, in the same transaction.
func (e *Employee) UnlinkIdentity() {
	e.identityID = nil
}
