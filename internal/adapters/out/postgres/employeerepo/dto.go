// Package employeerepo persists employees, including the weak reference to
// their external identity record.
package employeerepo

import (
	"time"

	"stockflow/internal/core/domain/model/employee"
	"stockflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EmployeeDTO is the database shape of an employee.
type EmployeeDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FullName   string
	Position   int
	IsActive   bool
	IdentityID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time
}

// TableName overrides GORM's default naming to use "employees".
func (EmployeeDTO) TableName() string {
	return "employees"
}

func fromDomain(aggregate *employee.Employee) EmployeeDTO {
	var identityID *uuid.UUID
	if id := aggregate.IdentityID(); id != nil {
		raw := id.Bytes()
		identityID = &raw
	}

	return EmployeeDTO{
		ID:         aggregate.ID().Bytes(),
		FullName:   aggregate.FullName(),
		Position:   int(aggregate.Position()),
		IsActive:   aggregate.IsActive(),
		IdentityID: identityID,
		CreatedAt:  aggregate.CreatedAt(),
	}
}

func toDomain(dto EmployeeDTO) (*employee.Employee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var identityID *kernel.UUID
	if dto.IdentityID != nil {
		converted, idErr := kernel.UUIDFromBytes((*dto.IdentityID)[:])
		if idErr != nil {
			return nil, idErr
		}
		identityID = &converted
	}

	return employee.RestoreEmployee(
		id,
		dto.FullName,
		employee.Position(dto.Position),
		dto.IsActive,
		identityID,
		dto.CreatedAt,
	)
}
