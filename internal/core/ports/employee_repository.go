package ports

import (
	"context"

	"stockflow/internal/core/domain/model/employee"
	"stockflow/internal/core/domain/model/kernel"
)

// EmployeeRepository defines the persistence contract for employees.
// Removal is an explicit two-step operation (clear the identity reference,
// then delete the row) performed inside one transaction by the caller.
type EmployeeRepository interface {
	// Add persists a new employee.
	Add(ctx context.Context, aggregate *employee.Employee) error

	// Get retrieves an employee by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error)

	// ClearIdentity removes the employee's weak reference to its external
	// identity record.
	ClearIdentity(ctx context.Context, id kernel.UUID) error

	// Delete removes the employee row. The identity reference must already
	// be cleared.
	Delete(ctx context.Context, id kernel.UUID) error
}
