package commands

import (
	"errors"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/pkg/guard"
)

var ErrRemoveEmployeeCommandIsNotConstructed = errors.New(
	"RemoveEmployeeCommand must be created via NewRemoveEmployeeCommand constructor",
)

// RemoveEmployeeCommand represents a request to delete an employee record.
type RemoveEmployeeCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveEmployeeCommand creates a command to remove an employee.
func NewRemoveEmployeeCommand(employeeID kernel.UUID) (RemoveEmployeeCommand, error) {
	if err := employeeID.Validate(); err != nil {
		return RemoveEmployeeCommand{}, err
	}

	return RemoveEmployeeCommand{
		employeeID: employeeID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrRemoveEmployeeCommandIsNotConstructed)
}

// EmployeeID returns the employee to remove.
func (c RemoveEmployeeCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}
