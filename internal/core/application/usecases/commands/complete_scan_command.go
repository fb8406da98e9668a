package commands

import (
	"errors"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/pkg/guard"
)

var ErrCompleteScanCommandIsNotConstructed = errors.New(
	"CompleteScanCommand must be created via NewCompleteScanCommand constructor",
)

// CompleteScanCommand represents a packer finishing the scan pass for an
// order, which commits its stock and moves it to Scanned.
type CompleteScanCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	packerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteScanCommand creates a command to finish an order's scan pass.
func NewCompleteScanCommand(orderID, packerID kernel.UUID) (CompleteScanCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompleteScanCommand{}, err
	}
	if err := packerID.Validate(); err != nil {
		return CompleteScanCommand{}, err
	}

	return CompleteScanCommand{
		orderID:  orderID,
		packerID: packerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteScanCommand) Validate() error {
	return c.guard.Validate(ErrCompleteScanCommandIsNotConstructed)
}

// OrderID returns the order whose scan pass is being finished.
func (c CompleteScanCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PackerID returns the employee who verified the order.
func (c CompleteScanCommand) PackerID() kernel.UUID {
	return c.packerID
}
