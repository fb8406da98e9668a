package commands

import (
	"errors"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/pkg/guard"
)

var ErrScanUnitCommandIsNotConstructed = errors.New(
	"ScanUnitCommand must be created via NewScanUnitCommand constructor",
)

// ScanUnitCommand represents one physical unit of a product being scanned
// against an order's open scan session.
type ScanUnitCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewScanUnitCommand creates a command to scan a single unit.
func NewScanUnitCommand(orderID, productID kernel.UUID) (ScanUnitCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ScanUnitCommand{}, err
	}
	if err := productID.Validate(); err != nil {
		return ScanUnitCommand{}, err
	}

	return ScanUnitCommand{
		orderID:   orderID,
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ScanUnitCommand) Validate() error {
	return c.guard.Validate(ErrScanUnitCommandIsNotConstructed)
}

// OrderID returns the order whose session receives the scan.
func (c ScanUnitCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the scanned product.
func (c ScanUnitCommand) ProductID() kernel.UUID {
	return c.productID
}
