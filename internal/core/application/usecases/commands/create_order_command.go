package commands

import (
	"errors"
	"fmt"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/pkg/errs"
	"stockflow/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)

	// ErrOrderHasNoItems is returned when the command carries no line items.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order must contain at least one item")
)

// OrderItemInput is one requested line: a product and a unit count. Prices
// are never accepted from the caller; they are snapshotted from the product
// catalog inside the handler.
type OrderItemInput struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to create a new warehouse order
// for a facility.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	facilityID kernel.UUID
	items      []OrderItemInput
	createdBy  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that identifiers are valid, at least one item is present, and
// every quantity is positive. createdBy optionally names the employee
// entering the order.
func NewCreateOrderCommand(
	orderID, facilityID kernel.UUID,
	items []OrderItemInput,
	createdBy *kernel.UUID,
) (CreateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := facilityID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if len(items) == 0 {
		return CreateOrderCommand{}, ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return CreateOrderCommand{}, err
		}
		if item.Quantity <= 0 {
			return CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
				fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
	}
	if createdBy != nil {
		if err := createdBy.Validate(); err != nil {
			return CreateOrderCommand{}, err
		}
	}

	return CreateOrderCommand{
		orderID:    orderID,
		facilityID: facilityID,
		items:      append([]OrderItemInput(nil), items...),
		createdBy:  createdBy,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// FacilityID returns the destination facility.
func (c CreateOrderCommand) FacilityID() kernel.UUID {
	return c.facilityID
}

// Items returns the requested lines.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return append([]OrderItemInput(nil), c.items...)
}

// CreatedBy returns the employee entering the order, nil when unknown.
func (c CreateOrderCommand) CreatedBy() *kernel.UUID {
	return c.createdBy
}
