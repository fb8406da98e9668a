package commands

import (
	"errors"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/pkg/guard"
)

var ErrRequestTransitionCommandIsNotConstructed = errors.New(
	"RequestTransitionCommand must be created via NewRequestTransitionCommand constructor",
)

// RequestTransitionCommand represents a request to move an order to a new
// lifecycle status on behalf of an actor.
type RequestTransitionCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus order.Status
	actor     order.Actor

	guard guard.ConstructorGuard
}

// NewRequestTransitionCommand creates a transition request. The target
// status must be a defined lifecycle state; legality against the order's
// current status is decided inside the transaction by the handler.
func NewRequestTransitionCommand(
	orderID kernel.UUID,
	newStatus order.Status,
	actor order.Actor,
) (RequestTransitionCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RequestTransitionCommand{}, err
	}
	if err := newStatus.Validate(); err != nil {
		return RequestTransitionCommand{}, err
	}

	return RequestTransitionCommand{
		orderID:   orderID,
		newStatus: newStatus,
		actor:     actor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestTransitionCommand) Validate() error {
	return c.guard.Validate(ErrRequestTransitionCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c RequestTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the requested target status.
func (c RequestTransitionCommand) NewStatus() order.Status {
	return c.newStatus
}

// Actor returns who requested the transition.
func (c RequestTransitionCommand) Actor() order.Actor {
	return c.actor
}
