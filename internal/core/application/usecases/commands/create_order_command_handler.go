package commands

import (
	"context"

	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/core/domain/model/scansession"
	"stockflow/internal/core/ports"
	"stockflow/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
//
// On success the order exists in Created status with an attached empty
// processing record, the total amount fixed as the sum of line totals at
// today's prices, and an open scan session seeded from the line quantities.
type CreateOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
	clock      ports.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderingUoWFactory, clock ports.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the order creation command and returns the created order.
//
// Failure modes: an unknown or inactive facility and an unknown product are
// ObjectNotFoundErrors; the transaction guarantees that either the order,
// its processing record, and its scan session all exist, or none do.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	active, err := uow.FacilityRepository().ExistsActive(ctx, cmd.FacilityID())
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, errs.NewObjectNotFoundError("facilityId", cmd.FacilityID().String())
	}

	productRepo := uow.ProductRepository()
	items := make([]order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		p, getErr := productRepo.Get(ctx, input.ProductID)
		if getErr != nil {
			return nil, getErr
		}

		// Snapshot the current unit price; it never changes afterwards.
		item, itemErr := order.NewItem(p.ID(), input.Quantity, p.Price())
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.FacilityID(), items, cmd.CreatedBy(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	session, err := scansession.NewScanSession(newOrder.ID(), newOrder.Items())
	if err != nil {
		return nil, err
	}
	if err = uow.ScanSessionRepository().Add(ctx, session); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
