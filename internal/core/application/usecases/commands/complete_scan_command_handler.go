package commands

import (
	"context"

	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/core/ports"
)

// CompleteScanCommandHandler finishes an order's scan pass: it records the
// packer on the processing record and applies the Created to Scanned
// transition, which commits stock and retires the scan session. The
// transition is attributed to the system actor because the stock movement
// follows mechanically from the scan being complete.
type CompleteScanCommandHandler struct {
	uowFactory CompleteScanUoWFactory
	clock      ports.Clock
}

// NewCompleteScanCommandHandler creates a handler for scan completion.
func NewCompleteScanCommandHandler(
	uowFactory CompleteScanUoWFactory,
	clock ports.Clock,
) CompleteScanCommandHandler {
	return CompleteScanCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the scan completion.
func (h CompleteScanCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteScanCommand,
) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return TransitionResult{}, err
	}

	packer, err := uow.EmployeeRepository().Get(ctx, cmd.PackerID())
	if err != nil {
		return TransitionResult{}, err
	}

	now := h.clock.Now()
	if err = ord.SetPrepared(packer.ID(), now); err != nil {
		return TransitionResult{}, err
	}

	applied, err := applyStatusChange(ctx, uow, ord, order.Scanned, order.SystemActor(), now)
	if err != nil {
		return TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	return TransitionResult{Applied: applied, Status: ord.Status()}, nil
}
