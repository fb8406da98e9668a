package commands

import (
	"context"

	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/core/ports"
)

// TransitionResult reports the outcome of a transition request. Applied is
// false for the benign same-status no-op, so callers can tell "nothing to
// do" apart from failure.
type TransitionResult struct {
	Applied bool
	Status  order.Status
}

// RequestTransitionCommandHandler orchestrates a status transition inside
// one transaction: legality checks, the scan-completeness gate, exactly-once
// stock commitment, the status-guarded row update, and the audit entry for
// human actors. A failure midway (including a stock shortfall) leaves no
// partial effect.
type RequestTransitionCommandHandler struct {
	uowFactory TransitionUoWFactory
	clock      ports.Clock
}

// NewRequestTransitionCommandHandler creates a handler for transition requests.
func NewRequestTransitionCommandHandler(
	uowFactory TransitionUoWFactory,
	clock ports.Clock,
) RequestTransitionCommandHandler {
	return RequestTransitionCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the transition request.
func (h RequestTransitionCommandHandler) Handle(
	ctx context.Context,
	cmd RequestTransitionCommand,
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

	applied, err := applyStatusChange(ctx, uow, ord, cmd.NewStatus(), cmd.Actor(), h.clock.Now())
	if err != nil {
		return TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	return TransitionResult{Applied: applied, Status: ord.Status()}, nil
}
