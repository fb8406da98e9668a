package commands

import (
	"context"

	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/pkg/errs"
)

// ScanResult reports the session state after a scan.
type ScanResult struct {
	Remaining int
	Complete  bool
}

// ScanUnitCommandHandler records one verified unit against an order's scan
// session. The session row is locked for the transaction, so two cashiers
// scanning the same order are serialized and each unit is counted once.
type ScanUnitCommandHandler struct {
	uowFactory ScanUoWFactory
}

// NewScanUnitCommandHandler creates a handler for unit scans.
func NewScanUnitCommandHandler(uowFactory ScanUoWFactory) ScanUnitCommandHandler {
	return ScanUnitCommandHandler{uowFactory: uowFactory}
}

// Handle processes the scan.
func (h ScanUnitCommandHandler) Handle(ctx context.Context, cmd ScanUnitCommand) (ScanResult, error) {
	if err := cmd.Validate(); err != nil {
		return ScanResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ScanResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return ScanResult{}, err
	}
	if ord.Status() != order.Created {
		return ScanResult{}, errs.NewInvalidStateError("order is not open for scanning")
	}

	session, err := uow.ScanSessionRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return ScanResult{}, err
	}

	remaining, err := session.ScanUnit(cmd.ProductID())
	if err != nil {
		return ScanResult{}, err
	}

	if err = uow.ScanSessionRepository().Update(ctx, session); err != nil {
		return ScanResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ScanResult{}, err
	}

	return ScanResult{Remaining: remaining, Complete: remaining == 0}, nil
}
