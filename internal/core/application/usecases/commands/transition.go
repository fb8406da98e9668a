package commands

import (
	"context"
	"time"

	"stockflow/internal/core/domain/model/audit"
	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/core/domain/model/product"
	"stockflow/internal/core/domain/model/scansession"
	"stockflow/internal/core/domain/services"
	"stockflow/internal/pkg/errs"
)

// errScanIncomplete gates the stock-commitment transition: the order must be
// in Created status and the scan session must have no remaining units.
func errScanIncomplete() error {
	return errs.NewInvalidStateError("scan is not complete")
}

// applyStatusChange performs one status transition inside the caller's open
// transaction. It is shared by the request-transition and complete-scan
// handlers so both follow the exact same rules:
//
//   - a request for the current status returns (false, nil) with no writes,
//   - entering Scanned requires Created status and an exhausted scan
//     session, commits stock through the ledger iff not committed before,
//     and discards the session,
//   - a revert to Created clears the processing references and reopens a
//     fresh scan session so the pass can be redone (stock stays committed),
//   - the row update is guarded by the observed pre-transition status, so a
//     concurrent duplicate cannot also apply,
//   - a human actor appends exactly one audit entry; the system actor none.
func applyStatusChange(
	ctx context.Context,
	uow TransitionUoW,
	ord *order.Order,
	target order.Status,
	actor order.Actor,
	now time.Time,
) (bool, error) {
	observed := ord.Status()
	if target == observed {
		return false, nil
	}

	if target == order.Scanned {
		if observed != order.Created {
			return false, errScanIncomplete()
		}

		session, err := uow.ScanSessionRepository().GetForUpdate(ctx, ord.ID())
		if err != nil {
			return false, err
		}
		if !session.IsComplete() {
			return false, errScanIncomplete()
		}

		if !ord.IsStockCommitted() {
			if err = commitStock(ctx, uow, ord); err != nil {
				return false, err
			}
			ord.MarkStockCommitted()
		}

		// The scan pass is done and stock is committed; the session has
		// served its purpose.
		if err = uow.ScanSessionRepository().Delete(ctx, ord.ID()); err != nil {
			return false, err
		}
	}

	applied, err := ord.ChangeStatus(target)
	if err != nil || !applied {
		return false, err
	}

	if target == order.Created {
		session, sessionErr := scansession.NewScanSession(ord.ID(), ord.Items())
		if sessionErr != nil {
			return false, sessionErr
		}
		if sessionErr = uow.ScanSessionRepository().Add(ctx, session); sessionErr != nil {
			return false, sessionErr
		}
	}

	if err = uow.OrderRepository().UpdateStatusGuarded(ctx, ord, observed); err != nil {
		return false, err
	}

	if actor.IsHuman() {
		entry, auditErr := audit.NewEntry(ord.ID(), observed, target, actor.ID(), actor.Name(), now)
		if auditErr != nil {
			return false, auditErr
		}
		if auditErr = uow.AuditLogRepository().Append(ctx, entry); auditErr != nil {
			return false, auditErr
		}
	}

	return true, nil
}

// commitStock locks every involved product row in ascending id order, runs
// the ledger's whole-order check-then-apply, and persists the new on-hand
// quantities. A StockInsufficientError from the ledger reaches the caller
// before any UpdateOnHand, and the enclosing rollback discards everything
// else.
func commitStock(ctx context.Context, uow TransitionUoW, ord *order.Order) error {
	items := ord.Items()
	ids := make([]kernel.UUID, 0, len(items))
	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID()]; ok {
			continue
		}
		seen[item.ProductID()] = struct{}{}
		ids = append(ids, item.ProductID())
	}

	productRepo := uow.ProductRepository()
	locked, err := productRepo.GetForUpdate(ctx, ids)
	if err != nil {
		return err
	}

	byID := make(map[kernel.UUID]*product.Product, len(locked))
	for _, p := range locked {
		byID[p.ID()] = p
	}

	if err = services.NewStockLedger().CommitStock(ord, byID); err != nil {
		return err
	}

	for _, p := range locked {
		if err = productRepo.UpdateOnHand(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
