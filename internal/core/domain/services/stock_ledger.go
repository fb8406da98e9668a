package services

import (
	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/core/domain/model/product"
	"stockflow/internal/pkg/errs"
)

// StockLedger is the domain service that decrements product on-hand
// quantities for an order.
//
// Business rules:
//   - coverage is verified for every line item before any product is
//     mutated (check-then-apply over the whole order), so a failure leaves
//     every on-hand quantity unchanged,
//   - the ledger itself runs at most once per order: callers consult the
//     order's stock-committed flag before invoking it, and the surrounding
//     transaction plus the status guard on the order row prevent two
//     concurrent callers from both reaching this point.
type StockLedger struct{}

// NewStockLedger creates a new StockLedger instance.
func NewStockLedger() StockLedger {
	return StockLedger{}
}

// CommitStock verifies that every line item of the order is covered by its
// product's on-hand quantity and then decrements each product.
//
// products must contain an entry for every product referenced by the order's
// line items; a missing entry is an ObjectNotFoundError. A coverage failure
// returns a StockInsufficientError naming the blocking product, its
// available quantity, and the requested quantity, with zero mutations.
func (StockLedger) CommitStock(o *order.Order, products map[kernel.UUID]*product.Product) error {
	if err := o.Validate(); err != nil {
		return err
	}

	items := o.Items()

	// Check phase: no mutation until every item is verified.
	for _, item := range items {
		p, ok := products[item.ProductID()]
		if !ok {
			return errs.NewObjectNotFoundError("productId", item.ProductID().String())
		}
		if err := p.Validate(); err != nil {
			return err
		}
		if !p.CanCover(item.Quantity()) {
			return errs.NewStockInsufficientError(p.ID().String(), p.OnHandQuantity(), item.Quantity())
		}
	}

	// Apply phase: cannot fail on coverage after the check above.
	for _, item := range items {
		if err := products[item.ProductID()].DecrementOnHand(item.Quantity()); err != nil {
			return err
		}
	}

	return nil
}
