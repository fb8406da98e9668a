package order

import (
	"fmt"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is a single order line: a product reference, a positive quantity, and
// the unit price snapshotted at order-creation time. Items are value objects
// and never change once the order exists.
type Item struct {
	productID kernel.UUID
	quantity  int
	unitPrice decimal.Decimal
	lineTotal decimal.Decimal

	isConstructed bool
}

// NewItem creates a line item, computing the line total from the snapshot
// price. The total is fixed here and never recomputed afterwards.
func NewItem(productID kernel.UUID, quantity int, unitPrice decimal.Decimal) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice.IsNegative() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unit price is invalid",
			fmt.Errorf("%s is negative", unitPrice))
	}

	return Item{
		productID:     productID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		lineTotal:     unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs a line item from persistence with its stored
// line total, bypassing recomputation.
func RestoreItem(productID kernel.UUID, quantity int, unitPrice, lineTotal decimal.Decimal) (Item, error) {
	item, err := NewItem(productID, quantity, unitPrice)
	if err != nil {
		return Item{}, err
	}
	item.lineTotal = lineTotal
	return item, nil
}

// Validate ensures the item came from NewItem or RestoreItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return errs.NewValueIsRequiredError("item must be created via NewItem")
	}
	return nil
}

// ProductID returns the referenced product's identifier.
func (i Item) ProductID() kernel.UUID { return i.productID }

// Quantity returns the ordered unit count.
func (i Item) Quantity() int { return i.quantity }

// UnitPrice returns the price snapshot taken at order creation.
func (i Item) UnitPrice() decimal.Decimal { return i.unitPrice }

// LineTotal returns quantity x unit price, fixed at creation.
func (i Item) LineTotal() decimal.Decimal { return i.lineTotal }
