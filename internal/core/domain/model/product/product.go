// Package product contains the Product entity. The warehouse core mutates
// only the on-hand quantity; every other field is owned by master-data
// management outside this module.
package product

import (
	"errors"
	"fmt"
	"time"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a stock-keeping unit with a selling price, a cost price, and
// an on-hand quantity guarded against going negative.
type Product struct {
	id                kernel.UUID
	name              string
	price             decimal.Decimal
	costPrice         decimal.Decimal
	onHandQuantity    int
	minimumStockLevel int
	createdAt         time.Time

	isConstructed bool
}

// NewProduct creates a product with validation.
func NewProduct(
	id kernel.UUID,
	name string,
	price, costPrice decimal.Decimal,
	onHandQuantity, minimumStockLevel int,
	createdAt time.Time,
) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("product name")
	}
	if price.IsNegative() || costPrice.IsNegative() {
		return nil, errs.NewValueIsInvalidError("product price")
	}
	if onHandQuantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("on-hand quantity is invalid",
			fmt.Errorf("%d is negative", onHandQuantity))
	}
	if minimumStockLevel < 0 {
		return nil, errs.NewValueIsInvalidError("minimum stock level")
	}

	return &Product{
		id:                id,
		name:              name,
		price:             price,
		costPrice:         costPrice,
		onHandQuantity:    onHandQuantity,
		minimumStockLevel: minimumStockLevel,
		createdAt:         createdAt,
		isConstructed:     true,
	}, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(
	id kernel.UUID,
	name string,
	price, costPrice decimal.Decimal,
	onHandQuantity, minimumStockLevel int,
	createdAt time.Time,
) (*Product, error) {
	return NewProduct(id, name, price, costPrice, onHandQuantity, minimumStockLevel, createdAt)
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID { return p.id }

// Name returns the product name.
func (p *Product) Name() string { return p.name }

// Price returns the current selling price, snapshotted onto order items
// at order creation.
func (p *Product) Price() decimal.Decimal { return p.price }

// CostPrice returns the purchase cost.
func (p *Product) CostPrice() decimal.Decimal { return p.costPrice }

// OnHandQuantity returns the current stock level.
func (p *Product) OnHandQuantity() int { return p.onHandQuantity }

// MinimumStockLevel returns the replenishment threshold.
func (p *Product) MinimumStockLevel() int { return p.minimumStockLevel }

// CreatedAt returns the creation timestamp.
func (p *Product) CreatedAt() time.Time { return p.createdAt }

// IsBelowMinimum reports whether the stock level is at or under the
// replenishment threshold.
func (p *Product) IsBelowMinimum() bool {
	return p.onHandQuantity <= p.minimumStockLevel
}

// CanCover reports whether the on-hand quantity covers the requested amount.
func (p *Product) CanCover(quantity int) bool {
	return p.onHandQuantity >= quantity
}

// DecrementOnHand reduces the on-hand quantity. The caller (the stock
// ledger) must have verified coverage for the whole order first; this guard
// only protects the never-negative invariant of the individual product.
func (p *Product) DecrementOnHand(quantity int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if !p.CanCover(quantity) {
		return errs.NewStockInsufficientError(p.id.String(), p.onHandQuantity, quantity)
	}

	p.onHandQuantity -= quantity
	return nil
}
