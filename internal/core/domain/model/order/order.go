package order

import (
	"errors"
	"time"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// ErrNoItems is returned when an order is created without line items.
var ErrNoItems = errs.NewValueIsRequiredError("order must contain at least one item")

// Order is the aggregate root for the warehouse order lifecycle.
//
// Invariants:
//   - at least one line item; items and their price snapshots never change,
//   - totalAmount equals the sum of line totals, fixed at creation,
//   - status changes only through ChangeStatus, which enforces the
//     transition rules of Status.ValidateTransition,
//   - a revert to Created clears the prepared-by and scanned-by references,
//   - stockCommitted rises once and never falls, so the inventory ledger
//     decrements on-hand quantities at most once per order.
type Order struct {
	id          kernel.UUID
	facilityID  kernel.UUID
	status      Status
	items       []Item
	totalAmount decimal.Decimal
	createdAt   time.Time
	processing  Processing

	// stockCommitted records that inventory has been decremented for this
	// order. Reverts do not restock, so the flag survives them.
	stockCommitted bool

	isConstructed bool
}

// NewOrder creates an order in Created status with an attached empty
// Processing record. The total amount is computed here as the sum of line
// totals and is never recomputed afterwards. createdBy optionally records
// the employee entering the order.
func NewOrder(id, facilityID kernel.UUID, items []Item, createdBy *kernel.UUID, createdAt time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := facilityID.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	total := decimal.Zero
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		total = total.Add(item.LineTotal())
	}

	return &Order{
		id:            id,
		facilityID:    facilityID,
		status:        Created,
		items:         append([]Item(nil), items...),
		totalAmount:   total,
		createdAt:     createdAt,
		processing:    Processing{createdBy: createdBy},
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence without recomputing
// the total amount.
func RestoreOrder(
	id, facilityID kernel.UUID,
	status Status,
	items []Item,
	totalAmount decimal.Decimal,
	createdAt time.Time,
	processing Processing,
	stockCommitted bool,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := facilityID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:             id,
		facilityID:     facilityID,
		status:         status,
		items:          append([]Item(nil), items...),
		totalAmount:    totalAmount,
		createdAt:      createdAt,
		processing:     processing,
		stockCommitted: stockCommitted,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// FacilityID returns the destination facility reference.
func (o *Order) FacilityID() kernel.UUID {
	return o.facilityID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the line items.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// TotalAmount returns the order total fixed at creation time.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Processing returns the current processing record.
func (o *Order) Processing() Processing {
	return o.processing
}

// IsStockCommitted reports whether inventory has already been decremented
// for this order.
func (o *Order) IsStockCommitted() bool {
	return o.stockCommitted
}

// ChangeStatus moves the order to target if the transition is legal.
//
// A request for the current status is a benign no-op and returns
// (false, nil) so callers can distinguish "nothing to do" from failure.
// A revert to Created clears the prepared-by and scanned-by references;
// it does not restock.
func (o *Order) ChangeStatus(target Status) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}
	if target == o.status {
		return false, nil
	}
	if err := o.status.ValidateTransition(target); err != nil {
		return false, err
	}

	if target == Created {
		o.processing.preparedBy = nil
		o.processing.scannedBy = nil
	}

	o.status = target
	return true, nil
}

// MarkStockCommitted records that the inventory ledger has decremented
// stock for this order. The flag never resets.
func (o *Order) MarkStockCommitted() {
	o.stockCommitted = true
}

// SetPrepared records the packer who finished the scan pass and the
// process timestamp. Called by the complete-scan operation just before the
// transition to Scanned.
func (o *Order) SetPrepared(packerID kernel.UUID, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := packerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("no packer selected", err)
	}

	o.processing.preparedBy = &packerID
	o.processing.processDate = &at
	return nil
}

// SetScannedBy records the employee who ran the scan pass.
func (o *Order) SetScannedBy(employeeID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := employeeID.Validate(); err != nil {
		return err
	}

	o.processing.scannedBy = &employeeID
	return nil
}
