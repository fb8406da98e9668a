// Package scansession contains the ScanSession aggregate: the server-held
// multiset of physical units still to verify for an in-progress order.
//
// The session is seeded from the order's line quantities at creation, is the
// single authority on scan progress (it is never reconstructed from
// caller-supplied state, so clients cannot falsify progress), and is
// discarded once the order's stock is committed.
package scansession

import (
	"errors"
	"fmt"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/pkg/errs"
)

// ErrScanSessionIsNotConstructed is returned when a ScanSession instance was
// not created through NewScanSession or RestoreScanSession.
var ErrScanSessionIsNotConstructed = errors.New("ScanSession must be created via NewScanSession constructor")

// ScanSession tracks, per order, how many units of each product remain
// unverified. One token per physical unit.
type ScanSession struct {
	orderID   kernel.UUID
	remaining map[kernel.UUID]int

	isConstructed bool
}

// NewScanSession opens a session for a freshly created (or reverted) order,
// expanding every line item's quantity into that many unit tokens.
func NewScanSession(orderID kernel.UUID, items []order.Item) (*ScanSession, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("scan session needs at least one item")
	}

	remaining := make(map[kernel.UUID]int, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		remaining[item.ProductID()] += item.Quantity()
	}

	return &ScanSession{
		orderID:       orderID,
		remaining:     remaining,
		isConstructed: true,
	}, nil
}

// RestoreScanSession reconstructs a session from persistence. Products with
// zero remaining tokens are dropped rather than kept as empty entries.
func RestoreScanSession(orderID kernel.UUID, remaining map[kernel.UUID]int) (*ScanSession, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	cleaned := make(map[kernel.UUID]int, len(remaining))
	for productID, count := range remaining {
		if count < 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("remaining count is invalid",
				fmt.Errorf("%d is negative for product %s", count, productID))
		}
		if count > 0 {
			cleaned[productID] = count
		}
	}

	return &ScanSession{
		orderID:       orderID,
		remaining:     cleaned,
		isConstructed: true,
	}, nil
}

// Validate ensures the ScanSession instance was properly constructed.
func (s *ScanSession) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrScanSessionIsNotConstructed
	}
	return nil
}

// OrderID returns the order this session belongs to.
func (s *ScanSession) OrderID() kernel.UUID {
	return s.orderID
}

// ScanUnit removes exactly one remaining token for the product and returns
// the new total remaining count. Scanning a product with no remaining tokens
// fails without changing the session, so the count can never go negative.
func (s *ScanSession) ScanUnit(productID kernel.UUID) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := productID.Validate(); err != nil {
		return 0, err
	}

	count, ok := s.remaining[productID]
	if !ok || count == 0 {
		return 0, errs.NewInvalidStateErrorWithCause("product is not in the remaining set",
			fmt.Errorf("no unscanned units of product %s", productID))
	}

	if count == 1 {
		delete(s.remaining, productID)
	} else {
		s.remaining[productID] = count - 1
	}
	return s.RemainingCount(), nil
}

// RemainingCount returns the total number of unverified unit tokens.
func (s *ScanSession) RemainingCount() int {
	total := 0
	for _, count := range s.remaining {
		total += count
	}
	return total
}

// RemainingByProduct returns a copy of the remaining multiset.
func (s *ScanSession) RemainingByProduct() map[kernel.UUID]int {
	out := make(map[kernel.UUID]int, len(s.remaining))
	for productID, count := range s.remaining {
		out[productID] = count
	}
	return out
}

// IsComplete reports whether every unit has been verified.
func (s *ScanSession) IsComplete() bool {
	return s.RemainingCount() == 0
}
