package errs

import (
	"errors"
	"fmt"
)

// ErrStockInsufficient is the sentinel for stock commitments that cannot
// be satisfied by the current on-hand quantities.
var ErrStockInsufficient = errors.New("stock insufficient")

// StockInsufficientError indicates that a product's on-hand quantity cannot
// cover the requested quantity. It carries enough detail for the caller to
// report which product blocked the commitment.
type StockInsufficientError struct {
	ProductID string
	Available int
	Requested int
}

// NewStockInsufficientError creates an error for a product whose on-hand
// quantity is below the requested quantity.
func NewStockInsufficientError(productID string, available, requested int) *StockInsufficientError {
	return &StockInsufficientError{
		ProductID: productID,
		Available: available,
		Requested: requested,
	}
}

func (e *StockInsufficientError) Error() string {
	return fmt.Sprintf("%s: product %s, available: %d, requested: %d",
		ErrStockInsufficient, e.ProductID, e.Available, e.Requested)
}

func (e *StockInsufficientError) Unwrap() error {
	return ErrStockInsufficient
}
