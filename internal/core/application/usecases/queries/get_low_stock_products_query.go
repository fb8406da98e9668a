package queries

import (
	"errors"

	"stockflow/internal/pkg/guard"
)

var ErrGetLowStockProductsQueryIsNotConstructed = errors.New(
	"GetLowStockProductsQuery must be created via NewGetLowStockProductsQuery constructor",
)

// GetLowStockProductsQuery retrieves products whose on-hand quantity has
// fallen to or below their minimum stock level.
type GetLowStockProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLowStockProductsQuery creates a parameterless low-stock query.
func NewGetLowStockProductsQuery() GetLowStockProductsQuery {
	return GetLowStockProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLowStockProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockProductsQueryIsNotConstructed)
}

// LowStockProductRow is one product at or under its minimum stock level.
type LowStockProductRow struct {
	ProductID         string
	Name              string
	OnHandQuantity    int
	MinimumStockLevel int
}
