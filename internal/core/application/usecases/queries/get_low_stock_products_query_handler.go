package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowStockProductsQueryHandler lists products that need replenishment.
type GetLowStockProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockProductsQueryHandler creates a handler for low-stock queries.
func NewGetLowStockProductsQueryHandler(db *gorm.DB) GetLowStockProductsQueryHandler {
	return GetLowStockProductsQueryHandler{db: db}
}

// Handle returns every product with on-hand quantity at or below its
// minimum stock level, sorted by name.
func (h GetLowStockProductsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockProductsQuery,
) ([]LowStockProductRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			on_hand_quantity,
			minimum_stock_level
		FROM products
		WHERE on_hand_quantity <= minimum_stock_level
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]LowStockProductRow, 0)

	for rows.Next() {
		var id uuid.UUID
		var row LowStockProductRow

		if err = rows.Scan(&id, &row.Name, &row.OnHandQuantity, &row.MinimumStockLevel); err != nil {
			return nil, err
		}
		row.ProductID = id.String()
		products = append(products, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
