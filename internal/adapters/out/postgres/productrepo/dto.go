// Package productrepo persists products. The warehouse core only ever
// mutates the on-hand quantity; the rest of the row is master data.
package productrepo

import (
	"time"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the database shape of a product.
type ProductDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name              string
	Price             decimal.Decimal `gorm:"type:decimal(18,2)"`
	CostPrice         decimal.Decimal `gorm:"type:decimal(18,2)"`
	OnHandQuantity    int
	MinimumStockLevel int
	CreatedAt         time.Time
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:                aggregate.ID().Bytes(),
		Name:              aggregate.Name(),
		Price:             aggregate.Price(),
		CostPrice:         aggregate.CostPrice(),
		OnHandQuantity:    aggregate.OnHandQuantity(),
		MinimumStockLevel: aggregate.MinimumStockLevel(),
		CreatedAt:         aggregate.CreatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.Price,
		dto.CostPrice,
		dto.OnHandQuantity,
		dto.MinimumStockLevel,
		dto.CreatedAt,
	)
}
