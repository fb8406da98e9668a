// Package orderrepo persists the order aggregate: the order row with its
// embedded processing record and the immutable line-item child rows.
package orderrepo

import (
	"time"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the database shape of an order aggregate. The processing
// record is embedded because it is one-to-one with the order and lives and
// dies with it; line items are a separate table because an order has many.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	FacilityID     uuid.UUID `gorm:"type:uuid;index"`
	Status         int       `gorm:"index"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(18,2)"`
	StockCommitted bool
	CreatedAt      time.Time
	Processing     ProcessingDTO  `gorm:"embedded;embeddedPrefix:processing_"`
	Items          []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ProcessingDTO holds who touched the order and when the scan pass was
// finished. All references are nullable; a revert writes them back to NULL.
type ProcessingDTO struct {
	ProcessDate *time.Time
	CreatedBy   *uuid.UUID `gorm:"type:uuid"`
	PreparedBy  *uuid.UUID `gorm:"type:uuid;index"`
	ScannedBy   *uuid.UUID `gorm:"type:uuid"`
}

// OrderItemDTO is one immutable order line with its price snapshot.
type OrderItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,2)"`
	LineTotal decimal.Decimal `gorm:"type:decimal(18,2)"`
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			LineTotal: item.LineTotal(),
		})
	}

	processing := aggregate.Processing()

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		FacilityID:     aggregate.FacilityID().Bytes(),
		Status:         int(aggregate.Status()),
		TotalAmount:    aggregate.TotalAmount(),
		StockCommitted: aggregate.IsStockCommitted(),
		CreatedAt:      aggregate.CreatedAt(),
		Processing: ProcessingDTO{
			ProcessDate: processing.ProcessDate(),
			CreatedBy:   uuidPtr(processing.CreatedBy()),
			PreparedBy:  uuidPtr(processing.PreparedBy()),
			ScannedBy:   uuidPtr(processing.ScannedBy()),
		},
		Items: items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	facilityID, err := kernel.UUIDFromBytes(dto.FacilityID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(productID, itemDTO.Quantity, itemDTO.UnitPrice, itemDTO.LineTotal)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	createdBy, err := kernelPtr(dto.Processing.CreatedBy)
	if err != nil {
		return nil, err
	}
	preparedBy, err := kernelPtr(dto.Processing.PreparedBy)
	if err != nil {
		return nil, err
	}
	scannedBy, err := kernelPtr(dto.Processing.ScannedBy)
	if err != nil {
		return nil, err
	}

	processing := order.RestoreProcessing(dto.Processing.ProcessDate, createdBy, preparedBy, scannedBy)

	return order.RestoreOrder(
		id,
		facilityID,
		order.Status(dto.Status),
		items,
		dto.TotalAmount,
		dto.CreatedAt,
		processing,
		dto.StockCommitted,
	)
}
