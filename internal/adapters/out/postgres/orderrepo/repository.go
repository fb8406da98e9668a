package orderrepo

import (
	"context"
	"errors"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// mutableColumns are the only order columns a transition may change. Line
// items and the creation snapshot are immutable; listing the columns
// explicitly also forces GORM to write NULLs when a revert clears the
// processing references.
var mutableColumns = []string{
	"status",
	"stock_committed",
	"processing_process_date",
	"processing_prepared_by",
	"processing_scanned_by",
}

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its line items and processing record.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the order's mutable columns back.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	return r.update(ctx, aggregate, nil)
}

// UpdateStatusGuarded writes the mutable columns only if the persisted
// status still equals observed. A zero-row update means a concurrent
// transition won the race; the caller's transaction should abort.
func (r *GormOrderRepository) UpdateStatusGuarded(
	ctx context.Context,
	aggregate *order.Order,
	observed order.Status,
) error {
	return r.update(ctx, aggregate, &observed)
}

func (r *GormOrderRepository) update(ctx context.Context, aggregate *order.Order, observed *order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	query := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Select(mutableColumns).
		Where("id = ?", dto.ID)
	if observed != nil {
		query = query.Where("status = ?", int(*observed))
	}

	result := query.Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if observed != nil {
			return errs.NewInvalidStateError("order status changed concurrently")
		}
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves an order and locks its row until the transaction
// ends. The line-item rows are not locked; they never change.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, true)
}

func (r *GormOrderRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Preload("Items")
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatus retrieves all orders in the given status, oldest first.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("status = ?", int(status)).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}
