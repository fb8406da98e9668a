package scansessionrepo

import (
	"context"
	"errors"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/scansession"
	"stockflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormScanSessionRepository implements ports.ScanSessionRepository using GORM.
type GormScanSessionRepository struct {
	db *gorm.DB
}

// NewGormScanSessionRepository creates a new GORM scan-session repository.
func NewGormScanSessionRepository(db *gorm.DB) *GormScanSessionRepository {
	return &GormScanSessionRepository{db: db}
}

// Add persists a newly opened session with its remaining counts.
func (r *GormScanSessionRepository) Add(ctx context.Context, aggregate *scansession.ScanSession) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetForUpdate retrieves the session for an order and locks the session row
// until the transaction ends, serializing concurrent scans of the order.
func (r *GormScanSessionRepository) GetForUpdate(
	ctx context.Context,
	orderID kernel.UUID,
) (*scansession.ScanSession, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto ScanSessionDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items").
		First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("scan session", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update replaces the session's remaining counts. Scanning only ever
// removes tokens, so replacing the child rows wholesale is simplest and the
// row count is bounded by the order's product count.
func (r *GormScanSessionRepository) Update(ctx context.Context, aggregate *scansession.ScanSession) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	err := r.db.WithContext(ctx).
		Delete(&ScanSessionItemDTO{}, "order_id = ?", dto.OrderID).Error
	if err != nil {
		return err
	}

	if len(dto.Items) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dto.Items).Error
}

// Delete discards the session and its remaining counts.
func (r *GormScanSessionRepository) Delete(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).
		Delete(&ScanSessionItemDTO{}, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&ScanSessionDTO{}, "order_id = ?", orderID.Bytes()).Error
}
