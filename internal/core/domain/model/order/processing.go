package order

import (
	"time"

	"stockflow/internal/core/domain/model/kernel"
)

// Processing is the per-order record of who handled the order and when.
// It exists for the whole life of the order; references are cleared, never
// the record itself.
type Processing struct {
	processDate *time.Time
	createdBy   *kernel.UUID
	preparedBy  *kernel.UUID
	scannedBy   *kernel.UUID
}

// RestoreProcessing reconstructs a processing record from persistence.
func RestoreProcessing(processDate *time.Time, createdBy, preparedBy, scannedBy *kernel.UUID) Processing {
	return Processing{
		processDate: processDate,
		createdBy:   createdBy,
		preparedBy:  preparedBy,
		scannedBy:   scannedBy,
	}
}

// ProcessDate returns when the scan pass was completed, nil before that.
func (p Processing) ProcessDate() *time.Time { return p.processDate }

// CreatedBy returns the employee who created the order, if known.
func (p Processing) CreatedBy() *kernel.UUID { return p.createdBy }

// PreparedBy returns the packer assigned when the scan pass completed.
// Non-nil only for orders that have passed the stock-commitment transition.
func (p Processing) PreparedBy() *kernel.UUID { return p.preparedBy }

// ScannedBy returns the employee who ran the scan pass, if tracked.
func (p Processing) ScannedBy() *kernel.UUID { return p.scannedBy }
