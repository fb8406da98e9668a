package queries

import (
	"context"

	"stockflow/internal/core/domain/model/employee"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetPayrollReportQueryHandler aggregates prepared-order counts per employee
// over a date range and prices them at the query's flat rate.
type GetPayrollReportQueryHandler struct {
	db *gorm.DB
}

// NewGetPayrollReportQueryHandler creates a handler for payroll queries.
func NewGetPayrollReportQueryHandler(db *gorm.DB) GetPayrollReportQueryHandler {
	return GetPayrollReportQueryHandler{db: db}
}

// Handle executes the report. Only orders with a preparer and a process date
// inside the period count; employees with no prepared orders in the period
// produce no row. Rows are sorted by employee name for stable output.
func (h GetPayrollReportQueryHandler) Handle(
	ctx context.Context,
	query GetPayrollReportQuery,
) ([]PayrollRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	// The period is inclusive of the end date, so the SQL bound is the
	// start of the following day.
	endExclusive := query.EndDate().AddDate(0, 0, 1)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			e.full_name,
			e.position,
			COUNT(o.id)
		FROM orders o
		JOIN employees e ON e.id = o.processing_prepared_by
		WHERE o.processing_process_date >= ?
		  AND o.processing_process_date < ?
		GROUP BY e.id, e.full_name, e.position
		ORDER BY e.full_name, e.id
	`, query.StartDate(), endExclusive).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := make([]PayrollRow, 0)

	for rows.Next() {
		var id uuid.UUID
		var fullName string
		var position int
		var ordersCount int

		if err = rows.Scan(&id, &fullName, &position, &ordersCount); err != nil {
			return nil, err
		}

		report = append(report, PayrollRow{
			EmployeeID:   id.String(),
			EmployeeName: fullName,
			Position:     employee.Position(position),
			OrdersCount:  ordersCount,
			Amount:       query.Rate().Mul(decimal.NewFromInt(int64(ordersCount))),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}
