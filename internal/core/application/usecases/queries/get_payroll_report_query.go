// Package queries contains read-only operations over the persisted state.
// Query handlers bypass the domain aggregates and read the database
// directly, implementing the read side of the CQRS architecture.
package queries

import (
	"errors"
	"time"

	"stockflow/internal/core/domain/model/employee"
	"stockflow/internal/pkg/errs"
	"stockflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPayrollReportQueryIsNotConstructed = errors.New(
	"GetPayrollReportQuery must be created via NewGetPayrollReportQuery constructor",
)

// GetPayrollReportQuery derives per-employee pay from processing records:
// every order an employee prepared within the date range earns the flat
// per-order rate. The report is purely read-only; its correctness rests on
// preparedBy being set at scan completion and cleared on revert.
type GetPayrollReportQuery struct {
	startDate time.Time
	endDate   time.Time
	rate      decimal.Decimal

	guard guard.ConstructorGuard
}

// NewGetPayrollReportQuery creates a payroll query for the inclusive date
// range [startDate, endDate]. The rate must not be negative.
func NewGetPayrollReportQuery(startDate, endDate time.Time, rate decimal.Decimal) (GetPayrollReportQuery, error) {
	if startDate.IsZero() || endDate.IsZero() {
		return GetPayrollReportQuery{}, errs.NewValueIsRequiredError("payroll period")
	}
	if endDate.Before(startDate) {
		return GetPayrollReportQuery{}, errs.NewValueIsInvalidError("payroll period")
	}
	if rate.IsNegative() {
		return GetPayrollReportQuery{}, errs.NewValueIsInvalidError("rate")
	}

	return GetPayrollReportQuery{
		startDate: startDate,
		endDate:   endDate,
		rate:      rate,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPayrollReportQuery) Validate() error {
	return q.guard.Validate(ErrGetPayrollReportQueryIsNotConstructed)
}

// StartDate returns the first day of the period.
func (q GetPayrollReportQuery) StartDate() time.Time {
	return q.startDate
}

// EndDate returns the last day of the period, inclusive.
func (q GetPayrollReportQuery) EndDate() time.Time {
	return q.endDate
}

// Rate returns the pay per prepared order.
func (q GetPayrollReportQuery) Rate() decimal.Decimal {
	return q.rate
}

// PayrollRow is one employee's line in the report.
type PayrollRow struct {
	EmployeeID   string
	EmployeeName string
	Position     employee.Position
	OrdersCount  int
	Amount       decimal.Decimal
}
