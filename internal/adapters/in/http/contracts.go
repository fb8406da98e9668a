package http

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request and response bodies for the HTTP API. Money fields travel as
// strings to keep decimal values exact on the wire.

// NewOrderItem is one requested line in an order creation request.
type NewOrderItem struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// NewOrder is the body of POST /api/v1/orders.
type NewOrder struct {
	FacilityID uuid.UUID      `json:"facilityId"`
	Items      []NewOrderItem `json:"items"`
	CreatedBy  *uuid.UUID     `json:"createdBy,omitempty"`
}

// OrderCreated is the response body for a created order.
type OrderCreated struct {
	ID          uuid.UUID       `json:"id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// StatusChange is the body of POST /api/v1/orders/:id/status.
type StatusChange struct {
	NewStatus string `json:"newStatus"`
}

// TransitionOutcome reports whether a transition request changed anything.
type TransitionOutcome struct {
	Applied bool   `json:"applied"`
	Status  string `json:"status"`
}

// ScanRequest is the body of POST /api/v1/orders/:id/scan.
type ScanRequest struct {
	ProductID uuid.UUID `json:"productId"`
}

// ScanOutcome reports the session state after a scan.
type ScanOutcome struct {
	Remaining int  `json:"remaining"`
	Complete  bool `json:"complete"`
}

// CompleteScanRequest is the body of POST /api/v1/orders/:id/scan/complete.
type CompleteScanRequest struct {
	PackerID uuid.UUID `json:"packerId"`
}

// PayrollReportRow is one employee's line in the payroll report.
type PayrollReportRow struct {
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	Role         string          `json:"role"`
	OrdersCount  int             `json:"ordersCount"`
	Amount       decimal.Decimal `json:"amount"`
}

// AuditLogEntry is one recorded status change of an order.
type AuditLogEntry struct {
	OldStatus string `json:"oldStatus"`
	NewStatus string `json:"newStatus"`
	ActorID   string `json:"actorId"`
	ActorName string `json:"actorName"`
	ChangedAt string `json:"changedAt"`
}

// LowStockProduct is one product at or under its minimum stock level.
type LowStockProduct struct {
	ProductID         string `json:"productId"`
	Name              string `json:"name"`
	OnHandQuantity    int    `json:"onHandQuantity"`
	MinimumStockLevel int    `json:"minimumStockLevel"`
}

// Error is the uniform error body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
