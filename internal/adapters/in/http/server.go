package http

import (
	"errors"
	"net/http"
	"time"

	"stockflow/internal/core/application/usecases/commands"
	"stockflow/internal/core/application/usecases/queries"
	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Actor headers identify the human requesting an order transition.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorName = "X-Actor-Name"
)

// Server exposes the warehouse operations over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	requestTransitionHandler commands.RequestTransitionCommandHandler
	scanUnitHandler          commands.ScanUnitCommandHandler
	completeScanHandler      commands.CompleteScanCommandHandler
	removeEmployeeHandler    commands.RemoveEmployeeCommandHandler

	// Query handlers
	payrollReportHandler    queries.GetPayrollReportQueryHandler
	orderAuditLogHandler    queries.GetOrderAuditLogQueryHandler
	lowStockProductsHandler queries.GetLowStockProductsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	requestTransitionHandler commands.RequestTransitionCommandHandler,
	scanUnitHandler commands.ScanUnitCommandHandler,
	completeScanHandler commands.CompleteScanCommandHandler,
	removeEmployeeHandler commands.RemoveEmployeeCommandHandler,
	payrollReportHandler queries.GetPayrollReportQueryHandler,
	orderAuditLogHandler queries.GetOrderAuditLogQueryHandler,
	lowStockProductsHandler queries.GetLowStockProductsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		requestTransitionHandler: requestTransitionHandler,
		scanUnitHandler:          scanUnitHandler,
		completeScanHandler:      completeScanHandler,
		removeEmployeeHandler:    removeEmployeeHandler,
		payrollReportHandler:     payrollReportHandler,
		orderAuditLogHandler:     orderAuditLogHandler,
		lowStockProductsHandler:  lowStockProductsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.POST("/orders/:id/status", s.RequestTransition)
	v1.POST("/orders/:id/scan", s.ScanUnit)
	v1.POST("/orders/:id/scan/complete", s.CompleteScan)
	v1.GET("/orders/:id/audit", s.GetOrderAuditLog)
	v1.GET("/payroll", s.GetPayrollReport)
	v1.GET("/products/low-stock", s.GetLowStockProducts)
	v1.DELETE("/employees/:id", s.RemoveEmployee)
}

// CreateOrder handles POST /api/v1/orders - creates a new order with an
// open scan session.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	facilityID, err := kernel.UUIDFromString(body.FacilityID.String())
	if err != nil {
		return badRequest(ctx, "Invalid facility id: "+err.Error())
	}

	items := make([]commands.OrderItemInput, 0, len(body.Items))
	for _, line := range body.Items {
		productID, idErr := kernel.UUIDFromString(line.ProductID.String())
		if idErr != nil {
			return badRequest(ctx, "Invalid product id: "+idErr.Error())
		}
		items = append(items, commands.OrderItemInput{
			ProductID: productID,
			Quantity:  line.Quantity,
		})
	}

	var createdBy *kernel.UUID
	if body.CreatedBy != nil {
		id, idErr := kernel.UUIDFromString(body.CreatedBy.String())
		if idErr != nil {
			return badRequest(ctx, "Invalid createdBy id: "+idErr.Error())
		}
		createdBy = &id
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), facilityID, items, createdBy)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{
		ID:          created.ID().Bytes(),
		Status:      created.Status().String(),
		TotalAmount: created.TotalAmount(),
	})
}

// RequestTransition handles POST /api/v1/orders/:id/status - requests a
// status change on behalf of the human named in the actor headers.
func (s *Server) RequestTransition(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body StatusChange
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newStatus, err := order.StatusFromString(body.NewStatus)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	actor, err := order.NewActor(
		ctx.Request().Header.Get(HeaderActorID),
		ctx.Request().Header.Get(HeaderActorName),
	)
	if err != nil {
		return badRequest(ctx, "Actor headers are required: "+err.Error())
	}

	cmd, err := commands.NewRequestTransitionCommand(orderID, newStatus, actor)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	result, err := s.requestTransitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TransitionOutcome{
		Applied: result.Applied,
		Status:  result.Status.String(),
	})
}

// ScanUnit handles POST /api/v1/orders/:id/scan - records one verified unit
// against the order's scan session.
func (s *Server) ScanUnit(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body ScanRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(body.ProductID.String())
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	cmd, err := commands.NewScanUnitCommand(orderID, productID)
	if err != nil {
		return badRequest(ctx, "Invalid scan data: "+err.Error())
	}

	result, err := s.scanUnitHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ScanOutcome{
		Remaining: result.Remaining,
		Complete:  result.Complete,
	})
}

// CompleteScan handles POST /api/v1/orders/:id/scan/complete - records the
// packer and moves the order to Scanned, committing stock.
func (s *Server) CompleteScan(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body CompleteScanRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	packerID, err := kernel.UUIDFromString(body.PackerID.String())
	if err != nil {
		return badRequest(ctx, "Invalid packer id: "+err.Error())
	}

	cmd, err := commands.NewCompleteScanCommand(orderID, packerID)
	if err != nil {
		return badRequest(ctx, "Invalid completion data: "+err.Error())
	}

	result, err := s.completeScanHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TransitionOutcome{
		Applied: result.Applied,
		Status:  result.Status.String(),
	})
}

// GetPayrollReport handles GET /api/v1/payroll - aggregates prepared orders
// per employee over an inclusive date range, priced at a flat rate.
func (s *Server) GetPayrollReport(ctx echo.Context) error {
	var startDate, endDate types.Date
	if err := runtime.BindQueryParameter("form", true, true, "startDate",
		ctx.QueryParams(), &startDate); err != nil {
		return badRequest(ctx, "Invalid startDate: "+err.Error())
	}
	if err := runtime.BindQueryParameter("form", true, true, "endDate",
		ctx.QueryParams(), &endDate); err != nil {
		return badRequest(ctx, "Invalid endDate: "+err.Error())
	}

	var rateParam string
	if err := runtime.BindQueryParameter("form", true, true, "rate",
		ctx.QueryParams(), &rateParam); err != nil {
		return badRequest(ctx, "Invalid rate: "+err.Error())
	}
	rate, err := decimal.NewFromString(rateParam)
	if err != nil {
		return badRequest(ctx, "Invalid rate: "+err.Error())
	}

	query, err := queries.NewGetPayrollReportQuery(startDate.Time, endDate.Time, rate)
	if err != nil {
		return badRequest(ctx, "Invalid payroll period: "+err.Error())
	}

	report, err := s.payrollReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]PayrollReportRow, len(report))
	for i, row := range report {
		role, roleErr := row.Position.Role()
		if roleErr != nil {
			return domainError(ctx, roleErr)
		}

		response[i] = PayrollReportRow{
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.EmployeeName,
			Role:         string(role),
			OrdersCount:  row.OrdersCount,
			Amount:       row.Amount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderAuditLog handles GET /api/v1/orders/:id/audit - lists the recorded
// status changes of an order, oldest first.
func (s *Server) GetOrderAuditLog(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderAuditLogQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid audit query: "+err.Error())
	}

	entries, err := s.orderAuditLogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]AuditLogEntry, len(entries))
	for i, entry := range entries {
		response[i] = AuditLogEntry{
			OldStatus: entry.OldStatus,
			NewStatus: entry.NewStatus,
			ActorID:   entry.ActorID,
			ActorName: entry.ActorName,
			ChangedAt: entry.ChangedAt.UTC().Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLowStockProducts handles GET /api/v1/products/low-stock - lists products
// at or under their minimum stock level.
func (s *Server) GetLowStockProducts(ctx echo.Context) error {
	products, err := s.lowStockProductsHandler.Handle(
		ctx.Request().Context(), queries.NewGetLowStockProductsQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]LowStockProduct, len(products))
	for i, p := range products {
		response[i] = LowStockProduct{
			ProductID:         p.ProductID,
			Name:              p.Name,
			OnHandQuantity:    p.OnHandQuantity,
			MinimumStockLevel: p.MinimumStockLevel,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RemoveEmployee handles DELETE /api/v1/employees/:id - removes an employee
// and any linked identity record in one transaction.
func (s *Server) RemoveEmployee(ctx echo.Context) error {
	employeeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid employee id: "+err.Error())
	}

	cmd, err := commands.NewRemoveEmployeeCommand(employeeID)
	if err != nil {
		return badRequest(ctx, "Invalid removal data: "+err.Error())
	}

	if err = s.removeEmployeeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps the error taxonomy onto HTTP statuses: unknown objects
// are 404, malformed values 400, lifecycle and stock conflicts 409,
// everything else 500.
func domainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidState), errors.Is(err, errs.ErrStockInsufficient):
		code = http.StatusConflict
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
