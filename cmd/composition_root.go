package cmd

import (
	"stockflow/internal/adapters/out/postgres"
	"stockflow/internal/core/application/usecases/commands"
	"stockflow/internal/core/application/usecases/queries"
	"stockflow/internal/core/ports"
	"time"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      ports.Clock
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      systemClock{},
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderingUoWFactory = FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateRequestTransitionCommandHandler() commands.RequestTransitionCommandHandler {
	var f commands.TransitionUoWFactory = FuncTransitionUoWFactory(func() commands.TransitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestTransitionCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateScanUnitCommandHandler() commands.ScanUnitCommandHandler {
	var f commands.ScanUoWFactory = FuncScanUoWFactory(func() commands.ScanUoW {
		return c.uowFactory.Create()
	})
	return commands.NewScanUnitCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteScanCommandHandler() commands.CompleteScanCommandHandler {
	var f commands.CompleteScanUoWFactory = FuncCompleteScanUoWFactory(func() commands.CompleteScanUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteScanCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateRemoveEmployeeCommandHandler() commands.RemoveEmployeeCommandHandler {
	var f commands.EmployeeUoWFactory = FuncEmployeeUoWFactory(func() commands.EmployeeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveEmployeeCommandHandler(f)
}

func (c *CompositionRoot) CreateGetPayrollReportQueryHandler() queries.GetPayrollReportQueryHandler {
	return queries.NewGetPayrollReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderAuditLogQueryHandler() queries.GetOrderAuditLogQueryHandler {
	return queries.NewGetOrderAuditLogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockProductsQueryHandler() queries.GetLowStockProductsQueryHandler {
	return queries.NewGetLowStockProductsQueryHandler(c.gormDB)
}

type FuncOrderingUoWFactory func() commands.OrderingUoW

func (f FuncOrderingUoWFactory) Create() commands.OrderingUoW {
	return f()
}

type FuncTransitionUoWFactory func() commands.TransitionUoW

func (f FuncTransitionUoWFactory) Create() commands.TransitionUoW {
	return f()
}

type FuncScanUoWFactory func() commands.ScanUoW

func (f FuncScanUoWFactory) Create() commands.ScanUoW {
	return f()
}

type FuncCompleteScanUoWFactory func() commands.CompleteScanUoW

func (f FuncCompleteScanUoWFactory) Create() commands.CompleteScanUoW {
	return f()
}

type FuncEmployeeUoWFactory func() commands.EmployeeUoW

func (f FuncEmployeeUoWFactory) Create() commands.EmployeeUoW {
	return f()
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
