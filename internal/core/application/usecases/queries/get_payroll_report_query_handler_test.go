package queries_test

import (
	"context"
	"testing"
	"time"

	"stockflow/internal/adapters/out/postgres/employeerepo"
	"stockflow/internal/adapters/out/postgres/orderrepo"
	"stockflow/internal/core/application/usecases/queries"
	"stockflow/internal/core/domain/model/employee"
	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetPayrollReportQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetPayrollReportQueryHandler
	orderRepo    *orderrepo.GormOrderRepository
	employeeRepo *employeerepo.GormEmployeeRepository
}

func (suite *GetPayrollReportQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}, &employeerepo.EmployeeDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetPayrollReportQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.employeeRepo = employeerepo.NewGormEmployeeRepository(db)
}

func (suite *GetPayrollReportQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetPayrollReportQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE employees CASCADE").Error)
}

func (suite *GetPayrollReportQueryHandlerTestSuite) addEmployee(name string) *employee.Employee {
	emp, err := employee.NewEmployee(kernel.NewUUID(), name, employee.PositionPacker, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.employeeRepo.Add(context.Background(), emp))
	return emp
}

func (suite *GetPayrollReportQueryHandlerTestSuite) addPreparedOrder(packerID kernel.UUID, processedAt time.Time) {
	item, err := order.NewItem(kernel.NewUUID(), 1, decimal.RequireFromString("5.00"))
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{item}, nil, processedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(o.SetPrepared(packerID, processedAt))
	o.MarkStockCommitted()
	_, err = o.ChangeStatus(order.Scanned)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
}

func (suite *GetPayrollReportQueryHandlerTestSuite) TestHandle_GroupsOrdersByPreparer() {
	dana := suite.addEmployee("Dana Brook")
	robin := suite.addEmployee("Robin Vale")

	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	suite.addPreparedOrder(dana.ID(), day)
	suite.addPreparedOrder(dana.ID(), day.Add(2*time.Hour))
	suite.addPreparedOrder(robin.ID(), day.Add(time.Hour))

	rate := decimal.RequireFromString("1.50")
	query, err := queries.NewGetPayrollReportQuery(
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		rate,
	)
	suite.Require().NoError(err)

	report, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(report, 2)

	// Sorted by employee name.
	suite.Equal("Dana Brook", report[0].EmployeeName)
	suite.Equal(2, report[0].OrdersCount)
	suite.True(report[0].Amount.Equal(decimal.RequireFromString("3.00")))
	suite.Equal(employee.PositionPacker, report[0].Position)

	suite.Equal("Robin Vale", report[1].EmployeeName)
	suite.Equal(1, report[1].OrdersCount)
	suite.True(report[1].Amount.Equal(rate))
}

func (suite *GetPayrollReportQueryHandlerTestSuite) TestHandle_ExcludesOrdersOutsidePeriod() {
	dana := suite.addEmployee("Dana Brook")

	suite.addPreparedOrder(dana.ID(), time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC))
	suite.addPreparedOrder(dana.ID(), time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	suite.addPreparedOrder(dana.ID(), time.Date(2025, 3, 11, 0, 30, 0, 0, time.UTC))

	query, err := queries.NewGetPayrollReportQuery(
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		decimal.RequireFromString("2.00"),
	)
	suite.Require().NoError(err)

	report, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(report, 1)
	suite.Equal(1, report[0].OrdersCount)
}

func (suite *GetPayrollReportQueryHandlerTestSuite) TestHandle_IgnoresUnpreparedOrders() {
	suite.addEmployee("Dana Brook")

	// An order nobody prepared earns nobody anything.
	item, err := order.NewItem(kernel.NewUUID(), 1, decimal.RequireFromString("5.00"))
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{item}, nil,
		time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))

	query, err := queries.NewGetPayrollReportQuery(
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		decimal.RequireFromString("2.00"),
	)
	suite.Require().NoError(err)

	report, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(report)
}

func (suite *GetPayrollReportQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetPayrollReportQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetPayrollReportQuery constructor")
}

func TestGetPayrollReportQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPayrollReportQueryHandlerTestSuite))
}

// mockAggregateTracker satisfies the repositories' tracking dependency.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
}
