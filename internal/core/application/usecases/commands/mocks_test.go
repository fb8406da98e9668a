package commands_test

import (
	"context"
	"time"

	"stockflow/internal/core/application/usecases/commands"
	"stockflow/internal/core/domain/model/audit"
	"stockflow/internal/core/domain/model/employee"
	"stockflow/internal/core/domain/model/facility"
	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/core/domain/model/product"
	"stockflow/internal/core/domain/model/scansession"
	"stockflow/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatusGuarded(
	ctx context.Context, o *order.Order, observed order.Status,
) error {
	args := m.Called(ctx, o, observed)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetForUpdate(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateOnHand(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockFacilityRepository struct{ mock.Mock }

func (m *MockFacilityRepository) Add(ctx context.Context, f *facility.Facility) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFacilityRepository) ExistsActive(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockEmployeeRepository struct{ mock.Mock }

func (m *MockEmployeeRepository) Add(ctx context.Context, e *employee.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employee.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ClearIdentity(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockScanSessionRepository struct{ mock.Mock }

func (m *MockScanSessionRepository) Add(ctx context.Context, s *scansession.ScanSession) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockScanSessionRepository) GetForUpdate(
	ctx context.Context, orderID kernel.UUID,
) (*scansession.ScanSession, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scansession.ScanSession), args.Error(1)
}

func (m *MockScanSessionRepository) Update(ctx context.Context, s *scansession.ScanSession) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockScanSessionRepository) Delete(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockAuditLogRepository struct{ mock.Mock }

func (m *MockAuditLogRepository) Append(ctx context.Context, entry *audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*audit.Entry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*audit.Entry), args.Error(1)
}

// MockUoW satisfies every unit of work interface the command handlers use,
// so one mock serves all handler tests. Repository accessors that a test
// never arms simply stay unexpected.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) FacilityRepository() ports.FacilityRepository {
	args := m.Called()
	return args.Get(0).(ports.FacilityRepository)
}

func (m *MockUoW) EmployeeRepository() ports.EmployeeRepository {
	args := m.Called()
	return args.Get(0).(ports.EmployeeRepository)
}

func (m *MockUoW) ScanSessionRepository() ports.ScanSessionRepository {
	args := m.Called()
	return args.Get(0).(ports.ScanSessionRepository)
}

func (m *MockUoW) AuditLogRepository() ports.AuditLogRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditLogRepository)
}

type MockOrderingUoWFactory struct{ mock.Mock }

func (m *MockOrderingUoWFactory) Create() commands.OrderingUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderingUoW)
}

type MockTransitionUoWFactory struct{ mock.Mock }

func (m *MockTransitionUoWFactory) Create() commands.TransitionUoW {
	args := m.Called()
	return args.Get(0).(commands.TransitionUoW)
}

type MockCompleteScanUoWFactory struct{ mock.Mock }

func (m *MockCompleteScanUoWFactory) Create() commands.CompleteScanUoW {
	args := m.Called()
	return args.Get(0).(commands.CompleteScanUoW)
}

type MockScanUoWFactory struct{ mock.Mock }

func (m *MockScanUoWFactory) Create() commands.ScanUoW {
	args := m.Called()
	return args.Get(0).(commands.ScanUoW)
}

type MockEmployeeUoWFactory struct{ mock.Mock }

func (m *MockEmployeeUoWFactory) Create() commands.EmployeeUoW {
	args := m.Called()
	return args.Get(0).(commands.EmployeeUoW)
}

// fixedClock always reports the same instant, keeping timestamps in
// expectations deterministic.
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testProduct(id kernel.UUID, price string, onHand int) *product.Product {
	p, err := product.NewProduct(id, "Widget", decimal.RequireFromString(price),
		decimal.RequireFromString("1.00"), onHand, 5, testTime)
	if err != nil {
		panic(err)
	}
	return p
}

func testOrderWithItems(items []order.Item) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, nil, testTime)
	if err != nil {
		panic(err)
	}
	return o
}

func testItem(productID kernel.UUID, quantity int, price string) order.Item {
	item, err := order.NewItem(productID, quantity, decimal.RequireFromString(price))
	if err != nil {
		panic(err)
	}
	return item
}
