package trade

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/plastpack/erp/internal/domain/catalog"
	"github.com/plastpack/erp/internal/domain/partner"
	"github.com/plastpack/erp/internal/domain/trade"
)

// MockPurchaseRepository is a mock implementation of trade.PurchaseRepository
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) FindByID(ctx context.Context, id int64) (*trade.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) FindAllActive(ctx context.Context) ([]trade.PurchaseSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]trade.PurchaseSummary), args.Error(1)
}

func (m *MockPurchaseRepository) Save(ctx context.Context, purchase *trade.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPurchaseRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseRepository) TotalAmountBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPurchaseRepository) LastPurchaseRate(ctx context.Context, productID int64, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, productID, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockSalesRepository is a mock implementation of trade.SalesRepository
type MockSalesRepository struct {
	mock.Mock
}

func (m *MockSalesRepository) FindByID(ctx context.Context, id int64) (*trade.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Sale), args.Error(1)
}

func (m *MockSalesRepository) FindAllActive(ctx context.Context) ([]trade.SaleSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]trade.SaleSummary), args.Error(1)
}

func (m *MockSalesRepository) Save(ctx context.Context, sale *trade.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSalesRepository) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSalesRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSalesRepository) TotalAmountBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockSalesRepository) ItemFactsBetween(ctx context.Context, from, to time.Time) ([]trade.SaleItemFact, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]trade.SaleItemFact), args.Error(1)
}

// MockProductionRepository is a mock implementation of trade.ProductionRepository
type MockProductionRepository struct {
	mock.Mock
}

func (m *MockProductionRepository) Save(ctx context.Context, production *trade.Production) error {
	args := m.Called(ctx, production)
	return args.Error(0)
}

func (m *MockProductionRepository) FindAll(ctx context.Context) ([]trade.ProductionEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]trade.ProductionEntry), args.Error(1)
}

func (m *MockProductionRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindActive(ctx context.Context, filter catalog.ProductFilter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) NamesByID(ctx context.Context, ids []int64) (map[int64]string, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[int64]string), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockSupplierRepository is a mock implementation of partner.SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id int64) (*partner.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAll(ctx context.Context) ([]partner.Supplier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of partner.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id int64) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context) ([]partner.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStockLedger is a mock implementation of trade.StockLedger
type MockStockLedger struct {
	mock.Mock
}

func (m *MockStockLedger) TotalsFor(ctx context.Context, productID int64) (catalog.LedgerTotals, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(catalog.LedgerTotals), args.Error(1)
}

// stubScope runs Execute without a real transaction, handing back the mocks
type stubScope struct {
	purchases  *MockPurchaseRepository
	sales      *MockSalesRepository
	production *MockProductionRepository
	products   *MockProductRepository
	ledger     *MockStockLedger
}

func newStubScope() *stubScope {
	return &stubScope{
		purchases:  &MockPurchaseRepository{},
		sales:      &MockSalesRepository{},
		production: &MockProductionRepository{},
		products:   &MockProductRepository{},
		ledger:     &MockStockLedger{},
	}
}

func (s *stubScope) Execute(_ context.Context, fn func(TxRepositories) error) error {
	return fn(s)
}

func (s *stubScope) Purchases() trade.PurchaseRepository    { return s.purchases }
func (s *stubScope) Sales() trade.SalesRepository           { return s.sales }
func (s *stubScope) Production() trade.ProductionRepository { return s.production }
func (s *stubScope) Products() catalog.ProductRepository    { return s.products }
func (s *stubScope) Ledger() trade.StockLedger              { return s.ledger }

var (
	_ TransactionScope = (*stubScope)(nil)
	_ TxRepositories   = (*stubScope)(nil)
)
