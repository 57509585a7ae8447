package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/plastpack/erp/internal/domain/catalog"
	"github.com/plastpack/erp/internal/domain/shared"
)

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

// MockStockLedger is a mock implementation of trade.StockLedger
type MockStockLedger struct {
	mock.Mock
}

func (m *MockStockLedger) TotalsFor(ctx context.Context, productID int64) (catalog.LedgerTotals, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(catalog.LedgerTotals), args.Error(1)
}

func newFixture() (*ProductService, *MockProductRepository, *MockStockLedger) {
	products := &MockProductRepository{}
	ledger := &MockStockLedger{}
	return NewProductService(products, ledger), products, ledger
}

func TestProductService_Create(t *testing.T) {
	t.Run("persists a valid product and derives its stock", func(t *testing.T) {
		svc, products, ledger := newFixture()
		products.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)
		ledger.On("TotalsFor", mock.Anything, mock.Anything).Return(catalog.LedgerTotals{}, nil)

		resp, err := svc.Create(context.Background(), CreateProductRequest{
			Name:          "Preform 20g",
			Category:      "Preform",
			GramWeight:    decimal.NewFromInt(20),
			MinStockLevel: decimal.NewFromInt(500),
		})

		require.NoError(t, err)
		assert.Equal(t, catalog.CategoryPreform, resp.Category)
		assert.Equal(t, int64(0), resp.CurrentStock)
		assert.True(t, resp.IsLowStock)
	})

	t.Run("rejects an unknown category without saving", func(t *testing.T) {
		svc, products, _ := newFixture()

		_, err := svc.Create(context.Background(), CreateProductRequest{
			Name:     "Preform 20g",
			Category: "preform",
		})

		require.Error(t, err)
		products.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestProductService_List(t *testing.T) {
	t.Run("derives stock and the low stock flag per product", func(t *testing.T) {
		svc, products, ledger := newFixture()

		preform, err := catalog.NewProduct("Preform 20g", catalog.CategoryPreform,
			decimal.NewFromInt(20), decimal.NewFromInt(1000))
		require.NoError(t, err)
		preform.ID = 1
		bottle, err := catalog.NewProduct("Bottle 1L", catalog.CategoryBottle,
			decimal.Zero, decimal.NewFromInt(100))
		require.NoError(t, err)
		bottle.ID = 2

		products.On("FindActive", mock.Anything, catalog.ProductFilter{}).
			Return([]catalog.Product{*preform, *bottle}, nil)
		// 100 KG at 20g = 5000 pieces, minus 2000 sold and 500 consumed
		ledger.On("TotalsFor", mock.Anything, int64(1)).Return(catalog.LedgerTotals{
			PurchasedQty: decimal.NewFromInt(100),
			SoldQty:      decimal.NewFromInt(2000),
			ConsumedQty:  decimal.NewFromInt(500),
		}, nil)
		ledger.On("TotalsFor", mock.Anything, int64(2)).Return(catalog.LedgerTotals{
			ProducedQty: decimal.NewFromInt(80),
		}, nil)

		out, err := svc.List(context.Background(), ListFilter{})

		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, int64(2500), out[0].CurrentStock)
		assert.False(t, out[0].IsLowStock)
		assert.Equal(t, int64(80), out[1].CurrentStock)
		assert.True(t, out[1].IsLowStock)
	})

	t.Run("passes category and search filters through to the repository", func(t *testing.T) {
		svc, products, ledger := newFixture()

		bottle, err := catalog.NewProduct("Bottle 1L", catalog.CategoryBottle,
			decimal.Zero, decimal.Zero)
		require.NoError(t, err)
		bottle.ID = 2

		products.On("FindActive", mock.Anything, catalog.ProductFilter{
			Category: catalog.CategoryBottle,
			Search:   "1L",
		}).Return([]catalog.Product{*bottle}, nil)
		ledger.On("TotalsFor", mock.Anything, int64(2)).Return(catalog.LedgerTotals{}, nil)

		out, err := svc.List(context.Background(), ListFilter{Category: "Bottle", Search: "1L"})

		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "Bottle 1L", out[0].Name)
		products.AssertExpectations(t)
	})

	t.Run("rejects an unknown category filter", func(t *testing.T) {
		svc, products, _ := newFixture()

		_, err := svc.List(context.Background(), ListFilter{Category: "bottle"})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CATEGORY", domainErr.Code)
		products.AssertNotCalled(t, "FindActive", mock.Anything, mock.Anything)
	})
}

func TestProductService_Update(t *testing.T) {
	t.Run("applies new attributes to an existing product", func(t *testing.T) {
		svc, products, ledger := newFixture()
		existing, err := catalog.NewProduct("Preform 20g", catalog.CategoryPreform,
			decimal.NewFromInt(20), decimal.Zero)
		require.NoError(t, err)
		existing.ID = 1

		products.On("FindByID", mock.Anything, int64(1)).Return(existing, nil)
		products.On("Save", mock.Anything, existing).Return(nil)
		ledger.On("TotalsFor", mock.Anything, int64(1)).Return(catalog.LedgerTotals{}, nil)

		resp, err := svc.Update(context.Background(), 1, UpdateProductRequest{
			Name:       "Preform 21g",
			Category:   "Preform",
			GramWeight: decimal.NewFromInt(21),
		})

		require.NoError(t, err)
		assert.Equal(t, "Preform 21g", resp.Name)
		assert.True(t, decimal.NewFromInt(21).Equal(resp.GramWeight))
	})

	t.Run("returns not found for a missing product", func(t *testing.T) {
		svc, products, _ := newFixture()
		products.On("FindByID", mock.Anything, int64(99)).Return(nil, shared.ErrNotFound)

		_, err := svc.Update(context.Background(), 99, UpdateProductRequest{
			Name: "X", Category: "Other",
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestProductService_Delete(t *testing.T) {
	t.Run("flags the product deleted instead of removing the row", func(t *testing.T) {
		svc, products, _ := newFixture()
		existing, err := catalog.NewProduct("Cap", catalog.CategoryOther, decimal.Zero, decimal.Zero)
		require.NoError(t, err)
		existing.ID = 3
		products.On("FindByID", mock.Anything, int64(3)).Return(existing, nil)
		products.On("Save", mock.Anything, existing).Return(nil)

		err = svc.Delete(context.Background(), 3)

		require.NoError(t, err)
		assert.True(t, existing.IsDeleted)
	})
}
