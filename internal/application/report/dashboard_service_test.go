package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/plastpack/erp/internal/domain/catalog"
	"github.com/plastpack/erp/internal/domain/trade"
)

func newDashboardFixture() (*DashboardService, *MockProductRepository, *MockPurchaseRepository, *MockSalesRepository, *MockProductionRepository, *MockStockLedger) {
	products := &MockProductRepository{}
	purchases := &MockPurchaseRepository{}
	sales := &MockSalesRepository{}
	production := &MockProductionRepository{}
	ledger := &MockStockLedger{}
	svc := NewDashboardService(products, purchases, sales, production, ledger)
	svc.now = func() time.Time {
		return time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	}
	return svc, products, purchases, sales, production, ledger
}

func TestDashboardService_Stats(t *testing.T) {
	t.Run("aggregates counts, today's totals, valuation and monthly profit", func(t *testing.T) {
		svc, products, purchases, sales, production, ledger := newDashboardFixture()
		today := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
		monthStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

		products.On("CountActive", mock.Anything).Return(int64(2), nil)
		purchases.On("CountActive", mock.Anything).Return(int64(5), nil)
		sales.On("CountActive", mock.Anything).Return(int64(7), nil)
		production.On("Count", mock.Anything).Return(int64(3), nil)

		purchases.On("TotalAmountBetween", mock.Anything, today, today).
			Return(decimal.NewFromInt(1300), nil)
		sales.On("TotalAmountBetween", mock.Anything, today, today).
			Return(decimal.NewFromInt(30020), nil)

		preform := mustProduct(t, 1, "Preform 20g", catalog.CategoryPreform, 20, 1000)
		bottle := mustProduct(t, 2, "Bottle 1L", catalog.CategoryBottle, 0, 500)
		products.On("FindActive", mock.Anything, catalog.ProductFilter{}).
			Return([]catalog.Product{preform, bottle}, nil)

		// preform: 50 KG at 20g = 2500 pieces, above threshold
		ledger.On("TotalsFor", mock.Anything, int64(1)).Return(catalog.LedgerTotals{
			PurchasedQty: decimal.NewFromInt(50),
		}, nil)
		// bottle: 80 pieces, below threshold
		ledger.On("TotalsFor", mock.Anything, int64(2)).Return(catalog.LedgerTotals{
			ProducedQty: decimal.NewFromInt(80),
		}, nil)
		purchases.On("LastPurchaseRate", mock.Anything, int64(1), today).
			Return(decimal.NewFromInt(10), nil)
		purchases.On("LastPurchaseRate", mock.Anything, int64(2), today).
			Return(decimal.Zero, nil)

		saleDate := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
		sales.On("ItemFactsBetween", mock.Anything, monthStart, today).
			Return([]trade.SaleItemFact{{
				ProductID: 2,
				SaleDate:  saleDate,
				Quantity:  decimal.NewFromInt(100),
				Rate:      decimal.NewFromInt(15),
			}}, nil)
		purchases.On("LastPurchaseRate", mock.Anything, int64(2), saleDate).
			Return(decimal.NewFromInt(12), nil)

		stats, err := svc.Stats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.ProductCount)
		assert.Equal(t, int64(5), stats.PurchaseCount)
		assert.Equal(t, int64(7), stats.SaleCount)
		assert.Equal(t, int64(3), stats.ProductionCount)
		assert.True(t, decimal.NewFromInt(1300).Equal(stats.TodayPurchases))
		assert.True(t, decimal.NewFromInt(30020).Equal(stats.TodaySales))
		assert.Equal(t, int64(1), stats.LowStockCount)
		// 2500 * 10 + 80 * 0
		assert.True(t, decimal.NewFromInt(25000).Equal(stats.TotalStockValue))
		// (15 - 12) * 100
		assert.True(t, decimal.NewFromInt(300).Equal(stats.MonthlyProfit))
	})
}

func TestDashboardService_Charts(t *testing.T) {
	t.Run("returns six calendar months, oldest first", func(t *testing.T) {
		svc, _, purchases, sales, _, _ := newDashboardFixture()

		purchases.On("TotalAmountBetween", mock.Anything, mock.Anything, mock.Anything).
			Return(decimal.NewFromInt(100), nil)
		sales.On("TotalAmountBetween", mock.Anything, mock.Anything, mock.Anything).
			Return(decimal.NewFromInt(200), nil)

		points, err := svc.Charts(context.Background())

		require.NoError(t, err)
		require.Len(t, points, 6)
		assert.Equal(t, "2024-10", points[0].Month)
		assert.Equal(t, "2025-03", points[5].Month)
		assert.True(t, decimal.NewFromInt(100).Equal(points[0].Purchases))
		assert.True(t, decimal.NewFromInt(200).Equal(points[0].Sales))
	})

	t.Run("queries whole-month ranges", func(t *testing.T) {
		svc, _, purchases, sales, _, _ := newDashboardFixture()

		febStart := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
		febEnd := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)
		purchases.On("TotalAmountBetween", mock.Anything, mock.Anything, mock.Anything).
			Return(decimal.Zero, nil)
		sales.On("TotalAmountBetween", mock.Anything, mock.Anything, mock.Anything).
			Return(decimal.Zero, nil)

		_, err := svc.Charts(context.Background())

		require.NoError(t, err)
		purchases.AssertCalled(t, "TotalAmountBetween", mock.Anything, febStart, febEnd)
	})
}
