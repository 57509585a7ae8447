package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/plastpack/erp/internal/domain/catalog"
	"github.com/plastpack/erp/internal/domain/report"
	"github.com/plastpack/erp/internal/domain/trade"
)

// DashboardService aggregates headline figures and monthly trend charts
type DashboardService struct {
	products   catalog.ProductRepository
	purchases  trade.PurchaseRepository
	sales      trade.SalesRepository
	production trade.ProductionRepository
	ledger     trade.StockLedger

	// now is swappable in tests
	now func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	products catalog.ProductRepository,
	purchases trade.PurchaseRepository,
	sales trade.SalesRepository,
	production trade.ProductionRepository,
	ledger trade.StockLedger,
) *DashboardService {
	return &DashboardService{
		products:   products,
		purchases:  purchases,
		sales:      sales,
		production: production,
		ledger:     ledger,
		now:        time.Now,
	}
}

// DashboardStats is the headline figures for the dashboard
type DashboardStats struct {
	ProductCount    int64           `json:"product_count"`
	PurchaseCount   int64           `json:"purchase_count"`
	SaleCount       int64           `json:"sale_count"`
	ProductionCount int64           `json:"production_count"`
	TodayPurchases  decimal.Decimal `json:"today_purchases"`
	TodaySales      decimal.Decimal `json:"today_sales"`
	LowStockCount   int64           `json:"low_stock_count"`
	TotalStockValue decimal.Decimal `json:"total_stock_value"`
	MonthlyProfit   decimal.Decimal `json:"monthly_profit"`
}

// Stats computes the dashboard headline figures
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{
		TodayPurchases:  decimal.Zero,
		TodaySales:      decimal.Zero,
		TotalStockValue: decimal.Zero,
		MonthlyProfit:   decimal.Zero,
	}

	var err error
	if stats.ProductCount, err = s.products.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.PurchaseCount, err = s.purchases.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.SaleCount, err = s.sales.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.ProductionCount, err = s.production.Count(ctx); err != nil {
		return nil, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if stats.TodayPurchases, err = s.purchases.TotalAmountBetween(ctx, today, today); err != nil {
		return nil, err
	}
	if stats.TodaySales, err = s.sales.TotalAmountBetween(ctx, today, today); err != nil {
		return nil, err
	}

	products, err := s.products.FindActive(ctx, catalog.ProductFilter{})
	if err != nil {
		return nil, err
	}
	for i := range products {
		product := &products[i]

		totals, err := s.ledger.TotalsFor(ctx, product.ID)
		if err != nil {
			return nil, err
		}
		currentStock := product.CurrentStock(totals)
		if product.IsLowStock(currentStock) {
			stats.LowStockCount++
		}

		lastRate, err := s.purchases.LastPurchaseRate(ctx, product.ID, today)
		if err != nil {
			return nil, err
		}
		stats.TotalStockValue = stats.TotalStockValue.Add(report.StockValue(currentStock, lastRate))
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	facts, err := s.sales.ItemFactsBetween(ctx, monthStart, today)
	if err != nil {
		return nil, err
	}
	for _, fact := range facts {
		costRate, err := s.purchases.LastPurchaseRate(ctx, fact.ProductID, fact.SaleDate)
		if err != nil {
			return nil, err
		}
		stats.MonthlyProfit = stats.MonthlyProfit.Add(report.GrossProfit(fact.Rate, costRate, fact.Quantity))
	}

	return stats, nil
}

// MonthlyPoint is one month's purchase and sale totals
type MonthlyPoint struct {
	Month     string          `json:"month"` // YYYY-MM
	Purchases decimal.Decimal `json:"purchases"`
	Sales     decimal.Decimal `json:"sales"`
}

// Charts returns invoice totals per month for the trailing six months,
// oldest first.
func (s *DashboardService) Charts(ctx context.Context) ([]MonthlyPoint, error) {
	now := s.now()

	points := make([]MonthlyPoint, 0, 6)
	for offset := 5; offset >= 0; offset-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -offset, 0)
		monthEnd := monthStart.AddDate(0, 1, -1)

		purchases, err := s.purchases.TotalAmountBetween(ctx, monthStart, monthEnd)
		if err != nil {
			return nil, err
		}
		sales, err := s.sales.TotalAmountBetween(ctx, monthStart, monthEnd)
		if err != nil {
			return nil, err
		}

		points = append(points, MonthlyPoint{
			Month:     monthStart.Format("2006-01"),
			Purchases: purchases,
			Sales:     sales,
		})
	}
	return points, nil
}
