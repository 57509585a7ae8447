package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/plastpack/erp/internal/domain/catalog"
	"github.com/plastpack/erp/internal/domain/report"
	"github.com/plastpack/erp/internal/domain/shared"
	"github.com/plastpack/erp/internal/domain/trade"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// ReportService composes derived stock and resolved cost across the catalog
// for the stock and profit-and-loss reports.
type ReportService struct {
	products  catalog.ProductRepository
	purchases trade.PurchaseRepository
	sales     trade.SalesRepository
	ledger    trade.StockLedger
}

// NewReportService creates a new ReportService
func NewReportService(
	products catalog.ProductRepository,
	purchases trade.PurchaseRepository,
	sales trade.SalesRepository,
	ledger trade.StockLedger,
) *ReportService {
	return &ReportService{
		products:  products,
		purchases: purchases,
		sales:     sales,
		ledger:    ledger,
	}
}

// StockReportLine is one product's derived stock position
type StockReportLine struct {
	ProductID     int64            `json:"product_id"`
	ProductName   string           `json:"product_name"`
	Category      catalog.Category `json:"category"`
	CurrentStock  int64            `json:"current_stock"`
	MinStockLevel decimal.Decimal  `json:"min_stock_level"`
	IsLowStock    bool             `json:"is_low_stock"`
	LastRate      decimal.Decimal  `json:"last_rate"`
	StockValue    decimal.Decimal  `json:"stock_value"`
}

// StockReport lists every active product with derived stock, the latest
// purchase rate, and the resulting valuation.
type StockReport struct {
	Lines      []StockReportLine `json:"lines"`
	TotalValue decimal.Decimal   `json:"total_value"`
}

// Stock builds the stock report across all non-deleted products
func (s *ReportService) Stock(ctx context.Context) (*StockReport, error) {
	products, err := s.products.FindActive(ctx, catalog.ProductFilter{})
	if err != nil {
		return nil, err
	}

	today := time.Now()
	out := StockReport{
		Lines:      make([]StockReportLine, len(products)),
		TotalValue: decimal.Zero,
	}
	for i := range products {
		product := &products[i]

		totals, err := s.ledger.TotalsFor(ctx, product.ID)
		if err != nil {
			return nil, err
		}
		currentStock := product.CurrentStock(totals)

		lastRate, err := s.purchases.LastPurchaseRate(ctx, product.ID, today)
		if err != nil {
			return nil, err
		}
		value := report.StockValue(currentStock, lastRate)

		out.Lines[i] = StockReportLine{
			ProductID:     product.ID,
			ProductName:   product.Name,
			Category:      product.Category,
			CurrentStock:  currentStock,
			MinStockLevel: product.MinStockLevel,
			IsLowStock:    product.IsLowStock(currentStock),
			LastRate:      lastRate,
			StockValue:    value,
		}
		out.TotalValue = out.TotalValue.Add(value)
	}
	return &out, nil
}

// ProfitLossLine is one sale item with its resolved cost and prorated
// transport share
type ProfitLossLine struct {
	SaleID        int64           `json:"sale_id"`
	InvoiceNumber string          `json:"invoice_number"`
	Date          string          `json:"date"`
	ProductID     int64           `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      decimal.Decimal `json:"quantity"`
	SaleRate      decimal.Decimal `json:"sale_rate"`
	CostRate      decimal.Decimal `json:"cost_rate"`
	GrossProfit   decimal.Decimal `json:"gross_profit"`
	Transport     decimal.Decimal `json:"transport"`
	NetProfit     decimal.Decimal `json:"net_profit"`
}

// ProfitLossReport aggregates per-item profit over a date range
type ProfitLossReport struct {
	From        string           `json:"from"`
	To          string           `json:"to"`
	Lines       []ProfitLossLine `json:"lines"`
	Revenue     decimal.Decimal  `json:"revenue"`
	GrossProfit decimal.Decimal  `json:"gross_profit"`
	Transport   decimal.Decimal  `json:"transport"`
	NetProfit   decimal.Decimal  `json:"net_profit"`
}

// ProfitLoss builds the profit-and-loss report for the inclusive date range.
// Cost is resolved per item as of its sale date; transport is distributed
// proportionally to each item's share of the invoice total.
func (s *ReportService) ProfitLoss(ctx context.Context, fromStr, toStr string) (*ProfitLossReport, error) {
	from, err := time.Parse(DateLayout, fromStr)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE", "Date must be in YYYY-MM-DD format")
	}
	to, err := time.Parse(DateLayout, toStr)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE", "Date must be in YYYY-MM-DD format")
	}
	if to.Before(from) {
		return nil, shared.NewDomainError("INVALID_DATE", "End date must not be before start date")
	}

	facts, err := s.sales.ItemFactsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	out := ProfitLossReport{
		From:        fromStr,
		To:          toStr,
		Lines:       make([]ProfitLossLine, len(facts)),
		Revenue:     decimal.Zero,
		GrossProfit: decimal.Zero,
		Transport:   decimal.Zero,
		NetProfit:   decimal.Zero,
	}
	for i, fact := range facts {
		costRate, err := s.purchases.LastPurchaseRate(ctx, fact.ProductID, fact.SaleDate)
		if err != nil {
			return nil, err
		}

		gross := report.GrossProfit(fact.Rate, costRate, fact.Quantity)
		transport := report.ProratedTransport(fact.ItemTotal, fact.InvoiceTotal, fact.InvoiceTransport)
		net := gross.Sub(transport)

		out.Lines[i] = ProfitLossLine{
			SaleID:        fact.SaleID,
			InvoiceNumber: fact.InvoiceNumber,
			Date:          fact.SaleDate.Format(DateLayout),
			ProductID:     fact.ProductID,
			ProductName:   fact.ProductName,
			Quantity:      fact.Quantity,
			SaleRate:      fact.Rate,
			CostRate:      costRate,
			GrossProfit:   gross,
			Transport:     transport,
			NetProfit:     net,
		}
		out.Revenue = out.Revenue.Add(fact.ItemTotal)
		out.GrossProfit = out.GrossProfit.Add(gross)
		out.Transport = out.Transport.Add(transport)
		out.NetProfit = out.NetProfit.Add(net)
	}
	return &out, nil
}
