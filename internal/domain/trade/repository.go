package trade

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/plastpack/erp/internal/domain/catalog"
)

// PurchaseSummary is a purchase header joined with its supplier name, for
// listings.
type PurchaseSummary struct {
	Purchase
	SupplierName string `json:"supplier_name"`
}

// SaleSummary is a sale header joined with its customer name, for listings.
type SaleSummary struct {
	Sale
	CustomerName string `json:"customer_name"`
}

// ProductionEntry is a production row joined with both product names.
type ProductionEntry struct {
	Production
	PreformName string `json:"preform_name"`
	BottleName  string `json:"bottle_name"`
}

// SaleItemFact is the denormalized row the profit computations run on: one
// sales item with its parent invoice figures. InvoiceTotal and
// InvoiceTransport come from the persisted header, not recomputed from items.
type SaleItemFact struct {
	SaleID           int64           `json:"sale_id"`
	InvoiceNumber    string          `json:"invoice_number"`
	SaleDate         time.Time       `json:"sale_date"`
	ProductID        int64           `json:"product_id"`
	ProductName      string          `json:"product_name"`
	Quantity         decimal.Decimal `json:"quantity"`
	Rate             decimal.Decimal `json:"rate"`
	ItemTotal        decimal.Decimal `json:"item_total"`
	InvoiceTotal     decimal.Decimal `json:"invoice_total"`
	InvoiceTransport decimal.Decimal `json:"invoice_transport"`
}

// PurchaseRepository defines the interface for purchase persistence and the
// purchase-side ledger queries.
type PurchaseRepository interface {
	// FindByID finds a purchase by id with its items
	FindByID(ctx context.Context, id int64) (*Purchase, error)

	// FindAllActive lists non-deleted purchases with supplier names, newest
	// first
	FindAllActive(ctx context.Context) ([]PurchaseSummary, error)

	// Save persists a purchase header together with its items. A unique
	// violation on invoice_number surfaces as shared.ErrAlreadyExists.
	Save(ctx context.Context, purchase *Purchase) error

	// SoftDelete flags a purchase as deleted
	SoftDelete(ctx context.Context, id int64) error

	// CountActive counts non-deleted purchases
	CountActive(ctx context.Context) (int64, error)

	// TotalAmountBetween sums total_amount of non-deleted purchases dated in
	// [from, to]
	TotalAmountBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// LastPurchaseRate resolves the cost basis of a product as of a date:
	// the rate of the purchase item whose non-deleted parent has the latest
	// date ≤ asOf, ties broken by highest purchase id. Zero when no
	// qualifying purchase exists; never an error for missing data.
	LastPurchaseRate(ctx context.Context, productID int64, asOf time.Time) (decimal.Decimal, error)
}

// SalesRepository defines the interface for sale persistence and the
// sales-side ledger queries.
type SalesRepository interface {
	// FindByID finds a sale by id with its items
	FindByID(ctx context.Context, id int64) (*Sale, error)

	// FindAllActive lists non-deleted sales with customer names, newest
	// first
	FindAllActive(ctx context.Context) ([]SaleSummary, error)

	// Save persists a sale header together with its items. A unique
	// violation on invoice_number surfaces as shared.ErrAlreadyExists.
	Save(ctx context.Context, sale *Sale) error

	// SoftDelete flags a sale as deleted
	SoftDelete(ctx context.Context, id int64) error

	// CountActive counts non-deleted sales
	CountActive(ctx context.Context) (int64, error)

	// TotalAmountBetween sums total_amount of non-deleted sales dated in
	// [from, to]
	TotalAmountBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// ItemFactsBetween returns the sales items of non-deleted sales dated in
	// [from, to], joined with product names and parent invoice figures
	ItemFactsBetween(ctx context.Context, from, to time.Time) ([]SaleItemFact, error)
}

// ProductionRepository defines the interface for production persistence
type ProductionRepository interface {
	// Save persists a production entry
	Save(ctx context.Context, production *Production) error

	// FindAll lists production entries with product names, newest first
	FindAll(ctx context.Context) ([]ProductionEntry, error)

	// Count counts all production entries
	Count(ctx context.Context) (int64, error)
}

// StockLedger aggregates a product's full non-deleted trade history into the
// sums the stock calculator runs on. Stock is never stored: every caller
// derives it from these totals at read time.
type StockLedger interface {
	TotalsFor(ctx context.Context, productID int64) (catalog.LedgerTotals, error)
}
