package persistence

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/plastpack/erp/internal/domain/catalog"
	"github.com/plastpack/erp/internal/domain/trade"
)

// GormStockLedger implements trade.StockLedger using GORM. Stock is never
// stored: every read sums the product's full non-deleted trade history.
type GormStockLedger struct {
	db *gorm.DB
}

// NewGormStockLedger creates a new GormStockLedger
func NewGormStockLedger(db *gorm.DB) *GormStockLedger {
	return &GormStockLedger{db: db}
}

// TotalsFor aggregates purchased, sold, produced and consumed quantities for
// one product. Items of soft-deleted invoices are excluded through the
// parent flag; production has no soft delete.
func (l *GormStockLedger) TotalsFor(ctx context.Context, productID int64) (catalog.LedgerTotals, error) {
	totals := catalog.LedgerTotals{
		PurchasedQty: decimal.Zero,
		SoldQty:      decimal.Zero,
		ProducedQty:  decimal.Zero,
		ConsumedQty:  decimal.Zero,
	}

	var purchased struct {
		Total decimal.Decimal
	}
	err := l.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(pi.quantity), 0) AS total
		FROM purchase_items pi
		JOIN purchases p ON p.id = pi.purchase_id
		WHERE pi.product_id = ? AND p.is_deleted = ?`, productID, false).
		Scan(&purchased).Error
	if err != nil {
		return totals, err
	}
	totals.PurchasedQty = purchased.Total

	var sold struct {
		Total decimal.Decimal
	}
	err = l.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(si.quantity), 0) AS total
		FROM sales_items si
		JOIN sales s ON s.id = si.sale_id
		WHERE si.product_id = ? AND s.is_deleted = ?`, productID, false).
		Scan(&sold).Error
	if err != nil {
		return totals, err
	}
	totals.SoldQty = sold.Total

	var produced struct {
		Total decimal.Decimal
	}
	err = l.db.WithContext(ctx).
		Model(&trade.Production{}).
		Select("COALESCE(SUM(quantity), 0) AS total").
		Where("bottle_product_id = ?", productID).
		Scan(&produced).Error
	if err != nil {
		return totals, err
	}
	totals.ProducedQty = produced.Total

	var consumed struct {
		Total decimal.Decimal
	}
	err = l.db.WithContext(ctx).
		Model(&trade.Production{}).
		Select("COALESCE(SUM(quantity), 0) AS total").
		Where("preform_product_id = ?", productID).
		Scan(&consumed).Error
	if err != nil {
		return totals, err
	}
	totals.ConsumedQty = consumed.Total

	return totals, nil
}

var _ trade.StockLedger = (*GormStockLedger)(nil)
