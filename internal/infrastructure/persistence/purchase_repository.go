package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/plastpack/erp/internal/domain/shared"
	"github.com/plastpack/erp/internal/domain/trade"
)

// GormPurchaseRepository implements trade.PurchaseRepository using GORM
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRepository creates a new GormPurchaseRepository
func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// FindByID finds a non-deleted purchase with its items
func (r *GormPurchaseRepository) FindByID(ctx context.Context, id int64) (*trade.Purchase, error) {
	var purchase trade.Purchase
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&purchase).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &purchase, nil
}

// FindAllActive lists non-deleted purchases with supplier names, newest first
func (r *GormPurchaseRepository) FindAllActive(ctx context.Context) ([]trade.PurchaseSummary, error) {
	var summaries []trade.PurchaseSummary
	err := r.db.WithContext(ctx).
		Model(&trade.Purchase{}).
		Select("purchases.*, suppliers.name AS supplier_name").
		Joins("LEFT JOIN suppliers ON suppliers.id = purchases.supplier_id").
		Where("purchases.is_deleted = ?", false).
		Order("purchases.date DESC, purchases.id DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// Save persists a purchase header together with its items. A duplicate
// invoice number surfaces as shared.ErrAlreadyExists.
func (r *GormPurchaseRepository) Save(ctx context.Context, purchase *trade.Purchase) error {
	if err := r.db.WithContext(ctx).Create(purchase).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// SoftDelete flags a purchase deleted. Item rows stay untouched; every
// aggregate filters on the parent flag.
func (r *GormPurchaseRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&trade.Purchase{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

// CountActive counts non-deleted purchases
func (r *GormPurchaseRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&trade.Purchase{}).
		Where("is_deleted = ?", false).
		Count(&count).Error
	return count, err
}

// TotalAmountBetween sums non-deleted invoice totals over the inclusive
// date range
func (r *GormPurchaseRepository) TotalAmountBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&trade.Purchase{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("is_deleted = ? AND date BETWEEN ? AND ?", false, from, to).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// LastPurchaseRate resolves the unit cost of a product as of a date: the
// rate of the latest non-deleted purchase dated at or before asOf, ties
// broken by highest purchase id. Zero when no purchase qualifies.
func (r *GormPurchaseRepository) LastPurchaseRate(ctx context.Context, productID int64, asOf time.Time) (decimal.Decimal, error) {
	var row struct {
		Rate decimal.Decimal
	}
	result := r.db.WithContext(ctx).Raw(`
		SELECT pi.rate AS rate
		FROM purchase_items pi
		JOIN purchases p ON p.id = pi.purchase_id
		WHERE pi.product_id = ? AND p.is_deleted = ? AND p.date <= ?
		ORDER BY p.date DESC, p.id DESC
		LIMIT 1`, productID, false, asOf).Scan(&row)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if result.RowsAffected == 0 {
		return decimal.Zero, nil
	}
	return row.Rate, nil
}

var _ trade.PurchaseRepository = (*GormPurchaseRepository)(nil)
