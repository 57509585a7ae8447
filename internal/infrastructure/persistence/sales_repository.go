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

// GormSalesRepository implements trade.SalesRepository using GORM
type GormSalesRepository struct {
	db *gorm.DB
}

// NewGormSalesRepository creates a new GormSalesRepository
func NewGormSalesRepository(db *gorm.DB) *GormSalesRepository {
	return &GormSalesRepository{db: db}
}

// FindByID finds a non-deleted sale with its items
func (r *GormSalesRepository) FindByID(ctx context.Context, id int64) (*trade.Sale, error) {
	var sale trade.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&sale).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindAllActive lists non-deleted sales with customer names, newest first
func (r *GormSalesRepository) FindAllActive(ctx context.Context) ([]trade.SaleSummary, error) {
	var summaries []trade.SaleSummary
	err := r.db.WithContext(ctx).
		Model(&trade.Sale{}).
		Select("sales.*, customers.name AS customer_name").
		Joins("LEFT JOIN customers ON customers.id = sales.customer_id").
		Where("sales.is_deleted = ?", false).
		Order("sales.date DESC, sales.id DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// Save persists a sale header together with its items. A duplicate invoice
// number surfaces as shared.ErrAlreadyExists.
func (r *GormSalesRepository) Save(ctx context.Context, sale *trade.Sale) error {
	if err := r.db.WithContext(ctx).Create(sale).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// SoftDelete flags a sale deleted
func (r *GormSalesRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&trade.Sale{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

// CountActive counts non-deleted sales
func (r *GormSalesRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&trade.Sale{}).
		Where("is_deleted = ?", false).
		Count(&count).Error
	return count, err
}

// TotalAmountBetween sums non-deleted invoice totals over the inclusive
// date range
func (r *GormSalesRepository) TotalAmountBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&trade.Sale{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("is_deleted = ? AND date BETWEEN ? AND ?", false, from, to).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// ItemFactsBetween returns one row per sales item of the non-deleted sales
// dated in [from, to], joined with the product name and the parent invoice
// figures the profit computations prorate against.
func (r *GormSalesRepository) ItemFactsBetween(ctx context.Context, from, to time.Time) ([]trade.SaleItemFact, error) {
	var facts []trade.SaleItemFact
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.id AS sale_id,
			s.invoice_number AS invoice_number,
			s.date AS sale_date,
			si.product_id AS product_id,
			p.name AS product_name,
			si.quantity AS quantity,
			si.rate AS rate,
			si.total AS item_total,
			s.total_amount AS invoice_total,
			s.transport_cost AS invoice_transport
		FROM sales_items si
		JOIN sales s ON s.id = si.sale_id
		LEFT JOIN products p ON p.id = si.product_id
		WHERE s.is_deleted = ? AND s.date BETWEEN ? AND ?
		ORDER BY s.date ASC, s.id ASC, si.id ASC`, false, from, to).
		Scan(&facts).Error
	if err != nil {
		return nil, err
	}
	return facts, nil
}

var _ trade.SalesRepository = (*GormSalesRepository)(nil)
