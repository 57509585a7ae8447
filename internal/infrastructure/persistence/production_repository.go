package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/plastpack/erp/internal/domain/trade"
)

// GormProductionRepository implements trade.ProductionRepository using GORM
type GormProductionRepository struct {
	db *gorm.DB
}

// NewGormProductionRepository creates a new GormProductionRepository
func NewGormProductionRepository(db *gorm.DB) *GormProductionRepository {
	return &GormProductionRepository{db: db}
}

// Save persists a production entry
func (r *GormProductionRepository) Save(ctx context.Context, production *trade.Production) error {
	return r.db.WithContext(ctx).Create(production).Error
}

// FindAll lists production entries with both product names, newest first
func (r *GormProductionRepository) FindAll(ctx context.Context) ([]trade.ProductionEntry, error) {
	var entries []trade.ProductionEntry
	err := r.db.WithContext(ctx).
		Model(&trade.Production{}).
		Select("production.*, preform.name AS preform_name, bottle.name AS bottle_name").
		Joins("LEFT JOIN products preform ON preform.id = production.preform_product_id").
		Joins("LEFT JOIN products bottle ON bottle.id = production.bottle_product_id").
		Order("production.date DESC, production.id DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Count counts all production entries
func (r *GormProductionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&trade.Production{}).Count(&count).Error
	return count, err
}

var _ trade.ProductionRepository = (*GormProductionRepository)(nil)
