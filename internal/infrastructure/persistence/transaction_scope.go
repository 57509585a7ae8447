package persistence

import (
	"context"

	"gorm.io/gorm"

	apptrade "github.com/plastpack/erp/internal/application/trade"
	"github.com/plastpack/erp/internal/domain/catalog"
	"github.com/plastpack/erp/internal/domain/trade"
)

// GormTransactionScope implements apptrade.TransactionScope with a GORM
// transaction. Every repository handed to the callback runs on the tx
// connection, so a stock check and the write it guards commit or roll back
// together.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn within a database transaction
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos apptrade.TxRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTxRepositories{tx: tx})
	})
}

// gormTxRepositories builds repositories bound to one transaction
type gormTxRepositories struct {
	tx *gorm.DB
}

func (r *gormTxRepositories) Purchases() trade.PurchaseRepository {
	return NewGormPurchaseRepository(r.tx)
}

func (r *gormTxRepositories) Sales() trade.SalesRepository {
	return NewGormSalesRepository(r.tx)
}

func (r *gormTxRepositories) Production() trade.ProductionRepository {
	return NewGormProductionRepository(r.tx)
}

func (r *gormTxRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormTxRepositories) Ledger() trade.StockLedger {
	return NewGormStockLedger(r.tx)
}

var (
	_ apptrade.TransactionScope = (*GormTransactionScope)(nil)
	_ apptrade.TxRepositories   = (*gormTxRepositories)(nil)
)
