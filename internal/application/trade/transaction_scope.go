package trade

import (
	"context"

	"github.com/plastpack/erp/internal/domain/catalog"
	"github.com/plastpack/erp/internal/domain/trade"
)

// TransactionScope provides transactional access to the repositories a
// recording operation touches. All repository calls inside Execute share one
// database transaction: the validation reads, the header write and the item
// writes commit or roll back as a unit.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TxRepositories) error) error
}

// TxRepositories exposes the repositories scoped to the current transaction
type TxRepositories interface {
	Purchases() trade.PurchaseRepository
	Sales() trade.SalesRepository
	Production() trade.ProductionRepository
	Products() catalog.ProductRepository
	Ledger() trade.StockLedger
}
