package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apptrade "github.com/plastpack/erp/internal/application/trade"
	"github.com/plastpack/erp/internal/domain/catalog"
	"github.com/plastpack/erp/internal/domain/trade"
)

func TestGormTransactionScope_CommitsOnSuccess(t *testing.T) {
	db := setupTestDB(t)
	scope := NewGormTransactionScope(db)
	ctx := context.Background()

	supplier := seedSupplier(t, db, "Poly Traders")
	preform := seedProduct(t, db, "Preform 20g", catalog.CategoryPreform, "20")

	purchase, err := trade.NewPurchase("PUR-001", mustDate(t, "2025-03-10"), supplier.ID, decimal.Zero, []trade.Line{
		line(preform.ID, "100", "250"),
	})
	require.NoError(t, err)

	err = scope.Execute(ctx, func(repos apptrade.TxRepositories) error {
		return repos.Purchases().Save(ctx, purchase)
	})
	require.NoError(t, err)

	count, err := NewGormPurchaseRepository(db).CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGormTransactionScope_RollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	scope := NewGormTransactionScope(db)
	ctx := context.Background()

	supplier := seedSupplier(t, db, "Poly Traders")
	preform := seedProduct(t, db, "Preform 20g", catalog.CategoryPreform, "20")

	purchase, err := trade.NewPurchase("PUR-001", mustDate(t, "2025-03-10"), supplier.ID, decimal.Zero, []trade.Line{
		line(preform.ID, "100", "250"),
	})
	require.NoError(t, err)

	boom := errors.New("stock check failed")
	err = scope.Execute(ctx, func(repos apptrade.TxRepositories) error {
		if err := repos.Purchases().Save(ctx, purchase); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// the write inside the failed transaction must not be visible
	count, err := NewGormPurchaseRepository(db).CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGormTransactionScope_LedgerSeesUncommittedWrites(t *testing.T) {
	db := setupTestDB(t)
	scope := NewGormTransactionScope(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Aqua Beverages")
	supplier := seedSupplier(t, db, "Poly Traders")
	bottle := seedProduct(t, db, "Bottle 1L", catalog.CategoryBottle, "0")

	seedPurchase(t, db, "PUR-001", "2025-03-01", supplier.ID, []trade.Line{
		line(bottle.ID, "500", "12"),
	})

	sale, err := trade.NewSale("SAL-001", mustDate(t, "2025-03-05"), customer.ID, decimal.Zero, []trade.Line{
		line(bottle.ID, "200", "15"),
	})
	require.NoError(t, err)

	err = scope.Execute(ctx, func(repos apptrade.TxRepositories) error {
		if err := repos.Sales().Save(ctx, sale); err != nil {
			return err
		}
		totals, err := repos.Ledger().TotalsFor(ctx, bottle.ID)
		if err != nil {
			return err
		}
		// the tx-scoped ledger already counts the sale written above
		assert.True(t, totals.SoldQty.Equal(decimal.NewFromInt(200)), "got %s", totals.SoldQty)
		return nil
	})
	require.NoError(t, err)
}
