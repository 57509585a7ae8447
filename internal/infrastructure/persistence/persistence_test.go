package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/plastpack/erp/internal/domain/catalog"
	"github.com/plastpack/erp/internal/domain/partner"
	"github.com/plastpack/erp/internal/domain/trade"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, category catalog.Category, gramWeight string) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, category, decimal.RequireFromString(gramWeight), decimal.Zero)
	require.NoError(t, err)
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedSupplier(t *testing.T, db *gorm.DB, name string) *partner.Supplier {
	t.Helper()
	supplier, err := partner.NewSupplier(name, "", "", "")
	require.NoError(t, err)
	require.NoError(t, db.Create(supplier).Error)
	return supplier
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) *partner.Customer {
	t.Helper()
	customer, err := partner.NewCustomer(name, "", "", "")
	require.NoError(t, err)
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return date
}

func seedPurchase(t *testing.T, db *gorm.DB, invoice, date string, supplierID int64, lines []trade.Line) *trade.Purchase {
	t.Helper()
	purchase, err := trade.NewPurchase(invoice, mustDate(t, date), supplierID, decimal.Zero, lines)
	require.NoError(t, err)
	repo := NewGormPurchaseRepository(db)
	require.NoError(t, repo.Save(context.Background(), purchase))
	return purchase
}

func seedSale(t *testing.T, db *gorm.DB, invoice, date string, customerID int64, transport decimal.Decimal, lines []trade.Line) *trade.Sale {
	t.Helper()
	sale, err := trade.NewSale(invoice, mustDate(t, date), customerID, transport, lines)
	require.NoError(t, err)
	repo := NewGormSalesRepository(db)
	require.NoError(t, repo.Save(context.Background(), sale))
	return sale
}

func line(productID int64, quantity, rate string) trade.Line {
	return trade.Line{
		ProductID: productID,
		Quantity:  decimal.RequireFromString(quantity),
		Rate:      decimal.RequireFromString(rate),
	}
}
