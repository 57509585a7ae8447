package trade

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/plastpack/erp/internal/domain/catalog"
	"github.com/plastpack/erp/internal/domain/shared"
)

func newProductionFixture() (*ProductionService, *stubScope) {
	scope := newStubScope()
	svc := NewProductionService(scope.production, scope.products, scope, NewKeyedMutex())
	return svc, scope
}

func preformProduct(id int64, name string, gramWeight int64) *catalog.Product {
	p := &catalog.Product{
		Name:       name,
		Category:   catalog.CategoryPreform,
		GramWeight: decimal.NewFromInt(gramWeight),
	}
	p.ID = id
	return p
}

func validProductionRequest() RecordProductionRequest {
	return RecordProductionRequest{
		Date:             "2025-03-15",
		PreformProductID: 5,
		BottleProductID:  8,
		Quantity:         decimal.NewFromInt(1000),
	}
}

func TestProductionService_Record(t *testing.T) {
	t.Run("persists when preform stock covers the run", func(t *testing.T) {
		svc, scope := newProductionFixture()
		scope.products.On("FindByID", mock.Anything, int64(5)).Return(preformProduct(5, "Preform 20g", 20), nil)
		scope.products.On("FindByID", mock.Anything, int64(8)).Return(bottleProduct(8, "Bottle 1L"), nil)
		// 100 KG at 20g = 5000 pieces purchased
		scope.ledger.On("TotalsFor", mock.Anything, int64(5)).Return(catalog.LedgerTotals{
			PurchasedQty: decimal.NewFromInt(100),
			ConsumedQty:  decimal.NewFromInt(2000),
		}, nil)
		scope.production.On("Save", mock.Anything, mock.AnythingOfType("*trade.Production")).Return(nil)

		resp, err := svc.Record(context.Background(), validProductionRequest())

		require.NoError(t, err)
		assert.Equal(t, "Preform 20g", resp.PreformName)
		assert.Equal(t, "Bottle 1L", resp.BottleName)
		scope.production.AssertExpectations(t)
	})

	t.Run("rejects when preform stock is short and writes nothing", func(t *testing.T) {
		svc, scope := newProductionFixture()
		scope.products.On("FindByID", mock.Anything, int64(5)).Return(preformProduct(5, "Preform 20g", 20), nil)
		scope.products.On("FindByID", mock.Anything, int64(8)).Return(bottleProduct(8, "Bottle 1L"), nil)
		// 10 KG at 20g = 500 pieces, 1000 requested
		scope.ledger.On("TotalsFor", mock.Anything, int64(5)).Return(catalog.LedgerTotals{
			PurchasedQty: decimal.NewFromInt(10),
		}, nil)

		_, err := svc.Record(context.Background(), validProductionRequest())

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeInsufficientStock, domainErr.Code)
		assert.Equal(t, "Insufficient stock for Preform 20g. Available: 500 PCS", domainErr.Message)
		scope.production.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects a non-preform input product", func(t *testing.T) {
		svc, scope := newProductionFixture()
		scope.products.On("FindByID", mock.Anything, int64(5)).Return(bottleProduct(5, "Bottle 500ml"), nil)

		_, err := svc.Record(context.Background(), validProductionRequest())

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PRODUCTION", domainErr.Code)
	})

	t.Run("rejects a non-bottle output product", func(t *testing.T) {
		svc, scope := newProductionFixture()
		scope.products.On("FindByID", mock.Anything, int64(5)).Return(preformProduct(5, "Preform 20g", 20), nil)
		scope.products.On("FindByID", mock.Anything, int64(8)).Return(preformProduct(8, "Preform 24g", 24), nil)

		_, err := svc.Record(context.Background(), validProductionRequest())

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PRODUCTION", domainErr.Code)
	})

	t.Run("rejects the same product on both sides", func(t *testing.T) {
		svc, _ := newProductionFixture()
		req := validProductionRequest()
		req.BottleProductID = req.PreformProductID

		_, err := svc.Record(context.Background(), req)

		require.Error(t, err)
	})
}
