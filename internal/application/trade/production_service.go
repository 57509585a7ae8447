package trade

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/plastpack/erp/internal/domain/catalog"
	"github.com/plastpack/erp/internal/domain/shared"
	"github.com/plastpack/erp/internal/domain/trade"
)

// ProductionService records production runs and serves the production log
type ProductionService struct {
	production trade.ProductionRepository
	products   catalog.ProductRepository
	scope      TransactionScope
	locks      *KeyedMutex
}

// NewProductionService creates a new ProductionService
func NewProductionService(
	production trade.ProductionRepository,
	products catalog.ProductRepository,
	scope TransactionScope,
	locks *KeyedMutex,
) *ProductionService {
	return &ProductionService{
		production: production,
		products:   products,
		scope:      scope,
		locks:      locks,
	}
}

// Record validates preform stock and persists one production row. The
// preform's product lock is held across the check and the write; bottle
// stock only grows from production, so the bottle side needs no lock.
func (s *ProductionService) Record(ctx context.Context, req RecordProductionRequest) (*ProductionResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	production, err := trade.NewProduction(date, req.PreformProductID, req.BottleProductID, req.Quantity)
	if err != nil {
		return nil, err
	}

	preform, err := s.products.FindByID(ctx, req.PreformProductID)
	if err != nil {
		return nil, err
	}
	if preform.Category != catalog.CategoryPreform {
		return nil, shared.NewDomainError("INVALID_PRODUCTION", "Input product must be a Preform")
	}
	bottle, err := s.products.FindByID(ctx, req.BottleProductID)
	if err != nil {
		return nil, err
	}
	if bottle.Category != catalog.CategoryBottle {
		return nil, shared.NewDomainError("INVALID_PRODUCTION", "Output product must be a Bottle")
	}

	unlock := s.locks.Lock(preform.ID)
	defer unlock()

	err = s.scope.Execute(ctx, func(repos TxRepositories) error {
		totals, err := repos.Ledger().TotalsFor(ctx, preform.ID)
		if err != nil {
			return err
		}
		available := preform.CurrentStock(totals)
		if decimal.NewFromInt(available).LessThan(production.Quantity) {
			return shared.NewInsufficientStockError(preform.Name, available)
		}

		return repos.Production().Save(ctx, production)
	})
	if err != nil {
		return nil, err
	}

	return &ProductionResponse{
		ID:               production.ID,
		Date:             production.Date.Format(DateLayout),
		PreformProductID: production.PreformProductID,
		PreformName:      preform.Name,
		BottleProductID:  production.BottleProductID,
		BottleName:       bottle.Name,
		Quantity:         production.Quantity,
	}, nil
}

// List returns all production entries, newest first
func (s *ProductionService) List(ctx context.Context) ([]ProductionResponse, error) {
	entries, err := s.production.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ProductionResponse, len(entries))
	for i, e := range entries {
		out[i] = ProductionResponse{
			ID:               e.ID,
			Date:             e.Date.Format(DateLayout),
			PreformProductID: e.PreformProductID,
			PreformName:      e.PreformName,
			BottleProductID:  e.BottleProductID,
			BottleName:       e.BottleName,
			Quantity:         e.Quantity,
		}
	}
	return out, nil
}
