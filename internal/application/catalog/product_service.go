package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/plastpack/erp/internal/domain/catalog"
	"github.com/plastpack/erp/internal/domain/trade"
)

// ProductService manages the product catalog and decorates listings with
// derived stock. Stock is never stored; every read recomputes it from the
// movement ledger.
type ProductService struct {
	products catalog.ProductRepository
	ledger   trade.StockLedger
}

// NewProductService creates a new ProductService
func NewProductService(products catalog.ProductRepository, ledger trade.StockLedger) *ProductService {
	return &ProductService{products: products, ledger: ledger}
}

// CreateProductRequest is the input for creating a product
type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Category      string          `json:"category" binding:"required"`
	GramWeight    decimal.Decimal `json:"gram_weight"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
}

// UpdateProductRequest is the input for updating a product
type UpdateProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Category      string          `json:"category" binding:"required"`
	GramWeight    decimal.Decimal `json:"gram_weight"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
}

// ProductResponse is a product with its derived stock position
type ProductResponse struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Category      catalog.Category `json:"category"`
	GramWeight    decimal.Decimal  `json:"gram_weight"`
	MinStockLevel decimal.Decimal  `json:"min_stock_level"`
	CurrentStock  int64            `json:"current_stock"`
	IsLowStock    bool             `json:"is_low_stock"`
}

// ListFilter narrows a product listing
type ListFilter struct {
	Category string `form:"category"`
	Search   string `form:"search"`
}

// Create validates and persists a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	category, err := catalog.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(req.Name, category, req.GramWeight, req.MinStockLevel)
	if err != nil {
		return nil, err
	}
	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, product)
}

// Update applies new attributes to an existing product. Changing the gram
// weight re-weighs the whole purchase history on the next stock read.
func (s *ProductService) Update(ctx context.Context, id int64, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category, err := catalog.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	if err := product.Update(req.Name, category, req.GramWeight, req.MinStockLevel); err != nil {
		return nil, err
	}
	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, product)
}

// Get returns one product with its derived stock
func (s *ProductService) Get(ctx context.Context, id int64) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, product)
}

// List returns active products matching the filter, each with derived stock.
// An unknown category is rejected rather than matched against nothing.
func (s *ProductService) List(ctx context.Context, filter ListFilter) ([]ProductResponse, error) {
	var category catalog.Category
	if filter.Category != "" {
		parsed, err := catalog.ParseCategory(filter.Category)
		if err != nil {
			return nil, err
		}
		category = parsed
	}

	products, err := s.products.FindActive(ctx, catalog.ProductFilter{
		Category: category,
		Search:   filter.Search,
	})
	if err != nil {
		return nil, err
	}

	out := make([]ProductResponse, len(products))
	for i := range products {
		resp, err := s.toResponse(ctx, &products[i])
		if err != nil {
			return nil, err
		}
		out[i] = *resp
	}
	return out, nil
}

// Delete soft-deletes a product. Its movement history stays in the ledger.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	product.SoftDelete()
	return s.products.Save(ctx, product)
}

func (s *ProductService) toResponse(ctx context.Context, product *catalog.Product) (*ProductResponse, error) {
	totals, err := s.ledger.TotalsFor(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	currentStock := product.CurrentStock(totals)

	return &ProductResponse{
		ID:            product.ID,
		Name:          product.Name,
		Category:      product.Category,
		GramWeight:    product.GramWeight,
		MinStockLevel: product.MinStockLevel,
		CurrentStock:  currentStock,
		IsLowStock:    product.IsLowStock(currentStock),
	}, nil
}
