package trade

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/plastpack/erp/internal/domain/catalog"
	"github.com/plastpack/erp/internal/domain/partner"
	"github.com/plastpack/erp/internal/domain/shared"
	"github.com/plastpack/erp/internal/domain/trade"
)

// SalesService records sales and serves sale listings
type SalesService struct {
	sales     trade.SalesRepository
	customers partner.CustomerRepository
	products  catalog.ProductRepository
	scope     TransactionScope
	locks     *KeyedMutex
}

// NewSalesService creates a new SalesService
func NewSalesService(
	sales trade.SalesRepository,
	customers partner.CustomerRepository,
	products catalog.ProductRepository,
	scope TransactionScope,
	locks *KeyedMutex,
) *SalesService {
	return &SalesService{
		sales:     sales,
		customers: customers,
		products:  products,
		scope:     scope,
		locks:     locks,
	}
}

// Record validates stock for every item and atomically persists the sale.
// The product locks are held from before the stock reads until after the
// commit, so concurrent sales of the same product cannot both pass the check
// and oversell. On any failure nothing is written.
func (s *SalesService) Record(ctx context.Context, req RecordSaleRequest) (*SaleResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if _, err := s.customers.FindByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	sale, err := trade.NewSale(req.InvoiceNumber, date, req.CustomerID, req.TransportCost, toLines(req.Items))
	if err != nil {
		return nil, err
	}

	productIDs := make([]int64, len(sale.Items))
	for i, it := range sale.Items {
		productIDs[i] = it.ProductID
	}
	unlock := s.locks.Lock(productIDs...)
	defer unlock()

	err = s.scope.Execute(ctx, func(repos TxRepositories) error {
		for _, item := range sale.Items {
			product, err := repos.Products().FindByID(ctx, item.ProductID)
			if err != nil {
				return err
			}
			totals, err := repos.Ledger().TotalsFor(ctx, product.ID)
			if err != nil {
				return err
			}
			available := product.CurrentStock(totals)
			if decimal.NewFromInt(available).LessThan(item.Quantity) {
				return shared.NewInsufficientStockError(product.Name, available)
			}
		}

		if err := repos.Sales().Save(ctx, sale); err != nil {
			if errors.Is(err, shared.ErrAlreadyExists) {
				return shared.NewDuplicateInvoiceError(sale.InvoiceNumber)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := s.toResponse(ctx, sale, "")
	return &resp, nil
}

// List returns all non-deleted sales, newest first
func (s *SalesService) List(ctx context.Context) ([]SaleResponse, error) {
	summaries, err := s.sales.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]SaleResponse, len(summaries))
	for i, sum := range summaries {
		out[i] = SaleResponse{
			ID:            sum.ID,
			InvoiceNumber: sum.InvoiceNumber,
			Date:          sum.Date.Format(DateLayout),
			CustomerID:    sum.CustomerID,
			CustomerName:  sum.CustomerName,
			TransportCost: sum.TransportCost,
			TotalAmount:   sum.TotalAmount,
		}
	}
	return out, nil
}

// Get returns one sale with its items and resolved names
func (s *SalesService) Get(ctx context.Context, id int64) (*SaleResponse, error) {
	sale, err := s.sales.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customerName := ""
	if customer, err := s.customers.FindByID(ctx, sale.CustomerID); err == nil {
		customerName = customer.Name
	}

	resp := s.toResponse(ctx, sale, customerName)
	return &resp, nil
}

// Delete soft-deletes a sale
func (s *SalesService) Delete(ctx context.Context, id int64) error {
	if _, err := s.sales.FindByID(ctx, id); err != nil {
		return err
	}
	return s.sales.SoftDelete(ctx, id)
}

func (s *SalesService) toResponse(ctx context.Context, sale *trade.Sale, customerName string) SaleResponse {
	ids := make([]int64, len(sale.Items))
	for i, it := range sale.Items {
		ids[i] = it.ProductID
	}
	names, err := s.products.NamesByID(ctx, ids)
	if err != nil {
		names = map[int64]string{}
	}

	return SaleResponse{
		ID:            sale.ID,
		InvoiceNumber: sale.InvoiceNumber,
		Date:          sale.Date.Format(DateLayout),
		CustomerID:    sale.CustomerID,
		CustomerName:  customerName,
		TransportCost: sale.TransportCost,
		TotalAmount:   sale.TotalAmount,
		Items:         saleItemResponses(sale.Items, names),
	}
}
