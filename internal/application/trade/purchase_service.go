package trade

import (
	"context"
	"errors"

	"github.com/plastpack/erp/internal/domain/catalog"
	"github.com/plastpack/erp/internal/domain/partner"
	"github.com/plastpack/erp/internal/domain/shared"
	"github.com/plastpack/erp/internal/domain/trade"
)

// PurchaseService records purchases and serves purchase listings
type PurchaseService struct {
	purchases trade.PurchaseRepository
	suppliers partner.SupplierRepository
	products  catalog.ProductRepository
	scope     TransactionScope
}

// NewPurchaseService creates a new PurchaseService
func NewPurchaseService(
	purchases trade.PurchaseRepository,
	suppliers partner.SupplierRepository,
	products catalog.ProductRepository,
	scope TransactionScope,
) *PurchaseService {
	return &PurchaseService{
		purchases: purchases,
		suppliers: suppliers,
		products:  products,
		scope:     scope,
	}
}

// Record validates and atomically persists a purchase with its items. The
// invoice total is derived at construction; an invoice number collision
// surfaces as a DuplicateInvoice domain error before anything else is
// written.
func (s *PurchaseService) Record(ctx context.Context, req RecordPurchaseRequest) (*PurchaseResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if _, err := s.suppliers.FindByID(ctx, req.SupplierID); err != nil {
		return nil, err
	}

	purchase, err := trade.NewPurchase(req.InvoiceNumber, date, req.SupplierID, req.TransportCost, toLines(req.Items))
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos TxRepositories) error {
		if err := repos.Purchases().Save(ctx, purchase); err != nil {
			if errors.Is(err, shared.ErrAlreadyExists) {
				return shared.NewDuplicateInvoiceError(purchase.InvoiceNumber)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := s.toResponse(ctx, purchase, "")
	return &resp, nil
}

// List returns all non-deleted purchases, newest first
func (s *PurchaseService) List(ctx context.Context) ([]PurchaseResponse, error) {
	summaries, err := s.purchases.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]PurchaseResponse, len(summaries))
	for i, sum := range summaries {
		out[i] = PurchaseResponse{
			ID:            sum.ID,
			InvoiceNumber: sum.InvoiceNumber,
			Date:          sum.Date.Format(DateLayout),
			SupplierID:    sum.SupplierID,
			SupplierName:  sum.SupplierName,
			TransportCost: sum.TransportCost,
			TotalAmount:   sum.TotalAmount,
		}
	}
	return out, nil
}

// Get returns one purchase with its items and resolved names
func (s *PurchaseService) Get(ctx context.Context, id int64) (*PurchaseResponse, error) {
	purchase, err := s.purchases.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	supplierName := ""
	if supplier, err := s.suppliers.FindByID(ctx, purchase.SupplierID); err == nil {
		supplierName = supplier.Name
	}

	resp := s.toResponse(ctx, purchase, supplierName)
	return &resp, nil
}

// Delete soft-deletes a purchase. Stock and reports exclude it from then on;
// the rows stay for audit.
func (s *PurchaseService) Delete(ctx context.Context, id int64) error {
	if _, err := s.purchases.FindByID(ctx, id); err != nil {
		return err
	}
	return s.purchases.SoftDelete(ctx, id)
}

func (s *PurchaseService) toResponse(ctx context.Context, p *trade.Purchase, supplierName string) PurchaseResponse {
	ids := make([]int64, len(p.Items))
	for i, it := range p.Items {
		ids[i] = it.ProductID
	}
	names, err := s.products.NamesByID(ctx, ids)
	if err != nil {
		names = map[int64]string{}
	}

	return PurchaseResponse{
		ID:            p.ID,
		InvoiceNumber: p.InvoiceNumber,
		Date:          p.Date.Format(DateLayout),
		SupplierID:    p.SupplierID,
		SupplierName:  supplierName,
		TransportCost: p.TransportCost,
		TotalAmount:   p.TotalAmount,
		Items:         purchaseItemResponses(p.Items, names),
	}
}
