package partner

import (
	"context"

	"github.com/plastpack/erp/internal/domain/partner"
)

// PartnerRequest is the input for creating or updating a supplier or customer
type PartnerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	GST     string `json:"gst"`
}

// PartnerResponse is a supplier or customer as served to clients
type PartnerResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	GST     string `json:"gst,omitempty"`
}

// SupplierService manages the supplier directory
type SupplierService struct {
	suppliers partner.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(suppliers partner.SupplierRepository) *SupplierService {
	return &SupplierService{suppliers: suppliers}
}

// Create validates and persists a new supplier
func (s *SupplierService) Create(ctx context.Context, req PartnerRequest) (*PartnerResponse, error) {
	supplier, err := partner.NewSupplier(req.Name, req.Phone, req.Address, req.GST)
	if err != nil {
		return nil, err
	}
	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return supplierResponse(supplier), nil
}

// Update applies new attributes to an existing supplier
func (s *SupplierService) Update(ctx context.Context, id int64, req PartnerRequest) (*PartnerResponse, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := supplier.Update(req.Name, req.Phone, req.Address, req.GST); err != nil {
		return nil, err
	}
	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return supplierResponse(supplier), nil
}

// Get returns one supplier
func (s *SupplierService) Get(ctx context.Context, id int64) (*PartnerResponse, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return supplierResponse(supplier), nil
}

// List returns all suppliers
func (s *SupplierService) List(ctx context.Context) ([]PartnerResponse, error) {
	suppliers, err := s.suppliers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PartnerResponse, len(suppliers))
	for i := range suppliers {
		out[i] = *supplierResponse(&suppliers[i])
	}
	return out, nil
}

// Delete removes a supplier. Purchases keep the supplier id they were
// recorded with.
func (s *SupplierService) Delete(ctx context.Context, id int64) error {
	if _, err := s.suppliers.FindByID(ctx, id); err != nil {
		return err
	}
	return s.suppliers.Delete(ctx, id)
}

func supplierResponse(s *partner.Supplier) *PartnerResponse {
	return &PartnerResponse{
		ID:      s.ID,
		Name:    s.Name,
		Phone:   s.Phone,
		Address: s.Address,
		GST:     s.GST,
	}
}
