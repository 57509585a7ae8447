package partner

import (
	"context"

	"github.com/plastpack/erp/internal/domain/partner"
)

// CustomerService manages the customer directory
type CustomerService struct {
	customers partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customers partner.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// Create validates and persists a new customer
func (s *CustomerService) Create(ctx context.Context, req PartnerRequest) (*PartnerResponse, error) {
	customer, err := partner.NewCustomer(req.Name, req.Phone, req.Address, req.GST)
	if err != nil {
		return nil, err
	}
	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}
	return customerResponse(customer), nil
}

// Update applies new attributes to an existing customer
func (s *CustomerService) Update(ctx context.Context, id int64, req PartnerRequest) (*PartnerResponse, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := customer.Update(req.Name, req.Phone, req.Address, req.GST); err != nil {
		return nil, err
	}
	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}
	return customerResponse(customer), nil
}

// Get returns one customer
func (s *CustomerService) Get(ctx context.Context, id int64) (*PartnerResponse, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return customerResponse(customer), nil
}

// List returns all customers
func (s *CustomerService) List(ctx context.Context) ([]PartnerResponse, error) {
	customers, err := s.customers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PartnerResponse, len(customers))
	for i := range customers {
		out[i] = *customerResponse(&customers[i])
	}
	return out, nil
}

// Delete removes a customer. Sales keep the customer id they were recorded
// with.
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if _, err := s.customers.FindByID(ctx, id); err != nil {
		return err
	}
	return s.customers.Delete(ctx, id)
}

func customerResponse(c *partner.Customer) *PartnerResponse {
	return &PartnerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		Address: c.Address,
		GST:     c.GST,
	}
}
