package partner

import (
	"context"
	"strings"

	"github.com/plastpack/erp/internal/domain/shared"
)

// Customer is a reference entity with no derived state. Sales point at it by
// id.
type Customer struct {
	shared.BaseEntity
	Name    string `gorm:"type:varchar(200);not null" json:"name"`
	Phone   string `gorm:"type:varchar(50)" json:"phone"`
	Address string `gorm:"type:varchar(500)" json:"address"`
	GST     string `gorm:"type:varchar(50)" json:"gst"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer
func NewCustomer(name, phone, address, gst string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	return &Customer{
		Name:    name,
		Phone:   strings.TrimSpace(phone),
		Address: strings.TrimSpace(address),
		GST:     strings.TrimSpace(gst),
	}, nil
}

// Update updates the customer's details
func (c *Customer) Update(name, phone, address, gst string) error {
	updated, err := NewCustomer(name, phone, address, gst)
	if err != nil {
		return err
	}
	c.Name = updated.Name
	c.Phone = updated.Phone
	c.Address = updated.Address
	c.GST = updated.GST
	return nil
}

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	FindByID(ctx context.Context, id int64) (*Customer, error)
	FindAll(ctx context.Context) ([]Customer, error)
	Save(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id int64) error
}
