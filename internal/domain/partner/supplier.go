package partner

import (
	"context"
	"strings"

	"github.com/plastpack/erp/internal/domain/shared"
)

// Supplier is a reference entity with no derived state. Purchases point at it
// by id.
type Supplier struct {
	shared.BaseEntity
	Name    string `gorm:"type:varchar(200);not null" json:"name"`
	Phone   string `gorm:"type:varchar(50)" json:"phone"`
	Address string `gorm:"type:varchar(500)" json:"address"`
	GST     string `gorm:"type:varchar(50)" json:"gst"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier
func NewSupplier(name, phone, address, gst string) (*Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	return &Supplier{
		Name:    name,
		Phone:   strings.TrimSpace(phone),
		Address: strings.TrimSpace(address),
		GST:     strings.TrimSpace(gst),
	}, nil
}

// Update updates the supplier's details
func (s *Supplier) Update(name, phone, address, gst string) error {
	updated, err := NewSupplier(name, phone, address, gst)
	if err != nil {
		return err
	}
	s.Name = updated.Name
	s.Phone = updated.Phone
	s.Address = updated.Address
	s.GST = updated.GST
	return nil
}

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	FindByID(ctx context.Context, id int64) (*Supplier, error)
	FindAll(ctx context.Context) ([]Supplier, error)
	Save(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, id int64) error
}
