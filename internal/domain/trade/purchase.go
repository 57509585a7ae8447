package trade

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/plastpack/erp/internal/domain/shared"
)

// Line is one product position on an incoming purchase or sale request
type Line struct {
	ProductID int64
	Quantity  decimal.Decimal
	Rate      decimal.Decimal
}

func validateLines(lines []Line) error {
	if len(lines) == 0 {
		return shared.NewDomainError("EMPTY_ITEMS", "At least one item is required")
	}
	for _, l := range lines {
		if l.ProductID <= 0 {
			return shared.NewDomainError("INVALID_ITEM", "Item product id is required")
		}
		if !l.Quantity.IsPositive() {
			return shared.NewDomainError("INVALID_ITEM", "Item quantity must be positive")
		}
		if l.Rate.IsNegative() {
			return shared.NewDomainError("INVALID_ITEM", "Item rate cannot be negative")
		}
	}
	return nil
}

func validateInvoiceNumber(invoiceNumber string) (string, error) {
	invoiceNumber = strings.TrimSpace(invoiceNumber)
	if invoiceNumber == "" {
		return "", shared.NewDomainError("INVALID_INVOICE", "Invoice number cannot be empty")
	}
	if len(invoiceNumber) > 50 {
		return "", shared.NewDomainError("INVALID_INVOICE", "Invoice number cannot exceed 50 characters")
	}
	return invoiceNumber, nil
}

// Purchase is the header of a purchase invoice. TotalAmount is computed once
// at construction and persisted; it is never recalculated from items
// afterwards.
type Purchase struct {
	shared.BaseEntity
	InvoiceNumber string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"invoice_number"`
	Date          time.Time       `gorm:"type:date;not null;index" json:"date"`
	SupplierID    int64           `gorm:"not null;index" json:"supplier_id"`
	TransportCost decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"transport_cost"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"total_amount"`
	IsDeleted     bool            `gorm:"not null;default:false;index" json:"is_deleted"`
	Items         []PurchaseItem  `gorm:"foreignKey:PurchaseID" json:"items"`
}

// TableName returns the table name for GORM
func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseItem is one product position on a purchase. Quantity is KG for
// Preform products and PCS otherwise. Total is fixed at quantity × rate at
// write time.
type PurchaseItem struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	PurchaseID int64           `gorm:"not null;index" json:"purchase_id"`
	ProductID  int64           `gorm:"not null;index" json:"product_id"`
	Quantity   decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	Rate       decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"rate"`
	Total      decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"total"`
}

// TableName returns the table name for GORM
func (PurchaseItem) TableName() string {
	return "purchase_items"
}

// NewPurchase builds a purchase with its items and the derived total:
// Σ(quantity × rate) + transport cost.
func NewPurchase(invoiceNumber string, date time.Time, supplierID int64, transportCost decimal.Decimal, lines []Line) (*Purchase, error) {
	invoiceNumber, err := validateInvoiceNumber(invoiceNumber)
	if err != nil {
		return nil, err
	}
	if supplierID <= 0 {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier is required")
	}
	if transportCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TRANSPORT", "Transport cost cannot be negative")
	}
	if err := validateLines(lines); err != nil {
		return nil, err
	}

	p := &Purchase{
		InvoiceNumber: invoiceNumber,
		Date:          date,
		SupplierID:    supplierID,
		TransportCost: transportCost,
	}

	total := transportCost
	for _, l := range lines {
		lineTotal := l.Quantity.Mul(l.Rate)
		p.Items = append(p.Items, PurchaseItem{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Rate:      l.Rate,
			Total:     lineTotal,
		})
		total = total.Add(lineTotal)
	}
	p.TotalAmount = total

	return p, nil
}

// SoftDelete flags the purchase as deleted. Items stay untouched; every
// downstream computation filters on the header flag.
func (p *Purchase) SoftDelete() {
	p.IsDeleted = true
}
