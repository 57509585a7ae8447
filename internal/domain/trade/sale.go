package trade

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/plastpack/erp/internal/domain/shared"
)

// Sale is the header of a sales invoice. It mirrors Purchase: TotalAmount is
// derived once at construction.
type Sale struct {
	shared.BaseEntity
	InvoiceNumber string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"invoice_number"`
	Date          time.Time       `gorm:"type:date;not null;index" json:"date"`
	CustomerID    int64           `gorm:"not null;index" json:"customer_id"`
	TransportCost decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"transport_cost"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"total_amount"`
	IsDeleted     bool            `gorm:"not null;default:false;index" json:"is_deleted"`
	Items         []SaleItem      `gorm:"foreignKey:SaleID" json:"items"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is one product position on a sale. Quantity is always PCS.
type SaleItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	SaleID    int64           `gorm:"not null;index" json:"sale_id"`
	ProductID int64           `gorm:"not null;index" json:"product_id"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	Rate      decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"rate"`
	Total     decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"total"`
}

// TableName returns the table name for GORM
func (SaleItem) TableName() string {
	return "sales_items"
}

// NewSale builds a sale with its items and the derived total. Stock
// availability is a transaction-engine concern, not validated here.
func NewSale(invoiceNumber string, date time.Time, customerID int64, transportCost decimal.Decimal, lines []Line) (*Sale, error) {
	invoiceNumber, err := validateInvoiceNumber(invoiceNumber)
	if err != nil {
		return nil, err
	}
	if customerID <= 0 {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer is required")
	}
	if transportCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TRANSPORT", "Transport cost cannot be negative")
	}
	if err := validateLines(lines); err != nil {
		return nil, err
	}

	s := &Sale{
		InvoiceNumber: invoiceNumber,
		Date:          date,
		CustomerID:    customerID,
		TransportCost: transportCost,
	}

	total := transportCost
	for _, l := range lines {
		lineTotal := l.Quantity.Mul(l.Rate)
		s.Items = append(s.Items, SaleItem{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Rate:      l.Rate,
			Total:     lineTotal,
		})
		total = total.Add(lineTotal)
	}
	s.TotalAmount = total

	return s, nil
}

// SoftDelete flags the sale as deleted
func (s *Sale) SoftDelete() {
	s.IsDeleted = true
}
