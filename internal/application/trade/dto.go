package trade

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/plastpack/erp/internal/domain/shared"
	"github.com/plastpack/erp/internal/domain/trade"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_DATE", "Date must be in YYYY-MM-DD format")
	}
	return d, nil
}

// LineRequest is one item position on a recording request
type LineRequest struct {
	ProductID int64           `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	Rate      decimal.Decimal `json:"rate"`
}

func toLines(items []LineRequest) []trade.Line {
	lines := make([]trade.Line, len(items))
	for i, it := range items {
		lines[i] = trade.Line{ProductID: it.ProductID, Quantity: it.Quantity, Rate: it.Rate}
	}
	return lines
}

// RecordPurchaseRequest is the input for recording a purchase
type RecordPurchaseRequest struct {
	InvoiceNumber string          `json:"invoice_number" binding:"required"`
	Date          string          `json:"date" binding:"required"`
	SupplierID    int64           `json:"supplier_id" binding:"required"`
	TransportCost decimal.Decimal `json:"transport_cost"`
	Items         []LineRequest   `json:"items" binding:"required,min=1,dive"`
}

// RecordSaleRequest is the input for recording a sale
type RecordSaleRequest struct {
	InvoiceNumber string          `json:"invoice_number" binding:"required"`
	Date          string          `json:"date" binding:"required"`
	CustomerID    int64           `json:"customer_id" binding:"required"`
	TransportCost decimal.Decimal `json:"transport_cost"`
	Items         []LineRequest   `json:"items" binding:"required,min=1,dive"`
}

// RecordProductionRequest is the input for recording a production run
type RecordProductionRequest struct {
	Date             string          `json:"date" binding:"required"`
	PreformProductID int64           `json:"preform_product_id" binding:"required"`
	BottleProductID  int64           `json:"bottle_product_id" binding:"required"`
	Quantity         decimal.Decimal `json:"quantity" binding:"required"`
}

// ItemResponse is one invoice item with its product name resolved
type ItemResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Total       decimal.Decimal `json:"total"`
}

// PurchaseResponse is a purchase with supplier name and items
type PurchaseResponse struct {
	ID            int64           `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	Date          string          `json:"date"`
	SupplierID    int64           `json:"supplier_id"`
	SupplierName  string          `json:"supplier_name,omitempty"`
	TransportCost decimal.Decimal `json:"transport_cost"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Items         []ItemResponse  `json:"items,omitempty"`
}

// SaleResponse is a sale with customer name and items
type SaleResponse struct {
	ID            int64           `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	Date          string          `json:"date"`
	CustomerID    int64           `json:"customer_id"`
	CustomerName  string          `json:"customer_name,omitempty"`
	TransportCost decimal.Decimal `json:"transport_cost"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Items         []ItemResponse  `json:"items,omitempty"`
}

// ProductionResponse is a production entry with product names
type ProductionResponse struct {
	ID               int64           `json:"id"`
	Date             string          `json:"date"`
	PreformProductID int64           `json:"preform_product_id"`
	PreformName      string          `json:"preform_name,omitempty"`
	BottleProductID  int64           `json:"bottle_product_id"`
	BottleName       string          `json:"bottle_name,omitempty"`
	Quantity         decimal.Decimal `json:"quantity"`
}

func purchaseItemResponses(items []trade.PurchaseItem, names map[int64]string) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = ItemResponse{
			ProductID:   it.ProductID,
			ProductName: names[it.ProductID],
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Total:       it.Total,
		}
	}
	return out
}

func saleItemResponses(items []trade.SaleItem, names map[int64]string) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = ItemResponse{
			ProductID:   it.ProductID,
			ProductName: names[it.ProductID],
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Total:       it.Total,
		}
	}
	return out
}
