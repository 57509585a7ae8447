package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrUnauthorized  = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden     = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
)

// Error codes for the two business failures the transaction engine can raise.
// Both are raised before any row is written.
const (
	CodeDuplicateInvoice  = "DUPLICATE_INVOICE"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
)

// NewDuplicateInvoiceError reports an invoice number collision on purchase or
// sale creation. Invoice numbers are globally unique, including soft-deleted
// documents.
func NewDuplicateInvoiceError(invoiceNumber string) *DomainError {
	return NewDomainError(CodeDuplicateInvoice,
		fmt.Sprintf("Invoice number %s already exists", invoiceNumber))
}

// NewInsufficientStockError reports that a requested quantity exceeds the
// derived available stock. The message carries the product name and the exact
// available quantity at check time, as the caller surfaces it verbatim.
func NewInsufficientStockError(productName string, available int64) *DomainError {
	return NewDomainError(CodeInsufficientStock,
		fmt.Sprintf("Insufficient stock for %s. Available: %d PCS", productName, available))
}
