package trade

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/plastpack/erp/internal/domain/shared"
)

// Production records the transformation of preform stock into bottle stock.
// Quantity is PCS of bottles produced; the same PCS count of preform is
// consumed (1:1 by count). Production entries are never deleted.
type Production struct {
	shared.BaseEntity
	Date             time.Time       `gorm:"type:date;not null;index" json:"date"`
	PreformProductID int64           `gorm:"not null;index" json:"preform_product_id"`
	BottleProductID  int64           `gorm:"not null;index" json:"bottle_product_id"`
	Quantity         decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
}

// TableName returns the table name for GORM
func (Production) TableName() string {
	return "production"
}

// NewProduction creates a production entry
func NewProduction(date time.Time, preformProductID, bottleProductID int64, quantity decimal.Decimal) (*Production, error) {
	if preformProductID <= 0 {
		return nil, shared.NewDomainError("INVALID_PREFORM", "Preform product is required")
	}
	if bottleProductID <= 0 {
		return nil, shared.NewDomainError("INVALID_BOTTLE", "Bottle product is required")
	}
	if preformProductID == bottleProductID {
		return nil, shared.NewDomainError("INVALID_PRODUCTION", "Preform and bottle must be different products")
	}
	if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Production quantity must be positive")
	}

	return &Production{
		Date:             date,
		PreformProductID: preformProductID,
		BottleProductID:  bottleProductID,
		Quantity:         quantity,
	}, nil
}
