package catalog

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/plastpack/erp/internal/domain/shared"
)

// Category classifies a product for unit handling. The set is closed:
// anything that is not a preform or a bottle takes the plain PCS rules.
type Category string

const (
	// CategoryPreform is a PET blank purchased by weight (KG) and consumed
	// by production to make bottles.
	CategoryPreform Category = "Preform"
	// CategoryBottle is a finished bottle, purchased and produced in PCS.
	CategoryBottle Category = "Bottle"
	// CategoryOther covers caps, labels and similar PCS-only goods.
	CategoryOther Category = "Other"
)

// ParseCategory validates a raw category string. Matching is exact: a
// mistyped category must fail loudly instead of silently degrading to the
// Other rules.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.TrimSpace(s)) {
	case CategoryPreform:
		return CategoryPreform, nil
	case CategoryBottle:
		return CategoryBottle, nil
	case CategoryOther:
		return CategoryOther, nil
	default:
		return "", shared.NewDomainError("INVALID_CATEGORY",
			"Category must be one of Preform, Bottle, Other")
	}
}

// Product is the aggregate root for catalog items. Stock is never stored on
// the product; it is derived from the trade ledger on every read.
type Product struct {
	shared.BaseEntity
	Name     string   `gorm:"type:varchar(200);not null" json:"name"`
	Category Category `gorm:"type:varchar(20);not null;index" json:"category"`
	// GramWeight is grams per piece. Meaningful only for Preform, where it
	// converts purchased KG into PCS.
	GramWeight    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"gram_weight"`
	MinStockLevel decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"min_stock_level"`
	IsDeleted     bool            `gorm:"not null;default:false;index" json:"is_deleted"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name string, category Category, gramWeight, minStockLevel decimal.Decimal) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	if _, err := ParseCategory(string(category)); err != nil {
		return nil, err
	}
	if gramWeight.IsNegative() {
		return nil, shared.NewDomainError("INVALID_GRAM_WEIGHT", "Gram weight cannot be negative")
	}
	if minStockLevel.IsNegative() {
		return nil, shared.NewDomainError("INVALID_MIN_STOCK", "Minimum stock level cannot be negative")
	}

	return &Product{
		Name:          name,
		Category:      category,
		GramWeight:    gramWeight,
		MinStockLevel: minStockLevel,
	}, nil
}

// Update updates the product's attributes
func (p *Product) Update(name string, category Category, gramWeight, minStockLevel decimal.Decimal) error {
	updated, err := NewProduct(name, category, gramWeight, minStockLevel)
	if err != nil {
		return err
	}

	p.Name = updated.Name
	p.Category = updated.Category
	p.GramWeight = updated.GramWeight
	p.MinStockLevel = updated.MinStockLevel
	return nil
}

// SoftDelete flags the product as deleted. The row stays behind so purchase,
// sale and production history keeps resolving.
func (p *Product) SoftDelete() {
	p.IsDeleted = true
}

// ProductFilter narrows product listings
type ProductFilter struct {
	Category Category
	Search   string
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a non-deleted product by id. History rows referencing
	// soft-deleted products resolve their names through NamesByID instead.
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindActive finds all non-deleted products matching the filter,
	// newest first
	FindActive(ctx context.Context, filter ProductFilter) ([]Product, error)

	// NamesByID resolves product names for a set of ids
	NamesByID(ctx context.Context, ids []int64) (map[int64]string, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// CountActive counts non-deleted products
	CountActive(ctx context.Context) (int64, error)
}
