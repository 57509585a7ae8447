package catalog

import "github.com/shopspring/decimal"

var gramsPerKG = decimal.NewFromInt(1000)

// LedgerTotals aggregates the full non-deleted trade history of one product.
// All values are sums in the unit they were recorded in: purchases of a
// Preform are KG, everything else is PCS.
type LedgerTotals struct {
	// PurchasedQty is the sum of purchase item quantities
	PurchasedQty decimal.Decimal
	// SoldQty is the sum of sales item quantities
	SoldQty decimal.Decimal
	// ProducedQty is the sum of production output where this product is the
	// bottle
	ProducedQty decimal.Decimal
	// ConsumedQty is the sum of production input where this product is the
	// preform
	ConsumedQty decimal.Decimal
}

// PurchasedPieces converts the purchased quantity into pieces. For a Preform
// the purchase unit is KG: pieces = KG * 1000 / gram_weight. A zero or unset
// gram weight means the conversion is undefined, which yields zero pieces
// rather than an error.
func (p *Product) PurchasedPieces(purchasedQty decimal.Decimal) decimal.Decimal {
	if p.Category != CategoryPreform {
		return purchasedQty
	}
	if !p.GramWeight.IsPositive() {
		return decimal.Zero
	}
	return purchasedQty.Mul(gramsPerKG).Div(p.GramWeight)
}

// RawStock derives the exact on-hand stock in PCS from the ledger totals,
// dispatched on category:
//
//	Preform: purchased (KG→PCS) − sold − consumed in production
//	Bottle:  purchased + produced − sold
//	Other:   purchased − sold
func (p *Product) RawStock(t LedgerTotals) decimal.Decimal {
	switch p.Category {
	case CategoryPreform:
		return p.PurchasedPieces(t.PurchasedQty).Sub(t.SoldQty).Sub(t.ConsumedQty)
	case CategoryBottle:
		return t.PurchasedQty.Add(t.ProducedQty).Sub(t.SoldQty)
	default:
		return t.PurchasedQty.Sub(t.SoldQty)
	}
}

// CurrentStock is the floored whole-piece stock used for display, low-stock
// comparison and sale validation. Fractional stock from KG→PCS conversion is
// never rounded up, so low-stock alerts fire early rather than late. Negative
// stock is reported as-is; clamping it would hide overselling.
func (p *Product) CurrentStock(t LedgerTotals) int64 {
	return p.RawStock(t).Floor().IntPart()
}

// IsLowStock reports whether the given stock is below the product's minimum
// stock level.
func (p *Product) IsLowStock(currentStock int64) bool {
	return decimal.NewFromInt(currentStock).LessThan(p.MinStockLevel)
}
