// Package report holds the pure valuation and profit computations composed by
// the reporting services. Nothing here touches storage or raises errors for
// missing data: an empty ledger means zero cost and zero profit.
package report

import "github.com/shopspring/decimal"

// GrossProfit is (sale rate − cost basis) × quantity. The cost basis is the
// last purchase rate at or before the sale date; zero when the product was
// never purchased.
func GrossProfit(saleRate, costBasis, quantity decimal.Decimal) decimal.Decimal {
	return saleRate.Sub(costBasis).Mul(quantity)
}

// ProratedTransport distributes an invoice's transport cost across its items
// proportionally to each item's share of the invoice total:
// itemTotal / invoiceTotal × transport. A zero invoice total yields zero
// rather than dividing; an invoice with items always has a positive total, so
// this only guards malformed data.
func ProratedTransport(itemTotal, invoiceTotal, transportCost decimal.Decimal) decimal.Decimal {
	if invoiceTotal.IsZero() {
		return decimal.Zero
	}
	return itemTotal.Div(invoiceTotal).Mul(transportCost)
}

// StockValue is the valuation of one product's on-hand stock at its latest
// known cost.
func StockValue(currentStock int64, lastRate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(currentStock).Mul(lastRate)
}
