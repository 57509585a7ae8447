package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestGrossProfit(t *testing.T) {
	t.Run("rate spread times quantity", func(t *testing.T) {
		// Sold 2000 pcs at 15 against a cost basis of 10
		got := GrossProfit(d("15"), d("10"), d("2000"))
		assert.True(t, d("10000").Equal(got), "got %s", got)
	})

	t.Run("zero cost basis means full rate is profit", func(t *testing.T) {
		got := GrossProfit(d("15"), decimal.Zero, d("100"))
		assert.True(t, d("1500").Equal(got))
	})

	t.Run("selling below cost yields negative profit", func(t *testing.T) {
		got := GrossProfit(d("8"), d("10"), d("50"))
		assert.True(t, d("-100").Equal(got))
	})
}

func TestProratedTransport(t *testing.T) {
	t.Run("distributes by item share of invoice total", func(t *testing.T) {
		// Item is 300 of a 1200 invoice, transport 100 → 25
		got := ProratedTransport(d("300"), d("1200"), d("100"))
		assert.True(t, d("25").Equal(got), "got %s", got)
	})

	t.Run("zero invoice total yields zero instead of dividing", func(t *testing.T) {
		got := ProratedTransport(d("300"), decimal.Zero, d("100"))
		assert.True(t, got.IsZero())
	})

	t.Run("zero transport yields zero", func(t *testing.T) {
		got := ProratedTransport(d("300"), d("1200"), decimal.Zero)
		assert.True(t, got.IsZero())
	})
}

func TestStockValue(t *testing.T) {
	assert.True(t, d("25000").Equal(StockValue(2500, d("10"))))
	assert.True(t, StockValue(0, d("10")).IsZero())
	// Negative stock values negatively, surfacing the over-commitment
	assert.True(t, d("-500").Equal(StockValue(-50, d("10"))))
}
