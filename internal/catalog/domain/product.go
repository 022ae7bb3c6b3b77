package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID            string
	Name          string
	Description   string
	Category      string
	Volume        string
	ImageURL      string
	Price         decimal.Decimal
	StockQuantity int
	MarketID      string
	MarketName    string
}

func (p Product) InStock() bool {
	return p.StockQuantity > 0
}

type Category struct {
	ID   string
	Name string
}

// CategoryAll matches every product when browsing.
const CategoryAll = "All"

// StepQuantity applies a signed delta to the quantity picked on the
// product detail view. The candidate is accepted only while it stays
// above zero and within the available stock; anything else returns
// current unchanged. This rejects rather than clamps, and is a stricter
// policy than the cart ledger's floor-at-1 stepper. The two stages are
// deliberately separate: the cart has no stock figure to bound against.
func StepQuantity(current, delta, stock int) int {
	candidate := current + delta
	if candidate > 0 && candidate <= stock {
		return candidate
	}
	return current
}
