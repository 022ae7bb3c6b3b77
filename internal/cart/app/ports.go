package app

import (
	"context"

	"github.com/shopspring/decimal"
)

// CatalogReader prices products added to a cart. Implemented by the
// catalog service through an adapter.
type CatalogReader interface {
	Product(ctx context.Context, productID string) (Product, error)
}

type Product struct {
	ID            string
	Name          string
	Volume        string
	ImageURL      string
	Price         decimal.Decimal
	StockQuantity int
}
