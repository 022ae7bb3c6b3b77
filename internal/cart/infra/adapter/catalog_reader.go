package adapter

import (
	"context"

	cartapp "github.com/dealsquare/marketplace/internal/cart/app"
	catalogapp "github.com/dealsquare/marketplace/internal/catalog/app"
)

// CatalogServiceReader lets the cart price its lines through the
// catalog service without depending on its domain types.
type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) Product(ctx context.Context, productID string) (cartapp.Product, error) {
	p, err := r.svc.GetProduct(ctx, productID)
	if err != nil {
		return cartapp.Product{}, err
	}

	return cartapp.Product{
		ID:            p.ID,
		Name:          p.Name,
		Volume:        p.Volume,
		ImageURL:      p.ImageURL,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
	}, nil
}
