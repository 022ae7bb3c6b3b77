package app

import (
	"context"

	"github.com/dealsquare/marketplace/internal/catalog/domain"
)

type ProductCatalog interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

// MarketOwnership resolves the market a product is listed under.
type MarketOwnership interface {
	OwnerMarketID(ctx context.Context, owner string) (string, error)
}
