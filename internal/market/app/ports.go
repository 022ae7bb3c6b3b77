package app

import (
	"context"

	"github.com/dealsquare/marketplace/internal/market/domain"
)

type Directory interface {
	List(ctx context.Context) ([]domain.Market, error)
	OwnerMarketID(ctx context.Context, owner string) (string, error)
	OwnerExists(ctx context.Context, owner string) (bool, error)
}
