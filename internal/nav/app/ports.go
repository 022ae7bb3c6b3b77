package app

import "context"

// RoleDirectory answers the two facts the resolver folds into a tab
// configuration. Both are remote lookups and may fail.
type RoleDirectory interface {
	HasMarketRole(ctx context.Context, username string) (bool, error)
	MarketExistsForOwner(ctx context.Context, username string) (bool, error)
}
