package adapter

import (
	"context"

	marketapp "github.com/dealsquare/marketplace/internal/market/app"
)

// RoleLookup is the slice of the auth API the resolver needs.
type RoleLookup interface {
	HasMarketRole(ctx context.Context, username string) (bool, error)
}

// RoleDirectory folds the auth role lookup and the market directory
// into the resolver's single port.
type RoleDirectory struct {
	roles   RoleLookup
	markets *marketapp.Service
}

func NewRoleDirectory(roles RoleLookup, markets *marketapp.Service) *RoleDirectory {
	return &RoleDirectory{roles: roles, markets: markets}
}

func (d *RoleDirectory) HasMarketRole(ctx context.Context, username string) (bool, error) {
	return d.roles.HasMarketRole(ctx, username)
}

func (d *RoleDirectory) MarketExistsForOwner(ctx context.Context, username string) (bool, error) {
	return d.markets.OwnerExists(ctx, username)
}
