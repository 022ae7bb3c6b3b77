// Package marketplace assembles the client-side services of the
// dealsquare marketplace app: account and catalog access, the cart
// ledger and the navigation role resolver, all talking to the remote
// REST API.
package marketplace

import (
	"log/slog"

	accountapp "github.com/dealsquare/marketplace/internal/account/app"
	accountrest "github.com/dealsquare/marketplace/internal/account/infra/rest"
	cartapp "github.com/dealsquare/marketplace/internal/cart/app"
	cartadapter "github.com/dealsquare/marketplace/internal/cart/infra/adapter"
	catalogapp "github.com/dealsquare/marketplace/internal/catalog/app"
	catalogrest "github.com/dealsquare/marketplace/internal/catalog/infra/rest"
	marketapp "github.com/dealsquare/marketplace/internal/market/app"
	marketrest "github.com/dealsquare/marketplace/internal/market/infra/rest"
	navapp "github.com/dealsquare/marketplace/internal/nav/app"
	navadapter "github.com/dealsquare/marketplace/internal/nav/infra/adapter"
	sessionfile "github.com/dealsquare/marketplace/internal/session/file"
	"github.com/dealsquare/marketplace/pkg/config"
	"github.com/dealsquare/marketplace/pkg/httpx"
)

// Client bundles one wired instance of every app service.
type Client struct {
	Account  *accountapp.Service
	Catalog  *catalogapp.Service
	Cart     *cartapp.Service
	Markets  *marketapp.Service
	Resolver *navapp.Resolver
}

func New(cfg config.Config, log *slog.Logger) *Client {
	api := httpx.New(cfg.APIBaseURL, cfg.HTTPTimeout)
	store := sessionfile.New(cfg.SessionPath)

	auth := accountrest.NewAuthAPI(api)
	markets := marketapp.NewService(marketrest.NewDirectory(api))
	catalog := catalogapp.NewService(catalogrest.NewCatalogAPI(api), markets)

	return &Client{
		Account:  accountapp.NewService(auth, store),
		Catalog:  catalog,
		Cart:     cartapp.NewService(cartadapter.NewCatalogServiceReader(catalog), cfg.DeliveryFee),
		Markets:  markets,
		Resolver: navapp.NewResolver(navadapter.NewRoleDirectory(auth, markets), log),
	}
}
