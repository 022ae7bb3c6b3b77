package app

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/dealsquare/marketplace/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	catalog ProductCatalog
	markets MarketOwnership
}

func NewService(catalog ProductCatalog, markets MarketOwnership) *Service {
	return &Service{
		catalog: catalog,
		markets: markets,
	}
}

// Storefront is everything the home view needs in one round trip.
type Storefront struct {
	Products   []domain.Product
	Categories []domain.Category
}

// Browse fetches products and categories concurrently and filters
// products by category. CategoryAll (or empty) passes everything.
func (s *Service) Browse(ctx context.Context, category string) (Storefront, error) {
	var (
		products   []domain.Product
		categories []domain.Category
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.catalog.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.catalog.Categories(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Storefront{}, err
	}

	if category != "" && category != domain.CategoryAll {
		filtered := products[:0:0]
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	return Storefront{Products: products, Categories: categories}, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.catalog.Get(ctx, id)
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.catalog.Categories(ctx)
}

// ProductDraft is the form a market owner submits for a new listing.
type ProductDraft struct {
	Name          string
	Description   string
	Category      string
	Volume        string
	ImageURL      string
	Price         decimal.Decimal
	StockQuantity int
}

// AddProduct resolves the owner's market and creates the listing under
// it, mirroring the two-step flow of the add-product form.
func (s *Service) AddProduct(ctx context.Context, owner string, draft ProductDraft) (domain.Product, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Category = strings.TrimSpace(draft.Category)
	owner = strings.TrimSpace(owner)

	if owner == "" || draft.Name == "" || draft.Category == "" {
		return domain.Product{}, ErrInvalidInput
	}
	if draft.Price.IsNegative() || draft.Price.IsZero() || draft.StockQuantity < 0 {
		return domain.Product{}, ErrInvalidInput
	}

	marketID, err := s.markets.OwnerMarketID(ctx, owner)
	if err != nil {
		return domain.Product{}, err
	}

	return s.catalog.Create(ctx, domain.Product{
		Name:          draft.Name,
		Description:   draft.Description,
		Category:      draft.Category,
		Volume:        draft.Volume,
		ImageURL:      draft.ImageURL,
		Price:         draft.Price,
		StockQuantity: draft.StockQuantity,
		MarketID:      marketID,
	})
}
