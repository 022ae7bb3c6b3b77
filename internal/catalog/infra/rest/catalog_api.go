package rest

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/dealsquare/marketplace/internal/catalog/domain"
	"github.com/dealsquare/marketplace/pkg/httpx"
)

// CatalogAPI talks to the Products and Categories endpoints.
type CatalogAPI struct {
	c *httpx.Client
}

func NewCatalogAPI(c *httpx.Client) *CatalogAPI {
	return &CatalogAPI{c: c}
}

type productDTO struct {
	ID            httpx.ID        `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	Image         string          `json:"image"`
	CategoryID    httpx.ID        `json:"categoryId"`
	Category      string          `json:"category"`
	Volume        string          `json:"volume"`
	MarketID      httpx.ID        `json:"marketId"`
	Market        string          `json:"market"`
}

func (dto productDTO) toDomain() domain.Product {
	category := dto.Category
	if category == "" {
		category = dto.CategoryID.String()
	}

	return domain.Product{
		ID:            dto.ID.String(),
		Name:          dto.Name,
		Description:   dto.Description,
		Category:      category,
		Volume:        dto.Volume,
		ImageURL:      dto.Image,
		Price:         dto.Price,
		StockQuantity: dto.StockQuantity,
		MarketID:      dto.MarketID.String(),
		MarketName:    dto.Market,
	}
}

func (a *CatalogAPI) List(ctx context.Context) ([]domain.Product, error) {
	var dtos []productDTO
	if err := a.c.GetJSON(ctx, "/api/Products", &dtos); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	products := make([]domain.Product, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, dto.toDomain())
	}
	return products, nil
}

func (a *CatalogAPI) Get(ctx context.Context, id string) (domain.Product, error) {
	var dto productDTO
	path := "/api/Products/" + url.PathEscape(id)
	if err := a.c.GetJSON(ctx, path, &dto); err != nil {
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	return dto.toDomain(), nil
}

func (a *CatalogAPI) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	payload := struct {
		Name          string          `json:"name"`
		Description   string          `json:"description"`
		Price         decimal.Decimal `json:"price"`
		StockQuantity int             `json:"stockQuantity"`
		Image         string          `json:"image"`
		CategoryID    string          `json:"categoryId"`
		MarketID      string          `json:"marketId"`
	}{
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Image:         p.ImageURL,
		CategoryID:    p.Category,
		MarketID:      p.MarketID,
	}

	var dto productDTO
	if err := a.c.PostJSON(ctx, "/api/Products", payload, &dto); err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}
	return dto.toDomain(), nil
}

func (a *CatalogAPI) Categories(ctx context.Context) ([]domain.Category, error) {
	var dtos []struct {
		ID   httpx.ID `json:"id"`
		Name string   `json:"name"`
	}
	if err := a.c.GetJSON(ctx, "/api/Categories", &dtos); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(dtos))
	for _, dto := range dtos {
		categories = append(categories, domain.Category{ID: dto.ID.String(), Name: dto.Name})
	}
	return categories, nil
}
