package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dealsquare/marketplace/internal/market/domain"
	"github.com/dealsquare/marketplace/pkg/httpx"
)

// Directory talks to the Markets endpoints of the marketplace API.
type Directory struct {
	c *httpx.Client
}

func NewDirectory(c *httpx.Client) *Directory {
	return &Directory{c: c}
}

type marketDTO struct {
	ID          httpx.ID `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	PhoneNumber string   `json:"phoneNumber"`
	Owner       string   `json:"owner"`
}

func (d *Directory) List(ctx context.Context) ([]domain.Market, error) {
	var dtos []marketDTO
	if err := d.c.GetJSON(ctx, "/api/Markets", &dtos); err != nil {
		return nil, fmt.Errorf("list markets: %w", err)
	}

	markets := make([]domain.Market, 0, len(dtos))
	for _, m := range dtos {
		markets = append(markets, domain.Market{
			ID:          m.ID.String(),
			Name:        m.Name,
			Description: m.Description,
			Owner:       m.Owner,
			Phone:       m.PhoneNumber,
			ImageURL:    m.Image,
			Latitude:    m.Latitude,
			Longitude:   m.Longitude,
		})
	}
	return markets, nil
}

func (d *Directory) OwnerMarketID(ctx context.Context, owner string) (string, error) {
	var body struct {
		MarketID int64 `json:"marketId"`
	}
	path := "/api/Markets/Owner/" + url.PathEscape(owner)
	if err := d.c.GetJSON(ctx, path, &body); err != nil {
		return "", fmt.Errorf("owner market id: %w", err)
	}
	return strconv.FormatInt(body.MarketID, 10), nil
}

// OwnerExists hits the owner-exists endpoint, whose body is a bare
// JSON boolean.
func (d *Directory) OwnerExists(ctx context.Context, owner string) (bool, error) {
	var exists bool
	path := "/api/Markets/owner-exists/" + url.PathEscape(owner)
	if err := d.c.GetJSON(ctx, path, &exists); err != nil {
		return false, fmt.Errorf("owner exists: %w", err)
	}
	return exists, nil
}
