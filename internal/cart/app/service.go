package app

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dealsquare/marketplace/internal/cart/domain"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	catalog CatalogReader
	fee     decimal.Decimal
}

func NewService(catalog CatalogReader, deliveryFee decimal.Decimal) *Service {
	return &Service{
		catalog: catalog,
		fee:     deliveryFee,
	}
}

// NewSession creates the ledger backing one cart screen. The ledger is
// discarded when the screen is torn down.
func (s *Service) NewSession(seed ...domain.LineItem) *domain.Ledger {
	return domain.NewLedger(s.fee, seed...)
}

// AddProduct looks the product up in the catalog and adds it to the
// ledger with the chosen quantity.
func (s *Service) AddProduct(ctx context.Context, ledger *domain.Ledger, productID string, quantity int) error {
	if strings.TrimSpace(productID) == "" || quantity < 1 {
		return ErrInvalidInput
	}

	p, err := s.catalog.Product(ctx, productID)
	if err != nil {
		return err
	}

	ledger.AddItem(domain.LineItem{
		ID:        p.ID,
		Name:      p.Name,
		Volume:    p.Volume,
		ImageURL:  p.ImageURL,
		UnitPrice: p.Price,
		Quantity:  quantity,
	})
	return nil
}
