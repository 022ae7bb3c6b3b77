package app

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

type fakeCatalog struct {
	products map[string]Product
}

func (f fakeCatalog) Product(_ context.Context, id string) (Product, error) {
	p, ok := f.products[id]
	if !ok {
		return Product{}, errors.New("not found")
	}
	return p, nil
}

func TestAddProduct(t *testing.T) {
	fee := decimal.RequireFromString("5.50")
	catalog := fakeCatalog{products: map[string]Product{
		"p1": {ID: "p1", Name: "Hydrating Mask", Price: decimal.RequireFromString("28")},
	}}
	svc := NewService(catalog, fee)

	t.Run("prices the line from the catalog", func(t *testing.T) {
		ledger := svc.NewSession()
		if err := svc.AddProduct(context.Background(), ledger, "p1", 2); err != nil {
			t.Fatalf("AddProduct: %v", err)
		}

		if got := ledger.Subtotal(); !got.Equal(decimal.RequireFromString("56")) {
			t.Fatalf("subtotal = %s, want 56", got)
		}
	})

	t.Run("empty id -> invalid", func(t *testing.T) {
		ledger := svc.NewSession()
		if err := svc.AddProduct(context.Background(), ledger, "  ", 1); err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("zero quantity -> invalid", func(t *testing.T) {
		ledger := svc.NewSession()
		if err := svc.AddProduct(context.Background(), ledger, "p1", 0); err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("catalog failure propagates and leaves the ledger alone", func(t *testing.T) {
		ledger := svc.NewSession()
		if err := svc.AddProduct(context.Background(), ledger, "missing", 1); err == nil {
			t.Fatal("expected an error")
		}
		if ledger.Len() != 0 {
			t.Fatalf("len = %d, want 0", ledger.Len())
		}
	})
}
