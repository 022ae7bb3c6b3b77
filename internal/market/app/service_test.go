package app

import (
	"context"
	"testing"

	"github.com/dealsquare/marketplace/internal/market/domain"
)

type fakeDirectory struct {
	markets []domain.Market
}

func (f fakeDirectory) List(ctx context.Context) ([]domain.Market, error) {
	return f.markets, nil
}

func (f fakeDirectory) OwnerMarketID(ctx context.Context, owner string) (string, error) {
	return "m1", nil
}

func (f fakeDirectory) OwnerExists(ctx context.Context, owner string) (bool, error) {
	return true, nil
}

func TestOwnerValidation(t *testing.T) {
	svc := NewService(fakeDirectory{})

	t.Run("blank owner -> invalid", func(t *testing.T) {
		if _, err := svc.OwnerMarketID(context.Background(), "   "); err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
		if _, err := svc.OwnerExists(context.Background(), ""); err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("known owner resolves", func(t *testing.T) {
		id, err := svc.OwnerMarketID(context.Background(), "bob")
		if err != nil || id != "m1" {
			t.Fatalf("got %q, %v", id, err)
		}
	})
}
