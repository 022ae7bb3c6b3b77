package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dealsquare/marketplace/internal/market/domain"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	dir Directory
}

func NewService(dir Directory) *Service {
	return &Service{dir: dir}
}

// List returns every market, used to place markers on the map view.
func (s *Service) List(ctx context.Context) ([]domain.Market, error) {
	return s.dir.List(ctx)
}

func (s *Service) OwnerMarketID(ctx context.Context, owner string) (string, error) {
	if strings.TrimSpace(owner) == "" {
		return "", ErrInvalidInput
	}
	return s.dir.OwnerMarketID(ctx, owner)
}

func (s *Service) OwnerExists(ctx context.Context, owner string) (bool, error) {
	if strings.TrimSpace(owner) == "" {
		return false, ErrInvalidInput
	}
	return s.dir.OwnerExists(ctx, owner)
}
