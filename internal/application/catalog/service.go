package catalog

import (
	"context"

	"github.com/farmchain/marketplace/internal/domain/catalog"
)

// Service exposes the read side of the catalog.
type Service struct {
	repo catalog.Repository
}

func NewService(repo catalog.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListProducts(ctx context.Context, filter catalog.ProductFilter) ([]catalog.Product, error) {
	return s.repo.ListProducts(ctx, filter)
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*catalog.Product, error) {
	return s.repo.Product(ctx, id)
}

func (s *Service) ListFarmers(ctx context.Context, filter catalog.FarmerFilter) ([]catalog.Farmer, error) {
	return s.repo.ListFarmers(ctx, filter)
}

func (s *Service) GetFarmer(ctx context.Context, id int64) (*catalog.Farmer, error) {
	return s.repo.Farmer(ctx, id)
}
