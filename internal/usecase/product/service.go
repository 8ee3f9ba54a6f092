package product

import (
	"context"
	"fmt"

	dom "example.com/dropship-manager/internal/domain/product"
	"example.com/dropship-manager/internal/infra/cache"
)

// Service fronts the product repository with an optional read-through list
// cache. A nil cache disables caching entirely.
type Service struct {
	repo  dom.Repository
	cache cache.ProductListCache
}

func NewService(repo dom.Repository, listCache cache.ProductListCache) *Service {
	return &Service{repo: repo, cache: listCache}
}

func (s *Service) Create(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	if p.Status == "" {
		p.Status = dom.StatusActive
	}
	if !p.Status.IsValid() {
		return nil, dom.ErrInvalidStatus
	}
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return created, nil
}

func (s *Service) Update(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	existed, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	if p.Name != "" {
		existed.Name = p.Name
	}
	if p.Description != "" {
		existed.Description = p.Description
	}
	if p.SKU != "" {
		existed.SKU = p.SKU
	}
	if p.Price > 0 {
		existed.Price = p.Price
	}
	if p.Cost > 0 {
		existed.Cost = p.Cost
	}
	if p.SupplierID > 0 {
		existed.SupplierID = p.SupplierID
	}
	if p.SupplierProductID != "" {
		existed.SupplierProductID = p.SupplierProductID
	}
	if p.ImageURL != "" {
		existed.ImageURL = p.ImageURL
	}
	if p.Category != "" {
		existed.Category = p.Category
	}
	if p.ProductType != "" {
		existed.ProductType = p.ProductType
	}
	if p.Status != "" {
		if !p.Status.IsValid() {
			return nil, dom.ErrInvalidStatus
		}
		existed.Status = p.Status
	}
	if p.StockQuantity >= 0 {
		existed.StockQuantity = p.StockQuantity
	}

	updated, err := s.repo.Update(ctx, existed)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*dom.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter dom.ListFilter) ([]*dom.Product, error) {
	key := filterKey(filter)
	if s.cache != nil {
		if products, err := s.cache.Get(ctx, key); err == nil {
			return products, nil
		}
	}

	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		// Best effort; a failed Set only costs the next reader a DB trip.
		_ = s.cache.Set(ctx, key, products)
	}
	return products, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}

func filterKey(f dom.ListFilter) string {
	return fmt.Sprintf("status=%s;supplier=%d;q=%s", f.Status, f.SupplierID, f.Search)
}
