package supplier

import (
	"context"

	dom "example.com/dropship-manager/internal/domain/supplier"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, sup *dom.Supplier) (*dom.Supplier, error) {
	return s.repo.Create(ctx, sup)
}

func (s *Service) Update(ctx context.Context, sup *dom.Supplier) (*dom.Supplier, error) {
	existed, err := s.repo.GetByID(ctx, sup.ID)
	if err != nil {
		return nil, err
	}

	if sup.Name != "" {
		existed.Name = sup.Name
	}
	if sup.Type != "" {
		existed.Type = sup.Type
	}
	if sup.ContactEmail != "" {
		existed.ContactEmail = sup.ContactEmail
	}
	if sup.WebsiteURL != "" {
		existed.WebsiteURL = sup.WebsiteURL
	}
	existed.Active = sup.Active

	return s.repo.Update(ctx, existed)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*dom.Supplier, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*dom.Supplier, error) {
	return s.repo.List(ctx)
}
