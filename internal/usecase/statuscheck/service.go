package statuscheck

import (
	"context"
	"time"

	dom "example.com/dropship-manager/internal/domain/statuscheck"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Record(ctx context.Context, clientName string) (*dom.StatusCheck, error) {
	sc := &dom.StatusCheck{
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func (s *Service) List(ctx context.Context) ([]*dom.StatusCheck, error) {
	return s.repo.List(ctx, 100)
}
