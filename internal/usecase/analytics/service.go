package analytics

import (
	"context"

	domorder "example.com/dropship-manager/internal/domain/order"
)

type OrderRepository interface {
	Overview(ctx context.Context) (*domorder.Overview, error)
}

type ProductRepository interface {
	Count(ctx context.Context) (int64, error)
}

type Service struct {
	orderRepo   OrderRepository
	productRepo ProductRepository
}

func NewService(orderRepo OrderRepository, productRepo ProductRepository) *Service {
	return &Service{orderRepo: orderRepo, productRepo: productRepo}
}

// Overview is the admin dashboard headline block.
type Overview struct {
	TotalProducts    int64   `json:"total_products"`
	TotalOrders      int64   `json:"total_orders"`
	PendingOrders    int64   `json:"pending_orders"`
	ProcessingOrders int64   `json:"processing_orders"`
	TotalRevenue     float64 `json:"total_revenue"`
}

func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	products, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.Overview(ctx)
	if err != nil {
		return nil, err
	}
	return &Overview{
		TotalProducts:    products,
		TotalOrders:      orders.TotalOrders,
		PendingOrders:    orders.PendingOrders,
		ProcessingOrders: orders.ProcessingOrders,
		TotalRevenue:     orders.TotalRevenue,
	}, nil
}
