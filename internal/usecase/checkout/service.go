package checkout

import (
	"context"

	domcart "example.com/dropship-manager/internal/domain/cart"
	domorder "example.com/dropship-manager/internal/domain/order"
)

type SessionStore interface {
	Do(sessionID string, fn func(c *domcart.Cart) error) error
	Drop(sessionID string)
}

type OrderRepository interface {
	CreateBatch(ctx context.Context, customer domorder.Customer, lines []domcart.Line) ([]*domorder.Order, error)
}

type Service struct {
	store     SessionStore
	orderRepo OrderRepository
}

func NewService(store SessionStore, orderRepo OrderRepository) *Service {
	return &Service{store: store, orderRepo: orderRepo}
}

// Result reports every order the checkout produced, one per cart line, plus
// the combined charge.
type Result struct {
	Orders      []*domorder.Order
	TotalAmount float64
}

// Checkout turns the session's cart into orders in a single batched call.
// The whole batch commits or none of it does, so a mid-cart failure can no
// longer leave earlier lines silently persisted. The session is dropped only
// after the batch succeeds.
func (s *Service) Checkout(ctx context.Context, sessionID string, customer domorder.Customer) (*Result, error) {
	var lines []domcart.Line
	if err := s.store.Do(sessionID, func(c *domcart.Cart) error {
		lines = c.Lines()
		return nil
	}); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domorder.ErrEmptyCheckout
	}

	orders, err := s.orderRepo.CreateBatch(ctx, customer, lines)
	if err != nil {
		return nil, err
	}

	s.store.Drop(sessionID)

	result := &Result{Orders: orders}
	for _, o := range orders {
		result.TotalAmount += o.TotalAmount
	}
	return result, nil
}
