package cart

import (
	"context"

	domcart "example.com/dropship-manager/internal/domain/cart"
	domproduct "example.com/dropship-manager/internal/domain/product"
)

// SessionStore serializes access to the cart of one shopping session.
type SessionStore interface {
	Do(sessionID string, fn func(c *domcart.Cart) error) error
	Drop(sessionID string)
}

type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*domproduct.Product, error)
}

type Service struct {
	store       SessionStore
	productRepo ProductRepository
}

func NewService(store SessionStore, productRepo ProductRepository) *Service {
	return &Service{store: store, productRepo: productRepo}
}

// AddItem puts quantity units of productID into the session's cart, merging
// with an existing line. The product must be active, and the resulting line
// quantity may not exceed the stock on hand; the storefront cart is the one
// caller allowed to reserve units it can actually buy.
func (s *Service) AddItem(ctx context.Context, sessionID string, productID, quantity int64) (domcart.Snapshot, error) {
	var snap domcart.Snapshot
	if quantity <= 0 {
		return snap, domcart.ErrInvalidQuantity
	}

	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return snap, err
	}
	if !p.Sellable() {
		return snap, domproduct.ErrOutOfStock
	}

	err = s.store.Do(sessionID, func(c *domcart.Cart) error {
		if c.Quantity(productID)+quantity > p.StockQuantity {
			return domproduct.ErrOutOfStock
		}
		c.AddItem(domcart.Line{
			ProductID: p.ID,
			Name:      p.Name,
			ImageURL:  p.ImageURL,
			UnitPrice: p.Price,
			Quantity:  quantity,
		})
		snap = c.Snapshot()
		return nil
	})
	return snap, err
}

func (s *Service) SetQuantity(ctx context.Context, sessionID string, productID, quantity int64) (domcart.Snapshot, error) {
	var snap domcart.Snapshot
	err := s.store.Do(sessionID, func(c *domcart.Cart) error {
		if err := c.SetQuantity(productID, quantity); err != nil {
			return err
		}
		snap = c.Snapshot()
		return nil
	})
	return snap, err
}

func (s *Service) RemoveItem(ctx context.Context, sessionID string, productID int64) (domcart.Snapshot, error) {
	var snap domcart.Snapshot
	err := s.store.Do(sessionID, func(c *domcart.Cart) error {
		c.RemoveItem(productID)
		snap = c.Snapshot()
		return nil
	})
	return snap, err
}

func (s *Service) Get(ctx context.Context, sessionID string) (domcart.Snapshot, error) {
	var snap domcart.Snapshot
	err := s.store.Do(sessionID, func(c *domcart.Cart) error {
		snap = c.Snapshot()
		return nil
	})
	return snap, err
}

func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Do(sessionID, func(c *domcart.Cart) error {
		c.Clear()
		return nil
	})
}
