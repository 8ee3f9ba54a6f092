package shopsync

import (
	"context"
	"fmt"

	domproduct "example.com/dropship-manager/internal/domain/product"
	"example.com/dropship-manager/internal/infra/shopify"
)

// Gateway is the slice of the Shopify client the sync needs.
type Gateway interface {
	ListProducts(ctx context.Context) ([]shopify.Product, error)
	CreateProduct(ctx context.Context, p *domproduct.Product) (*shopify.Product, error)
	UpdateProduct(ctx context.Context, shopifyID int64, p *domproduct.Product) (*shopify.Product, error)
	CreateFulfillment(ctx context.Context, orderID int64, trackingNumber string) error
}

type ProductRepository interface {
	List(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error)
}

type Service struct {
	gateway     Gateway
	productRepo ProductRepository
}

func NewService(gateway Gateway, productRepo ProductRepository) *Service {
	return &Service{gateway: gateway, productRepo: productRepo}
}

type SyncResult struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Errors  []string `json:"errors,omitempty"`
}

// SyncProducts pushes the internal catalog to Shopify, matching existing
// listings by variant SKU: unmatched products are created, matched ones
// updated. Per-product failures are collected, not fatal.
func (s *Service) SyncProducts(ctx context.Context) (*SyncResult, error) {
	remote, err := s.gateway.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shopify products: %w", err)
	}

	bySKU := make(map[string]shopify.Product, len(remote))
	for _, rp := range remote {
		if len(rp.Variants) > 0 && rp.Variants[0].SKU != "" {
			bySKU[rp.Variants[0].SKU] = rp
		}
	}

	local, err := s.productRepo.List(ctx, domproduct.ListFilter{})
	if err != nil {
		return nil, err
	}

	result := &SyncResult{}
	for _, p := range local {
		if existing, ok := bySKU[p.SKU]; ok {
			if _, err := s.gateway.UpdateProduct(ctx, existing.ID, p); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("update %s: %v", p.SKU, err))
				continue
			}
			result.Updated++
		} else {
			if _, err := s.gateway.CreateProduct(ctx, p); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("create %s: %v", p.SKU, err))
				continue
			}
			result.Created++
		}
	}
	return result, nil
}

// Fulfill forwards a fulfillment with tracking to Shopify for an order that
// originated there.
func (s *Service) Fulfill(ctx context.Context, shopifyOrderID int64, trackingNumber string) error {
	return s.gateway.CreateFulfillment(ctx, shopifyOrderID, trackingNumber)
}
