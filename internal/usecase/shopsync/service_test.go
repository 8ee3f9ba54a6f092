package shopsync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	domproduct "example.com/dropship-manager/internal/domain/product"
	"example.com/dropship-manager/internal/infra/shopify"
)

type mockGateway struct {
	remote       []shopify.Product
	listErr      error
	createErr    error
	updateErr    error
	created      []string
	updated      []int64
	fulfillments []string
}

func (m *mockGateway) ListProducts(ctx context.Context) ([]shopify.Product, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.remote, nil
}

func (m *mockGateway) CreateProduct(ctx context.Context, p *domproduct.Product) (*shopify.Product, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, p.SKU)
	return &shopify.Product{ID: int64(len(m.created))}, nil
}

func (m *mockGateway) UpdateProduct(ctx context.Context, shopifyID int64, p *domproduct.Product) (*shopify.Product, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	m.updated = append(m.updated, shopifyID)
	return &shopify.Product{ID: shopifyID}, nil
}

func (m *mockGateway) CreateFulfillment(ctx context.Context, orderID int64, trackingNumber string) error {
	m.fulfillments = append(m.fulfillments, trackingNumber)
	return nil
}

type mockProductRepository struct {
	products []*domproduct.Product
	listErr  error
}

func (m *mockProductRepository) List(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.products, nil
}

func TestSyncProducts_CreatesUnmatchedAndUpdatesMatched(t *testing.T) {
	gateway := &mockGateway{
		remote: []shopify.Product{
			{ID: 500, Variants: []shopify.Variant{{SKU: "WID-1"}}},
		},
	}
	repo := &mockProductRepository{
		products: []*domproduct.Product{
			{ID: 1, SKU: "WID-1", Name: "Widget"},
			{ID: 2, SKU: "GAD-1", Name: "Gadget"},
		},
	}
	svc := NewService(gateway, repo)

	result, err := svc.SyncProducts(context.Background())

	require.NoError(t, err)
	require.Equal(t, 1, result.Created)
	require.Equal(t, 1, result.Updated)
	require.Empty(t, result.Errors)
	require.Equal(t, []string{"GAD-1"}, gateway.created)
	require.Equal(t, []int64{500}, gateway.updated)
}

func TestSyncProducts_PerProductFailuresAreCollected(t *testing.T) {
	gateway := &mockGateway{createErr: errors.New("rate limited")}
	repo := &mockProductRepository{
		products: []*domproduct.Product{
			{ID: 1, SKU: "WID-1", Name: "Widget"},
			{ID: 2, SKU: "GAD-1", Name: "Gadget"},
		},
	}
	svc := NewService(gateway, repo)

	result, err := svc.SyncProducts(context.Background())

	require.NoError(t, err)
	require.Equal(t, 0, result.Created)
	require.Len(t, result.Errors, 2)
	require.Contains(t, result.Errors[0], "WID-1")
}

func TestSyncProducts_ListFailureIsFatal(t *testing.T) {
	gateway := &mockGateway{listErr: errors.New("shopify down")}
	svc := NewService(gateway, &mockProductRepository{})

	_, err := svc.SyncProducts(context.Background())

	require.Error(t, err)
}

func TestSyncProducts_IgnoresRemoteProductsWithoutSKU(t *testing.T) {
	gateway := &mockGateway{
		remote: []shopify.Product{
			{ID: 500},
			{ID: 501, Variants: []shopify.Variant{{SKU: ""}}},
		},
	}
	repo := &mockProductRepository{
		products: []*domproduct.Product{
			{ID: 1, SKU: "WID-1", Name: "Widget"},
		},
	}
	svc := NewService(gateway, repo)

	result, err := svc.SyncProducts(context.Background())

	require.NoError(t, err)
	require.Equal(t, 1, result.Created)
	require.Equal(t, 0, result.Updated)
}

func TestFulfill_ForwardsToGateway(t *testing.T) {
	gateway := &mockGateway{}
	svc := NewService(gateway, &mockProductRepository{})

	err := svc.Fulfill(context.Background(), 42, "TRACK-9")

	require.NoError(t, err)
	require.Equal(t, []string{"TRACK-9"}, gateway.fulfillments)
}
