package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	domcart "example.com/dropship-manager/internal/domain/cart"
	domorder "example.com/dropship-manager/internal/domain/order"
	domproduct "example.com/dropship-manager/internal/domain/product"
	"example.com/dropship-manager/internal/infra/cartstore"
	cartuc "example.com/dropship-manager/internal/usecase/cart"
	checkoutuc "example.com/dropship-manager/internal/usecase/checkout"
)

// --- Mocks for Cart and Checkout Tests ---

type mockProductRepoForCart struct {
	products map[int64]*domproduct.Product
}

func newMockProductRepoForCart() *mockProductRepoForCart {
	return &mockProductRepoForCart{
		products: map[int64]*domproduct.Product{
			1: {ID: 1, Name: "Laptop Stand", Price: 35.0, StockQuantity: 100, Status: domproduct.StatusActive},
			2: {ID: 2, Name: "Desk Mat", Price: 20.0, StockQuantity: 5, Status: domproduct.StatusActive},
			3: {ID: 3, Name: "Retired Gadget", Price: 30.0, StockQuantity: 50, Status: domproduct.StatusInactive},
		},
	}
}

func (m *mockProductRepoForCart) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	if p, ok := m.products[id]; ok {
		cloned := *p
		return &cloned, nil
	}
	return nil, domproduct.ErrProductNotFound
}

type mockOrderRepoForCheckout struct {
	createErr error
	batches   [][]domcart.Line
	nextID    int64
}

func (m *mockOrderRepoForCheckout) CreateBatch(ctx context.Context, customer domorder.Customer, lines []domcart.Line) ([]*domorder.Order, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.batches = append(m.batches, lines)

	orders := make([]*domorder.Order, 0, len(lines))
	for _, line := range lines {
		m.nextID++
		orders = append(orders, &domorder.Order{
			ID:            m.nextID,
			CustomerName:  customer.Name,
			CustomerEmail: customer.Email,
			ProductID:     line.ProductID,
			ProductName:   line.Name,
			Quantity:      line.Quantity,
			UnitPrice:     line.UnitPrice,
			TotalAmount:   line.UnitPrice * float64(line.Quantity),
			Status:        domorder.StatusPending,
		})
	}
	return orders, nil
}

// --- Helpers ---

func setupCartAPI() (*API, *mockOrderRepoForCheckout) {
	store := cartstore.NewMemoryStore(0)
	productRepo := newMockProductRepoForCart()
	orderRepo := &mockOrderRepoForCheckout{}

	api := NewAPI(Dependencies{
		CartService:     cartuc.NewService(store, productRepo),
		CheckoutService: checkoutuc.NewService(store, orderRepo),
	})
	return api, orderRepo
}

func newCartRequest(method, path, sessionID string, body any) *http.Request {
	var req *http.Request
	if body != nil {
		payload, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if sessionID != "" {
		req.Header.Set(sessionHeader, sessionID)
	}
	return req
}

// --- Test Cases ---

func TestAddCartItem_Returns201WithSnapshot(t *testing.T) {
	api, _ := setupCartAPI()
	router := api.Router()

	req := newCartRequest(http.MethodPost, "/api/v1/cart/items", "sess-1", map[string]any{
		"product_id": 1,
		"quantity":   2,
	})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Equal(t, "sess-1", rec.Header().Get(sessionHeader))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	items := resp["items"].([]any)
	require.Len(t, items, 1)
	require.Equal(t, float64(2), resp["total_items"])
	require.Equal(t, 70.0, resp["total_price"])
}

func TestAddCartItem_MissingSessionHeaderMintsOne(t *testing.T) {
	api, _ := setupCartAPI()
	router := api.Router()

	req := newCartRequest(http.MethodPost, "/api/v1/cart/items", "", map[string]any{
		"product_id": 1,
	})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotEmpty(t, rec.Header().Get(sessionHeader))
}

func TestAddCartItem_OmittedQuantityDefaultsToOne(t *testing.T) {
	api, _ := setupCartAPI()
	router := api.Router()

	req := newCartRequest(http.MethodPost, "/api/v1/cart/items", "sess-1", map[string]any{
		"product_id": 1,
	})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, float64(1), resp["total_items"])
}

func TestAddCartItem_NegativeQuantityRejected(t *testing.T) {
	api, _ := setupCartAPI()
	router := api.Router()

	req := newCartRequest(http.MethodPost, "/api/v1/cart/items", "sess-1", map[string]any{
		"product_id": 1,
		"quantity":   -2,
	})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddCartItem_UnknownProductReturns404(t *testing.T) {
	api, _ := setupCartAPI()
	router := api.Router()

	req := newCartRequest(http.MethodPost, "/api/v1/cart/items", "sess-1", map[string]any{
		"product_id": 999,
	})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddCartItem_InactiveProductReturns422(t *testing.T) {
	api, _ := setupCartAPI()
	router := api.Router()

	req := newCartRequest(http.MethodPost, "/api/v1/cart/items", "sess-1", map[string]any{
		"product_id": 3,
	})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAddCartItem_ExceedingStockReturns422(t *testing.T) {
	api, _ := setupCartAPI()
	router := api.Router()

	req := newCartRequest(http.MethodPost, "/api/v1/cart/items", "sess-1", map[string]any{
		"product_id": 2,
		"quantity":   10,
	})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSetCartQuantity_UnknownLineReturns404(t *testing.T) {
	api, _ := setupCartAPI()
	router := api.Router()

	req := newCartRequest(http.MethodPut, "/api/v1/cart/items/42", "sess-1", map[string]any{
		"quantity": 3,
	})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetCartQuantity_ZeroRemovesLine(t *testing.T) {
	api, _ := setupCartAPI()
	router := api.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newCartRequest(http.MethodPost, "/api/v1/cart/items", "sess-1", map[string]any{
		"product_id": 1,
		"quantity":   2,
	}))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, newCartRequest(http.MethodPut, "/api/v1/cart/items/1", "sess-1", map[string]any{
		"quantity": 0,
	}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp["items"], 0)
}

func TestRemoveCartItem_AbsentIsNoOp(t *testing.T) {
	api, _ := setupCartAPI()
	router := api.Router()

	req := newCartRequest(http.MethodDelete, "/api/v1/cart/items/42", "sess-1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetCart_SessionsAreIsolated(t *testing.T) {
	api, _ := setupCartAPI()
	router := api.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newCartRequest(http.MethodPost, "/api/v1/cart/items", "sess-a", map[string]any{
		"product_id": 1,
		"quantity":   3,
	}))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, newCartRequest(http.MethodGet, "/api/v1/cart/", "sess-b", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, float64(0), resp["total_items"])
}

func TestCheckout_CreatesOneOrderPerLine(t *testing.T) {
	api, orderRepo := setupCartAPI()
	router := api.Router()

	for _, body := range []map[string]any{
		{"product_id": 1, "quantity": 2},
		{"product_id": 2, "quantity": 1},
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newCartRequest(http.MethodPost, "/api/v1/cart/items", "sess-1", body))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newCartRequest(http.MethodPost, "/api/v1/cart/checkout", "sess-1", map[string]any{
		"customer_name":  "Jane Doe",
		"customer_email": "jane@example.com",
	}))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	orders := resp["orders"].([]any)
	require.Len(t, orders, 2)
	require.Equal(t, 90.0, resp["total_amount"])
	require.Len(t, orderRepo.batches, 1)

	// The cart is gone after a successful checkout.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, newCartRequest(http.MethodGet, "/api/v1/cart/", "sess-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var cart map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	require.Equal(t, float64(0), cart["total_items"])
}

func TestCheckout_EmptyCartReturns422(t *testing.T) {
	api, _ := setupCartAPI()
	router := api.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newCartRequest(http.MethodPost, "/api/v1/cart/checkout", "sess-1", map[string]any{
		"customer_name":  "Jane Doe",
		"customer_email": "jane@example.com",
	}))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCheckout_FailureKeepsCart(t *testing.T) {
	api, orderRepo := setupCartAPI()
	orderRepo.createErr = domproduct.ErrOutOfStock
	router := api.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newCartRequest(http.MethodPost, "/api/v1/cart/items", "sess-1", map[string]any{
		"product_id": 1,
		"quantity":   2,
	}))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, newCartRequest(http.MethodPost, "/api/v1/cart/checkout", "sess-1", map[string]any{
		"customer_name":  "Jane Doe",
		"customer_email": "jane@example.com",
	}))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, newCartRequest(http.MethodGet, "/api/v1/cart/", "sess-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var cart map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	require.Equal(t, float64(2), cart["total_items"])
}

func TestCheckout_MissingCustomerEmailReturns400(t *testing.T) {
	api, _ := setupCartAPI()
	router := api.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newCartRequest(http.MethodPost, "/api/v1/cart/checkout", "sess-1", map[string]any{
		"customer_name": "Jane Doe",
	}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
