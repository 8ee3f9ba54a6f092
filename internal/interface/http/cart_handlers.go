package http

import (
	"net/http"

	"github.com/google/uuid"

	domorder "example.com/dropship-manager/internal/domain/order"
)

// sessionHeader carries the shopping session id. A missing header starts a
// fresh session; the id in use is always echoed back so the storefront can
// persist it.
const sessionHeader = "X-Session-ID"

func (a *API) cartSession(w http.ResponseWriter, r *http.Request) string {
	sid := r.Header.Get(sessionHeader)
	if sid == "" {
		sid = uuid.NewString()
	}
	w.Header().Set(sessionHeader, sid)
	return sid
}

type addCartItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	// Quantity defaults to 1 when omitted; negatives are rejected.
	Quantity int64 `json:"quantity" validate:"gte=0"`
}

type setQuantityRequest struct {
	Quantity int64 `json:"quantity" validate:"gte=0"`
}

type checkoutRequest struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
}

func (a *API) handleGetCart(w http.ResponseWriter, r *http.Request) {
	sid := a.cartSession(w, r)
	snap, err := a.cartSvc.Get(r.Context(), sid)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCart(snap))
}

func (a *API) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	sid := a.cartSession(w, r)

	var req addCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	snap, err := a.cartSvc.AddItem(r.Context(), sid, req.ProductID, req.Quantity)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapCart(snap))
}

func (a *API) handleSetCartQuantity(w http.ResponseWriter, r *http.Request) {
	sid := a.cartSession(w, r)

	productID, err := parseIDParam(r, "productID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var req setQuantityRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	snap, err := a.cartSvc.SetQuantity(r.Context(), sid, productID, req.Quantity)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCart(snap))
}

func (a *API) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	sid := a.cartSession(w, r)

	productID, err := parseIDParam(r, "productID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	snap, err := a.cartSvc.RemoveItem(r.Context(), sid, productID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCart(snap))
}

func (a *API) handleClearCart(w http.ResponseWriter, r *http.Request) {
	sid := a.cartSession(w, r)
	if err := a.cartSvc.Clear(r.Context(), sid); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (a *API) handleCheckout(w http.ResponseWriter, r *http.Request) {
	sid := a.cartSession(w, r)

	var req checkoutRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	result, err := a.checkoutSvc.Checkout(r.Context(), sid, domorder.Customer{
		Name:  req.CustomerName,
		Email: req.CustomerEmail,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	orders := make([]map[string]any, 0, len(result.Orders))
	for _, o := range result.Orders {
		orders = append(orders, mapOrder(o))
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"orders":       orders,
		"total_amount": result.TotalAmount,
	})
}
