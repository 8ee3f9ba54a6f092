package http

import (
	"net/http"

	domorder "example.com/dropship-manager/internal/domain/order"
)

type updateOrderStatusRequest struct {
	Status         string `json:"status" validate:"required"`
	TrackingNumber string `json:"tracking_number"`
}

func (a *API) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := a.orderSvc.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, mapOrder(o))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	o, err := a.orderSvc.GetByID(r.Context(), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrder(o))
}

func (a *API) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var req updateOrderStatusRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	updated, err := a.orderSvc.UpdateStatus(r.Context(), id, domorder.Status(req.Status), req.TrackingNumber)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrder(updated))
}
