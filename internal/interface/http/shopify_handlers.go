package http

import (
	"errors"
	"net/http"
)

var errShopifyNotConfigured = errors.New("shopify integration not configured")

type shopifyFulfillmentRequest struct {
	ShopifyOrderID int64  `json:"shopify_order_id" validate:"required,gt=0"`
	TrackingNumber string `json:"tracking_number" validate:"required"`
}

func (a *API) handleShopifySync(w http.ResponseWriter, r *http.Request) {
	if a.syncSvc == nil {
		respondError(w, http.StatusServiceUnavailable, errShopifyNotConfigured)
		return
	}

	result, err := a.syncSvc.SyncProducts(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) handleShopifyFulfillment(w http.ResponseWriter, r *http.Request) {
	if a.syncSvc == nil {
		respondError(w, http.StatusServiceUnavailable, errShopifyNotConfigured)
		return
	}

	var req shopifyFulfillmentRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.syncSvc.Fulfill(r.Context(), req.ShopifyOrderID, req.TrackingNumber); err != nil {
		respondError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "fulfilled"})
}
