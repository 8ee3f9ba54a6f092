package http

import (
	"net/http"
	"strconv"

	domproduct "example.com/dropship-manager/internal/domain/product"
)

type productRequest struct {
	Name              string  `json:"name" validate:"required"`
	Description       string  `json:"description"`
	SKU               string  `json:"sku" validate:"required"`
	Price             float64 `json:"price" validate:"gte=0"`
	Cost              float64 `json:"cost" validate:"gte=0"`
	SupplierID        int64   `json:"supplier_id"`
	SupplierProductID string  `json:"supplier_product_id"`
	ImageURL          string  `json:"image_url"`
	Category          string  `json:"category"`
	ProductType       string  `json:"product_type"`
	Status            string  `json:"status"`
	StockQuantity     int64   `json:"stock_quantity" validate:"gte=0"`
}

func (req *productRequest) toDomain() *domproduct.Product {
	return &domproduct.Product{
		Name:              req.Name,
		Description:       req.Description,
		SKU:               req.SKU,
		Price:             req.Price,
		Cost:              req.Cost,
		SupplierID:        req.SupplierID,
		SupplierProductID: req.SupplierProductID,
		ImageURL:          req.ImageURL,
		Category:          req.Category,
		ProductType:       req.ProductType,
		Status:            domproduct.Status(req.Status),
		StockQuantity:     req.StockQuantity,
	}
}

// handleListProducts is the public catalog: active products only.
func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	filter := domproduct.ListFilter{
		Status: domproduct.StatusActive,
		Search: r.URL.Query().Get("q"),
	}

	products, err := a.productSvc.List(r.Context(), filter)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(products))
	for _, p := range products {
		resp = append(resp, mapProduct(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	p, err := a.productSvc.GetByID(r.Context(), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(p))
}

func (a *API) handleListProductsAdmin(w http.ResponseWriter, r *http.Request) {
	filter := domproduct.ListFilter{
		Status: domproduct.Status(r.URL.Query().Get("status")),
		Search: r.URL.Query().Get("q"),
	}
	if sid := r.URL.Query().Get("supplier_id"); sid != "" {
		if id, err := strconv.ParseInt(sid, 10, 64); err == nil {
			filter.SupplierID = id
		}
	}

	products, err := a.productSvc.List(r.Context(), filter)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(products))
	for _, p := range products {
		resp = append(resp, mapProduct(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	created, err := a.productSvc.Create(r.Context(), req.toDomain())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapProduct(created))
}

func (a *API) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var req productRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	p := req.toDomain()
	p.ID = id
	updated, err := a.productSvc.Update(r.Context(), p)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(updated))
}

func (a *API) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := a.productSvc.Delete(r.Context(), id); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}
