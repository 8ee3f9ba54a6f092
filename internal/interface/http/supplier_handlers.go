package http

import (
	"net/http"

	domsupplier "example.com/dropship-manager/internal/domain/supplier"
)

type supplierRequest struct {
	Name         string `json:"name" validate:"required"`
	Type         string `json:"type" validate:"required"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	WebsiteURL   string `json:"website_url"`
	Active       bool   `json:"active"`
}

func (a *API) handleListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := a.supplierSvc.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(suppliers))
	for _, s := range suppliers {
		resp = append(resp, mapSupplier(s))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleGetSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	s, err := a.supplierSvc.GetByID(r.Context(), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSupplier(s))
}

func (a *API) handleCreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req supplierRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	created, err := a.supplierSvc.Create(r.Context(), &domsupplier.Supplier{
		Name:         req.Name,
		Type:         req.Type,
		ContactEmail: req.ContactEmail,
		WebsiteURL:   req.WebsiteURL,
		Active:       req.Active,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapSupplier(created))
}

func (a *API) handleUpdateSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var req supplierRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	updated, err := a.supplierSvc.Update(r.Context(), &domsupplier.Supplier{
		ID:           id,
		Name:         req.Name,
		Type:         req.Type,
		ContactEmail: req.ContactEmail,
		WebsiteURL:   req.WebsiteURL,
		Active:       req.Active,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSupplier(updated))
}

func (a *API) handleDeleteSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := a.supplierSvc.Delete(r.Context(), id); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "supplier deleted"})
}
