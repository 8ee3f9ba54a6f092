package http

import (
	"errors"
	"net/http"
	"strings"

	importeruc "example.com/dropship-manager/internal/usecase/importer"
)

// importRequest accepts either a raw CSV document or rows the caller already
// parsed. Legacy selects the old comma-splitting parser for feeds that were
// produced against it.
type importRequest struct {
	SupplierType string           `json:"supplier_type" validate:"required"`
	CSV          string           `json:"csv"`
	Legacy       bool             `json:"legacy"`
	Rows         []importeruc.Row `json:"rows"`
}

func (a *API) importRows(r *http.Request) (string, []importeruc.Row, error) {
	var req importRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		return "", nil, err
	}

	if req.CSV != "" {
		if req.Legacy {
			return req.SupplierType, importeruc.ParseLegacy(req.CSV), nil
		}
		rows, err := importeruc.Parse(strings.NewReader(req.CSV))
		if err != nil {
			return "", nil, err
		}
		return req.SupplierType, rows, nil
	}
	if len(req.Rows) == 0 {
		return "", nil, errors.New("either csv or rows is required")
	}
	return req.SupplierType, req.Rows, nil
}

func (a *API) handleImportProducts(w http.ResponseWriter, r *http.Request) {
	supplierType, rows, err := a.importRows(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	result, err := a.importSvc.ImportProducts(r.Context(), supplierType, rows)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) handleImportOrders(w http.ResponseWriter, r *http.Request) {
	supplierType, rows, err := a.importRows(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	result, err := a.importSvc.ImportOrders(r.Context(), supplierType, rows)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
