package http

import "net/http"

type statusCheckRequest struct {
	ClientName string `json:"client_name" validate:"required"`
}

func (a *API) handleCreateStatusCheck(w http.ResponseWriter, r *http.Request) {
	var req statusCheckRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	sc, err := a.statusSvc.Record(r.Context(), req.ClientName)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":          sc.ID,
		"client_name": sc.ClientName,
		"timestamp":   sc.Timestamp,
	})
}

func (a *API) handleListStatusChecks(w http.ResponseWriter, r *http.Request) {
	checks, err := a.statusSvc.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(checks))
	for _, sc := range checks {
		resp = append(resp, map[string]any{
			"id":          sc.ID,
			"client_name": sc.ClientName,
			"timestamp":   sc.Timestamp,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}
