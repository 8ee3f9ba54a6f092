package http

import "net/http"

func (a *API) handleAnalyticsOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := a.analyticsSvc.Overview(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}
