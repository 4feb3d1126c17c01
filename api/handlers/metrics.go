package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/cybercell/cybercrime-portal-api/api"
	"github.com/cybercell/cybercrime-portal-api/models"
)

// Metrics exported for testing purposes
type Metrics struct {
	Auth api.Auth
}

// MetricsHandler returns aggregated route metrics. Admin only.
func (m Metrics) MetricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	viewer := m.Auth.Viewer(r)
	if !viewer.IsAdmin() {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Success: false,
			Error:   "Administrator role required",
			Code:    models.CodeAccessDenied,
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(api.GetMetrics().Snapshot())
}
