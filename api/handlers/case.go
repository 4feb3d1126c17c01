package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/cybercell/cybercrime-portal-api/api"
	"github.com/cybercell/cybercrime-portal-api/config"
	"github.com/cybercell/cybercrime-portal-api/databases"
	"github.com/cybercell/cybercrime-portal-api/models"
)

// Case exported for testing purposes
type Case struct {
	DB   databases.CaseDatabase
	Auth api.Auth
}

// CaseHandler returns all cases visible to the requesting viewer, in seed order
func (c Case) CaseHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	viewer := c.Auth.Viewer(r)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := c.DB.ListVisible(ctx, viewer)
	if err != nil {
		config.ErrorStatus("failed to get cases", http.StatusInternalServerError, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.Case{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CaseSearchHandler narrows the visible cases by free-text query and exact
// status/type filters. Absent params mean "all".
func (c Case) CaseSearchHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	viewer := c.Auth.Viewer(r)

	query := r.URL.Query().Get("q")
	status := r.URL.Query().Get("status")
	if status == "" {
		status = databases.FilterAll
	}
	caseType := r.URL.Query().Get("type")
	if caseType == "" {
		caseType = databases.FilterAll
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := c.DB.Search(ctx, viewer, query, status, caseType)
	if err != nil {
		config.ErrorStatus("failed to search cases", http.StatusInternalServerError, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.Case{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CaseTypesHandler returns the distinct case types for the filter dropdown
func (c Case) CaseTypesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	types, err := c.DB.Types(ctx)
	if err != nil {
		config.ErrorStatus("failed to get case types", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(types)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CaseByIDHandler returns a case by ID. An existing confidential case viewed
// by a non-admin renders ACCESS_DENIED, which callers must be able to tell
// apart from CASE_NOT_FOUND.
func (c Case) CaseByIDHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	caseID := mux.Vars(r)["case_id"]
	viewer := c.Auth.Viewer(r)

	zap.S().Debugf("case_id: %v", caseID)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := c.DB.FindByID(ctx, caseID)
	if err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{
				Success: false,
				Error:   "Case not found",
				Code:    models.CodeCaseNotFound,
			})
			return
		}
		config.ErrorStatus("failed to get case by ID", http.StatusInternalServerError, w, err)
		return
	}

	if !databases.IsVisible(viewer, *dbResp) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Success: false,
			Error:   "This is a confidential case. Only administrators can view confidential cases.",
			Code:    models.CodeAccessDenied,
		})
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
