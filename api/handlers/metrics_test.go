package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybercell/cybercrime-portal-api/api"
	"github.com/cybercell/cybercrime-portal-api/api/handlers"
	"github.com/cybercell/cybercrime-portal-api/models"
)

func metricsRequest(t *testing.T, h handlers.Metrics, token string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest("GET", "/api/v1/metrics", nil)
	if err != nil {
		t.Fatal(err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.MetricsHandler).ServeHTTP(rr, req)
	return rr
}

func TestMetrics_MetricsHandlerDeniedForAnonymous(t *testing.T) {
	a, _ := newTestAuth()
	h := handlers.Metrics{Auth: a}

	rr := metricsRequest(t, h, "")

	require.Equal(t, http.StatusForbidden, rr.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, models.CodeAccessDenied, resp.Code)
}

func TestMetrics_MetricsHandlerDeniedForInvestigator(t *testing.T) {
	a, sessions := newTestAuth()
	h := handlers.Metrics{Auth: a}
	token := loginAs(t, a, sessions, investigatorIdentity())

	rr := metricsRequest(t, h, token)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestMetrics_MetricsHandlerReturnsSnapshotForAdmin(t *testing.T) {
	api.InitMetrics()
	api.GetMetrics().Record("GET", "/api/v1/cases", http.StatusOK, 5*time.Millisecond)
	api.GetMetrics().Record("GET", "/api/v1/case/{case_id}", http.StatusNotFound, 2*time.Millisecond)

	a, sessions := newTestAuth()
	h := handlers.Metrics{Auth: a}
	token := loginAs(t, a, sessions, adminIdentity())

	rr := metricsRequest(t, h, token)

	require.Equal(t, http.StatusOK, rr.Code)

	var summary api.Summary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	assert.Equal(t, int64(2), summary.TotalRequests)
	assert.Equal(t, int64(1), summary.TotalErrors)
	assert.Len(t, summary.Routes, 2)
}
