package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybercell/cybercrime-portal-api/api/handlers"
	"github.com/cybercell/cybercrime-portal-api/databases"
	"github.com/cybercell/cybercrime-portal-api/models"
)

func newCaseHandler() (handlers.Case, databases.SessionDatabase) {
	a, sessions := newTestAuth()
	return handlers.Case{DB: databases.NewCaseDatabase(), Auth: a}, sessions
}

func listCases(t *testing.T, h handlers.Case, token string) []models.Case {
	t.Helper()

	req, err := http.NewRequest("GET", "/api/v1/cases", nil)
	if err != nil {
		t.Fatal(err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CaseHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var cases []models.Case
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cases))
	return cases
}

func TestCase_CaseHandlerAnonymousHidesConfidential(t *testing.T) {
	h, _ := newCaseHandler()

	cases := listCases(t, h, "")

	require.Len(t, cases, 2)
	for _, c := range cases {
		assert.False(t, c.Confidential, "anonymous viewers must not see confidential cases")
	}
	assert.Equal(t, "CYB001", cases[0].ID)
	assert.Equal(t, "CYB003", cases[1].ID)
}

func TestCase_CaseHandlerInvestigatorHidesConfidential(t *testing.T) {
	h, sessions := newCaseHandler()
	token := loginAs(t, h.Auth, sessions, investigatorIdentity())

	cases := listCases(t, h, token)

	require.Len(t, cases, 2)
	for _, c := range cases {
		assert.False(t, c.Confidential)
	}
}

func TestCase_CaseHandlerAdminSeesAll(t *testing.T) {
	h, sessions := newCaseHandler()
	token := loginAs(t, h.Auth, sessions, adminIdentity())

	cases := listCases(t, h, token)

	require.Len(t, cases, 3)
	assert.Equal(t, "CYB002", cases[1].ID)
	assert.True(t, cases[1].Confidential)
}

func TestCase_CaseHandlerIgnoresGarbageToken(t *testing.T) {
	h, _ := newCaseHandler()

	// an unverifiable token degrades to anonymous rather than erroring
	cases := listCases(t, h, "not-a-jwt")

	assert.Len(t, cases, 2)
}

func TestCase_CaseByIDHandlerFound(t *testing.T) {
	h, _ := newCaseHandler()

	req, err := http.NewRequest("GET", "/api/v1/case/CYB001", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"case_id": "CYB001"})

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CaseByIDHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.Case
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "CYB001", got.ID)
	assert.Equal(t, "Financial Fraud", got.Type)
}

func TestCase_CaseByIDHandlerNotFound(t *testing.T) {
	h, _ := newCaseHandler()

	req, err := http.NewRequest("GET", "/api/v1/case/CYB999", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"case_id": "CYB999"})

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CaseByIDHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, models.CodeCaseNotFound, resp.Code)
}

func TestCase_CaseByIDHandlerConfidentialDeniedForNonAdmin(t *testing.T) {
	h, sessions := newCaseHandler()
	token := loginAs(t, h.Auth, sessions, investigatorIdentity())

	for _, bearer := range []string{"", token} {
		req, err := http.NewRequest("GET", "/api/v1/case/CYB002", nil)
		if err != nil {
			t.Fatal(err)
		}
		if bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}
		req = mux.SetURLVars(req, map[string]string{"case_id": "CYB002"})

		rr := httptest.NewRecorder()
		http.HandlerFunc(h.CaseByIDHandler).ServeHTTP(rr, req)

		// a confidential case that exists is forbidden, not hidden
		require.Equal(t, http.StatusForbidden, rr.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, models.CodeAccessDenied, resp.Code)
	}
}

func TestCase_CaseByIDHandlerConfidentialVisibleToAdmin(t *testing.T) {
	h, sessions := newCaseHandler()
	token := loginAs(t, h.Auth, sessions, adminIdentity())

	req, err := http.NewRequest("GET", "/api/v1/case/CYB002", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req = mux.SetURLVars(req, map[string]string{"case_id": "CYB002"})

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CaseByIDHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.Case
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.True(t, got.Confidential)
}

func TestCase_CaseSearchHandlerNoParamsMatchesList(t *testing.T) {
	h, _ := newCaseHandler()

	req, err := http.NewRequest("GET", "/api/v1/cases/search", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CaseSearchHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var cases []models.Case
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cases))
	assert.Equal(t, listCases(t, h, ""), cases)
}

func TestCase_CaseSearchHandlerFilters(t *testing.T) {
	h, sessions := newCaseHandler()
	token := loginAs(t, h.Auth, sessions, adminIdentity())

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"free text matches title", "q=upi", []string{"CYB001"}},
		{"free text matches id", "q=cyb002", []string{"CYB002"}},
		{"status filter", "status=Resolved", []string{"CYB002"}},
		{"type filter", "type=Financial+Fraud", []string{"CYB001"}},
		{"conjunctive filters", "q=fraud&status=New", []string{"CYB003"}},
		{"no match", "q=fraud&status=Resolved", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest("GET", "/api/v1/cases/search?"+tt.query, nil)
			if err != nil {
				t.Fatal(err)
			}
			req.Header.Set("Authorization", "Bearer "+token)

			rr := httptest.NewRecorder()
			http.HandlerFunc(h.CaseSearchHandler).ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)

			var cases []models.Case
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cases))

			var ids []string
			for _, c := range cases {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCase_CaseSearchHandlerEmptyResultIsJSONArray(t *testing.T) {
	h, _ := newCaseHandler()

	req, err := http.NewRequest("GET", "/api/v1/cases/search?q=nomatchforthis", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CaseSearchHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestCase_CaseTypesHandler(t *testing.T) {
	h, _ := newCaseHandler()

	req, err := http.NewRequest("GET", "/api/v1/cases/types", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CaseTypesHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var types []string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &types))
	assert.Equal(t, []string{"Financial Fraud", "Cyber Harassment", "E-commerce Fraud"}, types)
}
