package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/cybercell/cybercrime-portal-api/api"
	"github.com/cybercell/cybercrime-portal-api/config"
	"github.com/cybercell/cybercrime-portal-api/databases"
	"github.com/cybercell/cybercrime-portal-api/dispatch"
	"github.com/cybercell/cybercrime-portal-api/models"
)

// Investigation exported for testing purposes
type Investigation struct {
	DB         databases.CaseDatabase
	Dispatcher dispatch.Dispatcher
	Auth       api.Auth
	Hub        *NotificationHub
}

// loadCase resolves the target case for an investigation action, enforcing
// authentication and the confidential-case visibility rule. Returns nil after
// writing the error response when the action may not proceed.
func (v Investigation) loadCase(w http.ResponseWriter, r *http.Request) (*models.Case, *models.Identity) {
	caseID := mux.Vars(r)["case_id"]
	viewer := v.Auth.Viewer(r)
	if viewer == nil {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "unauthorized"}`))
		return nil, nil
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	record, err := v.DB.FindByID(ctx, caseID)
	if err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{
				Success: false,
				Error:   "Case not found",
				Code:    models.CodeCaseNotFound,
			})
			return nil, nil
		}
		config.ErrorStatus("failed to get case by ID", http.StatusInternalServerError, w, err)
		return nil, nil
	}

	if !databases.IsVisible(viewer, *record) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Success: false,
			Error:   "This is a confidential case. Only administrators can view confidential cases.",
			Code:    models.CodeAccessDenied,
		})
		return nil, nil
	}

	return record, viewer
}

// BankRequestHandler submits a simulated formal data request to a bank.
// The request always resolves successfully after its fixed delay; nothing is
// stored against the case.
func (v Investigation) BankRequestHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	record, viewer := v.loadCase(w, r)
	if record == nil {
		return
	}

	var req models.BankDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
		return
	}
	if req.Bank == "" || req.AccountNumber == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "bank and accountNumber required"})
		return
	}

	ack := v.Dispatcher.Submit(r.Context(), dispatch.Command{
		Kind:        dispatch.KindBankDataRequest,
		Target:      req.Bank,
		Detail:      req.AccountNumber,
		RequestedBy: viewer.Email,
	})

	zap.S().Infow("bank data request submitted",
		"case", record.ID,
		"bank", req.Bank,
		"officer", viewer.Badge,
	)
	v.Hub.Broadcast("bank_request_submitted", map[string]interface{}{
		"caseId":  record.ID,
		"message": "Request sent to " + req.Bank + " for account " + req.AccountNumber,
	})

	writeAck(w, ack)
}

// AnalysisHandler triggers a simulated behavioral analysis run for a case
func (v Investigation) AnalysisHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	record, viewer := v.loadCase(w, r)
	if record == nil {
		return
	}

	var req models.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
		return
	}
	analysisType := req.Type
	if analysisType == "" {
		analysisType = "Behavioral"
	}

	ack := v.Dispatcher.Submit(r.Context(), dispatch.Command{
		Kind:        dispatch.KindBehaviorAnalysis,
		Target:      record.ID,
		Detail:      analysisType,
		RequestedBy: viewer.Email,
	})

	v.Hub.Broadcast("analysis_complete", map[string]interface{}{
		"caseId":  record.ID,
		"message": ack.Message,
	})

	writeAck(w, ack)
}

// NoteHandler acknowledges an investigation note. The case collection is
// read-only, so the note is acknowledged but never stored.
func (v Investigation) NoteHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	record, viewer := v.loadCase(w, r)
	if record == nil {
		return
	}

	var req models.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
		return
	}
	if strings.TrimSpace(req.Note) == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "note required"})
		return
	}

	ack := v.Dispatcher.Submit(r.Context(), dispatch.Command{
		Kind:        dispatch.KindInvestigationNote,
		Target:      record.ID,
		Detail:      req.Note,
		RequestedBy: viewer.Email,
	})

	writeAck(w, ack)
}

func writeAck(w http.ResponseWriter, ack dispatch.Ack) {
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(models.ActionAck{
		Reference:   ack.Reference,
		Message:     ack.Message,
		CompletedAt: ack.CompletedAt.UTC().Format(time.RFC3339),
	})
}
