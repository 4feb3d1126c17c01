package handlers

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/cybercell/cybercrime-portal-api/api"
	"github.com/cybercell/cybercrime-portal-api/config"
	"github.com/cybercell/cybercrime-portal-api/databases"
	"github.com/cybercell/cybercrime-portal-api/dispatch"
	"github.com/cybercell/cybercrime-portal-api/models"
)

// Complaint exported for testing purposes
type Complaint struct {
	DB         databases.ComplaintStatusDatabase
	Dispatcher dispatch.Dispatcher
	Mailer     *dispatch.AckMailer
	Hub        *NotificationHub
}

const complaintIDCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newComplaintID produces a display-only identifier: CMP plus 6 uppercase
// alphanumerics. No uniqueness guarantee, never persisted, never resolvable
// through the status lookup.
func newComplaintID() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = complaintIDCharset[rand.Intn(len(complaintIDCharset))]
	}
	return "CMP" + string(b)
}

// ComplaintStatusHandler returns the tracked status for a complaint id.
// Public, no role gating; matching is exact but case-insensitive.
func (c Complaint) ComplaintStatusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	complaintID := mux.Vars(r)["complaint_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := c.DB.Lookup(ctx, complaintID)
	if err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{
				Success: false,
				Error:   "No complaint found with this ID",
				Code:    models.CodeComplaintNotFound,
			})
			return
		}
		config.ErrorStatus("failed to look up complaint", http.StatusInternalServerError, w, err)
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

// ComplaintCreateHandler files a complaint. The only effects are the
// simulated dispatch, the receipt with its synthetic id, a best-effort
// acknowledgment email, and a transient notification; nothing is stored.
func (c Complaint) ComplaintCreateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.ComplaintSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
		return
	}
	if req.Description == "" || req.IncidentType == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "incidentType and description required"})
		return
	}

	ack := c.Dispatcher.Submit(r.Context(), dispatch.Command{
		Kind:        dispatch.KindComplaintFiled,
		Target:      req.IncidentType,
		Detail:      req.Description,
		RequestedBy: req.Email,
	})

	complaintID := newComplaintID()

	c.Mailer.SendComplaintReceipt(req.Name, req.Email, complaintID)
	c.Hub.Broadcast("complaint_filed", map[string]interface{}{
		"complaintId": complaintID,
		"message":     "Complaint Filed Successfully",
	})

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(models.ComplaintReceipt{
		ComplaintID: complaintID,
		Message:     "Complaint Filed Successfully. Your complaint ID is " + complaintID,
		Reference:   ack.Reference,
		CompletedAt: ack.CompletedAt.UTC().Format(time.RFC3339),
	})
}
