package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/cybercell/cybercrime-portal-api/databases"
)

// Stats exported for testing purposes
type Stats struct {
	CaseDB databases.CaseDatabase
}

// StatsHandler returns the public dashboard figures
func (s Stats) StatsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(databases.PortalStats())
}

// ContactsHandler returns the emergency contact block
func (s Stats) ContactsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(databases.EmergencyContacts())
}

// BanksHandler returns the fixed bank list for the bank-request form
func (s Stats) BanksHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(databases.BanksList())
}
