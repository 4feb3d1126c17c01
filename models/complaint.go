package models

// ComplaintStatus holds the structure for a tracked complaint status record
type ComplaintStatus struct {
	ComplaintID string `json:"complaintId"`
	Status      string `json:"status"` // "Under Investigation", "Resolved", "Additional Information Required", or unrecognized
	LastUpdate  string `json:"lastUpdate"`
	Description string `json:"description"`
}

// ComplaintSubmission is the payload for filing a new complaint
type ComplaintSubmission struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	IncidentType  string  `json:"incidentType"`
	IncidentDate  string  `json:"incidentDate"`
	Description   string  `json:"description"`
	SuspectInfo   string  `json:"suspectInfo"`
	FinancialLoss float64 `json:"financialLoss"`
}

// ComplaintReceipt acknowledges a filed complaint. The id is display-only:
// it is never stored and will not resolve in the status lookup.
type ComplaintReceipt struct {
	ComplaintID string `json:"complaintId"`
	Message     string `json:"message"`
	Reference   string `json:"reference"`
	CompletedAt string `json:"completedAt"`
}
