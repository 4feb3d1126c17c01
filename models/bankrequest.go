package models

// BankDataRequest is the payload for a formal data request to a bank during
// an investigation
type BankDataRequest struct {
	Bank          string `json:"bank"`
	AccountNumber string `json:"accountNumber"`
	RequestType   string `json:"requestType"` // e.g. "transaction_history", "account_details", "kyc_documents"
	Justification string `json:"justification"`
}

// AnalysisRequest triggers a behavioral analysis run for a case
type AnalysisRequest struct {
	Type string `json:"type"` // e.g. "Behavioral", "Transaction Pattern"
}

// NoteRequest adds an investigation note. Notes are acknowledged but not
// stored; the case collection is read-only.
type NoteRequest struct {
	Note string `json:"note"`
}

// ActionAck is the transient acknowledgment returned by simulated
// investigation operations
type ActionAck struct {
	Reference   string `json:"reference"`
	Message     string `json:"message"`
	CompletedAt string `json:"completedAt"`
}
