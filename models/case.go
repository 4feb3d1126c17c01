package models

// CaseStatus is the lifecycle status of a case record
type CaseStatus string

// Case statuses
const (
	CaseStatusNew                CaseStatus = "New"
	CaseStatusUnderInvestigation CaseStatus = "Under Investigation"
	CaseStatusResolved           CaseStatus = "Resolved"
)

// CasePriority is the triage priority of a case record
type CasePriority string

// Case priorities
const (
	PriorityLow    CasePriority = "Low"
	PriorityMedium CasePriority = "Medium"
	PriorityHigh   CasePriority = "High"
)

// Case holds the structure for a cybercrime case record
type Case struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Type         string        `json:"type"` // open enumeration, e.g. "Financial Fraud"
	Status       CaseStatus    `json:"status"`
	Priority     CasePriority  `json:"priority"`
	AssignedTo   *string       `json:"assignedTo"`
	CreatedAt    string        `json:"createdAt"`
	UpdatedAt    string        `json:"updatedAt"`
	Confidential bool          `json:"confidential"`
	Complainant  Complainant   `json:"complainant"`
	Evidence     []string      `json:"evidence"`
	Investigation Investigation `json:"investigation"`
}

// Complainant is the contact block of the person who filed the case
type Complainant struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Investigation is the sub-record tracking investigative progress on a case
type Investigation struct {
	Timeline        []TimelineEvent  `json:"timeline"`
	SuspectAccounts []SuspectAccount `json:"suspectAccounts"`
	MLAnalysis      *MLAnalysis      `json:"mlAnalysis"`
}

// TimelineEvent is a single entry in the chronological investigation timeline
type TimelineEvent struct {
	Date    string `json:"date"`
	Action  string `json:"action"`
	Officer string `json:"officer"`
	Details string `json:"details"`
}

// SuspectAccount is a financial account flagged during an investigation.
// RiskScore is bounded to [0,100].
type SuspectAccount struct {
	AccountNumber     string  `json:"accountNumber"`
	BankName          string  `json:"bankName"`
	HolderName        string  `json:"holderName"`
	IsMule            bool    `json:"isMule"`
	RiskScore         int     `json:"riskScore"`
	TransactionAmount float64 `json:"transactionAmount"`
}

// MLAnalysis is the behavioral analysis summary attached to an investigation.
// BehaviorScore is bounded to [0,100].
type MLAnalysis struct {
	BehaviorScore int      `json:"behaviorScore"`
	RiskLevel     string   `json:"riskLevel"`
	Patterns      []string `json:"patterns"`
}

// CaseloadSnapshot aggregates case counts for the stats feed and the
// scheduler's periodic log line
type CaseloadSnapshot struct {
	Total              int `json:"total"`
	New                int `json:"new"`
	UnderInvestigation int `json:"underInvestigation"`
	Resolved           int `json:"resolved"`
	Confidential       int `json:"confidential"`
}
