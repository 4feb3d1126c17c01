package databases

import "github.com/cybercell/cybercrime-portal-api/models"

// Seed data for the portal. The collections are hard-coded and read-only;
// the "submit" flows acknowledge without ever writing here.

func seedDirectory() []models.Identity {
	return []models.Identity{
		{
			ID:    "1",
			Email: "admin@mppolice.gov.in",
			Name:  "Administrator",
			Role:  models.RoleAdmin,
			Badge: "ADM001",
		},
		{
			ID:    "2",
			Email: "investigator@mppolice.gov.in",
			Name:  "Officer Rajesh Kumar",
			Role:  models.RoleInvestigator,
			Badge: "INV001",
		},
	}
}

func strptr(s string) *string { return &s }

func seedCases() []models.Case {
	return []models.Case{
		{
			ID:           "CYB001",
			Title:        "UPI Fraud - Rs. 45,000",
			Description:  "Victim received fake UPI payment request and lost money",
			Type:         "Financial Fraud",
			Status:       models.CaseStatusUnderInvestigation,
			Priority:     models.PriorityHigh,
			AssignedTo:   strptr("Officer Rajesh Kumar"),
			CreatedAt:    "2024-01-15",
			UpdatedAt:    "2024-01-20",
			Confidential: false,
			Complainant: models.Complainant{
				Name:  "Ramesh Sharma",
				Phone: "+91-9876543210",
				Email: "ramesh.sharma@email.com",
			},
			Evidence: []string{
				"Screenshot of fake payment request",
				"Bank transaction statements",
				"Phone call recordings",
			},
			Investigation: models.Investigation{
				Timeline: []models.TimelineEvent{
					{Date: "2024-01-15", Action: "Case registered", Officer: "Reception Desk", Details: "Initial complaint filed with basic details"},
					{Date: "2024-01-16", Action: "Case assigned to investigator", Officer: "Admin", Details: "Assigned to Officer Rajesh Kumar for investigation"},
					{Date: "2024-01-18", Action: "Bank data requested", Officer: "Officer Rajesh Kumar", Details: "Formal request sent to SBI for transaction details"},
					{Date: "2024-01-20", Action: "Suspect account identified", Officer: "Officer Rajesh Kumar", Details: "Primary suspect account: SBI-987654321 identified"},
				},
				SuspectAccounts: []models.SuspectAccount{
					{AccountNumber: "SBI-987654321", BankName: "State Bank of India", HolderName: "Fake Name 1", IsMule: true, RiskScore: 85, TransactionAmount: 45000},
					{AccountNumber: "HDFC-456789123", BankName: "HDFC Bank", HolderName: "Fake Name 2", IsMule: true, RiskScore: 92, TransactionAmount: 35000},
				},
				MLAnalysis: &models.MLAnalysis{
					BehaviorScore: 78,
					RiskLevel:     "High",
					Patterns:      []string{"Rapid money transfer", "Multiple small transactions", "Unusual timing"},
				},
			},
		},
		{
			ID:           "CYB002",
			Title:        "Social Media Account Hacking",
			Description:  "Instagram account compromised, inappropriate content posted",
			Type:         "Cyber Harassment",
			Status:       models.CaseStatusResolved,
			Priority:     models.PriorityMedium,
			AssignedTo:   strptr("Officer Priya Singh"),
			CreatedAt:    "2024-01-10",
			UpdatedAt:    "2024-01-25",
			Confidential: true,
			Complainant: models.Complainant{
				Name:  "Confidential",
				Phone: "Protected",
				Email: "Protected",
			},
			Evidence: []string{
				"Screenshots of hacked account",
				"IP log analysis",
				"Recovery email details",
			},
			Investigation: models.Investigation{
				Timeline: []models.TimelineEvent{
					{Date: "2024-01-10", Action: "Case registered", Officer: "Reception Desk", Details: "Confidential case filed regarding social media hack"},
					{Date: "2024-01-12", Action: "Technical analysis initiated", Officer: "Officer Priya Singh", Details: "IP trace and digital forensics started"},
					{Date: "2024-01-20", Action: "Suspect identified", Officer: "Officer Priya Singh", Details: "Perpetrator traced through IP analysis"},
					{Date: "2024-01-25", Action: "Case resolved", Officer: "Officer Priya Singh", Details: "Account recovered, suspect apprehended"},
				},
				SuspectAccounts: []models.SuspectAccount{},
				MLAnalysis: &models.MLAnalysis{
					BehaviorScore: 65,
					RiskLevel:     "Medium",
					Patterns:      []string{"Login from different location", "Unusual activity pattern"},
				},
			},
		},
		{
			ID:           "CYB003",
			Title:        "Online Shopping Fraud - Rs. 25,000",
			Description:  "Fake online store, payment made but goods not delivered",
			Type:         "E-commerce Fraud",
			Status:       models.CaseStatusNew,
			Priority:     models.PriorityMedium,
			AssignedTo:   nil,
			CreatedAt:    "2024-01-22",
			UpdatedAt:    "2024-01-22",
			Confidential: false,
			Complainant: models.Complainant{
				Name:  "Sunita Verma",
				Phone: "+91-8765432109",
				Email: "sunita.verma@email.com",
			},
			Evidence: []string{
				"Website screenshots",
				"Payment receipts",
				"Email communications",
			},
			Investigation: models.Investigation{
				Timeline: []models.TimelineEvent{
					{Date: "2024-01-22", Action: "Case registered", Officer: "Reception Desk", Details: "New case registered, awaiting assignment"},
				},
				SuspectAccounts: []models.SuspectAccount{},
				MLAnalysis:      nil,
			},
		},
	}
}

func seedComplaintStatuses() []models.ComplaintStatus {
	return []models.ComplaintStatus{
		{
			ComplaintID: "CMP001",
			Status:      "Under Investigation",
			LastUpdate:  "2024-01-20",
			Description: "Your complaint has been assigned to an investigator and is currently being reviewed.",
		},
		{
			ComplaintID: "CMP002",
			Status:      "Additional Information Required",
			LastUpdate:  "2024-01-18",
			Description: "We need additional evidence to proceed with your case. Please check your email for details.",
		},
	}
}

// BanksList is the fixed bank dropdown for bank data requests
func BanksList() []string {
	return []string{
		"State Bank of India",
		"HDFC Bank",
		"ICICI Bank",
		"Punjab National Bank",
		"Bank of Baroda",
		"Axis Bank",
		"Canara Bank",
		"Union Bank of India",
		"Indian Bank",
		"Central Bank of India",
	}
}

// PortalStats returns the public dashboard figures
func PortalStats() models.PortalStats {
	return models.PortalStats{
		CasesResolved:  2450,
		ActiveOfficers: 156,
		ResponseTime:   "<24hrs",
		SuccessRate:    "89%",
	}
}

// EmergencyContacts returns the public helpline block
func EmergencyContacts() models.EmergencyContacts {
	return models.EmergencyContacts{
		Helpline: "100",
		Email:    "cybercrime@mppolice.gov.in",
		Address:  "Cyber Crime Police Station, Bhopal, Madhya Pradesh",
	}
}
