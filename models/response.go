package models

// HealthCheckResponse returns the health check response struct, exposed at /health
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}

// PortalStats holds the public dashboard figures
type PortalStats struct {
	CasesResolved  int    `json:"casesResolved"`
	ActiveOfficers int    `json:"activeOfficers"`
	ResponseTime   string `json:"responseTime"`
	SuccessRate    string `json:"successRate"`
}

// EmergencyContacts holds the public helpline block
type EmergencyContacts struct {
	Helpline string `json:"helpline"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}
