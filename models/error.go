package models

// ErrorMessageResponse returns the error message response struct
type ErrorMessageResponse struct {
	Response MessageError
}

// MessageError contains the inner details for the error message response
type MessageError struct {
	Message string
	Error   string
}

// ErrorResponse is the coded error envelope used where callers must be able
// to tell error kinds apart (e.g. CASE_NOT_FOUND vs ACCESS_DENIED)
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

// Error codes surfaced to the presentation layer
const (
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeCaseNotFound       = "CASE_NOT_FOUND"
	CodeComplaintNotFound  = "COMPLAINT_NOT_FOUND"
	CodeAccessDenied       = "ACCESS_DENIED"
)
