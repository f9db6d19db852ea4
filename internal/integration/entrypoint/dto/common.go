// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse represents an error payload returned by any endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// DateLayout is the calendar-date format used in all request and response
// bodies. Transactions carry dates only, never times of day.
const DateLayout = "2006-01-02"
