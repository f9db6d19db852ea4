// Package error defines domain-specific errors for the Pocket Ledger application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidReportMonth is returned when the report month is outside 1-12.
	ErrInvalidReportMonth = errors.New("report month must be between 1 and 12")

	// ErrInvalidReportYear is returned when the report year is not positive.
	ErrInvalidReportYear = errors.New("invalid report year")

	// ErrNoTransactionsInPeriod is returned when a category report window has no transactions.
	ErrNoTransactionsInPeriod = errors.New("no transactions found in the requested period")

	// ErrInvalidSeriesLength is returned when a chart series length is outside its bounds.
	ErrInvalidSeriesLength = errors.New("invalid series length")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReportMonth     ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReportYear      ReportErrorCode = "RPT-010002"
	ErrCodeNoTransactionsInPeriod ReportErrorCode = "RPT-010003"
	ErrCodeInvalidSeriesLength    ReportErrorCode = "RPT-010004"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
