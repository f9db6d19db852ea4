// Package error defines domain-specific errors for the Pocket Ledger application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the transaction amount is not positive.
	ErrInvalidTransactionAmount = errors.New("transaction amount must be positive")

	// ErrEmptyTransactionDescription is returned when the description is empty.
	ErrEmptyTransactionDescription = errors.New("transaction description cannot be empty")

	// ErrInvalidTransactionDate is returned when the transaction date is malformed.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrCategoryNotFoundForTransaction is returned when the referenced category does not exist.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")

	// ErrCategoryTypeMismatch is returned when the category type does not match the transaction type.
	ErrCategoryTypeMismatch = errors.New("category type does not match transaction type")

	// ErrInvalidDateRange is returned when a date range filter has end before start.
	ErrInvalidDateRange = errors.New("end date must not be before start date")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType      TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount    TransactionErrorCode = "TXN-010002"
	ErrCodeEmptyTransactionDescription TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidTransactionDate      TransactionErrorCode = "TXN-010004"
	ErrCodeTransactionNotFound         TransactionErrorCode = "TXN-010005"
	ErrCodeTxnCategoryNotFound         TransactionErrorCode = "TXN-010006"
	ErrCodeCategoryTypeMismatch        TransactionErrorCode = "TXN-010007"
	ErrCodeInvalidDateRange            TransactionErrorCode = "TXN-010008"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
