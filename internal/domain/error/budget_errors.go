// Package error defines domain-specific errors for the Pocket Ledger application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetAmount is returned when the budget amount is not positive.
	ErrInvalidBudgetAmount = errors.New("budget amount must be positive")

	// ErrInvalidBudgetPeriod is returned when the budget period is invalid.
	ErrInvalidBudgetPeriod = errors.New("budget period must be 'monthly' or 'yearly'")

	// ErrBudgetCategoryNotFound is returned when the referenced category does not exist.
	ErrBudgetCategoryNotFound = errors.New("category not found")

	// ErrInsufficientSpendingHistory is returned when a budget recommendation is
	// requested for a category with no spending in the lookback window.
	ErrInsufficientSpendingHistory = errors.New("insufficient spending history for recommendation")

	// ErrInvalidLookbackMonths is returned when the recommendation lookback is not positive.
	ErrInvalidLookbackMonths = errors.New("lookback months must be positive")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetAmount         BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidBudgetPeriod         BudgetErrorCode = "BDG-010002"
	ErrCodeBudgetNotFound              BudgetErrorCode = "BDG-010003"
	ErrCodeBudgetCategoryNotFound      BudgetErrorCode = "BDG-010004"
	ErrCodeInsufficientSpendingHistory BudgetErrorCode = "BDG-010005"
	ErrCodeInvalidLookbackMonths       BudgetErrorCode = "BDG-010006"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
