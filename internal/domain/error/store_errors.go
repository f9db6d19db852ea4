// Package error defines domain-specific errors for the Pocket Ledger application.
package error

// StoreError wraps a persistence-layer failure. The aggregation and evaluation
// core never attempts to recover from these; they propagate to the caller as-is,
// distinct from validation and not-found results.
type StoreError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return "store: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError for the given operation.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}
