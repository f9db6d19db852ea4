// Package adapters provides infrastructure implementations of application
// service interfaces.
package adapters

import (
	"time"

	"github.com/pocketledger/backend/internal/application/adapter"
)

// SystemClock implements adapter.Clock with the wall clock.
type SystemClock struct{}

// NewSystemClock creates a new SystemClock instance.
func NewSystemClock() adapter.Clock {
	return SystemClock{}
}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
