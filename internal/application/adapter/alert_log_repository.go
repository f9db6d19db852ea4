// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// AlertLogRepository tracks which budget alerts have already been delivered,
// keyed by (budget, period start). Without it the alert worker would resend
// the same warning on every poll.
type AlertLogRepository interface {
	// WasSent reports whether an alert was already delivered for the budget's
	// current window.
	WasSent(ctx context.Context, budgetID uint, periodStart time.Time) (bool, error)

	// MarkSent records that an alert was delivered for the budget's current window.
	MarkSent(ctx context.Context, budgetID uint, periodStart time.Time) error
}
