// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// LedgerRepository is the aggregation boundary with the transaction store.
// All windows are half-open: [start, end). Implementations query with
// date >= start AND date < end, so a window with no matches yields zero
// totals and empty slices, never an error.
type LedgerRepository interface {
	// SumByType returns income and expense sums over the window.
	// Types absent from the window are reported as zero.
	SumByType(ctx context.Context, start, end time.Time) (*entity.PeriodTotals, error)

	// SumByCategory returns per-category sums over the window, optionally
	// restricted to one transaction type, ordered by total descending.
	// Equal totals keep store order; no further tie-break is defined.
	SumByCategory(ctx context.Context, start, end time.Time, transactionType *entity.TransactionType) ([]entity.CategoryTotal, error)

	// SumForCategory returns the summed amount for one category over the
	// window, zero when nothing matches.
	SumForCategory(ctx context.Context, categoryID uint, start, end time.Time) (decimal.Decimal, error)

	// ListInRange returns transactions in the window with their categories,
	// ordered by date descending then id descending.
	ListInRange(ctx context.Context, start, end time.Time) ([]*entity.TransactionWithCategory, error)

	// Stats returns overall count, sum and average per transaction type
	// across the whole ledger.
	Stats(ctx context.Context) (*entity.LedgerStats, error)
}
