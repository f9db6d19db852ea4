// Package dashboard contains chart-data use cases. They consume aggregator
// outputs and shape them for the frontend's charts; no chart rendering
// happens here.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/domain/period"
)

const (
	// DefaultSeriesMonths is the trailing window length when none is given.
	DefaultSeriesMonths = 6
	// MaxSeriesMonths caps the trailing window length.
	MaxSeriesMonths = 36
)

// GetMonthlySeriesInput represents the input for the monthly series.
// Months zero falls back to the default.
type GetMonthlySeriesInput struct {
	Months int
}

// MonthPoint is one month of the line-chart series.
type MonthPoint struct {
	Year    int
	Month   time.Month
	Label   string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// GetMonthlySeriesOutput represents the output of the monthly series.
type GetMonthlySeriesOutput struct {
	Points []MonthPoint
}

// GetMonthlySeriesUseCase builds the trailing-months income/expense series.
type GetMonthlySeriesUseCase struct {
	ledger adapter.LedgerRepository
	clock  adapter.Clock
}

// NewGetMonthlySeriesUseCase creates a new GetMonthlySeriesUseCase instance.
func NewGetMonthlySeriesUseCase(ledger adapter.LedgerRepository, clock adapter.Clock) *GetMonthlySeriesUseCase {
	return &GetMonthlySeriesUseCase{ledger: ledger, clock: clock}
}

// Execute returns one point per trailing month, oldest first, ending with the
// month containing the current date. Months with no activity are zero points,
// never gaps.
func (uc *GetMonthlySeriesUseCase) Execute(ctx context.Context, input GetMonthlySeriesInput) (*GetMonthlySeriesOutput, error) {
	months := input.Months
	if months == 0 {
		months = DefaultSeriesMonths
	}
	if months < 1 || months > MaxSeriesMonths {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidSeriesLength,
			fmt.Sprintf("months must be 1-%d, got %d", MaxSeriesMonths, months),
			domainerror.ErrInvalidSeriesLength,
		)
	}

	refs := period.TrailingMonths(uc.clock.Now().UTC(), months)
	points := make([]MonthPoint, 0, len(refs))
	for _, ref := range refs {
		start, end := period.MonthWindow(ref.Year, ref.Month)
		totals, err := uc.ledger.SumByType(ctx, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to sum %s: %w", ref.Label(), err)
		}
		points = append(points, MonthPoint{
			Year:    ref.Year,
			Month:   ref.Month,
			Label:   ref.Label(),
			Income:  totals.Income,
			Expense: totals.Expense,
			Net:     totals.Net(),
		})
	}

	return &GetMonthlySeriesOutput{Points: points}, nil
}
