// Package dashboard contains chart-data use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/domain/period"
)

// GetCategoryBreakdownInput represents the input for the category breakdown.
// Year and Month zero resolve to the current month. Kind defaults to expense.
type GetCategoryBreakdownInput struct {
	Year  int
	Month int
	Kind  *entity.TransactionType
}

// BreakdownSlice is one category's share of the pie chart.
type BreakdownSlice struct {
	CategoryID   uint
	CategoryName string
	Amount       decimal.Decimal
	Percentage   float64
}

// GetCategoryBreakdownOutput represents the output of the category breakdown.
type GetCategoryBreakdownOutput struct {
	Label  string
	Total  decimal.Decimal
	Slices []BreakdownSlice
}

// GetCategoryBreakdownUseCase builds per-category shares for a month window.
type GetCategoryBreakdownUseCase struct {
	ledger adapter.LedgerRepository
	clock  adapter.Clock
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(ledger adapter.LedgerRepository, clock adapter.Clock) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{ledger: ledger, clock: clock}
}

// Execute returns the month's category totals with percentage shares, largest
// first. Shares are zero when the kind total is zero.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	year, month := input.Year, input.Month
	if year == 0 && month == 0 {
		now := uc.clock.Now().UTC()
		year, month = now.Year(), int(now.Month())
	}
	if month < 1 || month > 12 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportMonth,
			fmt.Sprintf("month must be 1-12, got %d", month),
			domainerror.ErrInvalidReportMonth,
		)
	}

	kind := entity.TransactionTypeExpense
	if input.Kind != nil {
		if !input.Kind.IsValid() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"type must be 'income' or 'expense'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		kind = *input.Kind
	}

	start, end := period.MonthWindow(year, time.Month(month))
	byCategory, err := uc.ledger.SumByCategory(ctx, start, end, &kind)
	if err != nil {
		return nil, fmt.Errorf("failed to sum categories: %w", err)
	}

	total := decimal.Zero
	for _, ct := range byCategory {
		total = total.Add(ct.Total)
	}

	slices := make([]BreakdownSlice, 0, len(byCategory))
	for _, ct := range byCategory {
		slice := BreakdownSlice{
			CategoryID:   ct.CategoryID,
			CategoryName: ct.CategoryName,
			Amount:       ct.Total,
		}
		if total.IsPositive() {
			slice.Percentage, _ = ct.Total.Div(total).Mul(decimal.NewFromInt(100)).Float64()
		}
		slices = append(slices, slice)
	}

	return &GetCategoryBreakdownOutput{
		Label:  period.MonthRef{Year: year, Month: time.Month(month)}.Label(),
		Total:  total,
		Slices: slices,
	}, nil
}
