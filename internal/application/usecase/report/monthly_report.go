// Package report contains report composition use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/domain/period"
)

// MonthlyReportInput represents the input for the monthly report.
// Month zero resolves to the month containing the current date.
type MonthlyReportInput struct {
	Year  int
	Month int
}

// MonthlyReportOutput is the composed monthly report.
type MonthlyReportOutput struct {
	Label            string
	Totals           TotalsSection
	IncomeBreakdown  []BreakdownEntry
	ExpenseBreakdown []BreakdownEntry
	Statistics       StatisticsSection
	Comparison       *ComparisonSection
}

// MonthlyReportUseCase composes the monthly report.
type MonthlyReportUseCase struct {
	ledger adapter.LedgerRepository
	clock  adapter.Clock
}

// NewMonthlyReportUseCase creates a new MonthlyReportUseCase instance.
func NewMonthlyReportUseCase(ledger adapter.LedgerRepository, clock adapter.Clock) *MonthlyReportUseCase {
	return &MonthlyReportUseCase{ledger: ledger, clock: clock}
}

// Execute composes the report for the requested month. The comparison
// section covers the preceding month (January compares against December of
// the prior year) and is omitted when that month had no activity.
func (uc *MonthlyReportUseCase) Execute(ctx context.Context, input MonthlyReportInput) (*MonthlyReportOutput, error) {
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
	if year < 1 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportYear,
			"year must be positive",
			domainerror.ErrInvalidReportYear,
		)
	}

	start, end := period.MonthWindow(year, time.Month(month))

	totals, err := buildTotals(ctx, uc.ledger, start, end)
	if err != nil {
		return nil, err
	}

	incomeBreakdown, err := buildBreakdown(ctx, uc.ledger, start, end, entity.TransactionTypeIncome, totals.Income)
	if err != nil {
		return nil, err
	}
	expenseBreakdown, err := buildBreakdown(ctx, uc.ledger, start, end, entity.TransactionTypeExpense, totals.Expense)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.ledger.ListInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	prevYear, prevMonth := period.Previous(year, time.Month(month))
	prevStart, prevEnd := period.MonthWindow(prevYear, prevMonth)
	comparison, err := buildComparison(ctx, uc.ledger, totals, prevStart, prevEnd,
		period.MonthRef{Year: prevYear, Month: prevMonth}.Label())
	if err != nil {
		return nil, err
	}

	return &MonthlyReportOutput{
		Label:            period.MonthRef{Year: year, Month: time.Month(month)}.Label(),
		Totals:           totals,
		IncomeBreakdown:  incomeBreakdown,
		ExpenseBreakdown: expenseBreakdown,
		Statistics:       buildStatistics(transactions),
		Comparison:       comparison,
	}, nil
}
