// Package report contains report composition use cases.
package report

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

// YearlyReportInput represents the input for the yearly report.
// Year zero resolves to the current year.
type YearlyReportInput struct {
	Year int
}

// MonthRow is one month of the yearly trend table.
type MonthRow struct {
	Month   time.Month
	Label   string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// HighlightsSection names the year's notable months. Ties keep the earliest
// month. All fields are January when the year had no activity; consumers
// should check the totals section first.
type HighlightsSection struct {
	BestNetMonth        time.Month
	WorstNetMonth       time.Month
	HighestIncomeMonth  time.Month
	HighestExpenseMonth time.Month
}

// YearlyReportOutput is the composed yearly report.
type YearlyReportOutput struct {
	Year             int
	Totals           TotalsSection
	IncomeBreakdown  []BreakdownEntry
	ExpenseBreakdown []BreakdownEntry
	Statistics       StatisticsSection
	MonthlyTrend     []MonthRow
	Highlights       HighlightsSection
	AvgMonthlyIncome decimal.Decimal
	AvgMonthlyExpense decimal.Decimal
	LargestIncome    *entity.TransactionWithCategory
	LargestExpense   *entity.TransactionWithCategory
	Comparison       *ComparisonSection
}

// YearlyReportUseCase composes the yearly report.
type YearlyReportUseCase struct {
	ledger adapter.LedgerRepository
	clock  adapter.Clock
}

// NewYearlyReportUseCase creates a new YearlyReportUseCase instance.
func NewYearlyReportUseCase(ledger adapter.LedgerRepository, clock adapter.Clock) *YearlyReportUseCase {
	return &YearlyReportUseCase{ledger: ledger, clock: clock}
}

// Execute composes the report for the requested year. The trend table always
// has exactly twelve rows, January through December, even when most of them
// are zero. Monthly averages divide by twelve regardless of activity.
func (uc *YearlyReportUseCase) Execute(ctx context.Context, input YearlyReportInput) (*YearlyReportOutput, error) {
	year := input.Year
	if year == 0 {
		year = uc.clock.Now().UTC().Year()
	}
	if year < 1 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportYear,
			"year must be positive",
			domainerror.ErrInvalidReportYear,
		)
	}

	start, end := period.YearWindow(year)

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

	trend, err := uc.buildTrend(ctx, year)
	if err != nil {
		return nil, err
	}

	twelve := decimal.NewFromInt(12)
	prevStart, prevEnd := period.YearWindow(year - 1)
	comparison, err := buildComparison(ctx, uc.ledger, totals, prevStart, prevEnd,
		fmt.Sprintf("%d", year-1))
	if err != nil {
		return nil, err
	}

	largestIncome, largestExpense := largestByType(transactions)

	return &YearlyReportOutput{
		Year:              year,
		Totals:            totals,
		IncomeBreakdown:   incomeBreakdown,
		ExpenseBreakdown:  expenseBreakdown,
		Statistics:        buildStatistics(transactions),
		MonthlyTrend:      trend,
		Highlights:        buildHighlights(trend),
		AvgMonthlyIncome:  totals.Income.Div(twelve),
		AvgMonthlyExpense: totals.Expense.Div(twelve),
		LargestIncome:     largestIncome,
		LargestExpense:    largestExpense,
		Comparison:        comparison,
	}, nil
}

func (uc *YearlyReportUseCase) buildTrend(ctx context.Context, year int) ([]MonthRow, error) {
	rows := make([]MonthRow, 0, 12)
	for m := time.January; m <= time.December; m++ {
		start, end := period.MonthWindow(year, m)
		totals, err := uc.ledger.SumByType(ctx, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to sum %s: %w", m, err)
		}
		rows = append(rows, MonthRow{
			Month:   m,
			Label:   period.MonthRef{Year: year, Month: m}.Label(),
			Income:  totals.Income,
			Expense: totals.Expense,
			Net:     totals.Net(),
		})
	}
	return rows, nil
}

// buildHighlights scans the trend for extreme months. The scan keeps the
// first occurrence on ties.
func buildHighlights(trend []MonthRow) HighlightsSection {
	h := HighlightsSection{
		BestNetMonth:        trend[0].Month,
		WorstNetMonth:       trend[0].Month,
		HighestIncomeMonth:  trend[0].Month,
		HighestExpenseMonth: trend[0].Month,
	}
	best, worst := trend[0].Net, trend[0].Net
	income, expense := trend[0].Income, trend[0].Expense

	for _, row := range trend[1:] {
		if row.Net.GreaterThan(best) {
			best, h.BestNetMonth = row.Net, row.Month
		}
		if row.Net.LessThan(worst) {
			worst, h.WorstNetMonth = row.Net, row.Month
		}
		if row.Income.GreaterThan(income) {
			income, h.HighestIncomeMonth = row.Income, row.Month
		}
		if row.Expense.GreaterThan(expense) {
			expense, h.HighestExpenseMonth = row.Expense, row.Month
		}
	}
	return h
}

func largestByType(transactions []*entity.TransactionWithCategory) (income, expense *entity.TransactionWithCategory) {
	for _, t := range transactions {
		switch t.Transaction.Type {
		case entity.TransactionTypeIncome:
			if income == nil || t.Transaction.Amount.GreaterThan(income.Transaction.Amount) {
				income = t
			}
		case entity.TransactionTypeExpense:
			if expense == nil || t.Transaction.Amount.GreaterThan(expense.Transaction.Amount) {
				expense = t
			}
		}
	}
	return income, expense
}
