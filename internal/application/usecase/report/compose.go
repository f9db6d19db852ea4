// Package report contains report composition use cases. Composers return
// structured sections; rendering them as text or JSON is the caller's concern.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
)

// topExpenseCount is how many expenses the statistics section surfaces.
const topExpenseCount = 5

// TotalsSection summarizes a window. SavingsRate is net/income as a
// percentage and is present only when the window had income.
type TotalsSection struct {
	Income      decimal.Decimal
	Expense     decimal.Decimal
	Net         decimal.Decimal
	SavingsRate *float64
}

// BreakdownEntry is one category's share of its kind total.
type BreakdownEntry struct {
	CategoryID   uint
	CategoryName string
	Amount       decimal.Decimal
	Percentage   float64
}

// StatisticsSection holds transaction-derived statistics for a window.
type StatisticsSection struct {
	IncomeCount    int
	ExpenseCount   int
	AverageIncome  decimal.Decimal
	AverageExpense decimal.Decimal
	TopExpenses    []*entity.TransactionWithCategory
}

// ComparisonSection compares a window with the preceding one. Percentage
// deltas are present per side only when the previous value is nonzero.
type ComparisonSection struct {
	PreviousLabel    string
	PreviousIncome   decimal.Decimal
	PreviousExpense  decimal.Decimal
	IncomeChange     decimal.Decimal
	ExpenseChange    decimal.Decimal
	IncomeChangePct  *float64
	ExpenseChangePct *float64
}

// buildTotals aggregates a window into the totals section.
func buildTotals(ctx context.Context, ledger adapter.LedgerRepository, start, end time.Time) (TotalsSection, error) {
	totals, err := ledger.SumByType(ctx, start, end)
	if err != nil {
		return TotalsSection{}, fmt.Errorf("failed to sum window: %w", err)
	}

	section := TotalsSection{
		Income:  totals.Income,
		Expense: totals.Expense,
		Net:     totals.Net(),
	}
	if totals.Income.IsPositive() {
		rate, _ := totals.Net().Div(totals.Income).Mul(decimal.NewFromInt(100)).Float64()
		section.SavingsRate = &rate
	}
	return section, nil
}

// buildBreakdown computes one kind's category shares over a window, ordered
// by amount descending. Shares are zero when the kind total is zero.
func buildBreakdown(
	ctx context.Context,
	ledger adapter.LedgerRepository,
	start, end time.Time,
	kind entity.TransactionType,
	kindTotal decimal.Decimal,
) ([]BreakdownEntry, error) {
	byCategory, err := ledger.SumByCategory(ctx, start, end, &kind)
	if err != nil {
		return nil, fmt.Errorf("failed to sum categories: %w", err)
	}

	entries := make([]BreakdownEntry, 0, len(byCategory))
	for _, ct := range byCategory {
		entry := BreakdownEntry{
			CategoryID:   ct.CategoryID,
			CategoryName: ct.CategoryName,
			Amount:       ct.Total,
		}
		if kindTotal.IsPositive() {
			entry.Percentage, _ = ct.Total.Div(kindTotal).Mul(decimal.NewFromInt(100)).Float64()
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// buildStatistics derives counts, averages and the top expenses from the
// window's transactions. Averages are zero when a kind has no transactions.
// The top-expense sort is stable: equal amounts keep retrieval order.
func buildStatistics(transactions []*entity.TransactionWithCategory) StatisticsSection {
	var stats StatisticsSection
	incomeSum, expenseSum := decimal.Zero, decimal.Zero
	var expenses []*entity.TransactionWithCategory

	for _, t := range transactions {
		switch t.Transaction.Type {
		case entity.TransactionTypeIncome:
			stats.IncomeCount++
			incomeSum = incomeSum.Add(t.Transaction.Amount)
		case entity.TransactionTypeExpense:
			stats.ExpenseCount++
			expenseSum = expenseSum.Add(t.Transaction.Amount)
		}
	}

	stats.AverageIncome = decimal.Zero
	stats.AverageExpense = decimal.Zero
	if stats.IncomeCount > 0 {
		stats.AverageIncome = incomeSum.Div(decimal.NewFromInt(int64(stats.IncomeCount)))
	}
	if stats.ExpenseCount > 0 {
		stats.AverageExpense = expenseSum.Div(decimal.NewFromInt(int64(stats.ExpenseCount)))
	}

	for _, t := range transactions {
		if t.Transaction.Type == entity.TransactionTypeExpense {
			expenses = append(expenses, t)
		}
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Transaction.Amount.GreaterThan(expenses[j].Transaction.Amount)
	})
	if len(expenses) > topExpenseCount {
		expenses = expenses[:topExpenseCount]
	}
	stats.TopExpenses = expenses

	return stats
}

// buildComparison compares current totals with a previous window. The section
// is absent (nil) when the previous window had no activity at all.
func buildComparison(
	ctx context.Context,
	ledger adapter.LedgerRepository,
	current TotalsSection,
	prevStart, prevEnd time.Time,
	prevLabel string,
) (*ComparisonSection, error) {
	prev, err := ledger.SumByType(ctx, prevStart, prevEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to sum previous window: %w", err)
	}
	if prev.IsZero() {
		return nil, nil
	}

	section := &ComparisonSection{
		PreviousLabel:   prevLabel,
		PreviousIncome:  prev.Income,
		PreviousExpense: prev.Expense,
		IncomeChange:    current.Income.Sub(prev.Income),
		ExpenseChange:   current.Expense.Sub(prev.Expense),
	}
	if prev.Income.IsPositive() {
		pct, _ := section.IncomeChange.Div(prev.Income).Mul(decimal.NewFromInt(100)).Float64()
		section.IncomeChangePct = &pct
	}
	if prev.Expense.IsPositive() {
		pct, _ := section.ExpenseChange.Div(prev.Expense).Mul(decimal.NewFromInt(100)).Float64()
		section.ExpenseChangePct = &pct
	}
	return section, nil
}
