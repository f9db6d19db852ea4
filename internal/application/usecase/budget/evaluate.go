// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	"github.com/pocketledger/backend/internal/domain/period"
)

// currentWindow derives the budget's active half-open window from now.
// Monthly budgets cover the calendar month containing now, yearly budgets
// cover the calendar year.
func currentWindow(now time.Time, budgetPeriod entity.BudgetPeriod) (start, end time.Time) {
	if budgetPeriod == entity.BudgetPeriodYearly {
		return period.YearWindow(now.Year())
	}
	return period.MonthWindow(now.Year(), now.Month())
}

// evaluate computes the status of one budget for its current window.
// The percentage guards against a zero amount even though validation
// forbids storing one.
func evaluate(
	ctx context.Context,
	ledger adapter.LedgerRepository,
	clock adapter.Clock,
	budget *entity.Budget,
	categoryName string,
) (*entity.BudgetStatus, error) {
	start, end := currentWindow(clock.Now().UTC(), budget.Period)

	spent, err := ledger.SumForCategory(ctx, budget.CategoryID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum category spend: %w", err)
	}

	var percentageUsed float64
	if budget.Amount.IsPositive() {
		percentageUsed, _ = spent.Div(budget.Amount).Mul(decimal.NewFromInt(100)).Float64()
	}

	return &entity.BudgetStatus{
		Budget:         budget,
		CategoryName:   categoryName,
		Spent:          spent,
		Remaining:      budget.Amount.Sub(spent),
		PercentageUsed: percentageUsed,
		IsOverBudget:   spent.GreaterThan(budget.Amount),
		PeriodStart:    start,
		PeriodEnd:      end,
	}, nil
}
