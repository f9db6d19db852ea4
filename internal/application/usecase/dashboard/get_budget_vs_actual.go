// Package dashboard contains chart-data use cases.
package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/usecase/budget"
	"github.com/pocketledger/backend/internal/domain/entity"
)

// BudgetBar is one bar pair of the budget-vs-actual chart.
type BudgetBar struct {
	CategoryName   string
	Budgeted       decimal.Decimal
	Spent          decimal.Decimal
	PercentageUsed float64
}

// GetBudgetVsActualOutput represents the output of the budget-vs-actual chart.
type GetBudgetVsActualOutput struct {
	Bars []BudgetBar
}

// GetBudgetVsActualUseCase builds the monthly budget-vs-actual bar chart from
// evaluated budget statuses.
type GetBudgetVsActualUseCase struct {
	listStatuses *budget.ListStatusesUseCase
}

// NewGetBudgetVsActualUseCase creates a new GetBudgetVsActualUseCase instance.
func NewGetBudgetVsActualUseCase(listStatuses *budget.ListStatusesUseCase) *GetBudgetVsActualUseCase {
	return &GetBudgetVsActualUseCase{listStatuses: listStatuses}
}

// Execute returns one bar per monthly budget, evaluated against the current
// month window.
func (uc *GetBudgetVsActualUseCase) Execute(ctx context.Context) (*GetBudgetVsActualOutput, error) {
	monthly := entity.BudgetPeriodMonthly
	statuses, err := uc.listStatuses.Execute(ctx, budget.ListStatusesInput{Period: &monthly})
	if err != nil {
		return nil, err
	}

	bars := make([]BudgetBar, 0, len(statuses.Statuses))
	for _, status := range statuses.Statuses {
		bars = append(bars, BudgetBar{
			CategoryName:   status.CategoryName,
			Budgeted:       status.Budget.Amount,
			Spent:          status.Spent,
			PercentageUsed: status.PercentageUsed,
		})
	}

	return &GetBudgetVsActualOutput{Bars: bars}, nil
}
