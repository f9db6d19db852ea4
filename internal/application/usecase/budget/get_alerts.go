// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// DefaultWarningThreshold is the percentage at which a budget starts
// producing approaching_limit alerts.
const DefaultWarningThreshold = 80.0

// GetAlertsInput represents the input for deriving budget alerts.
// WarningThreshold zero or negative falls back to the default.
type GetAlertsInput struct {
	WarningThreshold float64
}

// GetAlertsOutput represents the output of deriving budget alerts.
type GetAlertsOutput struct {
	Alerts []entity.BudgetAlert
}

// GetAlertsUseCase derives threshold alerts from budget statuses. Each budget
// yields at most one alert, independently of every other budget.
type GetAlertsUseCase struct {
	listStatuses *ListStatusesUseCase
}

// NewGetAlertsUseCase creates a new GetAlertsUseCase instance.
func NewGetAlertsUseCase(listStatuses *ListStatusesUseCase) *GetAlertsUseCase {
	return &GetAlertsUseCase{listStatuses: listStatuses}
}

// Execute classifies every budget: over_budget at or above 100% used,
// approaching_limit at or above the warning threshold but below 100%,
// silent otherwise. The threshold boundary is inclusive.
func (uc *GetAlertsUseCase) Execute(ctx context.Context, input GetAlertsInput) (*GetAlertsOutput, error) {
	threshold := input.WarningThreshold
	if threshold <= 0 {
		threshold = DefaultWarningThreshold
	}

	statuses, err := uc.listStatuses.Execute(ctx, ListStatusesInput{})
	if err != nil {
		return nil, err
	}

	alerts := make([]entity.BudgetAlert, 0)
	for _, status := range statuses.Statuses {
		alert, ok := classify(status, threshold)
		if ok {
			alerts = append(alerts, alert)
		}
	}

	return &GetAlertsOutput{Alerts: alerts}, nil
}

func classify(status *entity.BudgetStatus, threshold float64) (entity.BudgetAlert, bool) {
	pct := status.PercentageUsed

	switch {
	case pct >= 100:
		return budgetAlert(status, entity.BudgetAlertOverBudget,
			fmt.Sprintf("OVER BUDGET: %s (%s) - %.1f%% used", status.CategoryName, status.Budget.Period, pct)), true
	case pct >= threshold:
		return budgetAlert(status, entity.BudgetAlertApproachingLimit,
			fmt.Sprintf("WARNING: %s (%s) - %.1f%% used", status.CategoryName, status.Budget.Period, pct)), true
	default:
		return entity.BudgetAlert{}, false
	}
}

func budgetAlert(status *entity.BudgetStatus, alertType entity.BudgetAlertType, message string) entity.BudgetAlert {
	return entity.BudgetAlert{
		Type:           alertType,
		BudgetID:       status.Budget.ID,
		CategoryName:   status.CategoryName,
		Period:         status.Budget.Period,
		PercentageUsed: status.PercentageUsed,
		PeriodStart:    status.PeriodStart,
		Message:        message,
	}
}
