package dto

import (
	"time"

	"github.com/pocketledger/backend/internal/application/usecase/budget"
	"github.com/pocketledger/backend/internal/domain/entity"
)

// SetBudgetRequest represents the request body for creating or replacing a
// budget. Budgets are keyed by (category, period).
type SetBudgetRequest struct {
	CategoryID uint    `json:"category_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Period     string  `json:"period" binding:"required,oneof=monthly yearly"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID           uint      `json:"id"`
	CategoryID   uint      `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	Amount       float64   `json:"amount"`
	Period       string    `json:"period"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
	Count   int              `json:"count"`
}

// BudgetStatusResponse represents one evaluated budget window.
type BudgetStatusResponse struct {
	BudgetID       uint    `json:"budget_id"`
	CategoryID     uint    `json:"category_id"`
	CategoryName   string  `json:"category_name"`
	Amount         float64 `json:"amount"`
	Period         string  `json:"period"`
	Spent          float64 `json:"spent"`
	Remaining      float64 `json:"remaining"`
	PercentageUsed float64 `json:"percentage_used"`
	IsOverBudget   bool    `json:"is_over_budget"`
	PeriodStart    string  `json:"period_start"`
	PeriodEnd      string  `json:"period_end"`
}

// BudgetStatusListResponse represents the response for listing budget statuses.
type BudgetStatusListResponse struct {
	Statuses []BudgetStatusResponse `json:"statuses"`
	Count    int                    `json:"count"`
}

// BudgetAlertResponse represents one threshold alert.
type BudgetAlertResponse struct {
	Type           string  `json:"type"`
	BudgetID       uint    `json:"budget_id"`
	CategoryName   string  `json:"category_name"`
	Period         string  `json:"period"`
	PercentageUsed float64 `json:"percentage_used"`
	Message        string  `json:"message"`
}

// BudgetAlertListResponse represents the response for listing budget alerts.
type BudgetAlertListResponse struct {
	Alerts []BudgetAlertResponse `json:"alerts"`
	Count  int                   `json:"count"`
}

// BudgetRecommendationResponse represents a suggested monthly budget amount.
type BudgetRecommendationResponse struct {
	CategoryID     uint    `json:"category_id"`
	Recommended    float64 `json:"recommended"`
	LookbackMonths int     `json:"lookback_months"`
	TotalSpent     float64 `json:"total_spent"`
}

// ToBudgetResponse converts a budget and its category name to a DTO.
func ToBudgetResponse(b *entity.Budget, categoryName string) BudgetResponse {
	return BudgetResponse{
		ID:           b.ID,
		CategoryID:   b.CategoryID,
		CategoryName: categoryName,
		Amount:       b.Amount.InexactFloat64(),
		Period:       string(b.Period),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// ToBudgetListResponse converts budget items to a list DTO.
func ToBudgetListResponse(items []budget.BudgetItem) BudgetListResponse {
	budgets := make([]BudgetResponse, len(items))
	for i, item := range items {
		budgets[i] = ToBudgetResponse(item.Budget, item.CategoryName)
	}
	return BudgetListResponse{
		Budgets: budgets,
		Count:   len(budgets),
	}
}

// ToBudgetStatusResponse converts an evaluated budget status to a DTO.
func ToBudgetStatusResponse(status *entity.BudgetStatus) BudgetStatusResponse {
	return BudgetStatusResponse{
		BudgetID:       status.Budget.ID,
		CategoryID:     status.Budget.CategoryID,
		CategoryName:   status.CategoryName,
		Amount:         status.Budget.Amount.InexactFloat64(),
		Period:         string(status.Budget.Period),
		Spent:          status.Spent.InexactFloat64(),
		Remaining:      status.Remaining.InexactFloat64(),
		PercentageUsed: status.PercentageUsed,
		IsOverBudget:   status.IsOverBudget,
		PeriodStart:    status.PeriodStart.Format(DateLayout),
		PeriodEnd:      status.PeriodEnd.Format(DateLayout),
	}
}

// ToBudgetStatusListResponse converts evaluated statuses to a list DTO.
func ToBudgetStatusListResponse(statuses []*entity.BudgetStatus) BudgetStatusListResponse {
	items := make([]BudgetStatusResponse, len(statuses))
	for i, status := range statuses {
		items[i] = ToBudgetStatusResponse(status)
	}
	return BudgetStatusListResponse{
		Statuses: items,
		Count:    len(items),
	}
}

// ToBudgetAlertListResponse converts alerts to a list DTO.
func ToBudgetAlertListResponse(alerts []entity.BudgetAlert) BudgetAlertListResponse {
	items := make([]BudgetAlertResponse, len(alerts))
	for i, alert := range alerts {
		items[i] = BudgetAlertResponse{
			Type:           string(alert.Type),
			BudgetID:       alert.BudgetID,
			CategoryName:   alert.CategoryName,
			Period:         string(alert.Period),
			PercentageUsed: alert.PercentageUsed,
			Message:        alert.Message,
		}
	}
	return BudgetAlertListResponse{
		Alerts: items,
		Count:  len(items),
	}
}
