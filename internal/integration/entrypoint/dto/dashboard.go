package dto

import (
	"github.com/pocketledger/backend/internal/application/usecase/dashboard"
)

// MonthPointResponse represents one month of the line-chart series.
type MonthPointResponse struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Label   string  `json:"label"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// MonthlySeriesResponse represents the trailing-months series.
type MonthlySeriesResponse struct {
	Points []MonthPointResponse `json:"points"`
}

// BreakdownSliceResponse represents one slice of the category pie chart.
type BreakdownSliceResponse struct {
	CategoryID   uint    `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Amount       float64 `json:"amount"`
	Percentage   float64 `json:"percentage"`
}

// CategoryBreakdownResponse represents the month's per-category shares.
type CategoryBreakdownResponse struct {
	Label  string                   `json:"label"`
	Total  float64                  `json:"total"`
	Slices []BreakdownSliceResponse `json:"slices"`
}

// BudgetBarResponse represents one bar of the budget-vs-actual chart.
type BudgetBarResponse struct {
	CategoryName   string  `json:"category_name"`
	Budgeted       float64 `json:"budgeted"`
	Spent          float64 `json:"spent"`
	PercentageUsed float64 `json:"percentage_used"`
}

// BudgetVsActualResponse represents the budget-vs-actual chart.
type BudgetVsActualResponse struct {
	Bars []BudgetBarResponse `json:"bars"`
}

// ToMonthlySeriesResponse converts series points to a DTO.
func ToMonthlySeriesResponse(output *dashboard.GetMonthlySeriesOutput) MonthlySeriesResponse {
	points := make([]MonthPointResponse, len(output.Points))
	for i, point := range output.Points {
		points[i] = MonthPointResponse{
			Year:    point.Year,
			Month:   int(point.Month),
			Label:   point.Label,
			Income:  point.Income.InexactFloat64(),
			Expense: point.Expense.InexactFloat64(),
			Net:     point.Net.InexactFloat64(),
		}
	}
	return MonthlySeriesResponse{Points: points}
}

// ToCategoryBreakdownResponse converts breakdown slices to a DTO.
func ToCategoryBreakdownResponse(output *dashboard.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	slices := make([]BreakdownSliceResponse, len(output.Slices))
	for i, slice := range output.Slices {
		slices[i] = BreakdownSliceResponse{
			CategoryID:   slice.CategoryID,
			CategoryName: slice.CategoryName,
			Amount:       slice.Amount.InexactFloat64(),
			Percentage:   slice.Percentage,
		}
	}
	return CategoryBreakdownResponse{
		Label:  output.Label,
		Total:  output.Total.InexactFloat64(),
		Slices: slices,
	}
}

// ToBudgetVsActualResponse converts budget bars to a DTO.
func ToBudgetVsActualResponse(output *dashboard.GetBudgetVsActualOutput) BudgetVsActualResponse {
	bars := make([]BudgetBarResponse, len(output.Bars))
	for i, bar := range output.Bars {
		bars[i] = BudgetBarResponse{
			CategoryName:   bar.CategoryName,
			Budgeted:       bar.Budgeted.InexactFloat64(),
			Spent:          bar.Spent.InexactFloat64(),
			PercentageUsed: bar.PercentageUsed,
		}
	}
	return BudgetVsActualResponse{Bars: bars}
}
