package dto

import (
	"github.com/pocketledger/backend/internal/application/usecase/report"
)

// TotalsResponse represents income/expense totals for a window. SavingsRate
// is omitted when the window had no income.
type TotalsResponse struct {
	Income      float64  `json:"income"`
	Expense     float64  `json:"expense"`
	Net         float64  `json:"net"`
	SavingsRate *float64 `json:"savings_rate,omitempty"`
}

// BreakdownEntryResponse represents one category's share of its kind total.
type BreakdownEntryResponse struct {
	CategoryID   uint    `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Amount       float64 `json:"amount"`
	Percentage   float64 `json:"percentage"`
}

// StatisticsResponse represents transaction-derived statistics for a window.
type StatisticsResponse struct {
	IncomeCount    int                   `json:"income_count"`
	ExpenseCount   int                   `json:"expense_count"`
	AverageIncome  float64               `json:"average_income"`
	AverageExpense float64               `json:"average_expense"`
	TopExpenses    []TransactionResponse `json:"top_expenses"`
}

// ComparisonResponse compares a window with the preceding one. Percentage
// deltas are omitted per side when the previous value was zero.
type ComparisonResponse struct {
	PreviousLabel    string   `json:"previous_label"`
	PreviousIncome   float64  `json:"previous_income"`
	PreviousExpense  float64  `json:"previous_expense"`
	IncomeChange     float64  `json:"income_change"`
	ExpenseChange    float64  `json:"expense_change"`
	IncomeChangePct  *float64 `json:"income_change_pct,omitempty"`
	ExpenseChangePct *float64 `json:"expense_change_pct,omitempty"`
}

// MonthlyReportResponse represents the composed monthly report.
type MonthlyReportResponse struct {
	Label            string                   `json:"label"`
	Totals           TotalsResponse           `json:"totals"`
	IncomeBreakdown  []BreakdownEntryResponse `json:"income_breakdown"`
	ExpenseBreakdown []BreakdownEntryResponse `json:"expense_breakdown"`
	Statistics       StatisticsResponse       `json:"statistics"`
	Comparison       *ComparisonResponse      `json:"comparison,omitempty"`
}

// MonthRowResponse represents one month of the yearly trend table.
type MonthRowResponse struct {
	Month   int     `json:"month"`
	Label   string  `json:"label"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// HighlightsResponse names the year's notable months.
type HighlightsResponse struct {
	BestNetMonth        int `json:"best_net_month"`
	WorstNetMonth       int `json:"worst_net_month"`
	HighestIncomeMonth  int `json:"highest_income_month"`
	HighestExpenseMonth int `json:"highest_expense_month"`
}

// YearlyReportResponse represents the composed yearly report.
type YearlyReportResponse struct {
	Year              int                      `json:"year"`
	Totals            TotalsResponse           `json:"totals"`
	IncomeBreakdown   []BreakdownEntryResponse `json:"income_breakdown"`
	ExpenseBreakdown  []BreakdownEntryResponse `json:"expense_breakdown"`
	Statistics        StatisticsResponse       `json:"statistics"`
	MonthlyTrend      []MonthRowResponse       `json:"monthly_trend"`
	Highlights        HighlightsResponse       `json:"highlights"`
	AvgMonthlyIncome  float64                  `json:"avg_monthly_income"`
	AvgMonthlyExpense float64                  `json:"avg_monthly_expense"`
	LargestIncome     *TransactionResponse     `json:"largest_income,omitempty"`
	LargestExpense    *TransactionResponse     `json:"largest_expense,omitempty"`
	Comparison        *ComparisonResponse      `json:"comparison,omitempty"`
}

// CategoryReportResponse represents the composed per-category report.
type CategoryReportResponse struct {
	Category           CategoryResponse      `json:"category"`
	StartDate          string                `json:"start_date"`
	EndDate            string                `json:"end_date"`
	Total              float64               `json:"total"`
	Count              int                   `json:"count"`
	Average            float64               `json:"average"`
	Min                float64               `json:"min"`
	Max                float64               `json:"max"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
}

// QuickSummaryResponse represents the dashboard's headline numbers.
type QuickSummaryResponse struct {
	MonthLabel        string         `json:"month_label"`
	CurrentMonth      TotalsResponse `json:"current_month"`
	CurrentYear       TotalsResponse `json:"current_year"`
	TotalTransactions int64          `json:"total_transactions"`
	NetWorth          float64        `json:"net_worth"`
}

// ToTotalsResponse converts a totals section to a DTO.
func ToTotalsResponse(totals report.TotalsSection) TotalsResponse {
	return TotalsResponse{
		Income:      totals.Income.InexactFloat64(),
		Expense:     totals.Expense.InexactFloat64(),
		Net:         totals.Net.InexactFloat64(),
		SavingsRate: totals.SavingsRate,
	}
}

// ToBreakdownResponse converts breakdown entries to DTOs.
func ToBreakdownResponse(entries []report.BreakdownEntry) []BreakdownEntryResponse {
	items := make([]BreakdownEntryResponse, len(entries))
	for i, entry := range entries {
		items[i] = BreakdownEntryResponse{
			CategoryID:   entry.CategoryID,
			CategoryName: entry.CategoryName,
			Amount:       entry.Amount.InexactFloat64(),
			Percentage:   entry.Percentage,
		}
	}
	return items
}

// ToStatisticsResponse converts a statistics section to a DTO.
func ToStatisticsResponse(stats report.StatisticsSection) StatisticsResponse {
	top := make([]TransactionResponse, len(stats.TopExpenses))
	for i, t := range stats.TopExpenses {
		top[i] = ToTransactionResponse(t.Transaction, t.Category)
	}
	return StatisticsResponse{
		IncomeCount:    stats.IncomeCount,
		ExpenseCount:   stats.ExpenseCount,
		AverageIncome:  stats.AverageIncome.InexactFloat64(),
		AverageExpense: stats.AverageExpense.InexactFloat64(),
		TopExpenses:    top,
	}
}

// ToComparisonResponse converts an optional comparison section to a DTO.
func ToComparisonResponse(comparison *report.ComparisonSection) *ComparisonResponse {
	if comparison == nil {
		return nil
	}
	return &ComparisonResponse{
		PreviousLabel:    comparison.PreviousLabel,
		PreviousIncome:   comparison.PreviousIncome.InexactFloat64(),
		PreviousExpense:  comparison.PreviousExpense.InexactFloat64(),
		IncomeChange:     comparison.IncomeChange.InexactFloat64(),
		ExpenseChange:    comparison.ExpenseChange.InexactFloat64(),
		IncomeChangePct:  comparison.IncomeChangePct,
		ExpenseChangePct: comparison.ExpenseChangePct,
	}
}

// ToMonthlyReportResponse converts the monthly report output to a DTO.
func ToMonthlyReportResponse(output *report.MonthlyReportOutput) MonthlyReportResponse {
	return MonthlyReportResponse{
		Label:            output.Label,
		Totals:           ToTotalsResponse(output.Totals),
		IncomeBreakdown:  ToBreakdownResponse(output.IncomeBreakdown),
		ExpenseBreakdown: ToBreakdownResponse(output.ExpenseBreakdown),
		Statistics:       ToStatisticsResponse(output.Statistics),
		Comparison:       ToComparisonResponse(output.Comparison),
	}
}

// ToYearlyReportResponse converts the yearly report output to a DTO.
func ToYearlyReportResponse(output *report.YearlyReportOutput) YearlyReportResponse {
	trend := make([]MonthRowResponse, len(output.MonthlyTrend))
	for i, row := range output.MonthlyTrend {
		trend[i] = MonthRowResponse{
			Month:   int(row.Month),
			Label:   row.Label,
			Income:  row.Income.InexactFloat64(),
			Expense: row.Expense.InexactFloat64(),
			Net:     row.Net.InexactFloat64(),
		}
	}

	response := YearlyReportResponse{
		Year:             output.Year,
		Totals:           ToTotalsResponse(output.Totals),
		IncomeBreakdown:  ToBreakdownResponse(output.IncomeBreakdown),
		ExpenseBreakdown: ToBreakdownResponse(output.ExpenseBreakdown),
		Statistics:       ToStatisticsResponse(output.Statistics),
		MonthlyTrend:     trend,
		Highlights: HighlightsResponse{
			BestNetMonth:        int(output.Highlights.BestNetMonth),
			WorstNetMonth:       int(output.Highlights.WorstNetMonth),
			HighestIncomeMonth:  int(output.Highlights.HighestIncomeMonth),
			HighestExpenseMonth: int(output.Highlights.HighestExpenseMonth),
		},
		AvgMonthlyIncome:  output.AvgMonthlyIncome.InexactFloat64(),
		AvgMonthlyExpense: output.AvgMonthlyExpense.InexactFloat64(),
		Comparison:        ToComparisonResponse(output.Comparison),
	}
	if output.LargestIncome != nil {
		largest := ToTransactionResponse(output.LargestIncome.Transaction, output.LargestIncome.Category)
		response.LargestIncome = &largest
	}
	if output.LargestExpense != nil {
		largest := ToTransactionResponse(output.LargestExpense.Transaction, output.LargestExpense.Category)
		response.LargestExpense = &largest
	}
	return response
}

// ToCategoryReportResponse converts the category report output to a DTO.
func ToCategoryReportResponse(output *report.CategoryReportOutput) CategoryReportResponse {
	recent := make([]TransactionResponse, len(output.RecentTransactions))
	for i, t := range output.RecentTransactions {
		recent[i] = ToTransactionResponse(t.Transaction, t.Category)
	}
	return CategoryReportResponse{
		Category:           ToCategoryResponse(output.Category),
		StartDate:          output.StartDate.Format(DateLayout),
		EndDate:            output.EndDate.Format(DateLayout),
		Total:              output.Total.InexactFloat64(),
		Count:              output.Count,
		Average:            output.Average.InexactFloat64(),
		Min:                output.Min.InexactFloat64(),
		Max:                output.Max.InexactFloat64(),
		RecentTransactions: recent,
	}
}

// ToQuickSummaryResponse converts the quick summary output to a DTO.
func ToQuickSummaryResponse(output *report.QuickSummaryOutput) QuickSummaryResponse {
	response := QuickSummaryResponse{
		MonthLabel:   output.MonthLabel,
		CurrentMonth: ToTotalsResponse(output.CurrentMonth),
		CurrentYear:  ToTotalsResponse(output.CurrentYear),
	}
	if output.Overall != nil {
		response.TotalTransactions = output.Overall.TotalCount
		response.NetWorth = output.Overall.NetWorth().InexactFloat64()
	}
	return response
}
