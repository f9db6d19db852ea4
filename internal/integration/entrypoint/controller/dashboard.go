package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/application/usecase/dashboard"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard chart endpoints.
type DashboardController struct {
	seriesUseCase    *dashboard.GetMonthlySeriesUseCase
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase
	budgetBarUseCase *dashboard.GetBudgetVsActualUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	seriesUseCase *dashboard.GetMonthlySeriesUseCase,
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
	budgetBarUseCase *dashboard.GetBudgetVsActualUseCase,
) *DashboardController {
	return &DashboardController{
		seriesUseCase:    seriesUseCase,
		breakdownUseCase: breakdownUseCase,
		budgetBarUseCase: budgetBarUseCase,
	}
}

// MonthlySeries handles GET /dashboard/monthly-series requests. The series
// covers the trailing months ending at the current one.
func (c *DashboardController) MonthlySeries(ctx *gin.Context) {
	months, ok := parseIntQuery(ctx, "months")
	if !ok {
		return
	}

	output, err := c.seriesUseCase.Execute(ctx.Request.Context(), dashboard.GetMonthlySeriesInput{
		Months: months,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySeriesResponse(output))
}

// CategoryBreakdown handles GET /dashboard/category-breakdown requests. The
// window defaults to the current month, the kind to expense.
func (c *DashboardController) CategoryBreakdown(ctx *gin.Context) {
	year, ok := parseIntQuery(ctx, "year")
	if !ok {
		return
	}
	month, ok := parseIntQuery(ctx, "month")
	if !ok {
		return
	}

	input := dashboard.GetCategoryBreakdownInput{
		Year:  year,
		Month: month,
	}
	if rawKind := ctx.Query("type"); rawKind != "" {
		kind := entity.TransactionType(rawKind)
		if !kind.IsValid() {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "type must be 'income' or 'expense'",
				Code:  string(domainerror.ErrCodeInvalidTransactionType),
			})
			return
		}
		input.Kind = &kind
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

// BudgetVsActual handles GET /dashboard/budget-vs-actual requests. Only
// monthly budgets are charted.
func (c *DashboardController) BudgetVsActual(ctx *gin.Context) {
	output, err := c.budgetBarUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetVsActualResponse(output))
}

// handleDashboardError maps dashboard errors to HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		statusCode := http.StatusInternalServerError
		switch rptErr.Code {
		case domainerror.ErrCodeInvalidSeriesLength,
			domainerror.ErrCodeInvalidReportMonth,
			domainerror.ErrCodeInvalidReportYear:
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
