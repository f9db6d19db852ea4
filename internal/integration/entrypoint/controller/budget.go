package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/usecase/budget"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	setUseCase          *budget.SetBudgetUseCase
	getUseCase          *budget.GetBudgetUseCase
	listUseCase         *budget.ListBudgetsUseCase
	deleteUseCase       *budget.DeleteBudgetUseCase
	getStatusUseCase    *budget.GetStatusUseCase
	listStatusesUseCase *budget.ListStatusesUseCase
	getAlertsUseCase    *budget.GetAlertsUseCase
	recommendUseCase    *budget.RecommendUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	setUseCase *budget.SetBudgetUseCase,
	getUseCase *budget.GetBudgetUseCase,
	listUseCase *budget.ListBudgetsUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	getStatusUseCase *budget.GetStatusUseCase,
	listStatusesUseCase *budget.ListStatusesUseCase,
	getAlertsUseCase *budget.GetAlertsUseCase,
	recommendUseCase *budget.RecommendUseCase,
) *BudgetController {
	return &BudgetController{
		setUseCase:          setUseCase,
		getUseCase:          getUseCase,
		listUseCase:         listUseCase,
		deleteUseCase:       deleteUseCase,
		getStatusUseCase:    getStatusUseCase,
		listStatusesUseCase: listStatusesUseCase,
		getAlertsUseCase:    getAlertsUseCase,
		recommendUseCase:    recommendUseCase,
	}
}

// Set handles PUT /budgets requests. Budgets are keyed by (category, period);
// setting an existing pair overwrites the amount.
func (c *BudgetController) Set(ctx *gin.Context) {
	var req dto.SetBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := budget.SetBudgetInput{
		CategoryID: req.CategoryID,
		Amount:     decimal.NewFromFloat(req.Amount),
		Period:     entity.BudgetPeriod(req.Period),
	}

	output, err := c.setUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	statusCode := http.StatusOK
	if output.Created {
		statusCode = http.StatusCreated
	}
	ctx.JSON(statusCode, dto.ToBudgetResponse(output.Budget, ""))
}

// Get handles GET /budgets/:id requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	budgetID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), budget.GetBudgetInput{
		BudgetID: budgetID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget, output.CategoryName))
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	input := budget.ListBudgetsInput{}
	if rawPeriod := ctx.Query("period"); rawPeriod != "" {
		period := entity.BudgetPeriod(rawPeriod)
		if !period.IsValid() {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "period must be 'monthly' or 'yearly'",
				Code:  string(domainerror.ErrCodeInvalidBudgetPeriod),
			})
			return
		}
		input.Period = &period
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	budgetID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		BudgetID: budgetID,
	}); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetStatus handles GET /budgets/:id/status requests. The budget is evaluated
// against its current calendar window.
func (c *BudgetController) GetStatus(ctx *gin.Context) {
	budgetID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.getStatusUseCase.Execute(ctx.Request.Context(), budget.GetStatusInput{
		BudgetID: budgetID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetStatusResponse(output.Status))
}

// ListStatuses handles GET /budgets/status requests.
func (c *BudgetController) ListStatuses(ctx *gin.Context) {
	input := budget.ListStatusesInput{}
	if rawPeriod := ctx.Query("period"); rawPeriod != "" {
		period := entity.BudgetPeriod(rawPeriod)
		if !period.IsValid() {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "period must be 'monthly' or 'yearly'",
				Code:  string(domainerror.ErrCodeInvalidBudgetPeriod),
			})
			return
		}
		input.Period = &period
	}

	output, err := c.listStatusesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetStatusListResponse(output.Statuses))
}

// GetAlerts handles GET /budgets/alerts requests. The warning threshold
// defaults to 80 percent.
func (c *BudgetController) GetAlerts(ctx *gin.Context) {
	input := budget.GetAlertsInput{}
	if rawThreshold := ctx.Query("threshold"); rawThreshold != "" {
		threshold, err := strconv.ParseFloat(rawThreshold, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid threshold parameter",
			})
			return
		}
		input.WarningThreshold = threshold
	}

	output, err := c.getAlertsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetAlertListResponse(output.Alerts))
}

// Recommend handles GET /budgets/recommendation requests. The suggestion is
// average historical spending plus a safety buffer.
func (c *BudgetController) Recommend(ctx *gin.Context) {
	categoryID, ok := parseIntQuery(ctx, "category_id")
	if !ok {
		return
	}
	if categoryID <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "category_id parameter is required",
		})
		return
	}

	lookback, ok := parseIntQuery(ctx, "lookback_months")
	if !ok {
		return
	}

	output, err := c.recommendUseCase.Execute(ctx.Request.Context(), budget.RecommendInput{
		CategoryID:     uint(categoryID),
		LookbackMonths: lookback,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BudgetRecommendationResponse{
		CategoryID:     uint(categoryID),
		Recommended:    output.Recommended.InexactFloat64(),
		LookbackMonths: output.LookbackMonths,
		TotalSpent:     output.TotalSpent.InexactFloat64(),
	})
}

// handleBudgetError maps budget errors to HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var bdgErr *domainerror.BudgetError
	if errors.As(err, &bdgErr) {
		ctx.JSON(c.getStatusCodeForBudgetError(bdgErr.Code), dto.ErrorResponse{
			Error: bdgErr.Message,
			Code:  string(bdgErr.Code),
		})
		return
	}

	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		statusCode := http.StatusInternalServerError
		if catErr.Code == domainerror.ErrCodeCategoryNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound,
		domainerror.ErrCodeBudgetCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidBudgetAmount,
		domainerror.ErrCodeInvalidBudgetPeriod,
		domainerror.ErrCodeInvalidLookbackMonths:
		return http.StatusBadRequest
	case domainerror.ErrCodeInsufficientSpendingHistory:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
