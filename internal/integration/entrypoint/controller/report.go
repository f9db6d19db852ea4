package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/application/usecase/report"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/integration/entrypoint/dto"
)

// ReportController handles report endpoints.
type ReportController struct {
	monthlyUseCase  *report.MonthlyReportUseCase
	yearlyUseCase   *report.YearlyReportUseCase
	categoryUseCase *report.CategoryReportUseCase
	summaryUseCase  *report.QuickSummaryUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	monthlyUseCase *report.MonthlyReportUseCase,
	yearlyUseCase *report.YearlyReportUseCase,
	categoryUseCase *report.CategoryReportUseCase,
	summaryUseCase *report.QuickSummaryUseCase,
) *ReportController {
	return &ReportController{
		monthlyUseCase:  monthlyUseCase,
		yearlyUseCase:   yearlyUseCase,
		categoryUseCase: categoryUseCase,
		summaryUseCase:  summaryUseCase,
	}
}

// Monthly handles GET /reports/monthly requests. Year and month default to
// the current calendar month when omitted.
func (c *ReportController) Monthly(ctx *gin.Context) {
	year, ok := parseIntQuery(ctx, "year")
	if !ok {
		return
	}
	month, ok := parseIntQuery(ctx, "month")
	if !ok {
		return
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), report.MonthlyReportInput{
		Year:  year,
		Month: month,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyReportResponse(output))
}

// Yearly handles GET /reports/yearly requests. The year defaults to the
// current calendar year when omitted.
func (c *ReportController) Yearly(ctx *gin.Context) {
	year, ok := parseIntQuery(ctx, "year")
	if !ok {
		return
	}

	output, err := c.yearlyUseCase.Execute(ctx.Request.Context(), report.YearlyReportInput{
		Year: year,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToYearlyReportResponse(output))
}

// Category handles GET /reports/category/:id requests. The window defaults
// to the current year to date.
func (c *ReportController) Category(ctx *gin.Context) {
	categoryID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	startDate, ok := parseDateQuery(ctx, "start_date")
	if !ok {
		return
	}
	endDate, ok := parseDateQuery(ctx, "end_date")
	if !ok {
		return
	}

	output, err := c.categoryUseCase.Execute(ctx.Request.Context(), report.CategoryReportInput{
		CategoryID: categoryID,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryReportResponse(output))
}

// Summary handles GET /reports/summary requests.
func (c *ReportController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToQuickSummaryResponse(output))
}

// handleReportError maps report errors to HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		ctx.JSON(c.getStatusCodeForReportError(rptErr.Code), dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
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

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidReportMonth,
		domainerror.ErrCodeInvalidReportYear,
		domainerror.ErrCodeInvalidSeriesLength:
		return http.StatusBadRequest
	case domainerror.ErrCodeNoTransactionsInPeriod:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
