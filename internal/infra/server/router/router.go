// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/integration/entrypoint/controller"
	"github.com/pocketledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
	categoryController    *controller.CategoryController
	budgetController      *controller.BudgetController
	reportController      *controller.ReportController
	dashboardController   *controller.DashboardController
	rateLimiter           *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	categoryController *controller.CategoryController,
	budgetController *controller.BudgetController,
	reportController *controller.ReportController,
	dashboardController *controller.DashboardController,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		transactionController: transactionController,
		categoryController:    categoryController,
		budgetController:      budgetController,
		reportController:      reportController,
		dashboardController:   dashboardController,
		rateLimiter:           rateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware (logger and recovery) plus request correlation
	r.engine = gin.Default()
	r.engine.Use(middleware.RequestID())
	if r.rateLimiter != nil {
		r.engine.Use(r.rateLimiter.Middleware())
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.GET("/export", r.transactionController.ExportCSV)
			transactions.POST("/import", r.transactionController.ImportCSV)
			transactions.GET("/:id", r.transactionController.Get)
			transactions.PUT("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.PUT("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
		}

		budgets := v1.Group("/budgets")
		{
			budgets.GET("", r.budgetController.List)
			budgets.PUT("", r.budgetController.Set)
			budgets.GET("/status", r.budgetController.ListStatuses)
			budgets.GET("/alerts", r.budgetController.GetAlerts)
			budgets.GET("/recommendation", r.budgetController.Recommend)
			budgets.GET("/:id", r.budgetController.Get)
			budgets.GET("/:id/status", r.budgetController.GetStatus)
			budgets.DELETE("/:id", r.budgetController.Delete)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/monthly", r.reportController.Monthly)
			reports.GET("/yearly", r.reportController.Yearly)
			reports.GET("/category/:id", r.reportController.Category)
			reports.GET("/summary", r.reportController.Summary)
		}

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/monthly-series", r.dashboardController.MonthlySeries)
			dashboard.GET("/category-breakdown", r.dashboardController.CategoryBreakdown)
			dashboard.GET("/budget-vs-actual", r.dashboardController.BudgetVsActual)
		}
	}
}
