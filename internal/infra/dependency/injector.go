// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/pocketledger/backend/config"
	"github.com/pocketledger/backend/internal/application/usecase/budget"
	"github.com/pocketledger/backend/internal/application/usecase/category"
	"github.com/pocketledger/backend/internal/application/usecase/dashboard"
	"github.com/pocketledger/backend/internal/application/usecase/report"
	"github.com/pocketledger/backend/internal/application/usecase/transaction"
	"github.com/pocketledger/backend/internal/infra/server/router"
	"github.com/pocketledger/backend/internal/integration/adapters"
	"github.com/pocketledger/backend/internal/integration/email"
	"github.com/pocketledger/backend/internal/integration/entrypoint/controller"
	"github.com/pocketledger/backend/internal/integration/entrypoint/middleware"
	"github.com/pocketledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	SeedUseCase *category.SeedDefaultsUseCase
	AlertWorker *email.AlertWorker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	ledgerRepo := persistence.NewLedgerRepository(db)
	alertLogRepo := persistence.NewAlertLogRepository(db)

	// Create adapters
	clock := adapters.NewSystemClock()

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo)
	seedDefaultsUseCase := category.NewSeedDefaultsUseCase(categoryRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	importCSVUseCase := transaction.NewImportCSVUseCase(transactionRepo, categoryRepo)
	exportCSVUseCase := transaction.NewExportCSVUseCase(transactionRepo)

	// Create budget use cases
	setBudgetUseCase := budget.NewSetBudgetUseCase(budgetRepo, categoryRepo)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo, categoryRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, categoryRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)
	getStatusUseCase := budget.NewGetStatusUseCase(budgetRepo, categoryRepo, ledgerRepo, clock)
	listStatusesUseCase := budget.NewListStatusesUseCase(budgetRepo, categoryRepo, ledgerRepo, clock)
	getAlertsUseCase := budget.NewGetAlertsUseCase(listStatusesUseCase)
	recommendUseCase := budget.NewRecommendUseCase(categoryRepo, ledgerRepo, clock)

	// Create report use cases
	monthlyReportUseCase := report.NewMonthlyReportUseCase(ledgerRepo, clock)
	yearlyReportUseCase := report.NewYearlyReportUseCase(ledgerRepo, clock)
	categoryReportUseCase := report.NewCategoryReportUseCase(transactionRepo, categoryRepo, clock)
	quickSummaryUseCase := report.NewQuickSummaryUseCase(ledgerRepo, clock)

	// Create dashboard use cases
	monthlySeriesUseCase := dashboard.NewGetMonthlySeriesUseCase(ledgerRepo, clock)
	categoryBreakdownUseCase := dashboard.NewGetCategoryBreakdownUseCase(ledgerRepo, clock)
	budgetVsActualUseCase := dashboard.NewGetBudgetVsActualUseCase(listStatusesUseCase)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		getTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		importCSVUseCase,
		exportCSVUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	budgetController := controller.NewBudgetController(
		setBudgetUseCase,
		getBudgetUseCase,
		listBudgetsUseCase,
		deleteBudgetUseCase,
		getStatusUseCase,
		listStatusesUseCase,
		getAlertsUseCase,
		recommendUseCase,
	)

	reportController := controller.NewReportController(
		monthlyReportUseCase,
		yearlyReportUseCase,
		categoryReportUseCase,
		quickSummaryUseCase,
	)

	dashboardController := controller.NewDashboardController(
		monthlySeriesUseCase,
		categoryBreakdownUseCase,
		budgetVsActualUseCase,
	)

	// Create middleware
	rateLimiter := middleware.NewRateLimiter()

	appRouter := router.NewRouter(
		healthController,
		transactionController,
		categoryController,
		budgetController,
		reportController,
		dashboardController,
		rateLimiter,
	)

	// The alert worker is wired only when notifications are enabled.
	var alertWorker *email.AlertWorker
	if cfg.Alerts.Enabled && cfg.Alerts.OwnerEmail != "" {
		sender := email.NewResendClient(cfg.Alerts.ResendAPIKey, cfg.Alerts.FromName, cfg.Alerts.FromEmail)
		workerConfig := email.AlertWorkerConfig{
			OwnerEmail:       cfg.Alerts.OwnerEmail,
			WarningThreshold: cfg.Budgets.WarningThreshold,
			PollInterval:     cfg.Alerts.PollInterval,
		}
		alertWorker = email.NewAlertWorker(getAlertsUseCase, alertLogRepo, sender, workerConfig)
	}

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      appRouter,
		SeedUseCase: seedDefaultsUseCase,
		AlertWorker: alertWorker,
	}
}
