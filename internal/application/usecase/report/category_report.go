// Package report contains report composition use cases.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/domain/period"
)

// recentTransactionCount is how many recent transactions the category
// report includes.
const recentTransactionCount = 10

// CategoryReportInput represents the input for the category report.
// StartDate and EndDate are inclusive calendar dates; both default to
// [January 1 of the current year, today] when nil.
type CategoryReportInput struct {
	CategoryID uint
	StartDate  *time.Time
	EndDate    *time.Time
}

// CategoryReportOutput is the composed per-category report.
type CategoryReportOutput struct {
	Category           *entity.Category
	StartDate          time.Time
	EndDate            time.Time
	Total              decimal.Decimal
	Count              int
	Average            decimal.Decimal
	Min                decimal.Decimal
	Max                decimal.Decimal
	RecentTransactions []*entity.TransactionWithCategory
}

// CategoryReportUseCase composes window statistics for one category.
type CategoryReportUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	clock           adapter.Clock
}

// NewCategoryReportUseCase creates a new CategoryReportUseCase instance.
func NewCategoryReportUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
) *CategoryReportUseCase {
	return &CategoryReportUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		clock:           clock,
	}
}

// Execute composes the category report. A window with no transactions yields
// ErrNoTransactionsInPeriod rather than a zeroed report.
func (uc *CategoryReportUseCase) Execute(ctx context.Context, input CategoryReportInput) (*CategoryReportOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}

	now := uc.clock.Now().UTC()
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	end := entity.NormalizeDate(now)
	if input.StartDate != nil {
		start = entity.NormalizeDate(*input.StartDate)
	}
	if input.EndDate != nil {
		end = entity.NormalizeDate(*input.EndDate)
	}
	if end.Before(start) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not be before start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	exclusiveEnd := period.NextDay(end)
	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		CategoryID: &category.ID,
		StartDate:  &start,
		EndDate:    &exclusiveEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	if len(transactions) == 0 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeNoTransactionsInPeriod,
			fmt.Sprintf("no transactions for %q in the requested period", category.Name),
			domainerror.ErrNoTransactionsInPeriod,
		)
	}

	total := decimal.Zero
	minAmount := transactions[0].Transaction.Amount
	maxAmount := transactions[0].Transaction.Amount
	for _, t := range transactions {
		amount := t.Transaction.Amount
		total = total.Add(amount)
		if amount.LessThan(minAmount) {
			minAmount = amount
		}
		if amount.GreaterThan(maxAmount) {
			maxAmount = amount
		}
	}

	recent := transactions
	if len(recent) > recentTransactionCount {
		recent = recent[:recentTransactionCount]
	}

	return &CategoryReportOutput{
		Category:           category,
		StartDate:          start,
		EndDate:            end,
		Total:              total,
		Count:              len(transactions),
		Average:            total.Div(decimal.NewFromInt(int64(len(transactions)))),
		Min:                minAmount,
		Max:                maxAmount,
		RecentTransactions: recent,
	}, nil
}
