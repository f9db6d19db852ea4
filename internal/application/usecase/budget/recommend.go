// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/domain/period"
)

// DefaultLookbackMonths is the recommendation's historical window length.
const DefaultLookbackMonths = 6

// safetyBuffer is the flat markup applied on top of average monthly spend.
var safetyBuffer = decimal.NewFromFloat(1.1)

// RecommendInput represents the input for a budget recommendation.
// LookbackMonths zero falls back to the default.
type RecommendInput struct {
	CategoryID     uint
	LookbackMonths int
}

// RecommendOutput represents the output of a budget recommendation.
type RecommendOutput struct {
	Recommended    decimal.Decimal
	LookbackMonths int
	TotalSpent     decimal.Decimal
}

// RecommendUseCase suggests a monthly budget amount from historical spending.
type RecommendUseCase struct {
	categoryRepo adapter.CategoryRepository
	ledger       adapter.LedgerRepository
	clock        adapter.Clock
}

// NewRecommendUseCase creates a new RecommendUseCase instance.
func NewRecommendUseCase(
	categoryRepo adapter.CategoryRepository,
	ledger adapter.LedgerRepository,
	clock adapter.Clock,
) *RecommendUseCase {
	return &RecommendUseCase{
		categoryRepo: categoryRepo,
		ledger:       ledger,
		clock:        clock,
	}
}

// Execute sums the category's spend from the first day of the month lookback
// months ago through today inclusive, then recommends average monthly spend
// plus a 10% buffer. The average divides by the lookback length, not by the
// number of months with activity. A category with zero spend over the window
// yields ErrInsufficientSpendingHistory: the recommendation is absent, never
// zero.
func (uc *RecommendUseCase) Execute(ctx context.Context, input RecommendInput) (*RecommendOutput, error) {
	lookback := input.LookbackMonths
	if lookback == 0 {
		lookback = DefaultLookbackMonths
	}
	if lookback < 0 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidLookbackMonths,
			"lookback months must be positive",
			domainerror.ErrInvalidLookbackMonths,
		)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetCategoryNotFound,
				"category not found",
				domainerror.ErrBudgetCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}

	now := uc.clock.Now().UTC()
	start := period.MonthsBack(now, lookback)
	end := period.NextDay(entity.NormalizeDate(now))

	total, err := uc.ledger.SumForCategory(ctx, category.ID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum category spend: %w", err)
	}

	if total.IsZero() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInsufficientSpendingHistory,
			fmt.Sprintf("no spending recorded for %q in the last %d months", category.Name, lookback),
			domainerror.ErrInsufficientSpendingHistory,
		)
	}

	recommended := total.Div(decimal.NewFromInt(int64(lookback))).Mul(safetyBuffer)

	return &RecommendOutput{
		Recommended:    recommended,
		LookbackMonths: lookback,
		TotalSpent:     total,
	}, nil
}
