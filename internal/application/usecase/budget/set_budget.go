// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// SetBudgetInput represents the input for setting a budget.
type SetBudgetInput struct {
	CategoryID uint
	Amount     decimal.Decimal
	Period     entity.BudgetPeriod
}

// SetBudgetOutput represents the output of setting a budget.
type SetBudgetOutput struct {
	Budget  *entity.Budget
	Created bool
}

// SetBudgetUseCase handles budget creation and updates. Budgets are keyed by
// (category, period): setting an existing pair overwrites the amount.
type SetBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewSetBudgetUseCase creates a new SetBudgetUseCase instance.
func NewSetBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *SetBudgetUseCase {
	return &SetBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget upsert.
func (uc *SetBudgetUseCase) Execute(ctx context.Context, input SetBudgetInput) (*SetBudgetOutput, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	if !input.Period.IsValid() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"period must be 'monthly' or 'yearly'",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetCategoryNotFound,
				"category not found",
				domainerror.ErrBudgetCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}

	existing, err := uc.budgetRepo.FindByCategoryAndPeriod(ctx, input.CategoryID, input.Period)
	if err != nil && !errors.Is(err, domainerror.ErrBudgetNotFound) {
		return nil, fmt.Errorf("failed to look up budget: %w", err)
	}

	if existing != nil {
		existing.Amount = input.Amount
		existing.UpdatedAt = time.Now().UTC()
		if err := uc.budgetRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update budget: %w", err)
		}
		return &SetBudgetOutput{Budget: existing, Created: false}, nil
	}

	budget := entity.NewBudget(input.CategoryID, input.Amount, input.Period)
	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &SetBudgetOutput{Budget: budget, Created: true}, nil
}
