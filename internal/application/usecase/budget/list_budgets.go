// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	Period *entity.BudgetPeriod
}

// BudgetItem is a budget with its resolved category name.
type BudgetItem struct {
	Budget       *entity.Budget
	CategoryName string
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []BudgetItem
}

// ListBudgetsUseCase handles budget listing logic.
type ListBudgetsUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute lists budgets with category names, optionally filtered by period.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	if input.Period != nil && !input.Period.IsValid() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"period must be 'monthly' or 'yearly'",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	budgets, err := uc.budgetRepo.FindAll(ctx, input.Period)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	items := make([]BudgetItem, 0, len(budgets))
	for _, b := range budgets {
		category, err := uc.categoryRepo.FindByID(ctx, b.CategoryID)
		if err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to resolve category: %w", err)
		}
		items = append(items, BudgetItem{Budget: b, CategoryName: category.Name})
	}

	return &ListBudgetsOutput{Budgets: items}, nil
}
