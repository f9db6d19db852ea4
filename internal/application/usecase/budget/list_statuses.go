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

// ListStatusesInput represents the input for evaluating all budgets.
type ListStatusesInput struct {
	Period *entity.BudgetPeriod
}

// ListStatusesOutput represents the output of evaluating all budgets.
type ListStatusesOutput struct {
	Statuses []*entity.BudgetStatus
}

// ListStatusesUseCase evaluates every budget against its current window.
type ListStatusesUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
	ledger       adapter.LedgerRepository
	clock        adapter.Clock
}

// NewListStatusesUseCase creates a new ListStatusesUseCase instance.
func NewListStatusesUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	ledger adapter.LedgerRepository,
	clock adapter.Clock,
) *ListStatusesUseCase {
	return &ListStatusesUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		ledger:       ledger,
		clock:        clock,
	}
}

// Execute evaluates all budgets. Budgets or categories deleted between the
// listing and the evaluation are skipped rather than failing the whole call.
func (uc *ListStatusesUseCase) Execute(ctx context.Context, input ListStatusesInput) (*ListStatusesOutput, error) {
	budgets, err := uc.budgetRepo.FindAll(ctx, input.Period)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	statuses := make([]*entity.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		category, err := uc.categoryRepo.FindByID(ctx, b.CategoryID)
		if err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to resolve category: %w", err)
		}

		status, err := evaluate(ctx, uc.ledger, uc.clock, b, category.Name)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}

	return &ListStatusesOutput{Statuses: statuses}, nil
}
