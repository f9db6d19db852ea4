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

// GetStatusInput represents the input for evaluating one budget.
type GetStatusInput struct {
	BudgetID uint
}

// GetStatusOutput represents the output of evaluating one budget.
type GetStatusOutput struct {
	Status *entity.BudgetStatus
}

// GetStatusUseCase evaluates a single budget against its current window.
// The window is derived from the injected clock on every call.
type GetStatusUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
	ledger       adapter.LedgerRepository
	clock        adapter.Clock
}

// NewGetStatusUseCase creates a new GetStatusUseCase instance.
func NewGetStatusUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	ledger adapter.LedgerRepository,
	clock adapter.Clock,
) *GetStatusUseCase {
	return &GetStatusUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		ledger:       ledger,
		clock:        clock,
	}
}

// Execute evaluates the budget.
func (uc *GetStatusUseCase) Execute(ctx context.Context, input GetStatusInput) (*GetStatusOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	category, err := uc.categoryRepo.FindByID(ctx, budget.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}

	status, err := evaluate(ctx, uc.ledger, uc.clock, budget, category.Name)
	if err != nil {
		return nil, err
	}

	return &GetStatusOutput{Status: status}, nil
}
