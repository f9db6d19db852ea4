// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget and assigns its ID.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Budget, error)

	// FindByCategoryAndPeriod retrieves a budget by its unique (category, period) pair.
	FindByCategoryAndPeriod(ctx context.Context, categoryID uint, period entity.BudgetPeriod) (*entity.Budget, error)

	// FindAll retrieves all budgets, optionally restricted to one period,
	// ordered by category name then period.
	FindAll(ctx context.Context, period *entity.BudgetPeriod) ([]*entity.Budget, error)

	// Update updates an existing budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget by ID.
	Delete(ctx context.Context, id uint) error
}
