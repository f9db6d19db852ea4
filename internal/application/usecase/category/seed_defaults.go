// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
)

// SeedDefaultsOutput reports how many categories were created per type.
type SeedDefaultsOutput struct {
	IncomeCreated  int
	ExpenseCreated int
}

// SeedDefaultsUseCase seeds the default category set at first run. Each type
// is seeded independently and only while the store has no categories of that
// type, so user-created sets are never touched.
type SeedDefaultsUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedDefaultsUseCase creates a new SeedDefaultsUseCase instance.
func NewSeedDefaultsUseCase(categoryRepo adapter.CategoryRepository) *SeedDefaultsUseCase {
	return &SeedDefaultsUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute seeds default categories for each empty type.
func (uc *SeedDefaultsUseCase) Execute(ctx context.Context) (*SeedDefaultsOutput, error) {
	out := &SeedDefaultsOutput{}

	incomeCreated, err := uc.seedType(ctx, entity.CategoryTypeIncome, entity.DefaultIncomeCategories)
	if err != nil {
		return nil, err
	}
	out.IncomeCreated = incomeCreated

	expenseCreated, err := uc.seedType(ctx, entity.CategoryTypeExpense, entity.DefaultExpenseCategories)
	if err != nil {
		return nil, err
	}
	out.ExpenseCreated = expenseCreated

	return out, nil
}

func (uc *SeedDefaultsUseCase) seedType(ctx context.Context, categoryType entity.CategoryType, names []string) (int, error) {
	count, err := uc.categoryRepo.CountByType(ctx, categoryType)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s categories: %w", categoryType, err)
	}
	if count > 0 {
		return 0, nil
	}

	created := 0
	for _, name := range names {
		if err := uc.categoryRepo.Create(ctx, entity.NewCategory(categoryType, name, "")); err != nil {
			return created, fmt.Errorf("failed to seed category %q: %w", name, err)
		}
		created++
	}
	return created, nil
}
