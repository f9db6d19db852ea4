// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{db: db}
}

// Create creates a new budget in the database.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	if err := r.db.WithContext(ctx).Create(budgetModel).Error; err != nil {
		return domainerror.NewStoreError("create budget", err)
	}
	budget.ID = budgetModel.ID
	return nil
}

// FindByID retrieves a budget by its ID.
func (r *budgetRepository) FindByID(ctx context.Context, id uint) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, domainerror.NewStoreError("find budget", result.Error)
	}
	return budgetModel.ToEntity(), nil
}

// FindByCategoryAndPeriod retrieves a budget by its unique (category, period) pair.
func (r *budgetRepository) FindByCategoryAndPeriod(ctx context.Context, categoryID uint, period entity.BudgetPeriod) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("category_id = ? AND period = ?", categoryID, string(period)).
		First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, domainerror.NewStoreError("find budget", result.Error)
	}
	return budgetModel.ToEntity(), nil
}

// FindAll retrieves budgets ordered by category name then period.
func (r *budgetRepository) FindAll(ctx context.Context, period *entity.BudgetPeriod) ([]*entity.Budget, error) {
	query := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Joins("LEFT JOIN categories ON categories.id = budgets.category_id")
	if period != nil {
		query = query.Where("budgets.period = ?", string(*period))
	}

	var budgetModels []model.BudgetModel
	if err := query.Order("categories.name ASC, budgets.period ASC").Find(&budgetModels).Error; err != nil {
		return nil, domainerror.NewStoreError("list budgets", err)
	}

	budgets := make([]*entity.Budget, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntity()
	}
	return budgets, nil
}

// Update updates an existing budget.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).Save(budgetModel)
	if result.Error != nil {
		return domainerror.NewStoreError("update budget", result.Error)
	}
	return nil
}

// Delete removes a budget by ID.
func (r *budgetRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.BudgetModel{}, id)
	if result.Error != nil {
		return domainerror.NewStoreError("delete budget", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}
