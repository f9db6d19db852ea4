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

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{db: db}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	if err := r.db.WithContext(ctx).Create(categoryModel).Error; err != nil {
		return domainerror.NewStoreError("create category", err)
	}
	category.ID = categoryModel.ID
	return nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, domainerror.NewStoreError("find category", result.Error)
	}
	return categoryModel.ToEntity(), nil
}

// FindByTypeAndName retrieves a category by its unique (type, name) pair.
func (r *categoryRepository) FindByTypeAndName(ctx context.Context, categoryType entity.CategoryType, name string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("type = ? AND name = ?", string(categoryType), name).
		First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, domainerror.NewStoreError("find category by name", result.Error)
	}
	return categoryModel.ToEntity(), nil
}

// FindAll retrieves categories ordered by type then name.
func (r *categoryRepository) FindAll(ctx context.Context, categoryType *entity.CategoryType) ([]*entity.Category, error) {
	query := r.db.WithContext(ctx).Model(&model.CategoryModel{})
	if categoryType != nil {
		query = query.Where("type = ?", string(*categoryType))
	}

	var categoryModels []model.CategoryModel
	if err := query.Order("type ASC, name ASC").Find(&categoryModels).Error; err != nil {
		return nil, domainerror.NewStoreError("list categories", err)
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// Update updates an existing category.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Save(categoryModel)
	if result.Error != nil {
		return domainerror.NewStoreError("update category", result.Error)
	}
	return nil
}

// Delete removes a category by ID.
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.CategoryModel{}, id)
	if result.Error != nil {
		return domainerror.NewStoreError("delete category", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCategoryNotFound
	}
	return nil
}

// CountByType returns the number of categories of the given type.
func (r *categoryRepository) CountByType(ctx context.Context, categoryType entity.CategoryType) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("type = ?", string(categoryType)).
		Count(&count).Error
	if err != nil {
		return 0, domainerror.NewStoreError("count categories", err)
	}
	return count, nil
}
