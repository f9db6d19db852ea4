// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category and assigns its ID.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Category, error)

	// FindByTypeAndName retrieves a category by its unique (type, name) pair.
	FindByTypeAndName(ctx context.Context, categoryType entity.CategoryType, name string) (*entity.Category, error)

	// FindAll retrieves categories, optionally restricted to one type,
	// ordered by type then name.
	FindAll(ctx context.Context, categoryType *entity.CategoryType) ([]*entity.Category, error)

	// Update updates an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category by ID.
	Delete(ctx context.Context, id uint) error

	// CountByType returns the number of categories of the given type.
	CountByType(ctx context.Context, categoryType entity.CategoryType) (int64, error)
}
