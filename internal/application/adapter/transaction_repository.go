// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// TransactionFilter holds filter criteria for listing transactions.
// EndDate is exclusive: callers accepting a user-supplied inclusive end date
// must advance it by one day before building the filter.
type TransactionFilter struct {
	Type       *entity.TransactionType
	CategoryID *uint
	StartDate  *time.Time
	EndDate    *time.Time
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction and assigns its ID.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Transaction, error)

	// FindByIDWithCategory retrieves a transaction with its category by ID.
	FindByIDWithCategory(ctx context.Context, id uint) (*entity.TransactionWithCategory, error)

	// FindByFilter retrieves transactions matching the filter,
	// ordered by date descending then id descending.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.TransactionWithCategory, error)

	// Update overwrites an existing transaction in place.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction by ID.
	Delete(ctx context.Context, id uint) error

	// CountByCategory returns the number of transactions referencing a category.
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
}
