// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// IsValid reports whether the category type is a known value.
func (t CategoryType) IsValid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category represents a transaction category. The (Type, Name) pair is unique.
type Category struct {
	ID          uint
	Type        CategoryType
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(categoryType CategoryType, name, description string) *Category {
	now := time.Now().UTC()

	return &Category{
		Type:        categoryType,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// DefaultIncomeCategories are seeded at first run when no income categories exist.
var DefaultIncomeCategories = []string{"Salary", "Freelance", "Investment", "Other Income"}

// DefaultExpenseCategories are seeded at first run when no expense categories exist.
var DefaultExpenseCategories = []string{
	"Food", "Transportation", "Entertainment", "Utilities",
	"Healthcare", "Shopping", "Other Expenses",
}
