// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid reports whether the transaction type is a known value.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single income or expense record in the ledger.
// Amounts are always positive; the type determines the direction.
type Transaction struct {
	ID          uint
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	CategoryID  uint
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity. The date is normalized to
// midnight UTC so that window queries compare calendar days only.
func NewTransaction(
	transactionType TransactionType,
	amount decimal.Decimal,
	description string,
	categoryID uint,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		Type:        transactionType,
		Amount:      amount,
		Description: description,
		CategoryID:  categoryID,
		Date:        NormalizeDate(date),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NormalizeDate truncates a timestamp to midnight UTC.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// TransactionWithCategory represents a transaction with its associated category.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}

// PeriodTotals represents income and expense sums over a date window.
type PeriodTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Net returns income minus expense for the window.
func (t PeriodTotals) Net() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// IsZero reports whether the window had no activity at all.
func (t PeriodTotals) IsZero() bool {
	return t.Income.IsZero() && t.Expense.IsZero()
}

// CategoryTotal represents the summed amount for one category over a window.
type CategoryTotal struct {
	CategoryID   uint
	CategoryName string
	Type         TransactionType
	Total        decimal.Decimal
}

// TypeStats holds count, sum and average for one transaction type.
type TypeStats struct {
	Count   int64
	Total   decimal.Decimal
	Average decimal.Decimal
}

// LedgerStats represents overall statistics across the whole ledger.
type LedgerStats struct {
	TotalCount int64
	Income     TypeStats
	Expense    TypeStats
}

// NetWorth returns total income minus total expense across the ledger.
func (s LedgerStats) NetWorth() decimal.Decimal {
	return s.Income.Total.Sub(s.Expense.Total)
}
