// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the cadence of a budget.
type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// IsValid reports whether the budget period is a known value.
func (p BudgetPeriod) IsValid() bool {
	return p == BudgetPeriodMonthly || p == BudgetPeriodYearly
}

// Budget represents a spending limit for a category over a recurring period.
// The (CategoryID, Period) pair is unique; setting a budget for an existing
// pair updates the amount in place.
type Budget struct {
	ID         uint
	CategoryID uint
	Amount     decimal.Decimal
	Period     BudgetPeriod
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(categoryID uint, amount decimal.Decimal, period BudgetPeriod) *Budget {
	now := time.Now().UTC()

	return &Budget{
		CategoryID: categoryID,
		Amount:     amount,
		Period:     period,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// BudgetStatus represents the evaluated state of a budget for its current
// window. It is derived from the clock at query time and never persisted:
// the same budget evaluated on different days may yield a different window.
type BudgetStatus struct {
	Budget         *Budget
	CategoryName   string
	Spent          decimal.Decimal
	Remaining      decimal.Decimal
	PercentageUsed float64
	IsOverBudget   bool
	PeriodStart    time.Time
	PeriodEnd      time.Time
}

// BudgetAlertType classifies a budget alert.
type BudgetAlertType string

const (
	BudgetAlertOverBudget       BudgetAlertType = "over_budget"
	BudgetAlertApproachingLimit BudgetAlertType = "approaching_limit"
)

// BudgetAlert represents a threshold warning derived from a budget status.
type BudgetAlert struct {
	Type           BudgetAlertType
	BudgetID       uint
	CategoryName   string
	Period         BudgetPeriod
	PercentageUsed float64
	PeriodStart    time.Time
	Message        string
}
