// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/integration/persistence/model"
)

// ledgerRepository implements the adapter.LedgerRepository interface with
// aggregate SQL. All windows are half-open: date >= start AND date < end.
// The SQL stays portable across sqlite and postgres.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) adapter.LedgerRepository {
	return &ledgerRepository{db: db}
}

// SumByType returns income and expense sums over the window. Types absent
// from the window are zero; an empty window is not an error.
func (r *ledgerRepository) SumByType(ctx context.Context, start, end time.Time) (*entity.PeriodTotals, error) {
	var rows []struct {
		Type  string
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("date >= ? AND date < ?", start, end).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerror.NewStoreError("sum by type", err)
	}

	totals := &entity.PeriodTotals{}
	for _, row := range rows {
		switch entity.TransactionType(row.Type) {
		case entity.TransactionTypeIncome:
			totals.Income = row.Total
		case entity.TransactionTypeExpense:
			totals.Expense = row.Total
		}
	}
	return totals, nil
}

// SumByCategory returns per-category sums over the window, largest first.
func (r *ledgerRepository) SumByCategory(ctx context.Context, start, end time.Time, transactionType *entity.TransactionType) ([]entity.CategoryTotal, error) {
	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("transactions.category_id, categories.name AS category_name, transactions.type, COALESCE(SUM(transactions.amount), 0) AS total").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.date >= ? AND transactions.date < ?", start, end)
	if transactionType != nil {
		query = query.Where("transactions.type = ?", string(*transactionType))
	}

	var rows []struct {
		CategoryID   uint
		CategoryName string
		Type         string
		Total        decimal.Decimal
	}
	err := query.
		Group("transactions.category_id, categories.name, transactions.type").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerror.NewStoreError("sum by category", err)
	}

	totals := make([]entity.CategoryTotal, len(rows))
	for i, row := range rows {
		totals[i] = entity.CategoryTotal{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			Type:         entity.TransactionType(row.Type),
			Total:        row.Total,
		}
	}
	return totals, nil
}

// SumForCategory returns the summed amount for one category over the window.
func (r *ledgerRepository) SumForCategory(ctx context.Context, categoryID uint, start, end time.Time) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("category_id = ? AND date >= ? AND date < ?", categoryID, start, end).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, domainerror.NewStoreError("sum for category", err)
	}
	return row.Total, nil
}

// ListInRange returns the window's transactions with categories, newest first.
func (r *ledgerRepository) ListInRange(ctx context.Context, start, end time.Time) ([]*entity.TransactionWithCategory, error) {
	var transactionModels []model.TransactionModel
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("date >= ? AND date < ?", start, end).
		Order("date DESC, id DESC").
		Find(&transactionModels).Error
	if err != nil {
		return nil, domainerror.NewStoreError("list in range", err)
	}

	transactions := make([]*entity.TransactionWithCategory, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntityWithCategory()
	}
	return transactions, nil
}

// Stats returns overall count, sum and average per transaction type.
func (r *ledgerRepository) Stats(ctx context.Context) (*entity.LedgerStats, error) {
	var rows []struct {
		Type  string
		Count int64
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("type, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerror.NewStoreError("ledger stats", err)
	}

	stats := &entity.LedgerStats{}
	for _, row := range rows {
		typeStats := entity.TypeStats{Count: row.Count, Total: row.Total}
		if row.Count > 0 {
			typeStats.Average = row.Total.Div(decimal.NewFromInt(row.Count))
		}
		switch entity.TransactionType(row.Type) {
		case entity.TransactionTypeIncome:
			stats.Income = typeStats
		case entity.TransactionTypeExpense:
			stats.Expense = typeStats
		}
		stats.TotalCount += row.Count
	}
	return stats, nil
}
