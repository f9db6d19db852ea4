// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pocketledger/backend/internal/application/adapter"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/integration/persistence/model"
)

// alertLogRepository implements the adapter.AlertLogRepository interface.
type alertLogRepository struct {
	db *gorm.DB
}

// NewAlertLogRepository creates a new alert log repository instance.
func NewAlertLogRepository(db *gorm.DB) adapter.AlertLogRepository {
	return &alertLogRepository{db: db}
}

// WasSent reports whether an alert was already delivered for the window.
func (r *alertLogRepository) WasSent(ctx context.Context, budgetID uint, periodStart time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.AlertLogModel{}).
		Where("budget_id = ? AND period_start = ?", budgetID, periodStart).
		Count(&count).Error
	if err != nil {
		return false, domainerror.NewStoreError("check alert log", err)
	}
	return count > 0, nil
}

// MarkSent records a delivered alert for the window.
func (r *alertLogRepository) MarkSent(ctx context.Context, budgetID uint, periodStart time.Time) error {
	entry := &model.AlertLogModel{
		BudgetID:    budgetID,
		PeriodStart: periodStart,
		SentAt:      time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return domainerror.NewStoreError("write alert log", err)
	}
	return nil
}
