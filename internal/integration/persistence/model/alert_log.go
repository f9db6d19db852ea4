// Package model defines database models for persistence layer.
package model

import "time"

// AlertLogModel represents the alert_log table. One row per budget per period
// window keeps the email worker from sending duplicate alerts.
type AlertLogModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	BudgetID    uint      `gorm:"not null;uniqueIndex:idx_alert_log_budget_window"`
	PeriodStart time.Time `gorm:"type:date;not null;uniqueIndex:idx_alert_log_budget_window"`
	SentAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for the AlertLogModel.
func (AlertLogModel) TableName() string {
	return "alert_log"
}
