// Package email delivers budget alert notifications via Resend.
package email

import (
	"context"
	"log/slog"
	"time"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/application/usecase/budget"
	"github.com/pocketledger/backend/internal/domain/entity"
)

// AlertWorker periodically evaluates budget alerts and emails new ones to the
// ledger owner. The alert log keeps each budget to at most one email per
// period window.
type AlertWorker struct {
	getAlerts        *budget.GetAlertsUseCase
	alertLog         adapter.AlertLogRepository
	sender           adapter.EmailSender
	ownerEmail       string
	warningThreshold float64
	pollInterval     time.Duration
}

// AlertWorkerConfig holds configuration for the alert worker.
type AlertWorkerConfig struct {
	OwnerEmail       string
	WarningThreshold float64
	PollInterval     time.Duration
}

// DefaultAlertWorkerConfig returns the default worker configuration.
func DefaultAlertWorkerConfig() AlertWorkerConfig {
	return AlertWorkerConfig{
		WarningThreshold: budget.DefaultWarningThreshold,
		PollInterval:     time.Hour,
	}
}

// NewAlertWorker creates a new alert worker.
func NewAlertWorker(
	getAlerts *budget.GetAlertsUseCase,
	alertLog adapter.AlertLogRepository,
	sender adapter.EmailSender,
	config AlertWorkerConfig,
) *AlertWorker {
	return &AlertWorker{
		getAlerts:        getAlerts,
		alertLog:         alertLog,
		sender:           sender,
		ownerEmail:       config.OwnerEmail,
		warningThreshold: config.WarningThreshold,
		pollInterval:     config.PollInterval,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *AlertWorker) Start(ctx context.Context) {
	slog.Info("Alert worker started",
		"poll_interval", w.pollInterval,
		"recipient", w.ownerEmail,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Evaluate immediately on start, then on ticker.
	w.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Alert worker shutting down")
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

// poll evaluates the current alerts and sends the ones not yet delivered for
// their window.
func (w *AlertWorker) poll(ctx context.Context) {
	out, err := w.getAlerts.Execute(ctx, budget.GetAlertsInput{WarningThreshold: w.warningThreshold})
	if err != nil {
		slog.Error("Failed to evaluate budget alerts", "error", err)
		return
	}

	var unsent []entity.BudgetAlert
	for _, alert := range out.Alerts {
		sent, err := w.alertLog.WasSent(ctx, alert.BudgetID, alert.PeriodStart)
		if err != nil {
			slog.Error("Failed to check alert log", "budget_id", alert.BudgetID, "error", err)
			continue
		}
		if !sent {
			unsent = append(unsent, alert)
		}
	}

	if len(unsent) == 0 {
		return
	}

	subject, html, text := renderAlertEmail(unsent)
	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      w.ownerEmail,
		Subject: subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		slog.Error("Failed to send alert email", "error", err)
		return
	}

	slog.Info("Alert email sent", "provider_id", result.ProviderID, "alerts", len(unsent))

	for _, alert := range unsent {
		if err := w.alertLog.MarkSent(ctx, alert.BudgetID, alert.PeriodStart); err != nil {
			slog.Error("Failed to record sent alert", "budget_id", alert.BudgetID, "error", err)
		}
	}
}
