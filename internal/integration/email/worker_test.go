// Package email delivers budget alert notifications via Resend.
package email

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/application/usecase/budget"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type stubBudgetRepo struct {
	adapter.BudgetRepository
	budgets []*entity.Budget
}

func (s *stubBudgetRepo) FindAll(_ context.Context, period *entity.BudgetPeriod) ([]*entity.Budget, error) {
	var out []*entity.Budget
	for _, b := range s.budgets {
		if period == nil || b.Period == *period {
			out = append(out, b)
		}
	}
	return out, nil
}

type stubCategoryRepo struct {
	adapter.CategoryRepository
	categories map[uint]*entity.Category
}

func (s *stubCategoryRepo) FindByID(_ context.Context, id uint) (*entity.Category, error) {
	c, ok := s.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return c, nil
}

type stubLedger struct {
	adapter.LedgerRepository
	spent map[uint]decimal.Decimal
}

func (s *stubLedger) SumForCategory(_ context.Context, categoryID uint, _, _ time.Time) (decimal.Decimal, error) {
	return s.spent[categoryID], nil
}

// memAlertLog is an in-memory adapter.AlertLogRepository.
type memAlertLog struct {
	sent map[string]bool
}

func newMemAlertLog() *memAlertLog {
	return &memAlertLog{sent: make(map[string]bool)}
}

func (l *memAlertLog) key(budgetID uint, periodStart time.Time) string {
	return fmt.Sprintf("%d/%s", budgetID, periodStart.Format("2006-01-02"))
}

func (l *memAlertLog) WasSent(_ context.Context, budgetID uint, periodStart time.Time) (bool, error) {
	return l.sent[l.key(budgetID, periodStart)], nil
}

func (l *memAlertLog) MarkSent(_ context.Context, budgetID uint, periodStart time.Time) error {
	l.sent[l.key(budgetID, periodStart)] = true
	return nil
}

// recordingSender captures sent emails.
type recordingSender struct {
	sent []adapter.SendEmailInput
}

func (s *recordingSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	s.sent = append(s.sent, input)
	return &adapter.SendEmailResult{ProviderID: "test"}, nil
}

func TestAlertWorkerPoll(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	food := &entity.Category{ID: 1, Type: entity.CategoryTypeExpense, Name: "Food"}
	budgets := &stubBudgetRepo{budgets: []*entity.Budget{
		{ID: 1, CategoryID: 1, Amount: decimal.NewFromInt(100), Period: entity.BudgetPeriodMonthly},
	}}
	categories := &stubCategoryRepo{categories: map[uint]*entity.Category{1: food}}
	ledger := &stubLedger{spent: map[uint]decimal.Decimal{1: decimal.NewFromInt(120)}}

	listStatuses := budget.NewListStatusesUseCase(budgets, categories, ledger, fixedClock{now})
	getAlerts := budget.NewGetAlertsUseCase(listStatuses)

	alertLog := newMemAlertLog()
	sender := &recordingSender{}

	worker := NewAlertWorker(getAlerts, alertLog, sender, AlertWorkerConfig{
		OwnerEmail:       "owner@example.com",
		WarningThreshold: budget.DefaultWarningThreshold,
		PollInterval:     time.Hour,
	})

	worker.poll(ctx)
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 email after first poll, got %d", len(sender.sent))
	}
	if sender.sent[0].To != "owner@example.com" {
		t.Errorf("unexpected recipient %q", sender.sent[0].To)
	}
	if sender.sent[0].Subject != "Budget alert: Food" {
		t.Errorf("unexpected subject %q", sender.sent[0].Subject)
	}

	// Second poll in the same window: the alert is deduplicated.
	worker.poll(ctx)
	if len(sender.sent) != 1 {
		t.Fatalf("expected no duplicate email, got %d", len(sender.sent))
	}
}
