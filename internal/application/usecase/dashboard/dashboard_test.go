// Package dashboard contains chart-data use cases.
package dashboard

import (
	"context"
	"errors"
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

// chartEntry is one dated amount feeding the fake aggregator.
type chartEntry struct {
	kind       entity.TransactionType
	categoryID uint
	category   string
	date       time.Time
	amount     decimal.Decimal
}

// fakeLedger computes aggregates from a flat entry list with half-open
// window semantics.
type fakeLedger struct {
	entries []chartEntry
}

func (l *fakeLedger) add(kind entity.TransactionType, categoryID uint, category string, date time.Time, amount float64) {
	l.entries = append(l.entries, chartEntry{
		kind:       kind,
		categoryID: categoryID,
		category:   category,
		date:       date,
		amount:     decimal.NewFromFloat(amount),
	})
}

func (l *fakeLedger) inWindow(start, end time.Time) []chartEntry {
	var out []chartEntry
	for _, e := range l.entries {
		if e.date.Before(start) || !e.date.Before(end) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (l *fakeLedger) SumByType(_ context.Context, start, end time.Time) (*entity.PeriodTotals, error) {
	totals := &entity.PeriodTotals{}
	for _, e := range l.inWindow(start, end) {
		if e.kind == entity.TransactionTypeIncome {
			totals.Income = totals.Income.Add(e.amount)
		} else {
			totals.Expense = totals.Expense.Add(e.amount)
		}
	}
	return totals, nil
}

func (l *fakeLedger) SumByCategory(_ context.Context, start, end time.Time, kind *entity.TransactionType) ([]entity.CategoryTotal, error) {
	byID := make(map[uint]*entity.CategoryTotal)
	var order []uint
	for _, e := range l.inWindow(start, end) {
		if kind != nil && e.kind != *kind {
			continue
		}
		ct, ok := byID[e.categoryID]
		if !ok {
			ct = &entity.CategoryTotal{CategoryID: e.categoryID, CategoryName: e.category, Type: e.kind}
			byID[e.categoryID] = ct
			order = append(order, e.categoryID)
		}
		ct.Total = ct.Total.Add(e.amount)
	}
	out := make([]entity.CategoryTotal, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Total.GreaterThan(out[i].Total) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (l *fakeLedger) SumForCategory(_ context.Context, categoryID uint, start, end time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range l.inWindow(start, end) {
		if e.categoryID == categoryID {
			total = total.Add(e.amount)
		}
	}
	return total, nil
}

func (l *fakeLedger) ListInRange(_ context.Context, _, _ time.Time) ([]*entity.TransactionWithCategory, error) {
	return nil, nil
}

func (l *fakeLedger) Stats(_ context.Context) (*entity.LedgerStats, error) {
	return &entity.LedgerStats{}, nil
}

var _ adapter.LedgerRepository = (*fakeLedger)(nil)

// stubBudgetRepo serves FindAll from a fixed list.
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

// stubCategoryRepo serves FindByID from a fixed map.
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

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestGetMonthlySeries(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{day(2025, time.March, 15)}

	ledger := &fakeLedger{}
	ledger.add(entity.TransactionTypeIncome, 1, "Salary", day(2025, time.January, 1), 1000)
	ledger.add(entity.TransactionTypeExpense, 2, "Food", day(2025, time.February, 10), 200)
	ledger.add(entity.TransactionTypeIncome, 1, "Salary", day(2025, time.March, 1), 1500)
	ledger.add(entity.TransactionTypeIncome, 1, "Salary", day(2024, time.December, 1), 999)

	uc := NewGetMonthlySeriesUseCase(ledger, clock)

	t.Run("chronological trailing window", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetMonthlySeriesInput{Months: 3})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if len(out.Points) != 3 {
			t.Fatalf("expected 3 points, got %d", len(out.Points))
		}
		if out.Points[0].Label != "January 2025" || out.Points[2].Label != "March 2025" {
			t.Errorf("expected [Jan, Feb, Mar] 2025, got [%s .. %s]", out.Points[0].Label, out.Points[2].Label)
		}
		if !out.Points[0].Income.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected January income 1000, got %s", out.Points[0].Income)
		}
		if !out.Points[1].Net.Equal(decimal.NewFromInt(-200)) {
			t.Errorf("expected February net -200, got %s", out.Points[1].Net)
		}
	})

	t.Run("wraps across the year boundary", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetMonthlySeriesInput{Months: 4})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if out.Points[0].Label != "December 2024" {
			t.Errorf("expected series to start at December 2024, got %s", out.Points[0].Label)
		}
	})

	t.Run("defaults to six months", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetMonthlySeriesInput{})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if len(out.Points) != 6 {
			t.Fatalf("expected 6 points, got %d", len(out.Points))
		}
	})

	t.Run("rejects out-of-range lengths", func(t *testing.T) {
		for _, months := range []int{-1, MaxSeriesMonths + 1} {
			if _, err := uc.Execute(ctx, GetMonthlySeriesInput{Months: months}); !errors.Is(err, domainerror.ErrInvalidSeriesLength) {
				t.Fatalf("months=%d: expected ErrInvalidSeriesLength, got %v", months, err)
			}
		}
	})
}

func TestGetCategoryBreakdown(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{day(2025, time.March, 15)}

	ledger := &fakeLedger{}
	ledger.add(entity.TransactionTypeExpense, 1, "Food", day(2025, time.March, 5), 600)
	ledger.add(entity.TransactionTypeExpense, 2, "Transportation", day(2025, time.March, 8), 400)
	ledger.add(entity.TransactionTypeIncome, 3, "Salary", day(2025, time.March, 1), 3000)

	uc := NewGetCategoryBreakdownUseCase(ledger, clock)

	t.Run("expense shares for the current month", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetCategoryBreakdownInput{})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if out.Label != "March 2025" {
			t.Errorf("unexpected label %q", out.Label)
		}
		if !out.Total.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected total 1000, got %s", out.Total)
		}
		if len(out.Slices) != 2 || out.Slices[0].CategoryName != "Food" {
			t.Fatalf("expected Food first, got %+v", out.Slices)
		}
		if out.Slices[0].Percentage != 60.0 || out.Slices[1].Percentage != 40.0 {
			t.Errorf("expected shares 60/40, got %v/%v", out.Slices[0].Percentage, out.Slices[1].Percentage)
		}
	})

	t.Run("income kind", func(t *testing.T) {
		income := entity.TransactionTypeIncome
		out, err := uc.Execute(ctx, GetCategoryBreakdownInput{Kind: &income})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if len(out.Slices) != 1 || out.Slices[0].CategoryName != "Salary" {
			t.Fatalf("expected only Salary, got %+v", out.Slices)
		}
	})

	t.Run("empty month", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetCategoryBreakdownInput{Year: 2024, Month: 1})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if !out.Total.IsZero() || len(out.Slices) != 0 {
			t.Errorf("expected empty breakdown, got %+v", out)
		}
	})
}

func TestGetBudgetVsActual(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{day(2025, time.March, 15)}

	food := &entity.Category{ID: 1, Type: entity.CategoryTypeExpense, Name: "Food"}
	budgets := &stubBudgetRepo{budgets: []*entity.Budget{
		{ID: 1, CategoryID: 1, Amount: decimal.NewFromInt(500), Period: entity.BudgetPeriodMonthly},
		{ID: 2, CategoryID: 1, Amount: decimal.NewFromInt(6000), Period: entity.BudgetPeriodYearly},
	}}
	categories := &stubCategoryRepo{categories: map[uint]*entity.Category{1: food}}

	ledger := &fakeLedger{}
	ledger.add(entity.TransactionTypeExpense, 1, "Food", day(2025, time.March, 10), 250)

	listStatuses := budget.NewListStatusesUseCase(budgets, categories, ledger, clock)
	uc := NewGetBudgetVsActualUseCase(listStatuses)

	out, err := uc.Execute(ctx)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if len(out.Bars) != 1 {
		t.Fatalf("expected only the monthly budget, got %d bars", len(out.Bars))
	}
	bar := out.Bars[0]
	if bar.CategoryName != "Food" || !bar.Spent.Equal(decimal.NewFromInt(250)) {
		t.Errorf("unexpected bar: %+v", bar)
	}
	if bar.PercentageUsed != 50.0 {
		t.Errorf("expected 50%% used, got %v", bar.PercentageUsed)
	}
}
