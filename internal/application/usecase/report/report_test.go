// Package report contains report composition use cases.
package report

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// fakeLedger is an in-memory adapter.LedgerRepository computing aggregates
// from a transaction list, mirroring the store's half-open window semantics.
type fakeLedger struct {
	nextID       uint
	transactions []*entity.TransactionWithCategory
}

func (l *fakeLedger) add(kind entity.TransactionType, amount float64, description, categoryName string, date time.Time) {
	l.nextID++
	l.transactions = append(l.transactions, &entity.TransactionWithCategory{
		Transaction: &entity.Transaction{
			ID:          l.nextID,
			Type:        kind,
			Amount:      decimal.NewFromFloat(amount),
			Description: description,
			CategoryID:  l.nextID, // unique per entry unless shared via addTo
			Date:        date,
		},
		Category: &entity.Category{ID: l.nextID, Type: entity.CategoryType(kind), Name: categoryName},
	})
}

func (l *fakeLedger) inWindow(start, end time.Time) []*entity.TransactionWithCategory {
	var out []*entity.TransactionWithCategory
	for _, t := range l.transactions {
		if t.Transaction.Date.Before(start) || !t.Transaction.Date.Before(end) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (l *fakeLedger) SumByType(_ context.Context, start, end time.Time) (*entity.PeriodTotals, error) {
	totals := &entity.PeriodTotals{}
	for _, t := range l.inWindow(start, end) {
		switch t.Transaction.Type {
		case entity.TransactionTypeIncome:
			totals.Income = totals.Income.Add(t.Transaction.Amount)
		case entity.TransactionTypeExpense:
			totals.Expense = totals.Expense.Add(t.Transaction.Amount)
		}
	}
	return totals, nil
}

func (l *fakeLedger) SumByCategory(_ context.Context, start, end time.Time, kind *entity.TransactionType) ([]entity.CategoryTotal, error) {
	byName := make(map[string]*entity.CategoryTotal)
	var order []string
	for _, t := range l.inWindow(start, end) {
		if kind != nil && t.Transaction.Type != *kind {
			continue
		}
		ct, ok := byName[t.Category.Name]
		if !ok {
			ct = &entity.CategoryTotal{
				CategoryID:   t.Category.ID,
				CategoryName: t.Category.Name,
				Type:         t.Transaction.Type,
			}
			byName[t.Category.Name] = ct
			order = append(order, t.Category.Name)
		}
		ct.Total = ct.Total.Add(t.Transaction.Amount)
	}
	out := make([]entity.CategoryTotal, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out, nil
}

func (l *fakeLedger) SumForCategory(_ context.Context, categoryID uint, start, end time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, t := range l.inWindow(start, end) {
		if t.Transaction.CategoryID == categoryID {
			total = total.Add(t.Transaction.Amount)
		}
	}
	return total, nil
}

func (l *fakeLedger) ListInRange(_ context.Context, start, end time.Time) ([]*entity.TransactionWithCategory, error) {
	out := l.inWindow(start, end)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Transaction, out[j].Transaction
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.ID > b.ID
	})
	return out, nil
}

func (l *fakeLedger) Stats(_ context.Context) (*entity.LedgerStats, error) {
	stats := &entity.LedgerStats{}
	for _, t := range l.transactions {
		stats.TotalCount++
		switch t.Transaction.Type {
		case entity.TransactionTypeIncome:
			stats.Income.Count++
			stats.Income.Total = stats.Income.Total.Add(t.Transaction.Amount)
		case entity.TransactionTypeExpense:
			stats.Expense.Count++
			stats.Expense.Total = stats.Expense.Total.Add(t.Transaction.Amount)
		}
	}
	if stats.Income.Count > 0 {
		stats.Income.Average = stats.Income.Total.Div(decimal.NewFromInt(stats.Income.Count))
	}
	if stats.Expense.Count > 0 {
		stats.Expense.Average = stats.Expense.Total.Div(decimal.NewFromInt(stats.Expense.Count))
	}
	return stats, nil
}

var _ adapter.LedgerRepository = (*fakeLedger)(nil)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func floatPtrEq(t *testing.T, name string, got *float64, want float64) {
	t.Helper()
	if got == nil {
		t.Fatalf("%s: expected %v, got nil", name, want)
	}
	if diff := *got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("%s: expected %v, got %v", name, want, *got)
	}
}

func TestMonthlyReport(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{day(2025, time.March, 15)}

	t.Run("totals, breakdown and statistics", func(t *testing.T) {
		ledger := &fakeLedger{}
		ledger.add(entity.TransactionTypeIncome, 3000, "salary", "Salary", day(2025, time.March, 1))
		ledger.add(entity.TransactionTypeExpense, 600, "groceries", "Food", day(2025, time.March, 5))
		ledger.add(entity.TransactionTypeExpense, 400, "fuel", "Transportation", day(2025, time.March, 8))
		ledger.add(entity.TransactionTypeExpense, 999, "outside", "Food", day(2025, time.April, 1))

		uc := NewMonthlyReportUseCase(ledger, clock)
		out, err := uc.Execute(ctx, MonthlyReportInput{Year: 2025, Month: 3})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}

		if out.Label != "March 2025" {
			t.Errorf("unexpected label %q", out.Label)
		}
		if !out.Totals.Income.Equal(decimal.NewFromInt(3000)) || !out.Totals.Expense.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("unexpected totals: income %s expense %s", out.Totals.Income, out.Totals.Expense)
		}
		if !out.Totals.Net.Equal(decimal.NewFromInt(2000)) {
			t.Errorf("expected net 2000, got %s", out.Totals.Net)
		}
		// net/income: 2000/3000.
		floatPtrEq(t, "savings rate", out.Totals.SavingsRate, 200.0/3)

		if len(out.ExpenseBreakdown) != 2 {
			t.Fatalf("expected 2 expense breakdown entries, got %d", len(out.ExpenseBreakdown))
		}
		if out.ExpenseBreakdown[0].CategoryName != "Food" {
			t.Errorf("expected largest category first, got %q", out.ExpenseBreakdown[0].CategoryName)
		}
		if out.ExpenseBreakdown[0].Percentage != 60.0 {
			t.Errorf("expected Food at 60%%, got %v", out.ExpenseBreakdown[0].Percentage)
		}

		stats := out.Statistics
		if stats.IncomeCount != 1 || stats.ExpenseCount != 2 {
			t.Errorf("unexpected counts: %d income, %d expense", stats.IncomeCount, stats.ExpenseCount)
		}
		if !stats.AverageExpense.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected average expense 500, got %s", stats.AverageExpense)
		}
		if len(stats.TopExpenses) != 2 || !stats.TopExpenses[0].Transaction.Amount.Equal(decimal.NewFromInt(600)) {
			t.Errorf("unexpected top expenses: %+v", stats.TopExpenses)
		}
	})

	t.Run("savings rate present for income-only month", func(t *testing.T) {
		ledger := &fakeLedger{}
		ledger.add(entity.TransactionTypeIncome, 1000, "salary", "Salary", day(2025, time.March, 1))

		out, err := NewMonthlyReportUseCase(ledger, clock).Execute(ctx, MonthlyReportInput{Year: 2025, Month: 3})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		floatPtrEq(t, "savings rate", out.Totals.SavingsRate, 100.0)
	})

	t.Run("savings rate omitted without income", func(t *testing.T) {
		ledger := &fakeLedger{}
		ledger.add(entity.TransactionTypeExpense, 100, "groceries", "Food", day(2025, time.March, 1))

		out, err := NewMonthlyReportUseCase(ledger, clock).Execute(ctx, MonthlyReportInput{Year: 2025, Month: 3})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if out.Totals.SavingsRate != nil {
			t.Errorf("expected savings rate omitted, got %v", *out.Totals.SavingsRate)
		}
	})

	t.Run("empty month reports zeros, not an error", func(t *testing.T) {
		out, err := NewMonthlyReportUseCase(&fakeLedger{}, clock).Execute(ctx, MonthlyReportInput{Year: 2025, Month: 3})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if !out.Totals.Income.IsZero() || !out.Totals.Expense.IsZero() {
			t.Errorf("expected zero totals, got %+v", out.Totals)
		}
		if len(out.IncomeBreakdown) != 0 || len(out.ExpenseBreakdown) != 0 {
			t.Error("expected empty breakdowns")
		}
	})

	t.Run("comparison against previous month", func(t *testing.T) {
		ledger := &fakeLedger{}
		ledger.add(entity.TransactionTypeIncome, 2000, "salary", "Salary", day(2025, time.February, 1))
		ledger.add(entity.TransactionTypeExpense, 500, "groceries", "Food", day(2025, time.February, 10))
		ledger.add(entity.TransactionTypeIncome, 3000, "salary", "Salary", day(2025, time.March, 1))
		ledger.add(entity.TransactionTypeExpense, 400, "groceries", "Food", day(2025, time.March, 10))

		out, err := NewMonthlyReportUseCase(ledger, clock).Execute(ctx, MonthlyReportInput{Year: 2025, Month: 3})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		cmp := out.Comparison
		if cmp == nil {
			t.Fatal("expected comparison section")
		}
		if cmp.PreviousLabel != "February 2025" {
			t.Errorf("unexpected previous label %q", cmp.PreviousLabel)
		}
		if !cmp.IncomeChange.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected income change 1000, got %s", cmp.IncomeChange)
		}
		floatPtrEq(t, "income change pct", cmp.IncomeChangePct, 50.0)
		floatPtrEq(t, "expense change pct", cmp.ExpenseChangePct, -20.0)
	})

	t.Run("comparison absent when previous month is empty", func(t *testing.T) {
		ledger := &fakeLedger{}
		ledger.add(entity.TransactionTypeIncome, 3000, "salary", "Salary", day(2025, time.March, 1))

		out, err := NewMonthlyReportUseCase(ledger, clock).Execute(ctx, MonthlyReportInput{Year: 2025, Month: 3})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if out.Comparison != nil {
			t.Errorf("expected no comparison, got %+v", out.Comparison)
		}
	})

	t.Run("one-sided previous month omits that side's percentage", func(t *testing.T) {
		ledger := &fakeLedger{}
		ledger.add(entity.TransactionTypeExpense, 500, "groceries", "Food", day(2025, time.February, 10))
		ledger.add(entity.TransactionTypeIncome, 3000, "salary", "Salary", day(2025, time.March, 1))

		out, err := NewMonthlyReportUseCase(ledger, clock).Execute(ctx, MonthlyReportInput{Year: 2025, Month: 3})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		cmp := out.Comparison
		if cmp == nil {
			t.Fatal("expected comparison section")
		}
		if cmp.IncomeChangePct != nil {
			t.Errorf("expected income pct omitted when previous income is zero, got %v", *cmp.IncomeChangePct)
		}
		floatPtrEq(t, "expense change pct", cmp.ExpenseChangePct, -100.0)
	})

	t.Run("january compares against december of the prior year", func(t *testing.T) {
		ledger := &fakeLedger{}
		ledger.add(entity.TransactionTypeIncome, 1000, "salary", "Salary", day(2024, time.December, 15))
		ledger.add(entity.TransactionTypeIncome, 1500, "salary", "Salary", day(2025, time.January, 15))

		out, err := NewMonthlyReportUseCase(ledger, clock).Execute(ctx, MonthlyReportInput{Year: 2025, Month: 1})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if out.Comparison == nil || out.Comparison.PreviousLabel != "December 2024" {
			t.Fatalf("expected comparison against December 2024, got %+v", out.Comparison)
		}
	})

	t.Run("rejects invalid month", func(t *testing.T) {
		_, err := NewMonthlyReportUseCase(&fakeLedger{}, clock).Execute(ctx, MonthlyReportInput{Year: 2025, Month: 13})
		if !errors.Is(err, domainerror.ErrInvalidReportMonth) {
			t.Fatalf("expected ErrInvalidReportMonth, got %v", err)
		}
	})
}

func TestYearlyReport(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{day(2025, time.June, 15)}

	ledger := &fakeLedger{}
	ledger.add(entity.TransactionTypeIncome, 3000, "salary", "Salary", day(2025, time.January, 1))
	ledger.add(entity.TransactionTypeExpense, 1000, "rent", "Utilities", day(2025, time.January, 5))
	ledger.add(entity.TransactionTypeIncome, 3000, "salary", "Salary", day(2025, time.April, 1))
	ledger.add(entity.TransactionTypeExpense, 5000, "trip", "Entertainment", day(2025, time.April, 20))

	uc := NewYearlyReportUseCase(ledger, clock)
	out, err := uc.Execute(ctx, YearlyReportInput{Year: 2025})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	t.Run("trend always has twelve rows", func(t *testing.T) {
		if len(out.MonthlyTrend) != 12 {
			t.Fatalf("expected 12 trend rows, got %d", len(out.MonthlyTrend))
		}
		if out.MonthlyTrend[0].Month != time.January || out.MonthlyTrend[11].Month != time.December {
			t.Error("expected rows ordered January through December")
		}
		for _, row := range out.MonthlyTrend[6:] {
			if !row.Income.IsZero() || !row.Expense.IsZero() {
				t.Errorf("expected zero activity in %s", row.Month)
			}
		}
	})

	t.Run("highlights", func(t *testing.T) {
		if out.Highlights.BestNetMonth != time.January {
			t.Errorf("expected best net month January, got %s", out.Highlights.BestNetMonth)
		}
		if out.Highlights.WorstNetMonth != time.April {
			t.Errorf("expected worst net month April, got %s", out.Highlights.WorstNetMonth)
		}
		if out.Highlights.HighestExpenseMonth != time.April {
			t.Errorf("expected highest expense month April, got %s", out.Highlights.HighestExpenseMonth)
		}
	})

	t.Run("monthly averages divide by twelve", func(t *testing.T) {
		if !out.AvgMonthlyIncome.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected avg monthly income 500, got %s", out.AvgMonthlyIncome)
		}
		if !out.AvgMonthlyExpense.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected avg monthly expense 500, got %s", out.AvgMonthlyExpense)
		}
	})

	t.Run("largest single transactions", func(t *testing.T) {
		if out.LargestExpense == nil || !out.LargestExpense.Transaction.Amount.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("unexpected largest expense: %+v", out.LargestExpense)
		}
		if out.LargestIncome == nil || !out.LargestIncome.Transaction.Amount.Equal(decimal.NewFromInt(3000)) {
			t.Errorf("unexpected largest income: %+v", out.LargestIncome)
		}
	})

	t.Run("comparison absent without prior-year activity", func(t *testing.T) {
		if out.Comparison != nil {
			t.Errorf("expected no comparison, got %+v", out.Comparison)
		}
	})
}

// stubCategoryRepo serves FindByID only; the remaining methods come from the
// embedded nil interface and are never called.
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

// stubTransactionRepo serves FindByFilter from a fixed list, applying the
// filter the way the store would.
type stubTransactionRepo struct {
	adapter.TransactionRepository
	transactions []*entity.TransactionWithCategory
}

func (s *stubTransactionRepo) FindByFilter(_ context.Context, filter adapter.TransactionFilter) ([]*entity.TransactionWithCategory, error) {
	var out []*entity.TransactionWithCategory
	for _, t := range s.transactions {
		if filter.CategoryID != nil && t.Transaction.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.StartDate != nil && t.Transaction.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && !t.Transaction.Date.Before(*filter.EndDate) {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Transaction.Date.After(out[j].Transaction.Date)
	})
	return out, nil
}

func TestCategoryReport(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{day(2025, time.June, 15)}

	food := &entity.Category{ID: 1, Type: entity.CategoryTypeExpense, Name: "Food"}
	categories := &stubCategoryRepo{categories: map[uint]*entity.Category{1: food}}

	entry := func(id uint, amount float64, date time.Time) *entity.TransactionWithCategory {
		return &entity.TransactionWithCategory{
			Transaction: &entity.Transaction{
				ID: id, Type: entity.TransactionTypeExpense,
				Amount: decimal.NewFromFloat(amount), CategoryID: 1, Date: date,
			},
			Category: food,
		}
	}

	t.Run("window statistics", func(t *testing.T) {
		repo := &stubTransactionRepo{transactions: []*entity.TransactionWithCategory{
			entry(1, 100, day(2025, time.January, 10)),
			entry(2, 50, day(2025, time.March, 10)),
			entry(3, 150, day(2025, time.June, 15)), // today, inclusive
			entry(4, 999, day(2024, time.December, 31)),
		}}
		uc := NewCategoryReportUseCase(repo, categories, clock)

		out, err := uc.Execute(ctx, CategoryReportInput{CategoryID: 1})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if out.Count != 3 {
			t.Fatalf("expected 3 transactions in the default window, got %d", out.Count)
		}
		if !out.Total.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected total 300, got %s", out.Total)
		}
		if !out.Average.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected average 100, got %s", out.Average)
		}
		if !out.Min.Equal(decimal.NewFromInt(50)) || !out.Max.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected min 50 / max 150, got %s / %s", out.Min, out.Max)
		}
		if !out.StartDate.Equal(day(2025, time.January, 1)) {
			t.Errorf("expected default start Jan 1, got %v", out.StartDate)
		}
		if len(out.RecentTransactions) != 3 || out.RecentTransactions[0].Transaction.ID != 3 {
			t.Errorf("expected newest transaction first, got %+v", out.RecentTransactions)
		}
	})

	t.Run("empty window", func(t *testing.T) {
		uc := NewCategoryReportUseCase(&stubTransactionRepo{}, categories, clock)
		_, err := uc.Execute(ctx, CategoryReportInput{CategoryID: 1})
		if !errors.Is(err, domainerror.ErrNoTransactionsInPeriod) {
			t.Fatalf("expected ErrNoTransactionsInPeriod, got %v", err)
		}
	})

	t.Run("missing category", func(t *testing.T) {
		uc := NewCategoryReportUseCase(&stubTransactionRepo{}, categories, clock)
		_, err := uc.Execute(ctx, CategoryReportInput{CategoryID: 9})
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}

func TestQuickSummary(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{day(2025, time.March, 15)}

	ledger := &fakeLedger{}
	ledger.add(entity.TransactionTypeIncome, 3000, "salary", "Salary", day(2025, time.March, 1))
	ledger.add(entity.TransactionTypeExpense, 500, "groceries", "Food", day(2025, time.March, 5))
	ledger.add(entity.TransactionTypeIncome, 3000, "salary", "Salary", day(2025, time.January, 1))
	ledger.add(entity.TransactionTypeExpense, 100, "old", "Food", day(2024, time.July, 1))

	out, err := NewQuickSummaryUseCase(ledger, clock).Execute(ctx)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if out.MonthLabel != "March 2025" {
		t.Errorf("unexpected month label %q", out.MonthLabel)
	}
	if !out.CurrentMonth.Income.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("expected month income 3000, got %s", out.CurrentMonth.Income)
	}
	if !out.CurrentYear.Income.Equal(decimal.NewFromInt(6000)) {
		t.Errorf("expected year income 6000, got %s", out.CurrentYear.Income)
	}
	if out.Overall.TotalCount != 4 {
		t.Errorf("expected 4 total transactions, got %d", out.Overall.TotalCount)
	}
	if !out.Overall.NetWorth().Equal(decimal.NewFromInt(5400)) {
		t.Errorf("expected net worth 5400, got %s", out.Overall.NetWorth())
	}
}
