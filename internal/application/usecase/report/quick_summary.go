// Package report contains report composition use cases.
package report

import (
	"context"
	"fmt"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	"github.com/pocketledger/backend/internal/domain/period"
)

// QuickSummaryOutput is a one-glance snapshot of the ledger.
type QuickSummaryOutput struct {
	MonthLabel   string
	CurrentMonth TotalsSection
	CurrentYear  TotalsSection
	Overall      *entity.LedgerStats
}

// QuickSummaryUseCase composes the dashboard's headline numbers.
type QuickSummaryUseCase struct {
	ledger adapter.LedgerRepository
	clock  adapter.Clock
}

// NewQuickSummaryUseCase creates a new QuickSummaryUseCase instance.
func NewQuickSummaryUseCase(ledger adapter.LedgerRepository, clock adapter.Clock) *QuickSummaryUseCase {
	return &QuickSummaryUseCase{ledger: ledger, clock: clock}
}

// Execute summarizes the current month, the current year and the ledger as
// a whole.
func (uc *QuickSummaryUseCase) Execute(ctx context.Context) (*QuickSummaryOutput, error) {
	now := uc.clock.Now().UTC()

	monthStart, monthEnd := period.MonthWindow(now.Year(), now.Month())
	month, err := buildTotals(ctx, uc.ledger, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	yearStart, yearEnd := period.YearWindow(now.Year())
	year, err := buildTotals(ctx, uc.ledger, yearStart, yearEnd)
	if err != nil {
		return nil, err
	}

	overall, err := uc.ledger.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger stats: %w", err)
	}

	return &QuickSummaryOutput{
		MonthLabel:   period.MonthRef{Year: now.Year(), Month: now.Month()}.Label(),
		CurrentMonth: month,
		CurrentYear:  year,
		Overall:      overall,
	}, nil
}
