// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/pocketledger/backend/internal/application/adapter"
)

// ExportCSVUseCase writes the full transaction ledger as CSV, newest first.
type ExportCSVUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewExportCSVUseCase creates a new ExportCSVUseCase instance.
func NewExportCSVUseCase(transactionRepo adapter.TransactionRepository) *ExportCSVUseCase {
	return &ExportCSVUseCase{transactionRepo: transactionRepo}
}

// Execute streams every transaction to the writer with the header
// id,type,amount,description,category,date. Dates are formatted 2006-01-02.
func (uc *ExportCSVUseCase) Execute(ctx context.Context, w io.Writer) error {
	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{})
	if err != nil {
		return fmt.Errorf("failed to load transactions for export: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"id", "type", "amount", "description", "category", "date"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, t := range transactions {
		record := []string{
			strconv.FormatUint(uint64(t.Transaction.ID), 10),
			string(t.Transaction.Type),
			t.Transaction.Amount.String(),
			t.Transaction.Description,
			t.Category.Name,
			t.Transaction.Date.Format(csvDateLayout),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
