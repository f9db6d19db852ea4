// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// csvDateLayout is the date format used by CSV import and export.
const csvDateLayout = "2006-01-02"

// ImportCSVInput represents the input for CSV import.
type ImportCSVInput struct {
	Reader io.Reader
}

// ImportCSVOutput reports the partial-success result of a CSV import.
type ImportCSVOutput struct {
	BatchID  uuid.UUID
	Imported int
	Skipped  int
}

// ImportCSVUseCase imports transactions from a CSV stream. Each row is
// validated independently: bad rows are skipped and counted, good rows are
// inserted. There is no atomicity across rows.
type ImportCSVUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewImportCSVUseCase creates a new ImportCSVUseCase instance.
func NewImportCSVUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *ImportCSVUseCase {
	return &ImportCSVUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute reads the CSV stream and imports every valid row.
//
// Expected columns (header required, order free): type, amount, description,
// category, date. An id column is accepted and ignored. A row is skipped when
// any field is missing or empty, the type is unknown, the amount is not a
// positive number, the date does not parse as 2006-01-02, or the (type,
// category) pair does not resolve to an existing category.
func (uc *ImportCSVUseCase) Execute(ctx context.Context, input ImportCSVInput) (*ImportCSVOutput, error) {
	reader := csv.NewReader(input.Reader)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"type", "amount", "description", "category", "date"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("CSV header is missing the %q column", required)
		}
	}

	out := &ImportCSVOutput{BatchID: uuid.New()}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Malformed CSV row (e.g. bare quote): skip it like any other bad row.
			out.Skipped++
			continue
		}

		if imported := uc.importRow(ctx, columns, record); imported {
			out.Imported++
		} else {
			out.Skipped++
		}
	}

	slog.Info("CSV import finished",
		"batch_id", out.BatchID.String(),
		"imported", out.Imported,
		"skipped", out.Skipped,
	)

	return out, nil
}

func (uc *ImportCSVUseCase) importRow(ctx context.Context, columns map[string]int, record []string) bool {
	field := func(name string) string {
		idx := columns[name]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	transactionType := entity.TransactionType(strings.ToLower(field("type")))
	if !transactionType.IsValid() {
		return false
	}

	amount, err := decimal.NewFromString(field("amount"))
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return false
	}

	description := field("description")
	if description == "" {
		return false
	}

	categoryName := field("category")
	if categoryName == "" {
		return false
	}

	date, err := time.Parse(csvDateLayout, field("date"))
	if err != nil {
		return false
	}

	category, err := uc.categoryRepo.FindByTypeAndName(ctx, entity.CategoryType(transactionType), categoryName)
	if err != nil {
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			slog.Warn("CSV import: category lookup failed", "category", categoryName, "error", err)
		}
		return false
	}

	transaction := entity.NewTransaction(transactionType, amount, description, category.ID, date)
	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		slog.Warn("CSV import: insert failed", "description", description, "error", err)
		return false
	}

	return true
}
