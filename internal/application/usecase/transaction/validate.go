// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// validateFields checks the shared field constraints for create and update.
// It returns the resolved category so callers can confirm the type pairing.
func validateFields(
	ctx context.Context,
	categoryRepo adapter.CategoryRepository,
	transactionType entity.TransactionType,
	amount decimal.Decimal,
	description string,
	categoryID uint,
	date time.Time,
) (*entity.Category, error) {
	if !transactionType.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if strings.TrimSpace(description) == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyTransactionDescription,
			"description cannot be empty",
			domainerror.ErrEmptyTransactionDescription,
		)
	}

	if date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	category, err := categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}

	if string(category.Type) != string(transactionType) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryTypeMismatch,
			fmt.Sprintf("category %q is a %s category", category.Name, category.Type),
			domainerror.ErrCategoryTypeMismatch,
		)
	}

	return category, nil
}
