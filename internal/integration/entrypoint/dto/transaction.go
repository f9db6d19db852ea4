package dto

import (
	"time"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required,min=1"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	Date        string  `json:"date" binding:"required"`
}

// UpdateTransactionRequest represents the request body for transaction updates.
// Updates overwrite every mutable field.
type UpdateTransactionRequest struct {
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required,min=1"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	Date        string  `json:"date" binding:"required"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID           uint      `json:"id"`
	Type         string    `json:"type"`
	Amount       float64   `json:"amount"`
	Description  string    `json:"description"`
	CategoryID   uint      `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	Date         string    `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

// ImportResultResponse represents the outcome of a CSV import.
type ImportResultResponse struct {
	BatchID  string `json:"batch_id"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
}

// ToTransactionResponse converts a transaction and its category to a DTO.
func ToTransactionResponse(transaction *entity.Transaction, category *entity.Category) TransactionResponse {
	response := TransactionResponse{
		ID:          transaction.ID,
		Type:        string(transaction.Type),
		Amount:      transaction.Amount.InexactFloat64(),
		Description: transaction.Description,
		CategoryID:  transaction.CategoryID,
		Date:        transaction.Date.Format(DateLayout),
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
	if category != nil {
		response.CategoryName = category.Name
	}
	return response
}

// ToTransactionListResponse converts joined transactions to a list DTO.
func ToTransactionListResponse(transactions []*entity.TransactionWithCategory) TransactionListResponse {
	items := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		items[i] = ToTransactionResponse(t.Transaction, t.Category)
	}
	return TransactionListResponse{
		Transactions: items,
		Count:        len(items),
	}
}
