package dto

import (
	"time"

	"github.com/dukan-ledger/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type        string  `json:"type" binding:"required,oneof=sale expense refund debt cash"`
	Client      string  `json:"client" binding:"required,min=1,max=255"`
	ClientPhone string  `json:"client_phone,omitempty" binding:"omitempty,max=32"`
	ItemID      *string `json:"item_id,omitempty"`
	Date        string  `json:"date,omitempty"`
	Time        string  `json:"time,omitempty" binding:"omitempty,max=16"`
	Amount      float64 `json:"amount" binding:"required"`
	Currency    string  `json:"currency,omitempty" binding:"omitempty,oneof=USD IQD"`
	Status      string  `json:"status,omitempty" binding:"omitempty,oneof=completed pending failed"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Type        *string  `json:"type,omitempty" binding:"omitempty,oneof=sale expense refund debt cash"`
	Client      *string  `json:"client,omitempty" binding:"omitempty,min=1,max=255"`
	ClientPhone *string  `json:"client_phone,omitempty" binding:"omitempty,max=32"`
	Date        *string  `json:"date,omitempty"`
	Time        *string  `json:"time,omitempty" binding:"omitempty,max=16"`
	Amount      *float64 `json:"amount,omitempty"`
	Currency    *string  `json:"currency,omitempty" binding:"omitempty,oneof=USD IQD"`
	Status      *string  `json:"status,omitempty" binding:"omitempty,oneof=completed pending failed"`
}

// BulkDeleteTransactionsRequest represents the request body for bulk transaction deletion.
type BulkDeleteTransactionsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Client      string    `json:"client"`
	ClientPhone string    `json:"client_phone,omitempty"`
	ItemID      *string   `json:"item_id,omitempty"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	Method      string    `json:"method"`
	RawText     string    `json:"raw_text,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// BulkDeleteTransactionsResponse represents the response for bulk transaction deletion.
type BulkDeleteTransactionsResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// ToTransactionResponse converts a Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(tx *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:          tx.ID.String(),
		Type:        string(tx.Type),
		Client:      tx.Client,
		ClientPhone: tx.ClientPhone,
		Date:        tx.Date,
		Time:        tx.Time,
		Amount:      tx.Amount.String(),
		Currency:    string(tx.Currency),
		Status:      string(tx.Status),
		Method:      tx.Method,
		RawText:     tx.RawText,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}

	if tx.ItemID != nil {
		itemIDStr := tx.ItemID.String()
		response.ItemID = &itemIDStr
	}

	return response
}

// ToTransactionListResponse converts a transaction slice to a TransactionListResponse DTO.
func ToTransactionListResponse(txs []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(txs))
	for i, tx := range txs {
		responses[i] = ToTransactionResponse(tx)
	}
	return TransactionListResponse{
		Transactions: responses,
		Total:        len(responses),
	}
}
