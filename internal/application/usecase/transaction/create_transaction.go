// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukan-ledger/backend/internal/application/adapter"
	"github.com/dukan-ledger/backend/internal/domain/entity"
	domainerror "github.com/dukan-ledger/backend/internal/domain/error"
)

// manualMethod tags transactions entered by hand, as opposed to imports.
const manualMethod = "Manual"

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Type        entity.TransactionType
	Client      string
	ClientPhone string
	ItemID      *uuid.UUID
	Date        string // YYYY-MM-DD; defaults to today when empty
	Time        string
	Amount      decimal.Decimal
	Currency    entity.Currency // defaults to the configured ledger currency
	Status      entity.TransactionStatus
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles manual transaction creation.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	inventoryRepo   adapter.InventoryRepository
	defaultCurrency entity.Currency
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	inventoryRepo adapter.InventoryRepository,
	defaultCurrency entity.Currency,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		inventoryRepo:   inventoryRepo,
		defaultCurrency: defaultCurrency,
	}
}

// Execute validates the input, persists the transaction, and decrements
// stock when the transaction moves an inventory item.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := uc.validateInput(&input); err != nil {
		return nil, err
	}

	tx := entity.NewTransaction(input.Type, input.Client, input.Amount, input.Currency, input.Date, input.Status)
	tx.ClientPhone = input.ClientPhone
	tx.ItemID = input.ItemID
	tx.Time = input.Time
	tx.Method = manualMethod

	if err := uc.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	uc.decrementStock(ctx, tx)

	return &CreateTransactionOutput{Transaction: tx}, nil
}

func (uc *CreateTransactionUseCase) validateInput(input *CreateTransactionInput) error {
	if !entity.IsValidTransactionType(input.Type) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"unknown transaction type",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if strings.TrimSpace(input.Client) == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyClientName,
			"client name is required",
			domainerror.ErrEmptyClientName,
		)
	}
	if !input.Amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if input.Date == "" {
		input.Date = time.Now().Format(entity.DateLayout)
	} else if _, err := time.Parse(entity.DateLayout, input.Date); err != nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date must be YYYY-MM-DD",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if input.Currency == "" {
		input.Currency = uc.defaultCurrency
	} else if !entity.IsValidCurrency(input.Currency) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidCurrency,
			"currency must be USD or IQD",
			domainerror.ErrInvalidCurrency,
		)
	}

	if input.Status == "" {
		input.Status = defaultStatus(input.Type)
	} else if !entity.IsValidTransactionStatus(input.Status) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionStatus,
			"unknown transaction status",
			domainerror.ErrInvalidTransactionStatus,
		)
	}

	return nil
}

// defaultStatus mirrors the classification rules: debts start outstanding,
// everything else is recorded as done.
func defaultStatus(t entity.TransactionType) entity.TransactionStatus {
	if t == entity.TransactionTypeDebt {
		return entity.TransactionStatusPending
	}
	return entity.TransactionStatusCompleted
}

// decrementStock takes one unit off the linked item for sales and debts.
// A dangling item reference is tolerated: the link stays on the
// transaction, the stock simply is not touched.
func (uc *CreateTransactionUseCase) decrementStock(ctx context.Context, tx *entity.Transaction) {
	if tx.ItemID == nil {
		return
	}
	if tx.Type != entity.TransactionTypeSale && tx.Type != entity.TransactionTypeDebt {
		return
	}

	item, err := uc.inventoryRepo.FindByID(ctx, *tx.ItemID)
	if err != nil {
		slog.Warn("linked inventory item not found, skipping stock decrement",
			"transactionID", tx.ID,
			"itemID", *tx.ItemID,
			"error", err,
		)
		return
	}

	item.Quantity--
	if err := uc.inventoryRepo.Update(ctx, item); err != nil {
		slog.Warn("failed to decrement stock",
			"transactionID", tx.ID,
			"itemID", item.ID,
			"error", err,
		)
	}
}
