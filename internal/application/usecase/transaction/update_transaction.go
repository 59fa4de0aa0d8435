package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukan-ledger/backend/internal/application/adapter"
	"github.com/dukan-ledger/backend/internal/domain/entity"
	domainerror "github.com/dukan-ledger/backend/internal/domain/error"
)

// UpdateTransactionInput represents a partial update; nil fields are
// left untouched.
type UpdateTransactionInput struct {
	ID          uuid.UUID
	Type        *entity.TransactionType
	Client      *string
	ClientPhone *string
	Date        *string
	Time        *string
	Amount      *decimal.Decimal
	Currency    *entity.Currency
	Status      *entity.TransactionStatus
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles partial transaction updates.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{transactionRepo: transactionRepo}
}

// Execute applies the provided fields and persists the result.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	tx, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if input.Type != nil {
		if !entity.IsValidTransactionType(*input.Type) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"unknown transaction type",
				domainerror.ErrInvalidTransactionType,
			)
		}
		tx.Type = *input.Type
	}
	if input.Client != nil {
		if strings.TrimSpace(*input.Client) == "" {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeEmptyClientName,
				"client name is required",
				domainerror.ErrEmptyClientName,
			)
		}
		tx.Client = *input.Client
	}
	if input.ClientPhone != nil {
		tx.ClientPhone = *input.ClientPhone
	}
	if input.Date != nil {
		if _, err := time.Parse(entity.DateLayout, *input.Date); err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionDate,
				"date must be YYYY-MM-DD",
				domainerror.ErrInvalidTransactionDate,
			)
		}
		tx.Date = *input.Date
	}
	if input.Time != nil {
		tx.Time = *input.Time
	}
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionAmount,
				"amount must be greater than zero",
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		tx.Amount = *input.Amount
	}
	if input.Currency != nil {
		if !entity.IsValidCurrency(*input.Currency) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidCurrency,
				"currency must be USD or IQD",
				domainerror.ErrInvalidCurrency,
			)
		}
		tx.Currency = *input.Currency
	}
	if input.Status != nil {
		if !entity.IsValidTransactionStatus(*input.Status) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionStatus,
				"unknown transaction status",
				domainerror.ErrInvalidTransactionStatus,
			)
		}
		tx.Status = *input.Status
	}

	tx.UpdatedAt = time.Now().UTC()
	if err := uc.transactionRepo.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: tx}, nil
}
