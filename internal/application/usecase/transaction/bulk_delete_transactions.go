package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dukan-ledger/backend/internal/application/adapter"
	domainerror "github.com/dukan-ledger/backend/internal/domain/error"
)

// BulkDeleteTransactionsInput carries the IDs to delete.
type BulkDeleteTransactionsInput struct {
	IDs []uuid.UUID
}

// BulkDeleteTransactionsOutput reports how many records were removed.
// IDs that matched nothing are silently skipped.
type BulkDeleteTransactionsOutput struct {
	Deleted int64
}

// BulkDeleteTransactionsUseCase handles bulk transaction deletion.
type BulkDeleteTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewBulkDeleteTransactionsUseCase creates a new BulkDeleteTransactionsUseCase instance.
func NewBulkDeleteTransactionsUseCase(transactionRepo adapter.TransactionRepository) *BulkDeleteTransactionsUseCase {
	return &BulkDeleteTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute deletes the listed transactions in one statement.
func (uc *BulkDeleteTransactionsUseCase) Execute(ctx context.Context, input BulkDeleteTransactionsInput) (*BulkDeleteTransactionsOutput, error) {
	if len(input.IDs) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyTransactionIDs,
			"at least one transaction ID is required",
			domainerror.ErrEmptyTransactionIDs,
		)
	}

	deleted, err := uc.transactionRepo.BulkDelete(ctx, input.IDs)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk delete transactions: %w", err)
	}
	return &BulkDeleteTransactionsOutput{Deleted: deleted}, nil
}
