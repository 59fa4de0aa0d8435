// Package export contains the spreadsheet export use case.
package export

import (
	"context"
	"fmt"

	"github.com/dukan-ledger/backend/internal/application/adapter"
)

// ExportTransactionsOutput carries the encoded workbook bytes.
type ExportTransactionsOutput struct {
	Data []byte
}

// ExportTransactionsUseCase renders the full ledger as a workbook.
type ExportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	encoder         adapter.SpreadsheetEncoder
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	encoder adapter.SpreadsheetEncoder,
) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{
		transactionRepo: transactionRepo,
		encoder:         encoder,
	}
}

// Execute encodes the current transaction snapshot.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context) (*ExportTransactionsOutput, error) {
	txs, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	data, err := uc.encoder.Encode(txs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}

	return &ExportTransactionsOutput{Data: data}, nil
}
