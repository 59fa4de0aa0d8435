package debt

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dukan-ledger/backend/internal/application/adapter"
	"github.com/dukan-ledger/backend/internal/domain/entity"
	domainerror "github.com/dukan-ledger/backend/internal/domain/error"
)

// SettleDebtsInput identifies the debtor to settle.
type SettleDebtsInput struct {
	Client string
}

// SettleDebtsOutput reports how many debts were marked settled.
type SettleDebtsOutput struct {
	Settled int
}

// SettleDebtsUseCase marks every pending debt of a client as settled.
type SettleDebtsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewSettleDebtsUseCase creates a new SettleDebtsUseCase instance.
func NewSettleDebtsUseCase(transactionRepo adapter.TransactionRepository) *SettleDebtsUseCase {
	return &SettleDebtsUseCase{transactionRepo: transactionRepo}
}

// Execute flips the client's pending debts to completed and stamps them
// with today's date, so settled amounts count as revenue on the day the
// money came in. A client with no pending debts is a no-op success.
func (uc *SettleDebtsUseCase) Execute(ctx context.Context, input SettleDebtsInput) (*SettleDebtsOutput, error) {
	client := strings.TrimSpace(input.Client)
	if client == "" {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeEmptyDebtorName,
			"debtor name is required",
			domainerror.ErrEmptyDebtorName,
		)
	}

	txs, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	today := time.Now().Format(entity.DateLayout)
	settled := 0
	for _, tx := range txs {
		if tx.Type != entity.TransactionTypeDebt || tx.Status == entity.TransactionStatusCompleted {
			continue
		}
		if tx.Client != client {
			continue
		}
		tx.Status = entity.TransactionStatusCompleted
		tx.Date = today
		if err := uc.transactionRepo.Update(ctx, tx); err != nil {
			return nil, fmt.Errorf("failed to settle debt %s: %w", tx.ID, err)
		}
		settled++
	}

	slog.Info("debts settled", "client", client, "count", settled)
	return &SettleDebtsOutput{Settled: settled}, nil
}
