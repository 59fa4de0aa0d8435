package transaction

import (
	"context"
	"fmt"

	"github.com/dukan-ledger/backend/internal/application/adapter"
	"github.com/dukan-ledger/backend/internal/application/usecase/dashboard"
	"github.com/dukan-ledger/backend/internal/domain/entity"
	domainerror "github.com/dukan-ledger/backend/internal/domain/error"
)

// ListTransactionsInput represents the list filters.
type ListTransactionsInput struct {
	Tab    dashboard.Tab
	Sort   dashboard.SortOption
	Search string
}

// ListTransactionsOutput represents the filtered, sorted working set.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase handles transaction listing.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute lists transactions through the same tab, search, and sort rules
// the dashboard uses, so the two views always agree.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.Tab == "" {
		input.Tab = dashboard.TabAll
	}
	if input.Sort == "" {
		input.Sort = dashboard.SortNewest
	}
	if !dashboard.IsValidSortOption(input.Sort) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidSortOption,
			"unknown sort option",
			domainerror.ErrInvalidSortOption,
		)
	}

	txs, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	filtered := dashboard.FilterTransactions(txs, input.Tab, input.Search)
	return &ListTransactionsOutput{
		Transactions: dashboard.SortTransactions(filtered, input.Sort),
	}, nil
}
