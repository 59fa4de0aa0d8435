package debt

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dukan-ledger/backend/internal/application/adapter"
	"github.com/dukan-ledger/backend/internal/domain/entity"
)

// DebtorSummary aggregates the pending debts of a single client. Total is
// the raw sum of stored amounts, without currency normalization: debtors
// are settled in the currency they were recorded in.
type DebtorSummary struct {
	Client   string          `json:"client"`
	Phone    string          `json:"phone"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
	LastDate string          `json:"last_date"`
}

// GroupDebtors folds pending debts into per-client summaries, sorted by
// total descending. The phone tracks the most recently seen non-empty
// value, so a corrected number on a newer debt wins.
func GroupDebtors(txs []*entity.Transaction) []DebtorSummary {
	byClient := make(map[string]*DebtorSummary)
	for _, tx := range txs {
		if tx.Type != entity.TransactionTypeDebt || tx.Status == entity.TransactionStatusCompleted {
			continue
		}
		s, ok := byClient[tx.Client]
		if !ok {
			s = &DebtorSummary{Client: tx.Client, Total: decimal.Zero}
			byClient[tx.Client] = s
		}
		s.Total = s.Total.Add(tx.Amount)
		s.Count++
		if tx.ClientPhone != "" {
			s.Phone = tx.ClientPhone
		}
		if laterDate(tx.Date, s.LastDate) {
			s.LastDate = tx.Date
		}
	}

	out := make([]DebtorSummary, 0, len(byClient))
	for _, s := range byClient {
		out = append(out, *s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Client < out[j].Client
	})
	return out
}

// laterDate reports whether a is a later calendar day than b. Unparseable
// dates never win; an empty b always loses to a parseable a.
func laterDate(a, b string) bool {
	da, err := time.Parse(entity.DateLayout, a)
	if err != nil {
		return false
	}
	if b == "" {
		return true
	}
	db, err := time.Parse(entity.DateLayout, b)
	if err != nil {
		return true
	}
	return da.After(db)
}

// ListDebtorsOutput wraps the grouped debtor summaries.
type ListDebtorsOutput struct {
	Debtors []DebtorSummary
}

// ListDebtorsUseCase groups outstanding debts by client.
type ListDebtorsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListDebtorsUseCase creates a new ListDebtorsUseCase instance.
func NewListDebtorsUseCase(transactionRepo adapter.TransactionRepository) *ListDebtorsUseCase {
	return &ListDebtorsUseCase{transactionRepo: transactionRepo}
}

// Execute returns the current debtor summaries.
func (uc *ListDebtorsUseCase) Execute(ctx context.Context) (*ListDebtorsOutput, error) {
	txs, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return &ListDebtorsOutput{Debtors: GroupDebtors(txs)}, nil
}
