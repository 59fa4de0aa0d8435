// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"sort"
	"strings"

	"github.com/dukan-ledger/backend/internal/domain/entity"
)

// Tab identifies which dashboard view is active; it decides the type
// filter applied to the working set.
type Tab string

const (
	TabAll      Tab = "all"
	TabSales    Tab = "sales"
	TabExpenses Tab = "expenses"
	TabDebts    Tab = "debts"
)

// SortOption orders the working set for display.
type SortOption string

const (
	SortNewest  SortOption = "newest"
	SortOldest  SortOption = "oldest"
	SortHighest SortOption = "highest"
	SortLowest  SortOption = "lowest"
)

// IsValidSortOption reports whether s is a known sort option.
func IsValidSortOption(s SortOption) bool {
	switch s {
	case SortNewest, SortOldest, SortHighest, SortLowest:
		return true
	}
	return false
}

// FilterTransactions returns the working set for the active tab and search
// term. The input slice is never mutated.
func FilterTransactions(txs []*entity.Transaction, tab Tab, search string) []*entity.Transaction {
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]*entity.Transaction, 0, len(txs))
	for _, tx := range txs {
		if !tabMatches(tab, tx.Type) {
			continue
		}
		if needle != "" && !searchMatches(tx, needle) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func tabMatches(tab Tab, t entity.TransactionType) bool {
	switch tab {
	case TabSales:
		return t == entity.TransactionTypeSale || t == entity.TransactionTypeCash
	case TabExpenses:
		return t == entity.TransactionTypeExpense
	case TabDebts:
		return t == entity.TransactionTypeDebt
	default:
		return true
	}
}

// searchMatches tests the needle against the client name, the original
// source text, and the amount rendered as a string.
func searchMatches(tx *entity.Transaction, needle string) bool {
	if strings.Contains(strings.ToLower(tx.Client), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(tx.RawText), needle) {
		return true
	}
	return strings.Contains(tx.Amount.String(), needle)
}

// SortTransactions returns a new slice ordered by the given option:
// newest/oldest by calendar day then display time, highest/lowest by
// normalized amount. The input slice is never mutated.
func SortTransactions(txs []*entity.Transaction, option SortOption) []*entity.Transaction {
	out := append([]*entity.Transaction(nil), txs...)

	switch option {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return dayKey(out[i]) < dayKey(out[j]) })
	case SortHighest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].AmountUSD().GreaterThan(out[j].AmountUSD()) })
	case SortLowest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].AmountUSD().LessThan(out[j].AmountUSD()) })
	default: // newest
		sort.SliceStable(out, func(i, j int) bool { return dayKey(out[i]) > dayKey(out[j]) })
	}
	return out
}

// dayKey concatenates date and time; both are zero-padded strings, so
// lexical order matches chronological order for well-formed records.
func dayKey(tx *entity.Transaction) string {
	return tx.Date + " " + tx.Time
}
