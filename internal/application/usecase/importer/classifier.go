package importer

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dukan-ledger/backend/internal/domain/entity"
)

const (
	// importedTime is the placeholder clock time for every imported row;
	// imports carry no per-row time precision.
	importedTime = "12:00"

	// importMethod tags transactions created by the ingestion pipeline.
	importMethod = "Import"
)

// Keyword lists for type classification. Both hold English and Arabic
// terms seen in real export data. The expense list is checked first, so a
// name matching both lists classifies as an expense.
var (
	expenseKeywords = []string{
		"expense", "invoice", "bill", "rent", "salary", "electricity",
		"water", "fuel", "purchase",
		"مصروف", "مصاريف", "فاتورة", "ايجار", "إيجار", "راتب",
		"كهرباء", "ماء", "وقود", "شراء",
	}

	debtKeywords = []string{
		"debt", "credit", "loan", "installment",
		"دين", "قرض", "اجل", "آجل", "قسط", "سلف",
	}
)

// classify maps an extracted name to a transaction type and its initial
// status: expenses complete immediately, debts start outstanding, and
// everything else is a completed sale.
func classify(name string) (entity.TransactionType, entity.TransactionStatus) {
	lower := strings.ToLower(name)

	for _, kw := range expenseKeywords {
		if strings.Contains(lower, kw) {
			return entity.TransactionTypeExpense, entity.TransactionStatusCompleted
		}
	}
	for _, kw := range debtKeywords {
		if strings.Contains(lower, kw) {
			return entity.TransactionTypeDebt, entity.TransactionStatusPending
		}
	}
	return entity.TransactionTypeSale, entity.TransactionStatusCompleted
}

// matchInventory finds an inventory item whose name equals the extracted
// name case-insensitively. No fuzzy matching, no stock mutation.
func matchInventory(name string, items []*entity.InventoryItem) *uuid.UUID {
	for _, item := range items {
		if strings.EqualFold(item.Name, name) {
			id := item.ID
			return &id
		}
	}
	return nil
}

// rawText joins a row's cell values for search and audit.
func rawText(row entity.Row) string {
	parts := make([]string, 0, len(row))
	for _, c := range row {
		if s := strings.TrimSpace(c.String()); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// BuildBatch classifies every data row of a decoded grid into transaction
// records. Rows that are empty or yield a zero amount are dropped, never
// stored as zero. Imported rows are always IQD-denominated.
func BuildBatch(grid []entity.Row, items []*entity.InventoryItem, today string) []*entity.Transaction {
	cm := LocateColumns(grid)

	var batch []*entity.Transaction
	for i := cm.FirstDataRow(); i < len(grid); i++ {
		row := grid[i]
		if len(row) == 0 || row.IsEmptyRow() {
			continue
		}

		amount := extractAmount(row, cm)
		if amount.IsZero() {
			continue
		}

		name := extractName(row, cm)
		txType, status := classify(name)

		tx := entity.NewTransaction(txType, name, amount.Abs(), entity.CurrencyIQD, extractDate(row, cm, today), status)
		tx.Time = importedTime
		tx.Method = importMethod
		tx.RawText = rawText(row)
		tx.ItemID = matchInventory(name, items)

		batch = append(batch, tx)
	}

	return batch
}
