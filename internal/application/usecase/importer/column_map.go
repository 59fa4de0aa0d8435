// Package importer contains the spreadsheet ingestion and classification use cases.
package importer

import (
	"strings"

	"github.com/dukan-ledger/backend/internal/domain/entity"
)

// headerScanRows is how many leading rows are examined for a header.
const headerScanRows = 10

// ColumnMap maps the semantic columns of an imported grid to column
// indices. HeaderRow is -1 when no header row was detected.
type ColumnMap struct {
	HeaderRow int
	Name      int
	Price     int
	Date      int
}

// DefaultColumnMap is the fallback mapping applied when header detection
// fails or a semantic column is never matched. The indices are tuned to
// one known POS export format and must be kept as-is for compatibility.
var DefaultColumnMap = ColumnMap{
	HeaderRow: -1,
	Name:      3,
	Price:     8,
	Date:      0,
}

// FirstDataRow returns the index of the first row to classify. Row 0 is
// skipped unconditionally as a presumed header even when none was detected.
func (cm ColumnMap) FirstDataRow() int {
	if cm.HeaderRow >= 0 {
		return cm.HeaderRow + 1
	}
	return 1
}

// Column keyword sets. Matching is by exact trimmed lowercase equality;
// later matches overwrite earlier ones within the header row scan.
var (
	nameColumnKeys  = []string{"menu_item_name", "name", "product"}
	priceColumnKeys = []string{"actual_selling_price", "price", "amount"}
	dateColumnKeys  = []string{"date", "time"}
)

// LocateColumns scans the first rows of the grid for a header row and maps
// the name, price, and date columns. It is a pure function; the fallback
// policy lives entirely in DefaultColumnMap.
func LocateColumns(grid []entity.Row) ColumnMap {
	cm := DefaultColumnMap

	limit := headerScanRows
	if len(grid) < limit {
		limit = len(grid)
	}

	for i := 0; i < limit; i++ {
		if !looksLikeHeader(grid[i]) {
			continue
		}

		cm.HeaderRow = i
		for col, cell := range grid[i] {
			key := strings.ToLower(strings.TrimSpace(cell.String()))
			switch {
			case containsKey(nameColumnKeys, key):
				cm.Name = col
			case containsKey(priceColumnKeys, key):
				cm.Price = col
			case containsKey(dateColumnKeys, key):
				cm.Date = col
			}
		}
		break
	}

	return cm
}

// looksLikeHeader joins all cells into one lowercase string and tests for
// the header marker substrings.
func looksLikeHeader(row entity.Row) bool {
	var sb strings.Builder
	for _, cell := range row {
		sb.WriteString(cell.String())
	}
	joined := strings.ToLower(sb.String())
	return strings.Contains(joined, "menu_item_name") || strings.Contains(joined, "name")
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
