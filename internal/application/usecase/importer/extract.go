package importer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/dukan-ledger/backend/internal/domain/entity"
)

// fallbackItemName is used when no usable name can be extracted from a row.
const fallbackItemName = "Imported Item"

var (
	// calendarDayRe matches the canonical YYYY-MM-DD date form.
	calendarDayRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	// nonAmountRe strips everything that is not a digit or decimal point,
	// so "1,234.56 IQD" parses as 1234.56.
	nonAmountRe = regexp.MustCompile(`[^0-9.]`)
)

// cellAt returns the cell at column idx, or an empty cell when the row is
// too short.
func cellAt(row entity.Row, idx int) entity.Cell {
	if idx < 0 || idx >= len(row) {
		return entity.Cell{}
	}
	return row[idx]
}

// extractName pulls the counterparty/product name from the row: the mapped
// name column when non-empty, otherwise the first free-text cell that is
// long enough, has no comma, and is not a date; otherwise a fixed fallback.
func extractName(row entity.Row, cm ColumnMap) string {
	if c := cellAt(row, cm.Name); !c.IsEmpty() {
		if s := strings.TrimSpace(c.String()); s != "" {
			return s
		}
	}

	for _, c := range row {
		if c.Kind != entity.CellText {
			continue
		}
		s := strings.TrimSpace(c.Text)
		if utf8.RuneCountInString(s) <= 2 {
			continue
		}
		if strings.Contains(s, ",") || calendarDayRe.MatchString(s) {
			continue
		}
		return s
	}

	return fallbackItemName
}

// extractAmount reads the mapped price column. Numeric cells are used
// as-is; text cells are stripped down to digits and the decimal point
// before parsing. Anything unparseable yields zero, and zero-amount rows
// are dropped by the caller.
func extractAmount(row entity.Row, cm ColumnMap) decimal.Decimal {
	c := cellAt(row, cm.Price)
	switch c.Kind {
	case entity.CellNumber:
		return decimal.NewFromFloat(c.Number)
	case entity.CellText:
		cleaned := nonAmountRe.ReplaceAllString(c.Text, "")
		if cleaned == "" {
			return decimal.Zero
		}
		amount, err := decimal.NewFromString(cleaned)
		if err != nil {
			return decimal.Zero
		}
		return amount
	default:
		return decimal.Zero
	}
}

// extractDate returns the mapped date cell verbatim when it is a
// YYYY-MM-DD day, and the processing-time date otherwise.
func extractDate(row entity.Row, cm ColumnMap, today string) string {
	s := strings.TrimSpace(cellAt(row, cm.Date).String())
	if calendarDayRe.MatchString(s) {
		return s
	}
	return today
}
