// Package spreadsheet decodes and encodes xlsx workbooks for the ledger.
package spreadsheet

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dukan-ledger/backend/internal/application/adapter"
	"github.com/dukan-ledger/backend/internal/domain/entity"
)

// xlsxDecoder implements the adapter.SpreadsheetDecoder interface on top
// of excelize.
type xlsxDecoder struct{}

// NewXLSXDecoder creates a new workbook decoder.
func NewXLSXDecoder() adapter.SpreadsheetDecoder {
	return &xlsxDecoder{}
}

// Decode reads the first sheet of the workbook into a typed cell grid.
// Cells that parse as numbers become number cells; everything else stays
// text. Excelize already returns cells in display form, so no style or
// formula handling is needed here.
func (d *xlsxDecoder) Decode(data []byte) ([]entity.Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rawRows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	grid := make([]entity.Row, len(rawRows))
	for i, rawRow := range rawRows {
		row := make(entity.Row, len(rawRow))
		for j, raw := range rawRow {
			row[j] = toCell(raw)
		}
		grid[i] = row
	}
	return grid, nil
}

func toCell(raw string) entity.Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return entity.Cell{}
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return entity.NumberCell(n)
	}
	return entity.TextCell(trimmed)
}
