package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/dukan-ledger/backend/internal/application/adapter"
	"github.com/dukan-ledger/backend/internal/domain/entity"
)

// exportHeader is the column layout of exported workbooks.
var exportHeader = []interface{}{
	"Date", "Time", "Type", "Client", "Phone", "Amount", "Currency", "Status", "Method",
}

// xlsxEncoder implements the adapter.SpreadsheetEncoder interface on top
// of excelize.
type xlsxEncoder struct{}

// NewXLSXEncoder creates a new workbook encoder.
func NewXLSXEncoder() adapter.SpreadsheetEncoder {
	return &xlsxEncoder{}
}

// Encode renders the transactions as a single-sheet xlsx workbook.
func (e *xlsxEncoder) Encode(transactions []*entity.Transaction) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, tx := range transactions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		row := []interface{}{
			tx.Date,
			tx.Time,
			string(tx.Type),
			tx.Client,
			tx.ClientPhone,
			tx.Amount.String(),
			string(tx.Currency),
			string(tx.Status),
			tx.Method,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
