package adapter

import "github.com/dukan-ledger/backend/internal/domain/entity"

// SpreadsheetDecoder turns uploaded file bytes into an ordered grid of
// typed cell values. Only the first sheet is read. The core performs no
// file-format parsing itself.
type SpreadsheetDecoder interface {
	Decode(data []byte) ([]entity.Row, error)
}

// SpreadsheetEncoder serializes the transaction collection into a
// spreadsheet file for download, one row per transaction.
type SpreadsheetEncoder interface {
	Encode(transactions []*entity.Transaction) ([]byte, error)
}
