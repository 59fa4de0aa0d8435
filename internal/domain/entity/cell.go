package entity

import "strconv"

// CellKind discriminates the value held by a spreadsheet cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is one value in a decoded spreadsheet grid. The external decoder
// produces cells typed as number, text, or empty; the ingestion pipeline
// never touches file bytes directly.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// Row is an ordered sequence of cells.
type Row []Cell

// TextCell returns a text cell holding s.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// NumberCell returns a numeric cell holding n.
func NumberCell(n float64) Cell {
	return Cell{Kind: CellNumber, Number: n}
}

// IsEmpty reports whether the cell carries no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty || (c.Kind == CellText && c.Text == "")
}

// String returns the display form of the cell value.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// IsEmptyRow reports whether every cell in the row is empty.
func (r Row) IsEmptyRow() bool {
	for _, c := range r {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}
