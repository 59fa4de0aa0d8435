package importer

import (
	"testing"

	"github.com/dukan-ledger/backend/internal/domain/entity"
)

func row(values ...string) entity.Row {
	r := make(entity.Row, len(values))
	for i, v := range values {
		if v == "" {
			r[i] = entity.Cell{}
		} else {
			r[i] = entity.TextCell(v)
		}
	}
	return r
}

func TestLocateColumns(t *testing.T) {
	tests := []struct {
		name string
		grid []entity.Row
		want ColumnMap
	}{
		{
			name: "header at row zero",
			grid: []entity.Row{
				row("date", "name", "price"),
				row("2024-01-01", "Acme", "1200"),
			},
			want: ColumnMap{HeaderRow: 0, Name: 1, Price: 2, Date: 0},
		},
		{
			name: "pos export header",
			grid: []entity.Row{
				row("", "", ""),
				row("menu_item_name", "actual_selling_price", "date"),
			},
			want: ColumnMap{HeaderRow: 1, Name: 0, Price: 1, Date: 2},
		},
		{
			name: "no header falls back to defaults",
			grid: []entity.Row{
				row("2024-01-01", "x", "y"),
				row("2024-01-02", "x", "y"),
			},
			want: DefaultColumnMap,
		},
		{
			name: "later match overwrites earlier within header row",
			grid: []entity.Row{
				row("name", "product", "amount", "price"),
			},
			want: ColumnMap{HeaderRow: 0, Name: 1, Price: 3, Date: DefaultColumnMap.Date},
		},
		{
			name: "unmatched column keeps its default index",
			grid: []entity.Row{
				row("name", "price"),
			},
			want: ColumnMap{HeaderRow: 0, Name: 0, Price: 1, Date: DefaultColumnMap.Date},
		},
		{
			name: "header beyond scan window is ignored",
			grid: append(make([]entity.Row, 10), row("name", "price", "date")),
			want: DefaultColumnMap,
		},
		{
			name: "empty grid",
			grid: nil,
			want: DefaultColumnMap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LocateColumns(tt.grid)
			if got != tt.want {
				t.Errorf("LocateColumns() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestColumnMapFirstDataRow(t *testing.T) {
	tests := []struct {
		name string
		cm   ColumnMap
		want int
	}{
		{"detected header", ColumnMap{HeaderRow: 2}, 3},
		{"no header skips row zero anyway", ColumnMap{HeaderRow: -1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cm.FirstDataRow(); got != tt.want {
				t.Errorf("FirstDataRow() = %d, want %d", got, tt.want)
			}
		})
	}
}
