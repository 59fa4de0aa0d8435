package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dukan-ledger/backend/internal/domain/entity"
)

func tx(t entity.TransactionType, client string, amount int64, currency entity.Currency, date string, status entity.TransactionStatus) *entity.Transaction {
	return entity.NewTransaction(t, client, decimal.NewFromInt(amount), currency, date, status)
}

func TestComputeStats(t *testing.T) {
	t.Run("sales normalized to USD and IQD derived", func(t *testing.T) {
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeSale, "Acme", 100, entity.CurrencyUSD, "2024-01-07", entity.TransactionStatusCompleted),
			// 152000 IQD = 100 USD
			tx(entity.TransactionTypeCash, "Walk-in", 152000, entity.CurrencyIQD, "2024-01-08", entity.TransactionStatusCompleted),
		}

		stats := ComputeStats(txs)

		if !stats.TotalSalesUSD.Equal(decimal.NewFromInt(200)) {
			t.Errorf("TotalSalesUSD = %s, want 200", stats.TotalSalesUSD)
		}
		want := decimal.NewFromInt(200).Mul(entity.IQDPerUSD)
		if !stats.TotalSalesIQD.Equal(want) {
			t.Errorf("TotalSalesIQD = %s, want %s", stats.TotalSalesIQD, want)
		}
	})

	t.Run("pending sale excluded from sales total", func(t *testing.T) {
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeSale, "Acme", 100, entity.CurrencyUSD, "2024-01-07", entity.TransactionStatusPending),
		}
		if got := ComputeStats(txs).TotalSalesUSD; !got.IsZero() {
			t.Errorf("TotalSalesUSD = %s, want 0", got)
		}
	})

	t.Run("expenses counted regardless of status", func(t *testing.T) {
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeExpense, "Rent", 50, entity.CurrencyUSD, "2024-01-07", entity.TransactionStatusCompleted),
			tx(entity.TransactionTypeExpense, "Fuel", 25, entity.CurrencyUSD, "2024-01-08", entity.TransactionStatusPending),
			tx(entity.TransactionTypeSale, "Acme", 100, entity.CurrencyUSD, "2024-01-08", entity.TransactionStatusCompleted),
		}

		stats := ComputeStats(txs)
		if !stats.TotalExpensesUSD.Equal(decimal.NewFromInt(75)) {
			t.Errorf("TotalExpensesUSD = %s, want 75", stats.TotalExpensesUSD)
		}
		if !stats.NetProfitUSD.Equal(decimal.NewFromInt(25)) {
			t.Errorf("NetProfitUSD = %s, want 25", stats.NetProfitUSD)
		}
	})

	t.Run("outstanding debt expressed in IQD", func(t *testing.T) {
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeDebt, "Ali", 10, entity.CurrencyUSD, "2024-01-07", entity.TransactionStatusPending),
			tx(entity.TransactionTypeDebt, "Omar", 5, entity.CurrencyUSD, "2024-01-08", entity.TransactionStatusCompleted),
		}

		stats := ComputeStats(txs)
		want := decimal.NewFromInt(10).Mul(entity.IQDPerUSD)
		if !stats.TotalDebtIQD.Equal(want) {
			t.Errorf("TotalDebtIQD = %s, want %s", stats.TotalDebtIQD, want)
		}
	})

	t.Run("weekly histogram buckets by day of week across weeks", func(t *testing.T) {
		txs := []*entity.Transaction{
			// 2024-01-07 and 2024-01-14 are both Sundays.
			tx(entity.TransactionTypeSale, "A", 10, entity.CurrencyUSD, "2024-01-07", entity.TransactionStatusCompleted),
			tx(entity.TransactionTypeSale, "B", 20, entity.CurrencyUSD, "2024-01-14", entity.TransactionStatusCompleted),
			// 2024-01-08 is a Monday.
			tx(entity.TransactionTypeSale, "C", 5, entity.CurrencyUSD, "2024-01-08", entity.TransactionStatusCompleted),
		}

		stats := ComputeStats(txs)
		if !stats.WeeklyData[0].Equal(decimal.NewFromInt(30)) {
			t.Errorf("Sunday bucket = %s, want 30", stats.WeeklyData[0])
		}
		if !stats.WeeklyData[1].Equal(decimal.NewFromInt(5)) {
			t.Errorf("Monday bucket = %s, want 5", stats.WeeklyData[1])
		}
	})

	t.Run("unparseable date skipped for histogram only", func(t *testing.T) {
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeSale, "A", 10, entity.CurrencyUSD, "not-a-date", entity.TransactionStatusCompleted),
		}

		stats := ComputeStats(txs)
		if !stats.TotalSalesUSD.Equal(decimal.NewFromInt(10)) {
			t.Errorf("TotalSalesUSD = %s, want 10", stats.TotalSalesUSD)
		}
		for i, bucket := range stats.WeeklyData {
			if !bucket.IsZero() {
				t.Errorf("bucket %d = %s, want 0", i, bucket)
			}
		}
	})
}

func TestFilterTransactions(t *testing.T) {
	txs := []*entity.Transaction{
		tx(entity.TransactionTypeSale, "Acme", 100, entity.CurrencyUSD, "2024-01-01", entity.TransactionStatusCompleted),
		tx(entity.TransactionTypeExpense, "Rent", 50, entity.CurrencyUSD, "2024-01-02", entity.TransactionStatusCompleted),
		tx(entity.TransactionTypeDebt, "Ali", 30, entity.CurrencyUSD, "2024-01-03", entity.TransactionStatusPending),
		tx(entity.TransactionTypeCash, "Walk-in", 20, entity.CurrencyUSD, "2024-01-04", entity.TransactionStatusCompleted),
	}

	tests := []struct {
		name   string
		tab    Tab
		search string
		want   int
	}{
		{"all", TabAll, "", 4},
		{"sales include cash", TabSales, "", 2},
		{"expenses", TabExpenses, "", 1},
		{"debts", TabDebts, "", 1},
		{"search by client", TabAll, "acme", 1},
		{"search by amount string", TabAll, "30", 1},
		{"search misses", TabAll, "zzz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterTransactions(txs, tt.tab, tt.search)
			if len(got) != tt.want {
				t.Errorf("got %d transactions, want %d", len(got), tt.want)
			}
		})
	}
}

func TestSortTransactions(t *testing.T) {
	a := tx(entity.TransactionTypeSale, "A", 10, entity.CurrencyUSD, "2024-01-01", entity.TransactionStatusCompleted)
	b := tx(entity.TransactionTypeSale, "B", 30, entity.CurrencyUSD, "2024-01-03", entity.TransactionStatusCompleted)
	c := tx(entity.TransactionTypeSale, "C", 20, entity.CurrencyUSD, "2024-01-02", entity.TransactionStatusCompleted)
	txs := []*entity.Transaction{a, b, c}

	t.Run("newest first", func(t *testing.T) {
		got := SortTransactions(txs, SortNewest)
		if got[0] != b || got[2] != a {
			t.Error("expected order b, c, a")
		}
	})

	t.Run("oldest first", func(t *testing.T) {
		got := SortTransactions(txs, SortOldest)
		if got[0] != a || got[2] != b {
			t.Error("expected order a, c, b")
		}
	})

	t.Run("highest amount first", func(t *testing.T) {
		got := SortTransactions(txs, SortHighest)
		if got[0] != b || got[2] != a {
			t.Error("expected order b, c, a")
		}
	})

	t.Run("lowest amount first", func(t *testing.T) {
		got := SortTransactions(txs, SortLowest)
		if got[0] != a || got[2] != b {
			t.Error("expected order a, c, b")
		}
	})

	t.Run("input slice not mutated", func(t *testing.T) {
		_ = SortTransactions(txs, SortHighest)
		if txs[0] != a || txs[1] != b || txs[2] != c {
			t.Error("input order changed")
		}
	})
}
