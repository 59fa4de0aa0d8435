package report

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukan-ledger/backend/internal/domain/entity"
	domainerror "github.com/dukan-ledger/backend/internal/domain/error"
)

func tx(txType entity.TransactionType, status entity.TransactionStatus, client, date string, amount int64, currency entity.Currency) *entity.Transaction {
	return &entity.Transaction{
		ID:       uuid.New(),
		Type:     txType,
		Client:   client,
		Date:     date,
		Time:     "12:00",
		Amount:   decimal.NewFromInt(amount),
		Currency: currency,
		Status:   status,
		Method:   "Manual",
	}
}

func TestComputeStats(t *testing.T) {
	t.Run("completed sales add to revenue on their stored date", func(t *testing.T) {
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeSale, entity.TransactionStatusCompleted, "Tea", "2024-03-04", 100, entity.CurrencyUSD),
			tx(entity.TransactionTypeSale, entity.TransactionStatusPending, "Tea", "2024-03-04", 999, entity.CurrencyUSD),
		}
		stats := ComputeStats(txs, "2024-03-01", "2024-03-31", "")
		if !stats.TotalRevenueUSD.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("expected revenue 100, got %s", stats.TotalRevenueUSD)
		}
		if len(stats.Daily) != 1 || stats.Daily[0].Date != "2024-03-04" {
			t.Fatalf("expected one bucket on 2024-03-04, got %+v", stats.Daily)
		}
		if !stats.Daily[0].Revenue.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("expected daily revenue 100, got %s", stats.Daily[0].Revenue)
		}
	})

	t.Run("settled debts count as revenue, pending debts as outstanding", func(t *testing.T) {
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeDebt, entity.TransactionStatusCompleted, "Ali", "2024-03-10", 40, entity.CurrencyUSD),
			tx(entity.TransactionTypeDebt, entity.TransactionStatusPending, "Sara", "2024-03-11", 60, entity.CurrencyUSD),
		}
		stats := ComputeStats(txs, "2024-03-01", "2024-03-31", "")
		if !stats.TotalRevenueUSD.Equal(decimal.NewFromInt(40)) {
			t.Fatalf("expected revenue 40, got %s", stats.TotalRevenueUSD)
		}
		if !stats.CollectedUSD.Equal(decimal.NewFromInt(40)) {
			t.Fatalf("expected collected 40, got %s", stats.CollectedUSD)
		}
		if !stats.OutstandingUSD.Equal(decimal.NewFromInt(60)) {
			t.Fatalf("expected outstanding 60, got %s", stats.OutstandingUSD)
		}
		if stats.CollectionRate != 40.0 {
			t.Fatalf("expected collection rate 40, got %v", stats.CollectionRate)
		}
		if len(stats.TopDebtors) != 1 || stats.TopDebtors[0].Client != "Sara" {
			t.Fatalf("expected Sara as the only debtor, got %+v", stats.TopDebtors)
		}
	})

	t.Run("collection rate is 0 when there are no debts", func(t *testing.T) {
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeSale, entity.TransactionStatusCompleted, "Tea", "2024-03-04", 100, entity.CurrencyUSD),
		}
		stats := ComputeStats(txs, "2024-03-01", "2024-03-31", "")
		if stats.CollectionRate != 0 {
			t.Fatalf("expected collection rate 0, got %v", stats.CollectionRate)
		}
	})

	t.Run("collection rate is 100 when everything is settled", func(t *testing.T) {
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeDebt, entity.TransactionStatusCompleted, "Ali", "2024-03-10", 40, entity.CurrencyUSD),
		}
		stats := ComputeStats(txs, "2024-03-01", "2024-03-31", "")
		if stats.CollectionRate != 100.0 {
			t.Fatalf("expected collection rate 100, got %v", stats.CollectionRate)
		}
	})

	t.Run("date range is inclusive on both bounds", func(t *testing.T) {
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeSale, entity.TransactionStatusCompleted, "A", "2024-02-29", 1, entity.CurrencyUSD),
			tx(entity.TransactionTypeSale, entity.TransactionStatusCompleted, "B", "2024-03-01", 2, entity.CurrencyUSD),
			tx(entity.TransactionTypeSale, entity.TransactionStatusCompleted, "C", "2024-03-31", 4, entity.CurrencyUSD),
			tx(entity.TransactionTypeSale, entity.TransactionStatusCompleted, "D", "2024-04-01", 8, entity.CurrencyUSD),
		}
		stats := ComputeStats(txs, "2024-03-01", "2024-03-31", "")
		if !stats.TotalRevenueUSD.Equal(decimal.NewFromInt(6)) {
			t.Fatalf("expected revenue 6, got %s", stats.TotalRevenueUSD)
		}
	})

	t.Run("search filters on client name or amount text", func(t *testing.T) {
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeSale, entity.TransactionStatusCompleted, "Green Tea", "2024-03-04", 100, entity.CurrencyUSD),
			tx(entity.TransactionTypeSale, entity.TransactionStatusCompleted, "Coffee", "2024-03-04", 250, entity.CurrencyUSD),
		}
		stats := ComputeStats(txs, "2024-03-01", "2024-03-31", "tea")
		if !stats.TotalRevenueUSD.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("expected revenue 100 for client match, got %s", stats.TotalRevenueUSD)
		}
		stats = ComputeStats(txs, "2024-03-01", "2024-03-31", "250")
		if !stats.TotalRevenueUSD.Equal(decimal.NewFromInt(250)) {
			t.Fatalf("expected revenue 250 for amount match, got %s", stats.TotalRevenueUSD)
		}
	})

	t.Run("IQD amounts normalize to USD", func(t *testing.T) {
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeSale, entity.TransactionStatusCompleted, "Tea", "2024-03-04", 152000, entity.CurrencyIQD),
		}
		stats := ComputeStats(txs, "2024-03-01", "2024-03-31", "")
		if !stats.TotalRevenueUSD.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("expected revenue 100 USD, got %s", stats.TotalRevenueUSD)
		}
	})

	t.Run("expenses group by client label", func(t *testing.T) {
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeExpense, entity.TransactionStatusCompleted, "Rent", "2024-03-01", 300, entity.CurrencyUSD),
			tx(entity.TransactionTypeExpense, entity.TransactionStatusPending, "Rent", "2024-03-15", 300, entity.CurrencyUSD),
			tx(entity.TransactionTypeExpense, entity.TransactionStatusCompleted, "Electricity", "2024-03-10", 50, entity.CurrencyUSD),
		}
		stats := ComputeStats(txs, "2024-03-01", "2024-03-31", "")
		if !stats.TotalExpensesUSD.Equal(decimal.NewFromInt(650)) {
			t.Fatalf("expected expenses 650, got %s", stats.TotalExpensesUSD)
		}
		if !stats.ExpenseCategories["Rent"].Equal(decimal.NewFromInt(600)) {
			t.Fatalf("expected Rent 600, got %s", stats.ExpenseCategories["Rent"])
		}
		if !stats.ExpenseCategories["Electricity"].Equal(decimal.NewFromInt(50)) {
			t.Fatalf("expected Electricity 50, got %s", stats.ExpenseCategories["Electricity"])
		}
	})

	t.Run("top products rank by total with at most five entries", func(t *testing.T) {
		var txs []*entity.Transaction
		names := []string{"A", "B", "C", "D", "E", "F", "G"}
		for i, name := range names {
			txs = append(txs, tx(entity.TransactionTypeSale, entity.TransactionStatusCompleted, name, "2024-03-04", int64(10*(i+1)), entity.CurrencyUSD))
		}
		stats := ComputeStats(txs, "2024-03-01", "2024-03-31", "")
		if len(stats.TopProducts) != 5 {
			t.Fatalf("expected 5 products, got %d", len(stats.TopProducts))
		}
		if stats.TopProducts[0].Name != "G" || !stats.TopProducts[0].Total.Equal(decimal.NewFromInt(70)) {
			t.Fatalf("expected G at 70 first, got %+v", stats.TopProducts[0])
		}
		if stats.TopProducts[4].Name != "C" {
			t.Fatalf("expected C last, got %+v", stats.TopProducts[4])
		}
	})

	t.Run("busiest day scans Sunday through Saturday and breaks ties forward", func(t *testing.T) {
		// 2024-03-03 is a Sunday, 2024-03-05 a Tuesday.
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeSale, entity.TransactionStatusCompleted, "A", "2024-03-03", 100, entity.CurrencyUSD),
			tx(entity.TransactionTypeSale, entity.TransactionStatusCompleted, "B", "2024-03-05", 100, entity.CurrencyUSD),
		}
		stats := ComputeStats(txs, "2024-03-01", "2024-03-31", "")
		if stats.BusiestDay != "Sunday" {
			t.Fatalf("expected Sunday on a tie, got %q", stats.BusiestDay)
		}
		if !stats.WeeklyActivity[0].Equal(decimal.NewFromInt(100)) {
			t.Fatalf("expected Sunday activity 100, got %s", stats.WeeklyActivity[0])
		}
	})

	t.Run("busiest day is empty with no sales", func(t *testing.T) {
		stats := ComputeStats(nil, "2024-03-01", "2024-03-31", "")
		if stats.BusiestDay != "" {
			t.Fatalf("expected empty busiest day, got %q", stats.BusiestDay)
		}
	})

	t.Run("daily series comes back sorted ascending", func(t *testing.T) {
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeSale, entity.TransactionStatusCompleted, "A", "2024-03-20", 1, entity.CurrencyUSD),
			tx(entity.TransactionTypeSale, entity.TransactionStatusCompleted, "B", "2024-03-05", 1, entity.CurrencyUSD),
			tx(entity.TransactionTypeSale, entity.TransactionStatusCompleted, "C", "2024-03-12", 1, entity.CurrencyUSD),
		}
		stats := ComputeStats(txs, "2024-03-01", "2024-03-31", "")
		for i := 1; i < len(stats.Daily); i++ {
			if stats.Daily[i-1].Date >= stats.Daily[i].Date {
				t.Fatalf("daily series not sorted: %+v", stats.Daily)
			}
		}
	})
}

type stubTransactionRepo struct {
	txs []*entity.Transaction
	err error
}

func (r *stubTransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error { return nil }
func (r *stubTransactionRepo) BulkCreate(ctx context.Context, txs []*entity.Transaction) error {
	return nil
}
func (r *stubTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}
func (r *stubTransactionRepo) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	return r.txs, r.err
}
func (r *stubTransactionRepo) Update(ctx context.Context, tx *entity.Transaction) error { return nil }
func (r *stubTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error           { return nil }
func (r *stubTransactionRepo) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return 0, nil
}

func TestGetReportStatsUseCase(t *testing.T) {
	t.Run("rejects a missing start date", func(t *testing.T) {
		uc := NewGetReportStatsUseCase(&stubTransactionRepo{})
		_, err := uc.Execute(context.Background(), GetReportStatsInput{EndDate: "2024-03-31"})
		if !errors.Is(err, domainerror.ErrMissingStartDate) {
			t.Fatalf("expected ErrMissingStartDate, got %v", err)
		}
	})

	t.Run("rejects a missing end date", func(t *testing.T) {
		uc := NewGetReportStatsUseCase(&stubTransactionRepo{})
		_, err := uc.Execute(context.Background(), GetReportStatsInput{StartDate: "2024-03-01"})
		if !errors.Is(err, domainerror.ErrMissingEndDate) {
			t.Fatalf("expected ErrMissingEndDate, got %v", err)
		}
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		uc := NewGetReportStatsUseCase(&stubTransactionRepo{})
		_, err := uc.Execute(context.Background(), GetReportStatsInput{StartDate: "03/01/2024", EndDate: "2024-03-31"})
		if !errors.Is(err, domainerror.ErrInvalidReportDate) {
			t.Fatalf("expected ErrInvalidReportDate, got %v", err)
		}
	})

	t.Run("rejects an inverted range", func(t *testing.T) {
		uc := NewGetReportStatsUseCase(&stubTransactionRepo{})
		_, err := uc.Execute(context.Background(), GetReportStatsInput{StartDate: "2024-03-31", EndDate: "2024-03-01"})
		if !errors.Is(err, domainerror.ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("computes stats over the repository snapshot", func(t *testing.T) {
		repo := &stubTransactionRepo{txs: []*entity.Transaction{
			tx(entity.TransactionTypeSale, entity.TransactionStatusCompleted, "Tea", "2024-03-04", 100, entity.CurrencyUSD),
		}}
		uc := NewGetReportStatsUseCase(repo)
		out, err := uc.Execute(context.Background(), GetReportStatsInput{StartDate: "2024-03-01", EndDate: "2024-03-31"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Stats.TotalRevenueUSD.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("expected revenue 100, got %s", out.Stats.TotalRevenueUSD)
		}
	})
}
