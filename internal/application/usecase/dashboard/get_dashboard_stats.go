package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dukan-ledger/backend/internal/application/adapter"
	"github.com/dukan-ledger/backend/internal/domain/entity"
	domainerror "github.com/dukan-ledger/backend/internal/domain/error"
)

// Stats holds the dashboard totals. All cross-currency sums are
// normalized to USD at the fixed exchange rate; IQD figures are derived
// from the USD totals, never summed independently.
type Stats struct {
	TotalSalesUSD    decimal.Decimal    `json:"total_sales_usd"`
	TotalSalesIQD    decimal.Decimal    `json:"total_sales_iqd"`
	TotalExpensesUSD decimal.Decimal    `json:"total_expenses_usd"`
	NetProfitUSD     decimal.Decimal    `json:"net_profit_usd"`
	TotalDebtIQD     decimal.Decimal    `json:"total_debt_iqd"`
	WeeklyData       [7]decimal.Decimal `json:"weekly_data"` // index 0 = Sunday
}

// ComputeStats derives dashboard totals from the working set. It is a
// pure function of its input: every relevant state change recomputes from
// scratch, nothing is cached.
func ComputeStats(txs []*entity.Transaction) *Stats {
	stats := &Stats{
		TotalSalesUSD:    decimal.Zero,
		TotalSalesIQD:    decimal.Zero,
		TotalExpensesUSD: decimal.Zero,
		NetProfitUSD:     decimal.Zero,
		TotalDebtIQD:     decimal.Zero,
	}
	for i := range stats.WeeklyData {
		stats.WeeklyData[i] = decimal.Zero
	}

	for _, tx := range txs {
		usd := tx.AmountUSD()

		switch {
		case isSaleLike(tx.Type) && tx.Status == entity.TransactionStatusCompleted:
			stats.TotalSalesUSD = stats.TotalSalesUSD.Add(usd)

			// Day-of-week histogram across all weeks; rows with an
			// unparseable date are skipped for this bucket only.
			if day, err := time.Parse(entity.DateLayout, tx.Date); err == nil {
				idx := int(day.Weekday())
				stats.WeeklyData[idx] = stats.WeeklyData[idx].Add(usd)
			}

		case tx.Type == entity.TransactionTypeExpense:
			stats.TotalExpensesUSD = stats.TotalExpensesUSD.Add(usd)

		case tx.Type == entity.TransactionTypeDebt && tx.Status != entity.TransactionStatusCompleted:
			stats.TotalDebtIQD = stats.TotalDebtIQD.Add(usd.Mul(entity.IQDPerUSD))
		}
	}

	stats.TotalSalesIQD = stats.TotalSalesUSD.Mul(entity.IQDPerUSD)
	stats.NetProfitUSD = stats.TotalSalesUSD.Sub(stats.TotalExpensesUSD)
	return stats
}

func isSaleLike(t entity.TransactionType) bool {
	return t == entity.TransactionTypeSale || t == entity.TransactionTypeCash
}

// GetDashboardStatsInput represents the dashboard view parameters.
type GetDashboardStatsInput struct {
	Tab    Tab
	Search string
	Sort   SortOption
}

// GetDashboardStatsOutput carries the stats plus the filtered, sorted
// working set for the transaction list.
type GetDashboardStatsOutput struct {
	Stats        *Stats
	Transactions []*entity.Transaction
}

// GetDashboardStatsUseCase recomputes dashboard stats over the current
// transaction snapshot.
type GetDashboardStatsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetDashboardStatsUseCase creates a new GetDashboardStatsUseCase instance.
func NewGetDashboardStatsUseCase(transactionRepo adapter.TransactionRepository) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{transactionRepo: transactionRepo}
}

// Execute fetches the snapshot, applies the view filter and sort, and
// computes the stats.
func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context, input GetDashboardStatsInput) (*GetDashboardStatsOutput, error) {
	if input.Sort == "" {
		input.Sort = SortNewest
	}
	if !IsValidSortOption(input.Sort) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidSortOption,
			"sort must be: newest, oldest, highest, or lowest",
			domainerror.ErrInvalidSortOption,
		)
	}
	if input.Tab == "" {
		input.Tab = TabAll
	}

	txs, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	working := SortTransactions(FilterTransactions(txs, input.Tab, input.Search), input.Sort)

	return &GetDashboardStatsOutput{
		Stats:        ComputeStats(working),
		Transactions: working,
	}, nil
}
