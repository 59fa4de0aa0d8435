package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dukan-ledger/backend/internal/application/adapter"
	"github.com/dukan-ledger/backend/internal/domain/entity"
	domainerror "github.com/dukan-ledger/backend/internal/domain/error"
)

// topN is how many products and debtors the report ranks.
const topN = 5

// ProductStat is one entry of the top-products ranking. Sales are grouped
// by client, which acts as the product name for sale records.
type ProductStat struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// DebtorStat is one entry of the top-debtors ranking.
type DebtorStat struct {
	Client string          `json:"client"`
	Total  decimal.Decimal `json:"total"`
}

// Stats holds the report figures for an inclusive date range.
type Stats struct {
	Daily             []DailyPoint               `json:"daily"`
	TotalRevenueUSD   decimal.Decimal            `json:"total_revenue_usd"`
	TotalExpensesUSD  decimal.Decimal            `json:"total_expenses_usd"`
	OutstandingUSD    decimal.Decimal            `json:"outstanding_usd"`
	CollectedUSD      decimal.Decimal            `json:"collected_usd"`
	CollectionRate    float64                    `json:"collection_rate"`
	ExpenseCategories map[string]decimal.Decimal `json:"expense_categories"`
	TopProducts       []ProductStat              `json:"top_products"`
	TopDebtors        []DebtorStat               `json:"top_debtors"`
	WeeklyActivity    [7]decimal.Decimal         `json:"weekly_activity"` // index 0 = Sunday
	BusiestDay        string                     `json:"busiest_day"`
}

// ComputeStats derives the report from the transaction snapshot. Pure and
// side-effect free: same inputs, same output, no hidden state.
//
// Revenue recognition: completed sales and completed (settled) debts both
// add to revenue on their stored date. A settled debt carries the date it
// was marked settled, so payment is recognized then; pending debts
// aggregate by their origination date.
func ComputeStats(txs []*entity.Transaction, start, end, search string) *Stats {
	stats := &Stats{
		TotalRevenueUSD:   decimal.Zero,
		TotalExpensesUSD:  decimal.Zero,
		OutstandingUSD:    decimal.Zero,
		CollectedUSD:      decimal.Zero,
		ExpenseCategories: make(map[string]decimal.Decimal),
	}
	for i := range stats.WeeklyActivity {
		stats.WeeklyActivity[i] = decimal.Zero
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	daily := make(map[string]*DailyPoint)
	products := make(map[string]*ProductStat)
	debtors := make(map[string]decimal.Decimal)

	for _, tx := range txs {
		// Lexical comparison is calendar order for YYYY-MM-DD keys.
		if tx.Date < start || tx.Date > end {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(tx.Client), needle) &&
			!strings.Contains(tx.Amount.String(), needle) {
			continue
		}

		usd := tx.AmountUSD()
		day := dailyBucket(daily, tx.Date)

		switch tx.Type {
		case entity.TransactionTypeSale:
			if tx.Status != entity.TransactionStatusCompleted {
				continue
			}
			stats.TotalRevenueUSD = stats.TotalRevenueUSD.Add(usd)
			day.Revenue = day.Revenue.Add(usd)

			p, ok := products[tx.Client]
			if !ok {
				p = &ProductStat{Name: tx.Client, Total: decimal.Zero}
				products[tx.Client] = p
			}
			p.Total = p.Total.Add(usd)
			p.Count++

			if d, err := time.Parse(entity.DateLayout, tx.Date); err == nil {
				idx := int(d.Weekday())
				stats.WeeklyActivity[idx] = stats.WeeklyActivity[idx].Add(usd)
			}

		case entity.TransactionTypeExpense:
			stats.TotalExpensesUSD = stats.TotalExpensesUSD.Add(usd)
			day.Expenses = day.Expenses.Add(usd)

			// Client doubles as the expense category label.
			label := tx.Client
			if existing, ok := stats.ExpenseCategories[label]; ok {
				stats.ExpenseCategories[label] = existing.Add(usd)
			} else {
				stats.ExpenseCategories[label] = usd
			}

		case entity.TransactionTypeDebt:
			if tx.Status == entity.TransactionStatusCompleted {
				// Settled debt: payment received on the settlement date.
				stats.CollectedUSD = stats.CollectedUSD.Add(usd)
				stats.TotalRevenueUSD = stats.TotalRevenueUSD.Add(usd)
				day.Revenue = day.Revenue.Add(usd)
			} else {
				stats.OutstandingUSD = stats.OutstandingUSD.Add(usd)
				debtors[tx.Client] = debtors[tx.Client].Add(usd)
			}
		}
	}

	stats.Daily = Downsample(sortedDaily(daily))
	stats.TopProducts = rankProducts(products)
	stats.TopDebtors = rankDebtors(debtors)
	stats.BusiestDay = busiestDay(stats.WeeklyActivity)
	stats.CollectionRate = collectionRate(stats.CollectedUSD, stats.OutstandingUSD)

	return stats
}

func dailyBucket(daily map[string]*DailyPoint, date string) *DailyPoint {
	if p, ok := daily[date]; ok {
		return p
	}
	p := &DailyPoint{Date: date, Revenue: decimal.Zero, Expenses: decimal.Zero}
	daily[date] = p
	return p
}

func sortedDaily(daily map[string]*DailyPoint) []DailyPoint {
	out := make([]DailyPoint, 0, len(daily))
	for _, p := range daily {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func rankProducts(products map[string]*ProductStat) []ProductStat {
	out := make([]ProductStat, 0, len(products))
	for _, p := range products {
		out = append(out, *p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

func rankDebtors(debtors map[string]decimal.Decimal) []DebtorStat {
	out := make([]DebtorStat, 0, len(debtors))
	for client, total := range debtors {
		out = append(out, DebtorStat{Client: client, Total: total})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Client < out[j].Client
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// busiestDay scans forward Sunday through Saturday; ties resolve to the
// first day reaching the maximum.
func busiestDay(activity [7]decimal.Decimal) string {
	best := 0
	for i := 1; i < len(activity); i++ {
		if activity[i].GreaterThan(activity[best]) {
			best = i
		}
	}
	if activity[best].IsZero() {
		return ""
	}
	return time.Weekday(best).String()
}

// collectionRate is collected/(collected+pending)*100, defined as 0 when
// there are no debts at all.
func collectionRate(collected, pending decimal.Decimal) float64 {
	total := collected.Add(pending)
	if total.IsZero() {
		return 0
	}
	rate, _ := collected.Div(total).Mul(decimal.NewFromInt(100)).Float64()
	return rate
}

// GetReportStatsInput represents the report parameters.
type GetReportStatsInput struct {
	StartDate string
	EndDate   string
	Search    string
}

// GetReportStatsOutput wraps the computed report stats.
type GetReportStatsOutput struct {
	Stats *Stats
}

// GetReportStatsUseCase recomputes report stats over the current snapshot.
type GetReportStatsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetReportStatsUseCase creates a new GetReportStatsUseCase instance.
func NewGetReportStatsUseCase(transactionRepo adapter.TransactionRepository) *GetReportStatsUseCase {
	return &GetReportStatsUseCase{transactionRepo: transactionRepo}
}

// Execute validates the range and computes the report.
func (uc *GetReportStatsUseCase) Execute(ctx context.Context, input GetReportStatsInput) (*GetReportStatsOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	txs, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return &GetReportStatsOutput{
		Stats: ComputeStats(txs, input.StartDate, input.EndDate, input.Search),
	}, nil
}

func (uc *GetReportStatsUseCase) validateInput(input GetReportStatsInput) error {
	if input.StartDate == "" {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}
	if input.EndDate == "" {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}
	for _, d := range []string{input.StartDate, input.EndDate} {
		if _, err := time.Parse(entity.DateLayout, d); err != nil {
			return domainerror.NewReportError(
				domainerror.ErrCodeInvalidReportDate,
				"report dates must be YYYY-MM-DD",
				domainerror.ErrInvalidReportDate,
			)
		}
	}
	if input.EndDate < input.StartDate {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}
