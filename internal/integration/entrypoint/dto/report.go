package dto

import (
	"github.com/dukan-ledger/backend/internal/application/usecase/report"
)

// DailyPointResponse represents one day of the report chart.
type DailyPointResponse struct {
	Date     string `json:"date"`
	Revenue  string `json:"revenue"`
	Expenses string `json:"expenses"`
}

// ProductStatResponse represents one entry of the top-products ranking.
type ProductStatResponse struct {
	Name  string `json:"name"`
	Total string `json:"total"`
	Count int    `json:"count"`
}

// DebtorStatResponse represents one entry of the top-debtors ranking.
type DebtorStatResponse struct {
	Client string `json:"client"`
	Total  string `json:"total"`
}

// ReportResponse represents the response for the report view.
type ReportResponse struct {
	Daily             []DailyPointResponse  `json:"daily"`
	TotalRevenueUSD   string                `json:"total_revenue_usd"`
	TotalExpensesUSD  string                `json:"total_expenses_usd"`
	OutstandingUSD    string                `json:"outstanding_usd"`
	CollectedUSD      string                `json:"collected_usd"`
	CollectionRate    float64               `json:"collection_rate"`
	ExpenseCategories map[string]string     `json:"expense_categories"`
	TopProducts       []ProductStatResponse `json:"top_products"`
	TopDebtors        []DebtorStatResponse  `json:"top_debtors"`
	WeeklyActivity    [7]string             `json:"weekly_activity"` // index 0 = Sunday
	BusiestDay        string                `json:"busiest_day"`
}

// ToReportResponse converts report Stats to a ReportResponse DTO.
func ToReportResponse(stats *report.Stats) ReportResponse {
	response := ReportResponse{
		Daily:             make([]DailyPointResponse, len(stats.Daily)),
		TotalRevenueUSD:   stats.TotalRevenueUSD.String(),
		TotalExpensesUSD:  stats.TotalExpensesUSD.String(),
		OutstandingUSD:    stats.OutstandingUSD.String(),
		CollectedUSD:      stats.CollectedUSD.String(),
		CollectionRate:    stats.CollectionRate,
		ExpenseCategories: make(map[string]string, len(stats.ExpenseCategories)),
		TopProducts:       make([]ProductStatResponse, len(stats.TopProducts)),
		TopDebtors:        make([]DebtorStatResponse, len(stats.TopDebtors)),
		BusiestDay:        stats.BusiestDay,
	}

	for i, p := range stats.Daily {
		response.Daily[i] = DailyPointResponse{
			Date:     p.Date,
			Revenue:  p.Revenue.String(),
			Expenses: p.Expenses.String(),
		}
	}
	for label, total := range stats.ExpenseCategories {
		response.ExpenseCategories[label] = total.String()
	}
	for i, p := range stats.TopProducts {
		response.TopProducts[i] = ProductStatResponse{
			Name:  p.Name,
			Total: p.Total.String(),
			Count: p.Count,
		}
	}
	for i, d := range stats.TopDebtors {
		response.TopDebtors[i] = DebtorStatResponse{
			Client: d.Client,
			Total:  d.Total.String(),
		}
	}
	for i, d := range stats.WeeklyActivity {
		response.WeeklyActivity[i] = d.String()
	}

	return response
}
