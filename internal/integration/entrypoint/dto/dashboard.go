package dto

import (
	"github.com/dukan-ledger/backend/internal/application/usecase/dashboard"
)

// DashboardStatsResponse represents the dashboard totals in API responses.
type DashboardStatsResponse struct {
	TotalSalesUSD    string    `json:"total_sales_usd"`
	TotalSalesIQD    string    `json:"total_sales_iqd"`
	TotalExpensesUSD string    `json:"total_expenses_usd"`
	NetProfitUSD     string    `json:"net_profit_usd"`
	TotalDebtIQD     string    `json:"total_debt_iqd"`
	WeeklyData       [7]string `json:"weekly_data"` // index 0 = Sunday
}

// DashboardResponse represents the response for the dashboard view.
type DashboardResponse struct {
	Stats        DashboardStatsResponse `json:"stats"`
	Transactions []TransactionResponse  `json:"transactions"`
}

// ToDashboardResponse converts a GetDashboardStatsOutput to a DashboardResponse DTO.
func ToDashboardResponse(output *dashboard.GetDashboardStatsOutput) DashboardResponse {
	stats := DashboardStatsResponse{
		TotalSalesUSD:    output.Stats.TotalSalesUSD.String(),
		TotalSalesIQD:    output.Stats.TotalSalesIQD.String(),
		TotalExpensesUSD: output.Stats.TotalExpensesUSD.String(),
		NetProfitUSD:     output.Stats.NetProfitUSD.String(),
		TotalDebtIQD:     output.Stats.TotalDebtIQD.String(),
	}
	for i, d := range output.Stats.WeeklyData {
		stats.WeeklyData[i] = d.String()
	}

	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, tx := range output.Transactions {
		transactions[i] = ToTransactionResponse(tx)
	}

	return DashboardResponse{
		Stats:        stats,
		Transactions: transactions,
	}
}
