package dto

import (
	"github.com/dukan-ledger/backend/internal/application/usecase/debt"
)

// DebtorSummaryResponse represents one debtor in API responses.
type DebtorSummaryResponse struct {
	Client   string `json:"client"`
	Phone    string `json:"phone,omitempty"`
	Total    string `json:"total"`
	Count    int    `json:"count"`
	LastDate string `json:"last_date,omitempty"`
}

// DebtorListResponse represents the response for listing debtors.
type DebtorListResponse struct {
	Debtors []DebtorSummaryResponse `json:"debtors"`
}

// SettleDebtsResponse represents the response for a debt settlement.
type SettleDebtsResponse struct {
	Client  string `json:"client"`
	Settled int    `json:"settled"`
}

// ToDebtorListResponse converts debtor summaries to a DebtorListResponse DTO.
func ToDebtorListResponse(debtors []debt.DebtorSummary) DebtorListResponse {
	responses := make([]DebtorSummaryResponse, len(debtors))
	for i, d := range debtors {
		responses[i] = DebtorSummaryResponse{
			Client:   d.Client,
			Phone:    d.Phone,
			Total:    d.Total.String(),
			Count:    d.Count,
			LastDate: d.LastDate,
		}
	}
	return DebtorListResponse{Debtors: responses}
}
