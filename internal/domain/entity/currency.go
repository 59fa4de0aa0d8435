package entity

import "github.com/shopspring/decimal"

// Currency identifies the denomination of a transaction amount.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyIQD Currency = "IQD"
)

// IQDPerUSD is the fixed exchange rate used to sum amounts across
// currencies. Multiply to go USD to IQD, divide to normalize IQD to USD.
var IQDPerUSD = decimal.NewFromInt(1520)

// IsValidCurrency reports whether c is a supported currency.
func IsValidCurrency(c Currency) bool {
	return c == CurrencyUSD || c == CurrencyIQD
}

// AmountUSD returns the transaction amount normalized to USD.
func (t *Transaction) AmountUSD() decimal.Decimal {
	if t.Currency == CurrencyIQD {
		return t.Amount.Div(IQDPerUSD)
	}
	return t.Amount
}
