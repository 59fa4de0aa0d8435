// Package report contains date-range report use cases.
package report

import (
	"github.com/shopspring/decimal"
)

// MaxChartPoints caps the daily series length so long date ranges stay
// cheap to render while preserving overall trend shape.
const MaxChartPoints = 100

// DailyPoint is one day (or one averaged window) of the report series.
type DailyPoint struct {
	Date     string          `json:"date"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
}

// Downsample compresses a date-sorted daily series to at most
// MaxChartPoints points. The series is partitioned into consecutive
// windows of size ceil(len/cap); each window collapses to one point
// carrying the window's first date and the mean revenue/expenses rounded
// to the nearest integer. Series at or under the cap are returned
// unchanged, which makes the operation idempotent.
func Downsample(points []DailyPoint) []DailyPoint {
	if len(points) <= MaxChartPoints {
		return points
	}

	window := (len(points) + MaxChartPoints - 1) / MaxChartPoints

	out := make([]DailyPoint, 0, MaxChartPoints)
	for i := 0; i < len(points); i += window {
		end := i + window
		if end > len(points) {
			end = len(points)
		}

		revenue := decimal.Zero
		expenses := decimal.Zero
		for _, p := range points[i:end] {
			revenue = revenue.Add(p.Revenue)
			expenses = expenses.Add(p.Expenses)
		}
		n := decimal.NewFromInt(int64(end - i))

		out = append(out, DailyPoint{
			Date:     points[i].Date,
			Revenue:  revenue.Div(n).Round(0),
			Expenses: expenses.Div(n).Round(0),
		})
	}
	return out
}
