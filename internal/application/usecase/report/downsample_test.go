package report

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

func points(n int) []DailyPoint {
	out := make([]DailyPoint, n)
	for i := 0; i < n; i++ {
		out[i] = DailyPoint{
			Date:     fmt.Sprintf("2024-%02d-%02d", i/28+1, i%28+1),
			Revenue:  decimal.NewFromInt(int64(i)),
			Expenses: decimal.NewFromInt(int64(i * 2)),
		}
	}
	return out
}

func TestDownsample(t *testing.T) {
	t.Run("series at or below the cap pass through unchanged", func(t *testing.T) {
		for _, n := range []int{0, 1, 50, MaxChartPoints} {
			in := points(n)
			out := Downsample(in)
			if len(out) != n {
				t.Fatalf("expected %d points, got %d", n, len(out))
			}
			for i := range in {
				if out[i] != in[i] {
					t.Fatalf("point %d changed: %+v != %+v", i, out[i], in[i])
				}
			}
		}
	})

	t.Run("long series compress to at most the cap", func(t *testing.T) {
		for _, n := range []int{101, 150, 365, 1000} {
			out := Downsample(points(n))
			if len(out) > MaxChartPoints {
				t.Fatalf("n=%d: expected at most %d points, got %d", n, MaxChartPoints, len(out))
			}
			if len(out) == 0 {
				t.Fatalf("n=%d: expected a non-empty result", n)
			}
		}
	})

	t.Run("windows average their values and round to integers", func(t *testing.T) {
		in := make([]DailyPoint, 200)
		for i := range in {
			in[i] = DailyPoint{
				Date:     fmt.Sprintf("2024-01-%02d", i%28+1),
				Revenue:  decimal.NewFromInt(10),
				Expenses: decimal.NewFromInt(3),
			}
		}
		// window size is ceil(200/100) = 2, means are exact
		out := Downsample(in)
		if len(out) != 100 {
			t.Fatalf("expected 100 points, got %d", len(out))
		}
		for i, p := range out {
			if !p.Revenue.Equal(decimal.NewFromInt(10)) {
				t.Fatalf("point %d: expected revenue 10, got %s", i, p.Revenue)
			}
			if !p.Expenses.Equal(decimal.NewFromInt(3)) {
				t.Fatalf("point %d: expected expenses 3, got %s", i, p.Expenses)
			}
		}
	})

	t.Run("each window keeps its first date as the label", func(t *testing.T) {
		in := points(200)
		out := Downsample(in)
		if out[0].Date != in[0].Date {
			t.Fatalf("expected first label %q, got %q", in[0].Date, out[0].Date)
		}
		if out[1].Date != in[2].Date {
			t.Fatalf("expected second label %q, got %q", in[2].Date, out[1].Date)
		}
	})
}
