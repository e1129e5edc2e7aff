package formatter

import (
	md "github.com/echenim/bookview/internal/models"
	"github.com/shopspring/decimal"
)

// CumulativeTotals annotates levels with their quote size and a running total.
//
// With reverse set the sum starts at the last level and walks up, while the
// returned rows stay in input order. Each running total is rounded to two
// decimals and the rounded value is what the next row adds to.
func CumulativeTotals(levels md.Levels, pair md.Pair, reverse bool) ([]md.DisplayRow, error) {
	ordered := levels.Clone()
	if reverse {
		reverseLevels(ordered)
	}

	rows := make([]md.DisplayRow, 0, len(ordered))
	total := 0.0

	for _, lvl := range ordered {
		q, err := QuoteSize(lvl.Size, lvl.Price, pair)
		if err != nil {
			return nil, err
		}

		total += q
		if !finite(total) {
			return nil, invalid("cumulative total", total)
		}
		total = round2(total)

		rows = append(rows, md.DisplayRow{
			PriceLevel:  lvl,
			SizeInQuote: q,
			Total:       total,
		})
	}

	if reverse {
		reverseRows(rows)
	}
	return rows, nil
}

func round2(v float64) float64 {
	return roundTo(v, 2)
}

// roundTo leaves NaN and Inf untouched; decimal can not represent them.
func roundTo(v float64, places int32) float64 {
	if !finite(v) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

func reverseLevels(l md.Levels) {
	for i, j := 0, len(l)-1; i < j; i, j = i+1, j-1 {
		l[i], l[j] = l[j], l[i]
	}
}

func reverseRows(r []md.DisplayRow) {
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
}
