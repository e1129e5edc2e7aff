package formatter

import (
	md "github.com/echenim/bookview/internal/models"
)

// BarWidth scales total against the largest total of its side, in percent.
// A side whose largest total is zero draws no bars at all.
func BarWidth(total, max float64) float64 {
	if max <= 0 || !finite(max) || !finite(total) {
		return 0
	}
	w := total / max * 100
	switch {
	case w < 0:
		return 0
	case w > 100:
		return 100
	}
	return w
}

// MaxTotal is the largest running total among rows, 0 for no rows.
func MaxTotal(rows []md.DisplayRow) float64 {
	max := 0.0
	for i, r := range rows {
		if i == 0 || r.Total > max {
			max = r.Total
		}
	}
	return max
}

func applyBarWidths(rows []md.DisplayRow) {
	max := MaxTotal(rows)
	for i := range rows {
		rows[i].BarWidth = BarWidth(rows[i].Total, max)
	}
}
