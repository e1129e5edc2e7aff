package formatter

import (
	md "github.com/echenim/bookview/internal/models"
	"github.com/shopspring/decimal"
)

// PriceText renders a price with two decimals.
func PriceText(price float64) string {
	return decimal.NewFromFloat(price).StringFixed(2)
}

// SizeText renders a quote size: whole dollars for USD, two decimals otherwise.
func SizeText(sizeInQuote float64, pair md.Pair) string {
	d := decimal.NewFromFloat(sizeInQuote)
	if pair.IsUSD() {
		return d.Truncate(0).String()
	}
	return d.StringFixed(2)
}

// TotalText renders a running total: whole dollars for USD, otherwise the
// already rounded total without padding.
func TotalText(total float64, pair md.Pair) string {
	d := decimal.NewFromFloat(total)
	if pair.IsUSD() {
		return d.Truncate(0).String()
	}
	return d.String()
}

func applyText(rows []md.DisplayRow, pair md.Pair) {
	for i := range rows {
		rows[i].PriceText = PriceText(rows[i].Price)
		rows[i].SizeText = SizeText(rows[i].SizeInQuote, pair)
		rows[i].TotalText = TotalText(rows[i].Total, pair)
	}
}
