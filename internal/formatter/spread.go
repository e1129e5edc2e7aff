package formatter

import (
	"github.com/echenim/bookview/internal/depth"
	md "github.com/echenim/bookview/internal/models"
)

// Spread returns lowestAsk - highestBid and that spread as a percentage of the
// lowest ask, rounded to two decimals. ok is false when either side is empty.
// A crossed book yields a negative spread. When the division does not give a
// finite number the raw result is returned unrounded.
func Spread(asks, bids md.Levels) (value, percentage float64, ok bool) {
	ask, okAsk := depth.BestAsk(asks)
	bid, okBid := depth.BestBid(bids)
	if !okAsk || !okBid {
		return 0, 0, false
	}

	value = ask.Price - bid.Price
	percentage = roundTo(value/ask.Price*100, 2)
	value = roundTo(value, 8)

	return value, percentage, true
}

// SpreadPercentage is Spread without the absolute value. Either side empty
// gives 0.
func SpreadPercentage(asks, bids md.Levels) float64 {
	_, pct, _ := Spread(asks, bids)
	return pct
}

// SpreadRowFor builds the spread row shown between the two tables. It returns
// nil when either side is empty and ErrInvalidNumber when the spread is not
// finite.
func SpreadRowFor(asks, bids md.Levels, grouping string) (*md.SpreadRow, error) {
	value, pct, ok := Spread(asks, bids)
	if !ok {
		return nil, nil
	}
	if !finite(value) {
		return nil, invalid("spread", value)
	}
	if !finite(pct) {
		return nil, invalid("spread percentage", pct)
	}

	return &md.SpreadRow{
		Grouping:   grouping,
		Value:      value,
		Percentage: pct,
		Crossed:    value < 0,
	}, nil
}
