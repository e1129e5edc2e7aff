package depth

import (
	md "github.com/echenim/bookview/internal/models"
)

// DefaultLimit is the number of levels shown per side.
const DefaultLimit = 10

// Top takes the first n levels of one side in the order they were supplied and
// returns them sorted for display, highest price first. A non-positive n falls
// back to DefaultLimit.
func Top(levels md.Levels, n int) md.Levels {
	if n <= 0 {
		n = DefaultLimit
	}
	if len(levels) > n {
		levels = levels[:n]
	}
	return SortDescending(levels)
}

// BestAsk returns the lowest priced ask, wherever it sits in the slice.
func BestAsk(asks md.Levels) (md.PriceLevel, bool) {
	if len(asks) == 0 {
		return md.PriceLevel{}, false
	}
	best := asks[0]
	for _, lvl := range asks[1:] {
		if lvl.Price < best.Price {
			best = lvl
		}
	}
	return best, true
}

// BestBid returns the highest priced bid, wherever it sits in the slice.
func BestBid(bids md.Levels) (md.PriceLevel, bool) {
	if len(bids) == 0 {
		return md.PriceLevel{}, false
	}
	best := bids[0]
	for _, lvl := range bids[1:] {
		if lvl.Price > best.Price {
			best = lvl
		}
	}
	return best, true
}
