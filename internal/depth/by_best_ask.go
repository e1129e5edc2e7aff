package depth

import (
	"sort"

	md "github.com/echenim/bookview/internal/models"
)

// ByBestAsk sorts levels by price in ascending order, so the lowest (best)
// ask comes first.
type ByBestAsk struct{ md.Levels }

// Len returns the number of levels.
func (a ByBestAsk) Len() int {
	return len(a.Levels)
}

// Swap exchanges the levels with indices i and j.
func (a ByBestAsk) Swap(i, j int) {
	a.Levels[i], a.Levels[j] = a.Levels[j], a.Levels[i]
}

// Less reports whether the price at index i is below the price at index j.
func (a ByBestAsk) Less(i, j int) bool {
	return a.Levels[i].Price < a.Levels[j].Price
}

// ByBestBid sorts levels by price in descending order, so the highest (best)
// bid comes first. The book table renders both sides in this order.
type ByBestBid struct{ md.Levels }

func (b ByBestBid) Len() int {
	return len(b.Levels)
}

func (b ByBestBid) Swap(i, j int) {
	b.Levels[i], b.Levels[j] = b.Levels[j], b.Levels[i]
}

func (b ByBestBid) Less(i, j int) bool {
	return b.Levels[i].Price > b.Levels[j].Price
}

// SortDescending returns a copy of levels ordered from highest to lowest price.
// Levels at the same price keep their input order.
func SortDescending(levels md.Levels) md.Levels {
	out := levels.Clone()
	sort.Stable(ByBestBid{out})
	return out
}
