package depth

import (
	"sort"
	"testing"

	md "github.com/echenim/bookview/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTop_TakesSuppliedOrderThenSorts(t *testing.T) {
	asks := md.Levels{{Price: 101, Size: 1}, {Price: 102, Size: 1}, {Price: 103, Size: 1}}

	top := Top(asks, 2)
	assert.Equal(t, md.Levels{{Price: 102, Size: 1}, {Price: 101, Size: 1}}, top)
	assert.Equal(t, 101.0, asks[0].Price, "input untouched")
}

func TestTop_DefaultLimit(t *testing.T) {
	var levels md.Levels
	for i := 0; i < 25; i++ {
		levels = append(levels, md.PriceLevel{Price: float64(i + 1), Size: 1})
	}

	assert.Len(t, Top(levels, 0), DefaultLimit)
	assert.Len(t, Top(levels, -3), DefaultLimit)
	assert.Len(t, Top(levels[:4], 10), 4)
	assert.Empty(t, Top(nil, 10))
}

func TestSorting(t *testing.T) {
	levels := md.Levels{{Price: 2}, {Price: 3}, {Price: 1}}

	asc := levels.Clone()
	sort.Sort(ByBestAsk{asc})
	desc := SortDescending(levels)
	assert.True(t, sort.IsSorted(ByBestAsk{asc}))
	assert.True(t, sort.IsSorted(ByBestBid{desc}))
	assert.Equal(t, 3.0, desc[0].Price)
	assert.Equal(t, 1.0, asc[0].Price)
	assert.Equal(t, 2.0, levels[0].Price)
}

func TestBestLevels(t *testing.T) {
	_, ok := BestAsk(nil)
	assert.False(t, ok)
	_, ok = BestBid(md.Levels{})
	assert.False(t, ok)

	ask, ok := BestAsk(md.Levels{{Price: 105, Size: 1}, {Price: 102, Size: 4}})
	assert.True(t, ok)
	assert.Equal(t, md.PriceLevel{Price: 102, Size: 4}, ask)

	bid, ok := BestBid(md.Levels{{Price: 98, Size: 1}, {Price: 100, Size: 2}})
	assert.True(t, ok)
	assert.Equal(t, md.PriceLevel{Price: 100, Size: 2}, bid)
}
