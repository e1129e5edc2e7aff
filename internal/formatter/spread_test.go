package formatter

import (
	"math"
	"testing"

	md "github.com/echenim/bookview/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpreadPercentage(t *testing.T) {
	bids := md.Levels{{Price: 100, Size: 2}}
	asks := md.Levels{{Price: 102, Size: 1}}

	value, pct, ok := Spread(asks, bids)
	assert.True(t, ok)
	assert.Equal(t, 2.0, value)
	assert.Equal(t, 1.96, pct)
	assert.Equal(t, 1.96, SpreadPercentage(asks, bids))
}

func TestSpreadPercentage_EmptySide(t *testing.T) {
	some := md.Levels{{Price: 100, Size: 1}}

	assert.Equal(t, 0.0, SpreadPercentage(nil, some))
	assert.Equal(t, 0.0, SpreadPercentage(some, nil))
	assert.Equal(t, 0.0, SpreadPercentage(md.Levels{}, md.Levels{}))

	_, _, ok := Spread(some, nil)
	assert.False(t, ok)
}

func TestSpreadPercentage_IgnoresDisplayOrder(t *testing.T) {
	asks := md.Levels{{Price: 105, Size: 1}, {Price: 102, Size: 1}}
	bids := md.Levels{{Price: 98, Size: 1}, {Price: 100, Size: 1}}

	assert.Equal(t, 1.96, SpreadPercentage(asks, bids))
}

func TestSpreadPercentage_CrossedBook(t *testing.T) {
	asks := md.Levels{{Price: 99, Size: 1}}
	bids := md.Levels{{Price: 100, Size: 1}}

	value, pct, ok := Spread(asks, bids)
	assert.True(t, ok)
	assert.Equal(t, -1.0, value)
	assert.Equal(t, -1.01, pct)
}

func TestSpread_NonFiniteIsReturnedRaw(t *testing.T) {
	asks := md.Levels{{Price: 0, Size: 1}}
	bids := md.Levels{{Price: 1, Size: 1}}

	assert.True(t, math.IsInf(SpreadPercentage(asks, bids), -1))

	_, err := SpreadRowFor(asks, bids, "1")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestSpreadRowFor(t *testing.T) {
	row, err := SpreadRowFor(md.Levels{{Price: 102, Size: 1}}, md.Levels{{Price: 100, Size: 2}}, "5")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, md.SpreadRow{Grouping: "5", Value: 2, Percentage: 1.96}, *row)

	row, err = SpreadRowFor(nil, md.Levels{{Price: 100, Size: 2}}, "5")
	assert.NoError(t, err)
	assert.Nil(t, row)
}
