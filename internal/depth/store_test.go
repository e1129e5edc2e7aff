package depth

import (
	"sync"
	"testing"
	"time"

	md "github.com/echenim/bookview/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutGet(t *testing.T) {
	s := NewStore()
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	_, ok := s.Get("ETH-USD")
	assert.False(t, ok)

	in := md.Snapshot{Asks: md.Levels{{Price: 102, Size: 1}}, Bids: md.Levels{{Price: 100, Size: 2}}}
	stored := s.Put("ETH-USD", in)
	assert.Equal(t, md.Market("ETH-USD"), stored.Market)
	assert.Equal(t, fixed, stored.UpdatedAt)

	got, ok := s.Get("ETH-USD")
	require.True(t, ok)
	assert.Equal(t, stored, got)
}

func TestStore_CopiesSnapshots(t *testing.T) {
	s := NewStore()
	in := md.Snapshot{Bids: md.Levels{{Price: 100, Size: 2}}}
	s.Put("BTC-USD", in)

	in.Bids[0].Price = 1
	got, _ := s.Get("BTC-USD")
	assert.Equal(t, 100.0, got.Bids[0].Price)

	got.Bids[0].Price = 2
	again, _ := s.Get("BTC-USD")
	assert.Equal(t, 100.0, again.Bids[0].Price)
}

func TestStore_MarketsAndDelete(t *testing.T) {
	s := NewStore()
	s.Put("SOL-USD", md.Snapshot{})
	s.Put("BTC-USD", md.Snapshot{})

	assert.Equal(t, []md.Market{"BTC-USD", "SOL-USD"}, s.Markets())
	assert.True(t, s.Delete("BTC-USD"))
	assert.False(t, s.Delete("BTC-USD"))
	assert.Equal(t, []md.Market{"SOL-USD"}, s.Markets())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Put("ETH-USD", md.Snapshot{Bids: md.Levels{{Price: float64(i + 1), Size: 1}}})
			_, _ = s.Get("ETH-USD")
		}(i)
	}
	wg.Wait()

	got, ok := s.Get("ETH-USD")
	require.True(t, ok)
	assert.Len(t, got.Bids, 1)
}
