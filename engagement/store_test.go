package engagement

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_FirstWriteWins(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	key := Key{Wallet: "0xabc", CampaignID: "c1", TaskID: "t1"}
	first := time.UnixMilli(1000)

	got, err := s.Record(ctx, key, KindOpened, first)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	got, err = s.Record(ctx, key, KindOpened, first.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, first, got, "later opens must not reset the dwell clock")

	_, ok, err := s.Get(ctx, key, KindVisited)
	require.NoError(t, err)
	assert.False(t, ok, "kinds are tracked separately")

	at, ok, err := s.Get(ctx, key, KindOpened)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, first, at)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	s := NewMemoryStore()
	key := Key{Wallet: "0xabc", CampaignID: "c1", TaskID: "t1"}

	var wg sync.WaitGroup
	results := make([]time.Time, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = s.Record(context.Background(), key, KindOpened, time.UnixMilli(int64(i+1)))
		}(i)
	}
	wg.Wait()

	for _, r := range results[1:] {
		assert.Equal(t, results[0], r)
	}
}
