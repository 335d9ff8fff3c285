package application

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIDGenerator_StrictlyIncreasingWithFrozenClock(t *testing.T) {
	g := NewIDGenerator()
	frozen := time.UnixMilli(1_700_000_000_000)
	g.now = func() time.Time { return frozen }

	a := g.Next(0)
	b := g.Next(0)
	c := g.Next(0)
	assert.Equal(t, int64(1_700_000_000_000), a)
	assert.Equal(t, a+1, b)
	assert.Equal(t, b+1, c)
}

func TestIDGenerator_StaysAboveFloor(t *testing.T) {
	g := NewIDGenerator()
	g.now = func() time.Time { return time.UnixMilli(10) }
	assert.Equal(t, int64(501), g.Next(500))
	assert.Equal(t, int64(502), g.Next(5))
}

func TestIDGenerator_ConcurrentCallsNeverCollide(t *testing.T) {
	g := NewIDGenerator()
	const n = 200
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- g.Next(0)
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
