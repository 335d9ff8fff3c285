package application

import (
	"sync"
	"time"
)

// IDGenerator hands out int64 ids that are unique within the process and
// strictly increasing. Values track wall-clock milliseconds, which keeps them
// in the same range as ids written by earlier versions of the service.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

// Next returns an id greater than floor, greater than any id it returned
// before, and no smaller than the current time in milliseconds.
func (g *IDGenerator) Next(floor int64) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	if id <= floor {
		id = floor + 1
	}
	g.last = id
	return id
}
