// Package ids hands out numeric identifiers for new catalog entities.
//
// Identifiers stay millisecond timestamps so they sort by creation time and
// remain compatible with documents written before, but two calls never return
// the same value: within one millisecond the generator counts upwards.
package ids

import (
	"sync"
	"time"
)

// Monotonic returns strictly increasing ids seeded from the clock.
type Monotonic struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewMonotonic returns a generator reading the wall clock.
func NewMonotonic() *Monotonic { return NewMonotonicWithClock(time.Now) }

// NewMonotonicWithClock returns a generator reading now.
func NewMonotonicWithClock(now func() time.Time) *Monotonic {
	return &Monotonic{now: now}
}

// Next returns max(now in ms, previous id + 1).
func (m *Monotonic) Next() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.now().UnixMilli()
	if id <= m.last {
		id = m.last + 1
	}
	m.last = id
	return id
}

// Observe records id as taken so later ids are larger.
func (m *Monotonic) Observe(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id > m.last {
		m.last = id
	}
}
