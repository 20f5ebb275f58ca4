package mocks

import (
	"sync"

	"github.com/mcoot/boggle-go/internal/dependencies/random"
)

// MockRandom replays queued results. Safe for concurrent use.
type MockRandom struct {
	mu sync.Mutex

	intnResults []int
	intnIndex   int

	stringResults []string
	stringIndex   int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom with empty queues
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result reduced into [0, n), or 0 once the
// queue is exhausted
func (r *MockRandom) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.intnIndex >= len(r.intnResults) || n <= 0 {
		return 0
	}
	result := r.intnResults[r.intnIndex]
	r.intnIndex++
	return ((result % n) + n) % n
}

// String returns the next queued result, or "" once the queue is exhausted
func (r *MockRandom) String(_ int, _ string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stringIndex >= len(r.stringResults) {
		return ""
	}
	result := r.stringResults[r.stringIndex]
	r.stringIndex++
	return result
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intnResults = append(r.intnResults, values...)
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stringResults = append(r.stringResults, values...)
}

// Pending reports how many queued Intn and String results are unused
func (r *MockRandom) Pending() (intn, str int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.intnResults) - r.intnIndex, len(r.stringResults) - r.stringIndex
}
