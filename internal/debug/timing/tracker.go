package timing

import (
	"sort"
	"sync"
	"time"
)

type Tracker struct {
	timings map[string][]time.Duration
	mu      sync.RWMutex
	enabled bool
	now     func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		timings: make(map[string][]time.Duration),
		enabled: true,
		now:     time.Now,
	}
}

// Start begins timing operation. The returned function records and returns
// the elapsed time; it returns zero when the tracker is disabled.
func (tt *Tracker) Start(operation string) func() time.Duration {
	tt.mu.RLock()
	enabled := tt.enabled
	tt.mu.RUnlock()

	if !enabled {
		return func() time.Duration { return 0 }
	}

	start := tt.now()
	return func() time.Duration {
		duration := tt.now().Sub(start)

		tt.mu.Lock()
		tt.timings[operation] = append(tt.timings[operation], duration)
		tt.mu.Unlock()

		return duration
	}
}

func (tt *Tracker) Timings(operation string) []time.Duration {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	timings := tt.timings[operation]
	if timings == nil {
		return nil
	}

	result := make([]time.Duration, len(timings))
	copy(result, timings)
	return result
}

// Operations lists every operation with recorded timings, sorted by name.
func (tt *Tracker) Operations() []string {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	ops := make([]string, 0, len(tt.timings))
	for op := range tt.timings {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

func (tt *Tracker) Average(operation string) time.Duration {
	timings := tt.Timings(operation)
	if len(timings) == 0 {
		return 0
	}

	var total time.Duration
	for _, duration := range timings {
		total += duration
	}

	return total / time.Duration(len(timings))
}

func (tt *Tracker) SetEnabled(enabled bool) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.enabled = enabled
}

// Reset drops the timings of operation, or of every operation when empty.
func (tt *Tracker) Reset(operation string) {
	tt.mu.Lock()
	defer tt.mu.Unlock()

	if operation == "" {
		tt.timings = make(map[string][]time.Duration)
	} else {
		delete(tt.timings, operation)
	}
}
