package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeClock(offsets ...time.Duration) func() time.Time {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	i := 0
	return func() time.Time {
		t := base.Add(offsets[i])
		i++
		return t
	}
}

func TestTrackerRecordsDurations(t *testing.T) {
	tracker := NewTracker()
	tracker.now = fakeClock(0, 10*time.Millisecond, 10*time.Millisecond, 40*time.Millisecond)

	stop := tracker.Start("calculate")
	assert.Equal(t, 10*time.Millisecond, stop())

	stop = tracker.Start("calculate")
	assert.Equal(t, 30*time.Millisecond, stop())

	require.Len(t, tracker.Timings("calculate"), 2)
	assert.Equal(t, 20*time.Millisecond, tracker.Average("calculate"))
	assert.Nil(t, tracker.Timings("render"))
	assert.Zero(t, tracker.Average("render"))
}

func TestTrackerDisabled(t *testing.T) {
	tracker := NewTracker()
	tracker.SetEnabled(false)

	stop := tracker.Start("calculate")
	assert.Zero(t, stop())
	assert.Nil(t, tracker.Timings("calculate"))
}

func TestTrackerReset(t *testing.T) {
	tracker := NewTracker()
	tracker.Start("a")()
	tracker.Start("b")()

	assert.Equal(t, []string{"a", "b"}, tracker.Operations())

	tracker.Reset("a")
	assert.Nil(t, tracker.Timings("a"))
	assert.Len(t, tracker.Timings("b"), 1)

	tracker.Reset("")
	assert.Nil(t, tracker.Timings("b"))
}

func TestTimingsReturnsCopy(t *testing.T) {
	tracker := NewTracker()
	tracker.Start("a")()

	timings := tracker.Timings("a")
	timings[0] = time.Hour
	assert.NotEqual(t, time.Hour, tracker.Timings("a")[0])
}
