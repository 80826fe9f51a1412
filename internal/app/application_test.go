package app

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"word-counter/internal/config"
	"word-counter/internal/debug"
	"word-counter/internal/debug/logger"
	"word-counter/internal/state"
	"word-counter/internal/theme"
	"word-counter/internal/wordcount"
)

func testConfig() config.Config {
	cfg := config.Load()
	cfg.Debug.LogLevel = logger.LevelDisabled
	return cfg
}

func testCoordinator() debug.Coordinator {
	return debug.NewCoordinator(testConfig().Debug)
}

func TestNewApplication(t *testing.T) {
	application, err := newApplication(test.NewTempApp(t), testConfig(), testCoordinator())
	require.NoError(t, err)
	t.Cleanup(application.lifecycle.Shutdown)

	assert.Equal(t, "Word Counter", application.Window().Title())
	assert.NotNil(t, application.Window().Content())
	assert.Equal(t, state.State{Theme: theme.Light}, application.Store().State())
}

func TestNewApplicationRequiresFyneApp(t *testing.T) {
	_, err := newApplication(nil, testConfig(), testCoordinator())
	assert.Error(t, err)
}

func TestApplicationCountsThroughStore(t *testing.T) {
	application, err := newApplication(test.NewTempApp(t), testConfig(), testCoordinator())
	require.NoError(t, err)
	t.Cleanup(application.lifecycle.Shutdown)

	application.Store().Dispatch(state.InputChanged{Text: "To be, or not to be"})
	s := application.Store().Dispatch(state.Calculate{})

	assert.Equal(t, wordcount.Tally{"to": 2, "be": 2, "or": 1, "not": 1}, s.Counts)
}

func TestLifecycleShutdownOnce(t *testing.T) {
	application, err := newApplication(test.NewTempApp(t), testConfig(), testCoordinator())
	require.NoError(t, err)

	application.lifecycle.Shutdown()
	application.lifecycle.Shutdown()

	select {
	case <-application.lifecycle.Done():
	default:
		t.Fatal("lifecycle not shut down")
	}
}
