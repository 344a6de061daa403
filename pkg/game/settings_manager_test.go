package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestSettingsManagerDegradedMode(t *testing.T) {
	sm := NewSettingsManager(nil, zaptest.NewLogger(t))

	assert.Equal(t, DisplaySettings{}, sm.Settings())
	assert.Equal(t, 2, sm.WindowScale(2), "without a saved preference the fallback wins")

	sm.SetFullscreen(true)
	sm.SetWindowScale(3)
	require.NoError(t, sm.Save())
	assert.True(t, sm.Settings().Fullscreen)
	assert.Equal(t, 3, sm.WindowScale(2))

	require.NoError(t, sm.Load())
	assert.Equal(t, DisplaySettings{}, sm.Settings(), "nothing persists without storage")
}

func TestSettingsManagerClampsWindowScale(t *testing.T) {
	tests := []struct {
		name  string
		scale int
		want  int
	}{
		{"过小", 0, MinWindowScale},
		{"负数", -4, MinWindowScale},
		{"正常", 4, 4},
		{"过大", 40, MaxWindowScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSettingsManager(nil, zaptest.NewLogger(t))
			sm.SetWindowScale(tt.scale)
			assert.Equal(t, tt.want, sm.Settings().WindowScale)
			assert.Equal(t, tt.want, NewSettingsManager(nil, zaptest.NewLogger(t)).WindowScale(tt.scale))
		})
	}
}

func TestSettingsManagerPersists(t *testing.T) {
	manager := createTestGdataManager(t)
	if manager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}

	logger := zaptest.NewLogger(t)
	sm := NewSettingsManager(manager, logger)
	sm.SetFullscreen(true)
	sm.SetWindowScale(4)
	require.NoError(t, sm.Save())

	reloaded := NewSettingsManager(manager, logger)
	assert.Equal(t, DisplaySettings{Fullscreen: true, WindowScale: 4}, reloaded.Settings())
}
