package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restore puts the globals back after a test that overlays them.
func restore(t *testing.T) {
	t.Helper()
	saved := current()
	t.Cleanup(func() { apply(saved) })
}

func TestLoadFileMissingKeepsDefaults(t *testing.T) {
	restore(t)
	before := current()

	err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, before, current())
}

func TestLoadFileOverlaysPresentKeys(t *testing.T) {
	restore(t)

	path := filepath.Join(t.TempDir(), "isoterrain.yaml")
	data := []byte(`
window:
  width: 800
world:
  seed: 42
  level: hills
player:
  jump_impulse: 9.5
camera:
  zoom_max: 4
assets:
  tile_sheet: tiles.png
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	require.NoError(t, LoadFile(path))

	assert.Equal(t, 800, C.Width)
	assert.Equal(t, 768, C.Height, "absent keys keep their default")
	assert.Equal(t, int64(42), World.Seed)
	assert.Equal(t, "hills", World.Level)
	assert.Equal(t, 50, World.Width)
	assert.Equal(t, 9.5, Player.JumpImpulse)
	assert.Equal(t, 5.0, Player.Speed)
	assert.Equal(t, 4.0, Camera.ZoomMax)
	assert.Equal(t, "tiles.png", Assets.TileSheetPath)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		msg  string
	}{
		{"malformed yaml", "window: [1, 2", "parsing config"},
		{"wrong type", "window:\n  width: wide\n", "parsing config"},
		{"zero tps", "window:\n  tps: 0\n", "tps 0 must be positive"},
		{"negative world", "world:\n  depth: -1\n", "must not be negative"},
		{"inverted zoom", "camera:\n  zoom_min: 2\n  zoom_max: 1\n", "zoom range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore(t)
			before := current()

			err := Parse([]byte(tt.data), "test.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Contains(t, err.Error(), "test.yaml")
			assert.Equal(t, before, current(), "a rejected file changes nothing")
		})
	}
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, 30, C.TPS)
	assert.Equal(t, 50, World.Width)
	assert.Equal(t, 50, World.Depth)
	assert.Equal(t, uint16(2), World.MaxHeight)
	assert.Equal(t, 1366.0, Camera.BaseWidth)
	assert.Equal(t, 768.0, Camera.BaseHeight)
	assert.Equal(t, 19.0, UI.HUDHeight)

	for action := ActionMoveNorth; action < ActionCount; action++ {
		binding, ok := Input.Bindings[action]
		assert.True(t, ok, "action %d has a binding", action)
		assert.NotEmpty(t, binding.Keys, "action %d has keys", action)
	}
}
