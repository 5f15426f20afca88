package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefaults(t *testing.T) {
	world, player, enemy, camera := World, Player, Enemy, Camera
	t.Cleanup(func() {
		World, Player, Enemy, Camera = world, player, enemy, camera
	})
}

func TestApplyOverridesKeepsMissingKeys(t *testing.T) {
	restoreDefaults(t)

	err := ApplyOverrides([]byte("player:\n  speed: 250\nworld:\n  gravity: 900\n"))
	require.NoError(t, err)

	assert.Equal(t, 250.0, Player.Speed)
	assert.Equal(t, 900.0, World.Gravity)
	assert.Equal(t, -400.0, Player.JumpVelocity)
	assert.Equal(t, 1000.0, World.TerminalVelocity)
	assert.Equal(t, 32.0, Player.Width)
}

func TestApplyOverridesRejectsInvalidValues(t *testing.T) {
	restoreDefaults(t)

	err := ApplyOverrides([]byte("player:\n  starting_lives: 0\n  speed: 999\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "starting_lives")
	assert.Equal(t, 200.0, Player.Speed, "nothing applied on validation failure")
}

func TestApplyOverridesRejectsBadYAML(t *testing.T) {
	restoreDefaults(t)

	require.Error(t, ApplyOverrides([]byte("player: [not, a, map")))
}

func TestLoadOverridesFromFile(t *testing.T) {
	restoreDefaults(t)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemy:\n  patrol_distance: 64\n"), 0o600))

	require.NoError(t, LoadOverrides(path))
	assert.Equal(t, 64.0, Enemy.PatrolDistance)

	assert.Error(t, LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestDirectionSign(t *testing.T) {
	assert.Equal(t, -1.0, Sign(DirectionLeft))
	assert.Equal(t, 1.0, Sign(DirectionRight))
	assert.Equal(t, DirectionLeft, Opposite(DirectionRight))
	assert.Equal(t, DirectionLeft, DirectionOf(-3, DirectionRight))
	assert.Equal(t, DirectionRight, DirectionOf(0, DirectionRight))
}
