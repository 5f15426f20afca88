package systems

import (
	"testing"

	cfg "github.com/automoto/stonerush/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestInputSystemTracksEdges(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	NewInputSystem(hold(cfg.ActionJump))(e)
	input := getOrCreateInput(e)
	assert.True(t, input.Action(cfg.ActionJump).JustPressed)

	NewInputSystem(hold(cfg.ActionJump))(e)
	assert.True(t, input.Action(cfg.ActionJump).Pressed)
	assert.False(t, input.Action(cfg.ActionJump).JustPressed)

	NewInputSystem(hold())(e)
	assert.True(t, input.Action(cfg.ActionJump).JustReleased)
	assert.False(t, input.Action(cfg.ActionMoveLeft).Pressed)
}

func TestNilSourceReadsNothing(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	NewInputSystem(nil)(e)

	assert.Equal(t, [cfg.ActionCount]bool{}, getOrCreateInput(e).Current)
}

func TestDebugToggleOnPress(t *testing.T) {
	before := cfg.Debug.DrawBounds
	t.Cleanup(func() { cfg.Debug.DrawBounds = before })

	e := ecs.NewECS(donburi.NewWorld())
	NewInputSystem(hold(cfg.ActionToggleDebug))(e)
	NewInputSystem(hold(cfg.ActionToggleDebug))(e)

	assert.Equal(t, !before, cfg.Debug.DrawBounds, "held key toggles once")
}
